/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

import (
	"errors"
	"fmt"
	"testing"
)

type stringerPayload struct{}

func (stringerPayload) String() string { return "stringer form" }

type describedPayload struct{}

func (describedPayload) Error() string       { return "display form" }
func (describedPayload) Description() string { return "described form" }

type causedPayload struct{ cause error }

func (p causedPayload) Error() string { return "caused" }
func (p causedPayload) Cause() error  { return p.cause }

func TestDisplay(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "<nil>"},
		{"string", "plain text", "plain text"},
		{"error", errors.New("broken"), "broken"},
		{"stringer", stringerPayload{}, "stringer form"},
		{"fallback int", 42, "42"},
		{"described error displays via Error", describedPayload{}, "display form"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Display(tt.in); got != tt.want {
				t.Errorf("Display(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDescribe(t *testing.T) {
	if got, want := Describe(describedPayload{}), "described form"; got != want {
		t.Errorf("Describe(described) = %q, want %q", got, want)
	}
	// Without a Description method the display form is the description.
	if got, want := Describe("plain"), "plain"; got != want {
		t.Errorf("Describe(string) = %q, want %q", got, want)
	}
	if got, want := Describe(errors.New("broken")), "broken"; got != want {
		t.Errorf("Describe(error) = %q, want %q", got, want)
	}
}

func TestCauseOf(t *testing.T) {
	root := errors.New("root")

	// Cause() wins over unwrapping.
	if got := CauseOf(causedPayload{cause: root}); got != root {
		t.Errorf("CauseOf(caused) = %v, want root", got)
	}

	// Wrapped errors are unwrapped exactly once.
	wrapped := fmt.Errorf("outer: %w", root)
	if got := CauseOf(wrapped); got != root {
		t.Errorf("CauseOf(wrapped) = %v, want root", got)
	}

	// A leaf error is never its own cause.
	if got := CauseOf(root); got != nil {
		t.Errorf("CauseOf(leaf) = %v, want nil", got)
	}

	// Non-error payloads have no cause.
	if got := CauseOf("plain"); got != nil {
		t.Errorf("CauseOf(string) = %v, want nil", got)
	}
	if got := CauseOf(nil); got != nil {
		t.Errorf("CauseOf(nil) = %v, want nil", got)
	}
}
