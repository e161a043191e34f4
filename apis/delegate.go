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
)

// Display resolves the payload's own display formatting. Generated display
// dispatch calls this for every variant without a disp clause.
//
// Resolution order (highest to lowest):
//  1. plain string payloads display as themselves;
//  2. errors display via Error();
//  3. fmt.Stringer payloads display via String();
//  4. anything else falls back to fmt.Sprint.
//
// A nil payload displays as "<nil>", matching fmt's own convention.
func Display(v any) string {
	switch p := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return p
	case error:
		return p.Error()
	case fmt.Stringer:
		return p.String()
	default:
		return fmt.Sprint(p)
	}
}

// Describe resolves the payload's own description. Generated description
// dispatch calls this for every variant whose desc slot resolved to the
// default (no desc clause, or the "desc();" shorthand).
//
// Resolution order:
//  1. payloads that provide their own Description() are asked directly;
//  2. otherwise the payload's display form is the description.
//
// Keeping (2) equal to Display guarantees that a variant with no desc clause
// behaves identically to one whose desc clause returns the payload's display.
func Describe(v any) string {
	if d, ok := v.(interface{ Description() string }); ok {
		return d.Description()
	}
	return Display(v)
}

// CauseOf resolves the payload's OWN cause lookup. Generated cause dispatch
// calls this for every variant using the "cause;" shorthand.
//
// IMPORTANT: this never returns the payload itself. The payload is modeled
// as the error; the shorthand surfaces the payload's underlying cause, if
// the payload tracks one:
//
//  1. payloads that provide their own Cause() are asked directly;
//  2. error payloads are unwrapped once via errors.Unwrap;
//  3. anything else has no cause.
//
// A variant that wants "the payload is the cause" semantics must say so with
// an explicit cause clause, e.g. `cause (e) e;`.
func CauseOf(v any) error {
	if c, ok := v.(interface{ Cause() error }); ok {
		return c.Cause()
	}
	if err, ok := v.(error); ok {
		return errors.Unwrap(err)
	}
	return nil
}
