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

package ident

import (
	"errors"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Ident
		wantErr error
	}{
		{name: "simple", in: "AppError", want: "AppError"},
		{name: "single letter", in: "e", want: "e"},
		{name: "underscore start", in: "_internal", want: "_internal"},
		{name: "digits after first", in: "v2Error", want: "v2Error"},
		{name: "trims whitespace", in: "  Io  ", want: "Io"},
		{name: "max length", in: strings.Repeat("a", MaxLength), want: Ident(strings.Repeat("a", MaxLength))},

		{name: "empty", in: "", wantErr: ErrIdentInvalid},
		{name: "only whitespace", in: "   ", wantErr: ErrIdentInvalid},
		{name: "leading digit", in: "2fast", wantErr: ErrIdentInvalid},
		{name: "interior space", in: "App Error", wantErr: ErrIdentInvalid},
		{name: "punctuation", in: "App-Error", wantErr: ErrIdentInvalid},
		{name: "unicode", in: "ошибка", wantErr: ErrIdentInvalid},
		{name: "too long", in: strings.Repeat("a", MaxLength+1), wantErr: ErrIdentInvalid},

		{name: "keyword func", in: "func", wantErr: ErrIdentReserved},
		{name: "keyword range", in: "range", wantErr: ErrIdentReserved},
		{name: "keyword type", in: "type", wantErr: ErrIdentReserved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse(%q) error = %v, want %v", tt.in, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExported(t *testing.T) {
	tests := []struct {
		id   Ident
		want bool
	}{
		{"AppError", true},
		{"appError", false},
		{"_hidden", false},
		{"Io", true},
	}
	for _, tt := range tests {
		if got := tt.id.Exported(); got != tt.want {
			t.Errorf("Ident(%q).Exported() = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestExportUnexport(t *testing.T) {
	if got, want := Ident("io").Export(), "Io"; got != want {
		t.Errorf("Export() = %q, want %q", got, want)
	}
	if got, want := Ident("AppError").Unexport(), "appError"; got != want {
		t.Errorf("Unexport() = %q, want %q", got, want)
	}
	if got, want := Ident("Io").Export(), "Io"; got != want {
		t.Errorf("Export() on exported = %q, want %q", got, want)
	}
}

func TestTextRoundtrip(t *testing.T) {
	id := MustParse("Simple")
	b, err := id.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}

	var back Ident
	if err := back.UnmarshalText(b); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if back != id {
		t.Errorf("roundtrip = %q, want %q", back, id)
	}

	var bad Ident
	if err := bad.UnmarshalText([]byte("not valid!")); !errors.Is(err, ErrIdentInvalid) {
		t.Errorf("UnmarshalText(invalid) error = %v, want %v", err, ErrIdentInvalid)
	}
}
