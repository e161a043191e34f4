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

package decl

import (
	"errors"
	"testing"
)

// validDecl returns a minimal well-formed declaration that tests mutate.
func validDecl() EnumDecl {
	return EnumDecl{
		Name:   "AppError",
		Public: true,
		Variants: []Variant{
			{Name: "Io", Payload: "*fs.PathError", Clauses: ClauseSet{
				Cause: CauseStrategy{Kind: CauseDelegate},
			}},
			{Name: "Simple", Payload: "string"},
		},
	}
}

func TestValidateOK(t *testing.T) {
	d := validDecl()
	if err := d.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidateUnexportedEnum(t *testing.T) {
	d := EnumDecl{
		Name:     "appError",
		Public:   false,
		Variants: []Variant{{Name: "Simple", Payload: "string"}},
	}
	if err := d.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*EnumDecl)
		wantErr error
	}{
		{
			name:    "no variants",
			mutate:  func(d *EnumDecl) { d.Variants = nil },
			wantErr: ErrNoVariants,
		},
		{
			name: "duplicate variant",
			mutate: func(d *EnumDecl) {
				d.Variants = append(d.Variants, Variant{Name: "Io", Payload: "error"})
			},
			wantErr: ErrDuplicateVariant,
		},
		{
			name:    "pub with unexported name",
			mutate:  func(d *EnumDecl) { d.Name = "appError" },
			wantErr: ErrVisibility,
		},
		{
			name:    "non-pub with exported name",
			mutate:  func(d *EnumDecl) { d.Public = false },
			wantErr: ErrVisibility,
		},
		{
			name: "custom desc without expression",
			mutate: func(d *EnumDecl) {
				d.Variants[1].Clauses.Desc = DescStrategy{Kind: DescCustom, Bind: "s"}
			},
			wantErr: ErrIncompleteClause,
		},
		{
			name: "custom disp without sink",
			mutate: func(d *EnumDecl) {
				d.Variants[1].Clauses.Display = DisplayStrategy{
					Kind: DisplayCustom, Bind: "s", Expr: "fmt.Fprint(w, s)",
				}
			},
			wantErr: ErrIncompleteClause,
		},
		{
			name: "custom cause without binding",
			mutate: func(d *EnumDecl) {
				d.Variants[1].Clauses.Cause = CauseStrategy{Kind: CauseCustom, Expr: "nil"}
			},
			wantErr: ErrIncompleteClause,
		},
		{
			name: "conversion without expression",
			mutate: func(d *EnumDecl) {
				d.Variants[1].Clauses.Conversions = []Conversion{{Bind: "b", Source: "[]byte"}}
			},
			wantErr: ErrIncompleteClause,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDecl()
			tt.mutate(&d)
			if err := d.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestZeroClauseSetIsAllDefaults(t *testing.T) {
	var c ClauseSet
	if c.Display.Kind != DisplayDefault {
		t.Errorf("zero Display.Kind = %v, want DisplayDefault", c.Display.Kind)
	}
	if c.Desc.Kind != DescDefault {
		t.Errorf("zero Desc.Kind = %v, want DescDefault", c.Desc.Kind)
	}
	if c.Cause.Kind != CauseNone {
		t.Errorf("zero Cause.Kind = %v, want CauseNone", c.Cause.Kind)
	}
	if len(c.Conversions) != 0 {
		t.Errorf("zero Conversions = %v, want empty", c.Conversions)
	}
}
