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
	"fmt"

	"dirpx.dev/errtype/ident"
	"dirpx.dev/errtype/typeexpr"
)

var (
	// ErrNoVariants is returned when an enum declares zero variants.
	// The grammar requires one or more.
	ErrNoVariants = errors.New("errtype: enum must declare at least one variant")

	// ErrDuplicateVariant is returned when two variants of one enum share a
	// name.
	ErrDuplicateVariant = errors.New("errtype: duplicate variant name")

	// ErrVisibility is returned when the declared visibility contradicts the
	// enum name's own casing: "pub enum" requires an exported identifier and
	// plain "enum" requires an unexported one, because in generated Go code
	// visibility is carried by the name itself.
	ErrVisibility = errors.New("errtype: visibility contradicts name casing")

	// ErrIncompleteClause is returned when a custom strategy is missing its
	// binding or expression. A well-formed parser never produces this; it
	// guards hand-built declarations in tests and tools.
	ErrIncompleteClause = errors.New("errtype: incomplete clause")
)

// EnumDecl is the fully resolved description of one error enumeration,
// produced by the parser and consumed by the emitter.
//
// Declaration order of variants is preserved purely for deterministic
// emission; no behavior of the generated type depends on it.
type EnumDecl struct {
	// Name is the enum identifier. Its casing decides the visibility of
	// every generated name derived from it.
	Name ident.Ident

	// Public records whether the definition used the "pub enum" form.
	// It must agree with Name's casing (see ErrVisibility).
	Public bool

	// Attrs holds the raw text of the #[...] attribute lines, in source
	// order. The emitter re-emits them as doc-comment lines on the generated
	// type, without interpretation.
	Attrs []string

	// Variants is the ordered variant list. At least one; names unique.
	Variants []Variant
}

// Variant describes one alternative of the enumeration together with its
// resolved clause set.
type Variant struct {
	// Name is the variant identifier.
	Name ident.Ident

	// Payload is the single wrapped type. Tuples and field lists are not
	// representable; typeexpr.Validate enforces that.
	Payload typeexpr.TypeExpr

	// Clauses is the complete, default-filled behavior descriptor for this
	// variant. The zero value of ClauseSet is the all-defaults resolution,
	// so a variant with an empty clause block is valid as-is.
	Clauses ClauseSet
}

// ClauseSet is the resolution of a variant's clause block: four independent
// slots, each with a well-defined default when its clause is absent.
//
// Because each clause updates exactly one slot and the slots are independent,
// the order clauses were written in is irrelevant to the resolution — that is
// the key property the accumulator guarantees.
type ClauseSet struct {
	// Display defaults to delegating to the payload's own display.
	Display DisplayStrategy

	// Desc defaults to delegating to the payload's own description.
	Desc DescStrategy

	// Cause defaults to "no cause".
	Cause CauseStrategy

	// Conversions holds the extra "from" conversions in clause order.
	// Order affects nothing semantically but is preserved for deterministic
	// emission.
	Conversions []Conversion
}

// DisplayKind selects how a variant contributes to the enum-wide display
// dispatch.
type DisplayKind int

const (
	// DisplayDefault delegates to the payload value's own display
	// formatting.
	DisplayDefault DisplayKind = iota

	// DisplayCustom binds the payload and a writer sink to the declared
	// names and evaluates the declared expression, which must perform the
	// formatting by writing to the sink.
	DisplayCustom
)

// DisplayStrategy is one resolved display slot. Bind, Sink and Expr are only
// meaningful for DisplayCustom.
type DisplayStrategy struct {
	Kind DisplayKind
	Bind ident.Ident // payload binding name
	Sink ident.Ident // writer binding name
	Expr string      // call expression writing to Sink
}

// DescKind selects how a variant contributes to the enum-wide description
// dispatch.
type DescKind int

const (
	// DescDefault delegates to the payload's own description. Both an
	// absent desc clause and the "desc();" shorthand resolve to this.
	DescDefault DescKind = iota

	// DescCustom binds the payload to the declared name and evaluates the
	// declared expression, which must yield a string.
	DescCustom
)

// DescStrategy is one resolved description slot. Bind and Expr are only
// meaningful for DescCustom.
type DescStrategy struct {
	Kind DescKind
	Bind ident.Ident
	Expr string
}

// CauseKind selects how a variant contributes to the enum-wide cause
// dispatch.
type CauseKind int

const (
	// CauseNone always yields no cause. This is the default when no cause
	// clause is written.
	CauseNone CauseKind = iota

	// CauseDelegate (the "cause;" shorthand) delegates to the payload's own
	// cause lookup. Explicitly NOT the payload itself: the payload is
	// modeled as the error, the shorthand surfaces the payload's underlying
	// cause, if the payload itself tracks one.
	CauseDelegate

	// CauseCustom binds the payload to the declared name and evaluates the
	// declared expression, which must yield an error (possibly nil).
	CauseCustom
)

// CauseStrategy is one resolved cause slot. Bind and Expr are only
// meaningful for CauseCustom.
type CauseStrategy struct {
	Kind CauseKind
	Bind ident.Ident
	Expr string
}

// Conversion describes one extra "from" clause: an additional construction
// path from Source into the variant's payload via Expr, with the source
// value bound to Bind.
//
// These are additional to, and independent from, the unconditional
// bare-payload constructor that every variant receives.
type Conversion struct {
	Bind   ident.Ident
	Source typeexpr.TypeExpr
	Expr   string
}

// Validate checks the structural invariants of the declaration: valid
// identifiers, visibility consistency, at least one variant, unique variant
// names, valid payload types, and internally consistent clause sets.
func (d *EnumDecl) Validate() error {
	if err := ident.Validate(d.Name); err != nil {
		return fmt.Errorf("enum name: %w", err)
	}
	if d.Public != d.Name.Exported() {
		return fmt.Errorf("enum %s: %w", d.Name, ErrVisibility)
	}
	if len(d.Variants) == 0 {
		return fmt.Errorf("enum %s: %w", d.Name, ErrNoVariants)
	}

	seen := make(map[ident.Ident]struct{}, len(d.Variants))
	for i := range d.Variants {
		v := &d.Variants[i]
		if err := v.validate(); err != nil {
			return fmt.Errorf("enum %s: %w", d.Name, err)
		}
		if _, dup := seen[v.Name]; dup {
			return fmt.Errorf("enum %s: variant %s: %w", d.Name, v.Name, ErrDuplicateVariant)
		}
		seen[v.Name] = struct{}{}
	}
	return nil
}

// validate checks one variant and its clause set.
func (v *Variant) validate() error {
	if err := ident.Validate(v.Name); err != nil {
		return fmt.Errorf("variant name: %w", err)
	}
	if err := typeexpr.Validate(v.Payload); err != nil {
		return fmt.Errorf("variant %s: %w", v.Name, err)
	}
	c := &v.Clauses
	if c.Display.Kind == DisplayCustom {
		if c.Display.Bind == "" || c.Display.Sink == "" || c.Display.Expr == "" {
			return fmt.Errorf("variant %s: disp: %w", v.Name, ErrIncompleteClause)
		}
	}
	if c.Desc.Kind == DescCustom {
		if c.Desc.Bind == "" || c.Desc.Expr == "" {
			return fmt.Errorf("variant %s: desc: %w", v.Name, ErrIncompleteClause)
		}
	}
	if c.Cause.Kind == CauseCustom {
		if c.Cause.Bind == "" || c.Cause.Expr == "" {
			return fmt.Errorf("variant %s: cause: %w", v.Name, ErrIncompleteClause)
		}
	}
	for _, conv := range c.Conversions {
		if err := ident.Validate(conv.Bind); err != nil {
			return fmt.Errorf("variant %s: from: %w", v.Name, err)
		}
		if err := typeexpr.Validate(conv.Source); err != nil {
			return fmt.Errorf("variant %s: from: %w", v.Name, err)
		}
		if conv.Expr == "" {
			return fmt.Errorf("variant %s: from: %w", v.Name, ErrIncompleteClause)
		}
	}
	return nil
}
