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

package parser

import (
	"fmt"

	"dirpx.dev/errtype/decl"
	"dirpx.dev/errtype/ident"
	"dirpx.dev/errtype/typeexpr"
)

// accum threads the "clauses seen so far" state through a variant's clause
// block. Three scalar slots carry a seen-flag so that a second occurrence of
// a non-accumulating clause is rejected instead of silently overwriting;
// conversions accumulate as a growing list and are never a duplicate.
type accum struct {
	cs    decl.ClauseSet
	disp  bool
	desc  bool
	cause bool
}

// accumulateClauses scans one variant's clause block, one clause at a time,
// until the closing '}'.
//
// Each step reads the head keyword and dispatches on it, so clauses may
// appear in any order and the resolution is identical — position never
// matters, only the clause's own shape. When the block is exhausted, slots
// that were never written keep their zero values, which ARE the defaults:
// display -> delegate to payload, desc -> delegate to payload, cause -> none,
// conversions -> empty.
func accumulateClauses(l *lexer, variant ident.Ident) (*decl.ClauseSet, error) {
	var a accum
	for {
		if l.accept('}') {
			return &a.cs, nil
		}
		if l.eof() {
			return nil, fmt.Errorf("parser: %s: unterminated clause block: %w", l.pos(), ErrUnexpectedEOF)
		}

		kw, p, err := l.word()
		if err != nil {
			return nil, err
		}
		switch kw {
		case "disp":
			err = parseDisp(l, &a, variant, p)
		case "desc":
			err = parseDesc(l, &a, variant, p)
		case "cause":
			err = parseCause(l, &a, variant, p)
		case "from":
			err = parseFrom(l, &a, variant, p)
		default:
			return nil, fmt.Errorf("parser: %s: variant %s: clause %q: %w", p, variant, kw, ErrUnknownClause)
		}
		if err != nil {
			return nil, err
		}
	}
}

// parseDisp handles `disp (bind, sink) expr;` — a custom display override.
func parseDisp(l *lexer, a *accum, variant ident.Ident, p Pos) error {
	if a.disp {
		return fmt.Errorf("parser: %s: variant %s: disp: %w", p, variant, ErrDuplicateClause)
	}
	if err := l.expect('('); err != nil {
		return err
	}
	bind, err := bindName(l)
	if err != nil {
		return err
	}
	if err := l.expect(','); err != nil {
		return err
	}
	sink, err := bindName(l)
	if err != nil {
		return err
	}
	if err := l.expect(')'); err != nil {
		return err
	}
	expr, err := clauseExpr(l, variant, "disp")
	if err != nil {
		return err
	}
	a.disp = true
	a.cs.Display = decl.DisplayStrategy{
		Kind: decl.DisplayCustom,
		Bind: bind,
		Sink: sink,
		Expr: expr,
	}
	return nil
}

// parseDesc handles both description forms:
//
//	desc ();          — shorthand: delegate to the payload's own description
//	desc (bind) expr; — custom description
func parseDesc(l *lexer, a *accum, variant ident.Ident, p Pos) error {
	if a.desc {
		return fmt.Errorf("parser: %s: variant %s: desc: %w", p, variant, ErrDuplicateClause)
	}
	if err := l.expect('('); err != nil {
		return err
	}
	if l.accept(')') {
		// desc(); — explicit delegation, same resolution as the default.
		if err := l.expect(';'); err != nil {
			return err
		}
		a.desc = true
		a.cs.Desc = decl.DescStrategy{Kind: decl.DescDefault}
		return nil
	}
	bind, err := bindName(l)
	if err != nil {
		return err
	}
	if err := l.expect(')'); err != nil {
		return err
	}
	expr, err := clauseExpr(l, variant, "desc")
	if err != nil {
		return err
	}
	a.desc = true
	a.cs.Desc = decl.DescStrategy{Kind: decl.DescCustom, Bind: bind, Expr: expr}
	return nil
}

// parseCause handles both cause forms:
//
//	cause;            — shorthand: delegate to the payload's own cause
//	cause (bind) expr; — custom cause
func parseCause(l *lexer, a *accum, variant ident.Ident, p Pos) error {
	if a.cause {
		return fmt.Errorf("parser: %s: variant %s: cause: %w", p, variant, ErrDuplicateClause)
	}
	if l.accept(';') {
		a.cause = true
		a.cs.Cause = decl.CauseStrategy{Kind: decl.CauseDelegate}
		return nil
	}
	if err := l.expect('('); err != nil {
		return err
	}
	bind, err := bindName(l)
	if err != nil {
		return err
	}
	if err := l.expect(')'); err != nil {
		return err
	}
	expr, err := clauseExpr(l, variant, "cause")
	if err != nil {
		return err
	}
	a.cause = true
	a.cs.Cause = decl.CauseStrategy{Kind: decl.CauseCustom, Bind: bind, Expr: expr}
	return nil
}

// parseFrom handles `from (bind: SourceType) expr;`. Unlike the scalar
// clauses, conversions accumulate: every occurrence appends, and insertion
// order is preserved for deterministic emission.
func parseFrom(l *lexer, a *accum, variant ident.Ident, p Pos) error {
	if err := l.expect('('); err != nil {
		return err
	}
	bind, err := bindName(l)
	if err != nil {
		return err
	}
	if err := l.expect(':'); err != nil {
		return err
	}
	rawType, _, err := l.span(")")
	if err != nil {
		return err
	}
	src, err := typeexpr.Parse(rawType)
	if err != nil {
		return fmt.Errorf("parser: %s: variant %s: from source type: %w", p, variant, err)
	}
	expr, err := clauseExpr(l, variant, "from")
	if err != nil {
		return err
	}
	a.cs.Conversions = append(a.cs.Conversions, decl.Conversion{
		Bind:   bind,
		Source: src,
		Expr:   expr,
	})
	return nil
}

// bindName reads and validates one binding identifier.
func bindName(l *lexer) (ident.Ident, error) {
	w, p, err := l.word()
	if err != nil {
		return "", err
	}
	id, err := ident.Parse(w)
	if err != nil {
		return "", fmt.Errorf("parser: %s: binding %q: %w", p, w, err)
	}
	return id, nil
}

// clauseExpr captures the clause expression up to its terminating ';'.
// The expression is opaque; only emptiness is rejected here. Whether it
// type-checks is decided by the compiler at the generated file's build site.
func clauseExpr(l *lexer, variant ident.Ident, clause string) (string, error) {
	p := l.pos()
	expr, _, err := l.span(";")
	if err != nil {
		return "", err
	}
	if expr == "" {
		return "", fmt.Errorf("parser: %s: variant %s: %s: empty expression: %w", p, variant, clause, ErrMalformed)
	}
	return expr, nil
}
