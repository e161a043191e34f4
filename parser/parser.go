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
	"errors"
	"fmt"
	"strings"

	"dirpx.dev/errtype/decl"
	"dirpx.dev/errtype/ident"
	"dirpx.dev/errtype/typeexpr"
)

var (
	// ErrMalformed is returned for any structural grammar violation:
	// missing keywords, unbalanced delimiters, stray punctuation.
	ErrMalformed = errors.New("errtype: malformed definition")

	// ErrUnexpectedEOF is returned when the source ends inside a construct.
	ErrUnexpectedEOF = errors.New("errtype: unexpected end of definition")

	// ErrUnknownClause is returned when a variant body contains a clause
	// whose keyword is not one of disp / desc / cause / from.
	ErrUnknownClause = errors.New("errtype: unrecognized clause")

	// ErrDuplicateClause is returned when a non-accumulating clause (disp,
	// desc or cause) appears twice on one variant. There is no "last wins":
	// a duplicate fails the whole invocation.
	ErrDuplicateClause = errors.New("errtype: duplicate clause")

	// ErrNoInvocations is returned when a definition source contains no
	// error_type! invocation at all.
	ErrNoInvocations = errors.New("errtype: no error_type invocations in source")
)

// File is the parsed form of one definition source: the optional output
// package header, the verbatim import block, and every enum declared across
// all error_type! invocations, in source order.
type File struct {
	// Package is the output package name from the leading "package" line.
	// May be empty; the driver then falls back to its configured default.
	Package string

	// Imports holds the verbatim import specs from the leading import
	// block, one spec per entry (e.g. `"io/fs"` or `gerrs "errors"`).
	// They are copied into the generated file untouched.
	Imports []string

	// Enums is every enum declaration, already validated.
	Enums []decl.EnumDecl
}

// ParseFile parses a complete definition source.
//
// Layout:
//
//	package <name>        // optional
//	import ( <specs> )    // optional; also: import "single"
//	error_type! { <enum definitions> }
//	error_type! { ... }   // repeatable
//
// Any failure aborts the whole parse: no partial File is returned.
func ParseFile(src []byte) (*File, error) {
	l := newLexer(string(src))
	f := &File{}

	if l.peekWord() == "package" {
		_, _, _ = l.word()
		name, p, err := l.word()
		if err != nil {
			return nil, err
		}
		if _, err := ident.Parse(name); err != nil {
			return nil, fmt.Errorf("parser: %s: package name %q: %w", p, name, err)
		}
		f.Package = name
	}

	if l.peekWord() == "import" {
		specs, err := parseImports(l)
		if err != nil {
			return nil, err
		}
		f.Imports = specs
	}

	for !l.eof() {
		enums, err := parseInvocation(l)
		if err != nil {
			return nil, err
		}
		f.Enums = append(f.Enums, enums...)
	}

	if len(f.Enums) == 0 {
		return nil, ErrNoInvocations
	}
	return f, nil
}

// parseImports consumes an import block or a single import spec and returns
// the individual specs verbatim.
func parseImports(l *lexer) ([]string, error) {
	_, p, _ := l.word() // "import"
	if l.accept('(') {
		raw, _, err := l.span(")")
		if err != nil {
			return nil, err
		}
		var specs []string
		for _, line := range strings.Split(raw, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				specs = append(specs, line)
			}
		}
		return specs, nil
	}
	// Single-spec form: import "path"  (no parentheses).
	raw, _, err := l.span("\n")
	if err != nil {
		return nil, fmt.Errorf("parser: %s: import: %w", p, err)
	}
	if raw == "" {
		return nil, fmt.Errorf("parser: %s: empty import: %w", p, ErrMalformed)
	}
	return []string{raw}, nil
}

// parseInvocation consumes one `error_type! { ... }` block. A block may
// declare several consecutive enums; they are parsed in order and each is
// validated independently, but any failure fails the entire invocation.
func parseInvocation(l *lexer) ([]decl.EnumDecl, error) {
	kw, p, err := l.word()
	if err != nil {
		return nil, err
	}
	if kw != "error_type" {
		return nil, fmt.Errorf("parser: %s: expected error_type invocation, found %q: %w", p, kw, ErrMalformed)
	}
	if err := l.expect('!'); err != nil {
		return nil, err
	}
	if err := l.expect('{'); err != nil {
		return nil, err
	}

	var enums []decl.EnumDecl
	for {
		if l.accept('}') {
			break
		}
		if l.eof() {
			return nil, fmt.Errorf("parser: %s: unterminated invocation: %w", l.pos(), ErrUnexpectedEOF)
		}
		e, err := parseEnum(l)
		if err != nil {
			return nil, err
		}
		enums = append(enums, *e)
	}
	if len(enums) == 0 {
		return nil, fmt.Errorf("parser: %s: empty invocation: %w", p, ErrMalformed)
	}
	return enums, nil
}

// parseEnum consumes one enum definition:
//
//	#[attr]* (pub)? enum Name { Variant(Type) { clause* }, ... }
//
// and normalizes it into a validated decl.EnumDecl. This is the grammar
// normalizer: the declaration shell is separated here, the clause bodies are
// handed to the accumulator in clauses.go.
func parseEnum(l *lexer) (*decl.EnumDecl, error) {
	d := &decl.EnumDecl{}

	// Zero or more #[...] attribute lines.
	for l.accept('#') {
		if err := l.expect('['); err != nil {
			return nil, err
		}
		raw, _, err := l.span("]")
		if err != nil {
			return nil, err
		}
		d.Attrs = append(d.Attrs, raw)
	}

	kw, p, err := l.word()
	if err != nil {
		return nil, err
	}
	if kw == "pub" {
		d.Public = true
		kw, p, err = l.word()
		if err != nil {
			return nil, err
		}
	}
	if kw != "enum" {
		return nil, fmt.Errorf("parser: %s: expected enum, found %q: %w", p, kw, ErrMalformed)
	}

	name, p, err := l.word()
	if err != nil {
		return nil, err
	}
	d.Name, err = ident.Parse(name)
	if err != nil {
		return nil, fmt.Errorf("parser: %s: enum name %q: %w", p, name, err)
	}

	if err := l.expect('{'); err != nil {
		return nil, err
	}
	for {
		if l.accept('}') {
			break
		}
		if l.eof() {
			return nil, fmt.Errorf("parser: %s: unterminated enum body: %w", l.pos(), ErrUnexpectedEOF)
		}
		v, err := parseVariant(l)
		if err != nil {
			return nil, fmt.Errorf("enum %s: %w", d.Name, err)
		}
		d.Variants = append(d.Variants, *v)
		l.accept(',') // separator; also permits a trailing comma
	}

	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("parser: %w", err)
	}
	return d, nil
}

// parseVariant consumes one `Name(Type) { clause* }` entry. The payload type
// is captured as an opaque balanced span and validated only structurally.
func parseVariant(l *lexer) (*decl.Variant, error) {
	v := &decl.Variant{}

	name, p, err := l.word()
	if err != nil {
		return nil, err
	}
	v.Name, err = ident.Parse(name)
	if err != nil {
		return nil, fmt.Errorf("parser: %s: variant name %q: %w", p, name, err)
	}

	if err := l.expect('('); err != nil {
		return nil, err
	}
	rawType, _, err := l.span(")")
	if err != nil {
		return nil, err
	}
	v.Payload, err = typeexpr.Parse(rawType)
	if err != nil {
		return nil, fmt.Errorf("parser: %s: variant %s payload: %w", p, v.Name, err)
	}

	if err := l.expect('{'); err != nil {
		return nil, err
	}
	cs, err := accumulateClauses(l, v.Name)
	if err != nil {
		return nil, err
	}
	v.Clauses = *cs
	return v, nil
}
