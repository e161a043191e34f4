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

package emitter

import (
	"errors"
	"fmt"
	"go/format"
	"strings"

	"dirpx.dev/errtype/decl"
)

var (
	// ErrNoPackage is returned when neither the definition source nor the
	// caller provided an output package name.
	ErrNoPackage = errors.New("errtype: no output package name")
)

// Input is everything the emitter needs to produce one generated file.
type Input struct {
	// Package is the output package name. Required.
	Package string

	// Imports are verbatim import specs from the definition source. They
	// are emitted untouched, after the imports the generated code needs
	// for itself.
	Imports []string

	// Enums are the validated declarations, emitted in order.
	Enums []decl.EnumDecl

	// Header is an optional verbatim comment block (e.g. a license header)
	// placed above the generated-code marker. It must already be comment
	// text; the emitter does not wrap it.
	Header string
}

// Emit renders the complete generated file for the given input.
//
// Emission is deterministic: the same Input always produces the same bytes.
// Variants are rendered in declaration order and conversions in clause
// order; neither order is semantically observable in the generated type.
// The output is passed through go/format, so it is gofmt-clean.
func Emit(in Input) ([]byte, error) {
	if in.Package == "" {
		return nil, ErrNoPackage
	}

	views := make([]enumView, 0, len(in.Enums))
	customDisp := false
	for i := range in.Enums {
		d := &in.Enums[i]
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("emitter: %w", err)
		}
		n := naming{enum: d.Name}
		if err := n.check(d); err != nil {
			return nil, fmt.Errorf("emitter: %w", err)
		}
		v := buildEnumView(d, n)
		for _, vv := range v.Variants {
			if vv.CustomDisp {
				customDisp = true
			}
		}
		views = append(views, v)
	}

	var b strings.Builder
	if in.Header != "" {
		b.WriteString(strings.TrimRight(in.Header, "\n"))
		b.WriteString("\n\n")
	}
	b.WriteString("// Code generated by errtype. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", in.Package)
	writeImports(&b, in.Imports, customDisp)

	for i := range views {
		if err := enumTmpl.Execute(&b, &views[i]); err != nil {
			return nil, fmt.Errorf("emitter: render enum %s: %w", views[i].Name, err)
		}
	}

	src, err := format.Source([]byte(b.String()))
	if err != nil {
		// A formatting failure means a clause expression or type was not
		// valid Go at this splice site. Surface it with the raw output so
		// the author can see what the splice produced.
		return nil, fmt.Errorf("emitter: generated code does not parse: %w\n%s", err, b.String())
	}
	return src, nil
}

// writeImports assembles the import block: the generator's own imports
// first, then the definition's verbatim specs, then the capability package.
// Specs that duplicate an auto-import are dropped.
func writeImports(b *strings.Builder, user []string, customDisp bool) {
	auto := []string{"fmt"}
	if customDisp {
		auto = append(auto, "io", "strings")
	}

	autoSet := make(map[string]struct{}, len(auto)+1)
	for _, p := range auto {
		autoSet[`"` + p + `"`] = struct{}{}
	}
	autoSet[`"dirpx.dev/errtype/apis"`] = struct{}{}

	b.WriteString("import (\n")
	for _, p := range auto {
		fmt.Fprintf(b, "\t%q\n", p)
	}
	kept := 0
	for _, spec := range user {
		if _, dup := autoSet[spec]; dup {
			continue
		}
		if kept == 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(b, "\t%s\n", spec)
		kept++
	}
	b.WriteString("\n\t\"dirpx.dev/errtype/apis\"\n")
	b.WriteString(")\n")
}

// enumView is the fully precomputed rendering model for one enum. Every
// name the template needs is derived here so the template itself stays
// purely structural.
type enumView struct {
	Name     string
	KindType string
	DocLines []string
	Variants []variantView
}

// variantView is the rendering model for one variant.
type variantView struct {
	Name        string
	KindConst   string
	Field       string
	Payload     string
	Constructor string

	Convs []convView

	CustomDisp bool
	DispHelper string
	DispBind   string
	DispSink   string
	DispExpr   string

	CustomDesc bool
	DescHelper string
	DescBind   string
	DescExpr   string

	CustomCause   bool
	DelegateCause bool
	CauseHelper   string
	CauseBind     string
	CauseExpr     string
}

// convView is the rendering model for one extra conversion.
type convView struct {
	Func   string
	Bind   string
	Source string
	Expr   string
}

func buildEnumView(d *decl.EnumDecl, n naming) enumView {
	doc := []string{fmt.Sprintf("%s is a generated error enumeration.", d.Name)}
	if len(d.Attrs) > 0 {
		doc = append(doc, "")
		for _, a := range d.Attrs {
			doc = append(doc, fmt.Sprintf("#[%s]", a))
		}
	}

	v := enumView{
		Name:     d.Name.String(),
		KindType: n.kindType(),
		DocLines: doc,
	}
	for _, dv := range d.Variants {
		vv := variantView{
			Name:        dv.Name.String(),
			KindConst:   n.kindConst(dv.Name),
			Field:       n.field(dv.Name),
			Payload:     dv.Payload.String(),
			Constructor: n.constructor(dv.Name),
		}
		for _, c := range dv.Clauses.Conversions {
			vv.Convs = append(vv.Convs, convView{
				Func:   n.conversion(c),
				Bind:   c.Bind.String(),
				Source: c.Source.String(),
				Expr:   c.Expr,
			})
		}
		if dv.Clauses.Display.Kind == decl.DisplayCustom {
			vv.CustomDisp = true
			vv.DispHelper = n.helper("Disp", dv.Name)
			vv.DispBind = dv.Clauses.Display.Bind.String()
			vv.DispSink = dv.Clauses.Display.Sink.String()
			vv.DispExpr = dv.Clauses.Display.Expr
		}
		if dv.Clauses.Desc.Kind == decl.DescCustom {
			vv.CustomDesc = true
			vv.DescHelper = n.helper("Desc", dv.Name)
			vv.DescBind = dv.Clauses.Desc.Bind.String()
			vv.DescExpr = dv.Clauses.Desc.Expr
		}
		switch dv.Clauses.Cause.Kind {
		case decl.CauseCustom:
			vv.CustomCause = true
			vv.CauseHelper = n.helper("Cause", dv.Name)
			vv.CauseBind = dv.Clauses.Cause.Bind.String()
			vv.CauseExpr = dv.Clauses.Cause.Expr
		case decl.CauseDelegate:
			vv.DelegateCause = true
		}
		v.Variants = append(v.Variants, vv)
	}
	return v
}
