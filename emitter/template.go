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

import "text/template"

// enumTmpl renders one enum from a fully precomputed enumView. The template
// is purely structural: all naming and strategy decisions were made in
// buildEnumView, and go/format cleans up the spacing afterwards.
var enumTmpl = template.Must(template.New("enum").Parse(enumTemplate))

const enumTemplate = `
// {{.KindType}} identifies which variant a {{.Name}} currently holds.
type {{.KindType}} uint8

const (
{{- range $i, $v := .Variants}}
	{{$v.KindConst}}{{if eq $i 0}} {{$.KindType}} = iota{{end}}
{{- end}}
)

// String returns the declared variant name.
func (k {{.KindType}}) String() string {
	switch k {
{{- range .Variants}}
	case {{.KindConst}}:
		return "{{.Name}}"
{{- end}}
	}
	return fmt.Sprintf("{{.KindType}}(%d)", uint8(k))
}

{{range .DocLines}}{{if .}}// {{.}}
{{else}}//
{{end}}{{end}}type {{.Name}} struct {
	kind {{.KindType}}
{{- range .Variants}}
	{{.Field}} {{.Payload}}
{{- end}}
}
{{range .Variants}}
// {{.Constructor}} wraps v in the {{.Name}} variant.
func {{.Constructor}}(v {{.Payload}}) *{{$.Name}} {
	return &{{$.Name}}{kind: {{.KindConst}}, {{.Field}}: v}
}
{{end}}
{{- range .Variants}}{{$v := .}}{{range .Convs}}
// {{.Func}} constructs a {{$.Name}} holding the {{$v.Name}} variant from {{.Source}}.
func {{.Func}}({{.Bind}} {{.Source}}) *{{$.Name}} {
	return {{$v.Constructor}}({{.Expr}})
}
{{end}}{{end}}
{{- range .Variants}}
// {{.Name}} returns the {{.Name}} payload when e currently holds it.
func (e *{{$.Name}}) {{.Name}}() ({{.Payload}}, bool) {
	if e.kind != {{.KindConst}} {
		var zero {{.Payload}}
		return zero, false
	}
	return e.{{.Field}}, true
}
{{end}}
// Kind reports which variant e currently holds.
func (e *{{.Name}}) Kind() {{.KindType}} { return e.kind }

// VariantName returns the declared name of the held variant.
func (e *{{.Name}}) VariantName() string { return e.kind.String() }

// Error implements the built-in error interface by dispatching on the held
// variant.
func (e *{{.Name}}) Error() string {
	switch e.kind {
{{- range .Variants}}
	case {{.KindConst}}:
{{- if .CustomDisp}}
		var buf strings.Builder
		{{.DispHelper}}(e.{{.Field}}, &buf)
		return buf.String()
{{- else}}
		return apis.Display(e.{{.Field}})
{{- end}}
{{- end}}
	}
	return ""
}

// Description returns the variant-resolved description of the error.
func (e *{{.Name}}) Description() string {
	switch e.kind {
{{- range .Variants}}
	case {{.KindConst}}:
{{- if .CustomDesc}}
		return {{.DescHelper}}(e.{{.Field}})
{{- else}}
		return apis.Describe(e.{{.Field}})
{{- end}}
{{- end}}
	}
	return ""
}

// Cause returns the variant-resolved underlying cause, if any.
func (e *{{.Name}}) Cause() error {
	switch e.kind {
{{- range .Variants}}
	case {{.KindConst}}:
{{- if .CustomCause}}
		return {{.CauseHelper}}(e.{{.Field}})
{{- else if .DelegateCause}}
		return apis.CauseOf(e.{{.Field}})
{{- else}}
		return nil
{{- end}}
{{- end}}
	}
	return nil
}

// Unwrap forwards to Cause so errors.Is and errors.As traverse the chain.
func (e *{{.Name}}) Unwrap() error { return e.Cause() }

// GoString renders the debug form: the held variant's name around the
// payload's %#v representation.
func (e *{{.Name}}) GoString() string {
	switch e.kind {
{{- range .Variants}}
	case {{.KindConst}}:
		return fmt.Sprintf("{{.Name}}(%#v)", e.{{.Field}})
{{- end}}
	}
	return "{{.Name}}(invalid)"
}
{{range .Variants}}{{$v := .}}
{{- if .CustomDisp}}
// {{.DispHelper}} carries the disp clause of the {{.Name}} variant.
func {{.DispHelper}}({{.DispBind}} {{.Payload}}, {{.DispSink}} io.Writer) {
	{{.DispExpr}}
}
{{end}}
{{- if .CustomDesc}}
// {{.DescHelper}} carries the desc clause of the {{.Name}} variant.
func {{.DescHelper}}({{.DescBind}} {{.Payload}}) string {
	return {{.DescExpr}}
}
{{end}}
{{- if .CustomCause}}
// {{.CauseHelper}} carries the cause clause of the {{.Name}} variant.
func {{.CauseHelper}}({{.CauseBind}} {{.Payload}}) error {
	return {{.CauseExpr}}
}
{{end}}
{{- end}}
var (
	_ error               = (*{{.Name}})(nil)
	_ apis.DescribedError = (*{{.Name}})(nil)
	_ apis.CausedError    = (*{{.Name}})(nil)
	_ apis.VariantError   = (*{{.Name}})(nil)
	_ fmt.GoStringer      = (*{{.Name}})(nil)
)
`
