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
	"encoding"
	"errors"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Ident is the canonical, validated representation of a Go identifier as it
// appears in an error-type definition: the enum name, a variant name, or a
// clause binding name.
//
// It is defined as a separate type (not just string) so that other packages
// can explicitly declare which values they expect and to avoid accidental
// mixing of raw definition-file input with validated values.
//
// IMPORTANT: Empty identifiers ("") are NOT allowed anywhere in a definition.
type Ident string

// MinLength and MaxLength define the allowed length range for an identifier.
//
// We keep these values as separate constants so they can be referenced in
// validation errors, tests, or in other packages that want to mirror the same
// constraints.
const (
	// MinLength is the minimum length for a valid identifier.
	// A single character is fine: binding names like "e" or "s" are idiomatic
	// in clause expressions.
	MinLength = 1

	// MaxLength is the maximum length for a valid identifier.
	// 64 characters is enough for descriptive variant names like
	// "UpstreamHandshakeTimeout" while still preventing accidental
	// unbounded strings.
	MaxLength = 64
)

const (
	// identFmt is the canonical regular expression used to validate
	// identifiers.
	//
	// Pattern breakdown:
	//
	//	^ - start of string;
	//	[A-Za-z_] - first character must be an ASCII letter or underscore;
	//	[A-Za-z0-9_]{0,63} - the remaining characters may be letters, digits
	//	                     or underscore; the quantifier {0,63} makes the
	//	                     total length 1..64 characters;
	//	$ - end of string;
	//
	// IMPORTANT: the numeric range {0,63} is tied to MinLength / MaxLength
	// above. If you change MinLength / MaxLength, adjust this pattern as well.
	//
	// The generator is ASCII-only on purpose. Go itself permits Unicode
	// identifiers, but every name we accept is spliced into several generated
	// names (constructors, kind constants, accessors), and ASCII keeps those
	// derived names predictable.
	identFmt = `^[A-Za-z_][A-Za-z0-9_]{0,63}$`
)

var (
	// identRe is the compiled regular expression used to validate that a
	// string is a canonical identifier.
	//
	// We precompile it so that repeated validations (one per variant, per
	// clause binding) do not pay the compilation cost over and over again.
	identRe = regexp.MustCompile(identFmt)
)

var (
	// ErrIdentInvalid is returned when a value cannot be parsed or validated
	// as an identifier.
	ErrIdentInvalid = errors.New("errtype: invalid identifier")

	// ErrIdentReserved is returned when a value is a well-formed identifier
	// but collides with a Go keyword and therefore cannot appear in
	// generated code.
	ErrIdentReserved = errors.New("errtype: identifier is a Go keyword")
)

// Ensure Ident implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or report structs.
var (
	_ encoding.TextMarshaler   = (*Ident)(nil)
	_ encoding.TextUnmarshaler = (*Ident)(nil)
)

// goKeywords is the full Go keyword set. A definition that names a variant
// "func" or binds a clause argument to "range" would produce generated code
// that cannot compile, so we reject it up front with a clear error.
var goKeywords = map[string]struct{}{
	"break": {}, "case": {}, "chan": {}, "const": {}, "continue": {},
	"default": {}, "defer": {}, "else": {}, "fallthrough": {}, "for": {},
	"func": {}, "go": {}, "goto": {}, "if": {}, "import": {},
	"interface": {}, "map": {}, "package": {}, "range": {}, "return": {},
	"select": {}, "struct": {}, "switch": {}, "type": {}, "var": {},
}

// Parse takes a raw string from a definition file, trims it and validates it.
// On success it returns a canonical Ident value.
func Parse(s string) (Ident, error) {
	s = strings.TrimSpace(s)
	if err := validate(s); err != nil {
		return "", err
	}
	return Ident(s), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring fixed identifiers in tests and package-level var blocks.
func MustParse(s string) Ident {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// Validate checks whether the provided Ident is valid.
// The empty identifier ("") is considered invalid.
func Validate(id Ident) error {
	return validate(string(id))
}

// String returns the canonical string representation of the identifier.
func (id Ident) String() string {
	return string(id)
}

// Exported reports whether the identifier starts with an upper-case letter,
// i.e. whether it would be exported when emitted into generated Go code.
//
// Identifiers starting with '_' are considered unexported.
func (id Ident) Exported() bool {
	r, _ := utf8.DecodeRuneInString(string(id))
	return unicode.IsUpper(r)
}

// Export returns the identifier with its first letter upper-cased. This is
// used when an identifier becomes an interior fragment of a generated name
// (e.g. variant "io" inside constructor "NewAppErrorIo").
func (id Ident) Export() string {
	return Ident(capitalize(string(id))).String()
}

// Unexport returns the identifier with its first letter lower-cased. Used
// when the enum itself is unexported and every derived name must follow.
func (id Ident) Unexport() string {
	s := string(id)
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}

// MarshalText implements encoding.TextMarshaler.
//
// It always returns the canonical string representation.
func (id Ident) MarshalText() ([]byte, error) {
	if err := Validate(id); err != nil {
		return nil, err
	}
	return []byte(id), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It trims and validates the provided text before assigning.
func (id *Ident) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// capitalize upper-cases the first rune of s.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// validate is a helper that checks whether the provided string is a valid,
// non-reserved identifier.
func validate(s string) error {
	if !identRe.MatchString(s) {
		return ErrIdentInvalid
	}
	if _, reserved := goKeywords[s]; reserved {
		return ErrIdentReserved
	}
	return nil
}
