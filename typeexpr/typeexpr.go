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

package typeexpr

import (
	"errors"
	"strings"
	"unicode"
)

// TypeExpr is the canonical, validated representation of a Go type expression
// as written in a definition file: a variant payload type or a conversion
// source type.
//
// The expression is deliberately opaque. The generator does not parse types;
// it validates only the properties it relies on (single expression, balanced
// delimiters) and otherwise splices the text verbatim into generated code.
// Whether the type actually exists is decided later, by the Go compiler, at
// the generated file's build site.
//
// Example valid expressions:
//
//   - "error"
//   - "string"
//   - "*fs.PathError"
//   - "[]byte"
//   - "map[string]int"
type TypeExpr string

// MaxLength is the maximum length for a type expression.
//
// 256 characters is enough even for deeply nested generic types while still
// preventing accidental unbounded strings (e.g. a missing close paren
// swallowing the rest of the file).
const MaxLength = 256

var (
	// ErrTypeEmpty is returned when a type position contains no expression.
	ErrTypeEmpty = errors.New("errtype: empty type expression")

	// ErrTypeUnbalanced is returned when a type expression has unbalanced
	// parentheses, brackets or braces.
	ErrTypeUnbalanced = errors.New("errtype: unbalanced type expression")

	// ErrTypeNotSingle is returned when a type position contains more than a
	// single type expression (a top-level comma or semicolon). Multi-field
	// and named-field payloads are not representable by the definition
	// grammar.
	ErrTypeNotSingle = errors.New("errtype: payload must be a single type")

	// ErrTypeTooLong is returned when a type expression exceeds MaxLength.
	ErrTypeTooLong = errors.New("errtype: type expression too long")
)

// Parse takes a raw string from a definition file, normalizes it and
// validates it. On success it returns a canonical TypeExpr value.
func Parse(s string) (TypeExpr, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return "", err
	}
	return TypeExpr(s), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring fixed expressions in tests.
func MustParse(s string) TypeExpr {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Normalize takes an arbitrary string and brings it closer to the canonical
// type-expression form.
//
// We do *very* conservative transformations:
//
//   - trim surrounding whitespace;
//   - collapse interior whitespace runs (including newlines) to one space;
//
// It does NOT guarantee that the result is valid — callers should still call
// Validate/Parse after normalization.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range strings.TrimSpace(s) {
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if space {
			b.WriteByte(' ')
			space = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Validate checks whether the provided TypeExpr is valid.
// The empty expression ("") is considered invalid.
func Validate(t TypeExpr) error {
	return validate(string(t))
}

// String returns the canonical string representation of the expression.
func (t TypeExpr) String() string {
	return string(t)
}

// Mangle derives a deterministic, exported Go name fragment from the type
// expression. It is used to name the extra conversion constructors: a
// conversion "from (s: fmt.Stringer) ..." on enum AppError becomes
// "AppErrorFromFmtStringer".
//
// Mangling rules:
//
//   - identifier words are title-cased and concatenated: "fmt.Stringer" ->
//     "FmtStringer", "*os.PathError" -> "PtrOsPathError";
//   - "*" contributes "Ptr", "[]" contributes "Slice", "[N]" contributes
//     "Array" (the length digits follow as a word);
//   - "[]byte" and "[]rune" are special-cased to "Bytes" / "Runes" because
//     those are the names a human would pick;
//   - all other punctuation only separates words.
//
// Two distinct source types can in principle mangle to the same fragment
// (e.g. "a.B" and "A.b"); the collision is caught by the Go compiler as a
// duplicate function declaration in the generated file.
func (t TypeExpr) Mangle() string {
	switch t {
	case "[]byte":
		return "Bytes"
	case "[]rune":
		return "Runes"
	}

	var b strings.Builder
	var word []rune
	flush := func() {
		if len(word) == 0 {
			return
		}
		word[0] = unicode.ToUpper(word[0])
		b.WriteString(string(word))
		word = word[:0]
	}

	s := []rune(string(t))
	for i := 0; i < len(s); i++ {
		r := s[i]
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			word = append(word, r)
		case r == '*':
			flush()
			b.WriteString("Ptr")
		case r == '[':
			flush()
			if i+1 < len(s) && s[i+1] == ']' {
				b.WriteString("Slice")
				i++
			} else {
				b.WriteString("Array")
			}
		default:
			// Separator: '.', ']', '(', ')', space, etc.
			flush()
		}
	}
	flush()
	return b.String()
}

// validate is a helper that checks whether the provided string is a valid,
// single, balanced type expression.
func validate(s string) error {
	if s == "" {
		return ErrTypeEmpty
	}
	if len(s) > MaxLength {
		return ErrTypeTooLong
	}

	// Walk the expression tracking delimiter depth. A comma or semicolon at
	// depth zero means the author tried to write more than one type (tuples
	// and field lists are not representable).
	depth := 0
	for _, r := range s {
		switch r {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
			if depth < 0 {
				return ErrTypeUnbalanced
			}
		case ',', ';':
			if depth == 0 {
				return ErrTypeNotSingle
			}
		}
	}
	if depth != 0 {
		return ErrTypeUnbalanced
	}
	return nil
}
