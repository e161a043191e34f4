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
	"strings"
)

// Pos is a 1-based line/column position inside a definition source.
// Columns count bytes, which is exact for the ASCII grammar tokens and close
// enough for anything the author put inside an expression.
type Pos struct {
	Line int
	Col  int
}

// String renders the position as "line:col", the shape editors jump to.
func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// lexer is a minimal rune-level scanner over a definition source.
//
// It produces only what the grammar needs: identifiers, single punctuation
// bytes, and raw balanced spans (for type expressions and clause
// expressions, which are spliced into generated code verbatim and therefore
// must not be tokenized).
type lexer struct {
	src  string
	off  int
	line int
	col  int
}

func newLexer(src string) *lexer {
	return &lexer{src: src, line: 1, col: 1}
}

// pos returns the current position.
func (l *lexer) pos() Pos {
	return Pos{Line: l.line, Col: l.col}
}

// mark/reset implement cheap single-token lookahead for the few places the
// grammar needs it (e.g. "is the next word `pub`, `enum` or an attribute?").
type mark struct {
	off, line, col int
}

func (l *lexer) mark() mark {
	return mark{l.off, l.line, l.col}
}

func (l *lexer) reset(m mark) {
	l.off, l.line, l.col = m.off, m.line, m.col
}

// advance consumes one byte, maintaining line/col.
func (l *lexer) advance() byte {
	b := l.src[l.off]
	l.off++
	if b == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return b
}

// eof reports whether all input (after skipping layout) is consumed.
func (l *lexer) eof() bool {
	l.skip()
	return l.off >= len(l.src)
}

// peek returns the next significant byte without consuming it, or 0 at EOF.
func (l *lexer) peek() byte {
	l.skip()
	if l.off >= len(l.src) {
		return 0
	}
	return l.src[l.off]
}

// skip consumes whitespace and Go-style comments (both // and /* */).
// Comments are layout: the grammar never sees them, and they are not copied
// into generated code.
func (l *lexer) skip() {
	for l.off < len(l.src) {
		b := l.src[l.off]
		switch {
		case b == ' ' || b == '\t' || b == '\r' || b == '\n':
			l.advance()
		case b == '/' && l.off+1 < len(l.src) && l.src[l.off+1] == '/':
			for l.off < len(l.src) && l.src[l.off] != '\n' {
				l.advance()
			}
		case b == '/' && l.off+1 < len(l.src) && l.src[l.off+1] == '*':
			l.advance()
			l.advance()
			for l.off < len(l.src) {
				if l.src[l.off] == '*' && l.off+1 < len(l.src) && l.src[l.off+1] == '/' {
					l.advance()
					l.advance()
					break
				}
				l.advance()
			}
		default:
			return
		}
	}
}

// accept consumes the next significant byte if it equals b.
func (l *lexer) accept(b byte) bool {
	if l.peek() != b {
		return false
	}
	l.advance()
	return true
}

// expect consumes the next significant byte, failing with position context
// when it is not the wanted one.
func (l *lexer) expect(b byte) error {
	l.skip()
	p := l.pos()
	if l.off >= len(l.src) {
		return fmt.Errorf("parser: %s: expected %q: %w", p, string(b), ErrUnexpectedEOF)
	}
	if got := l.src[l.off]; got != b {
		return fmt.Errorf("parser: %s: expected %q, found %q: %w", p, string(b), string(got), ErrMalformed)
	}
	l.advance()
	return nil
}

// word consumes an identifier-shaped word ([A-Za-z_][A-Za-z0-9_]*) and
// returns it with its starting position.
func (l *lexer) word() (string, Pos, error) {
	l.skip()
	p := l.pos()
	if l.off >= len(l.src) {
		return "", p, fmt.Errorf("parser: %s: expected identifier: %w", p, ErrUnexpectedEOF)
	}
	start := l.off
	b := l.src[l.off]
	if !isWordStart(b) {
		return "", p, fmt.Errorf("parser: %s: expected identifier, found %q: %w", p, string(b), ErrMalformed)
	}
	for l.off < len(l.src) && isWordPart(l.src[l.off]) {
		l.advance()
	}
	return l.src[start:l.off], p, nil
}

// peekWord returns the next identifier-shaped word without consuming it.
// Returns "" when the next significant byte does not start a word.
func (l *lexer) peekWord() string {
	m := l.mark()
	defer l.reset(m)
	w, _, err := l.word()
	if err != nil {
		return ""
	}
	return w
}

// span captures a raw source span up to (but not including) the first stop
// byte found at delimiter depth zero, then consumes that stop byte. The stop
// byte actually found is returned so callers can distinguish alternatives
// (e.g. a conversion argument ends at ':' while a payload type ends at ')').
//
// The capture is delimiter- and literal-aware: stop bytes inside (), [], {}
// or string/rune literals do not terminate the span. This is what lets type
// expressions and clause expressions stay completely opaque. Comments are
// layout even here: each one is dropped from the captured text (a single
// space stands in for it, matching Go's own treatment), so a stop byte
// inside a comment neither terminates the span nor reaches generated code.
func (l *lexer) span(stops string) (string, byte, error) {
	l.skip()
	p := l.pos()
	var text strings.Builder
	depth := 0
	for l.off < len(l.src) {
		b := l.src[l.off]

		// Literals are opaque: consume them whole, keep them verbatim.
		switch b {
		case '"', '\'':
			start := l.off
			if err := l.literal(b); err != nil {
				return "", 0, err
			}
			text.WriteString(l.src[start:l.off])
			continue
		case '`':
			start := l.off
			if err := l.rawLiteral(); err != nil {
				return "", 0, err
			}
			text.WriteString(l.src[start:l.off])
			continue
		case '/':
			if l.off+1 < len(l.src) && (l.src[l.off+1] == '/' || l.src[l.off+1] == '*') {
				l.skip()
				if s := text.String(); s != "" && !isSpace(s[len(s)-1]) {
					text.WriteByte(' ')
				}
				continue
			}
		}

		if depth == 0 && strings.IndexByte(stops, b) >= 0 {
			l.advance()
			return strings.TrimSpace(text.String()), b, nil
		}

		switch b {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
			if depth < 0 {
				return "", 0, fmt.Errorf("parser: %s: unbalanced %q: %w", l.pos(), string(b), ErrMalformed)
			}
		}
		text.WriteByte(l.advance())
	}
	return "", 0, fmt.Errorf("parser: %s: unterminated span (expected one of %q): %w", p, stops, ErrUnexpectedEOF)
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// literal consumes a quoted literal delimited by q ('"' or '\''), honoring
// backslash escapes.
func (l *lexer) literal(q byte) error {
	p := l.pos()
	l.advance() // opening quote
	for l.off < len(l.src) {
		b := l.advance()
		switch b {
		case '\\':
			if l.off < len(l.src) {
				l.advance()
			}
		case q:
			return nil
		}
	}
	return fmt.Errorf("parser: %s: unterminated literal: %w", p, ErrUnexpectedEOF)
}

// rawLiteral consumes a backquoted raw string literal.
func (l *lexer) rawLiteral() error {
	p := l.pos()
	l.advance() // opening backquote
	for l.off < len(l.src) {
		if l.advance() == '`' {
			return nil
		}
	}
	return fmt.Errorf("parser: %s: unterminated raw literal: %w", p, ErrUnexpectedEOF)
}

func isWordStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isWordPart(b byte) bool {
	return isWordStart(b) || (b >= '0' && b <= '9')
}
