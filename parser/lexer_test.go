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
	"testing"
)

func TestSpan(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		stops    string
		want     string
		wantStop byte
	}{
		{
			name:     "plain",
			src:      `"boom!";`,
			stops:    ";",
			want:     `"boom!"`,
			wantStop: ';',
		},
		{
			name:     "stop inside string literal ignored",
			src:      `"a;b" + s;`,
			stops:    ";",
			want:     `"a;b" + s`,
			wantStop: ';',
		},
		{
			name:     "stop inside nested parens ignored",
			src:      `fmt.Sprintf("%v; %v", a, b);`,
			stops:    ";",
			want:     `fmt.Sprintf("%v; %v", a, b)`,
			wantStop: ';',
		},
		{
			name:     "close paren at depth zero",
			src:      `map[string]int)`,
			stops:    ")",
			want:     `map[string]int`,
			wantStop: ')',
		},
		{
			name:     "alternative stops report which fired",
			src:      `b: []byte`,
			stops:    ":)",
			want:     `b`,
			wantStop: ':',
		},
		{
			name:     "escaped quote inside literal",
			src:      `"say \";\"" ;`,
			stops:    ";",
			want:     `"say \";\""`,
			wantStop: ';',
		},
		{
			name:     "raw literal",
			src:      "`a;b`;",
			stops:    ";",
			want:     "`a;b`",
			wantStop: ';',
		},
		{
			name:     "surrounding whitespace trimmed",
			src:      "   x + y  ;",
			stops:    ";",
			want:     "x + y",
			wantStop: ';',
		},
		{
			name:     "line comment dropped from capture",
			src:      "s // note\n + t;",
			stops:    ";",
			want:     "s + t",
			wantStop: ';',
		},
		{
			name:     "block comment dropped from capture",
			src:      `a/*glue*/b;`,
			stops:    ";",
			want:     "a b",
			wantStop: ';',
		},
		{
			name:     "stop inside comment ignored and dropped",
			src:      "s /* ; */ + t;",
			stops:    ";",
			want:     "s + t",
			wantStop: ';',
		},
		{
			name:     "comment slashes inside string kept",
			src:      `"http://x" + s;`,
			stops:    ";",
			want:     `"http://x" + s`,
			wantStop: ';',
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newLexer(tt.src)
			got, stop, err := l.span(tt.stops)
			if err != nil {
				t.Fatalf("span: %v", err)
			}
			if got != tt.want || stop != tt.wantStop {
				t.Errorf("span = (%q, %q), want (%q, %q)", got, string(stop), tt.want, string(tt.wantStop))
			}
		})
	}
}

func TestSpanErrors(t *testing.T) {
	if _, _, err := newLexer(`fmt.Sprintf("x"`).span(";"); !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("unterminated span error = %v, want ErrUnexpectedEOF", err)
	}
	if _, _, err := newLexer(`a)b;`).span(";"); !errors.Is(err, ErrMalformed) {
		t.Errorf("unbalanced span error = %v, want ErrMalformed", err)
	}
	if _, _, err := newLexer(`"never closed`).span(";"); !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("unterminated literal error = %v, want ErrUnexpectedEOF", err)
	}
}

func TestWordAndPos(t *testing.T) {
	l := newLexer("  pub\n  enum")
	w, p, err := l.word()
	if err != nil {
		t.Fatalf("word: %v", err)
	}
	if w != "pub" || p.String() != "1:3" {
		t.Errorf("word = (%q, %s), want (pub, 1:3)", w, p)
	}
	w, p, _ = l.word()
	if w != "enum" || p.String() != "2:3" {
		t.Errorf("word = (%q, %s), want (enum, 2:3)", w, p)
	}
}
