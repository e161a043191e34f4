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

// Package errtype generates well-featured Go error types from concise,
// declarative definitions.
//
// A definition names an error enumeration, its variants and, per variant, an
// optional set of clauses customizing display, description, cause lookup and
// extra conversions:
//
//	package apperr
//	import (
//	    "io/fs"
//	)
//
//	error_type! {
//	    pub enum AppError {
//	        Io(*fs.PathError) {
//	            cause;
//	        },
//	        Simple(string) {
//	            desc (e) e;
//	            from (b: []byte) string(b);
//	        },
//	        Other(error) {
//	            desc (e) e.Error();
//	            cause (e) e;
//	        },
//	    }
//	}
//
// Generate expands this into the AppError type with constructors for every
// payload and conversion source, a display implementation (Error), a
// description/cause implementation (Description, Cause, Unwrap) and a debug
// form (GoString). See errtype/parser for the grammar and errtype/emitter
// for the exact expansion.
//
// Expansion is a pure function of the definition source: no I/O, no state,
// and any grammar violation fails the whole call with no partial output.
// The cmd/errtype command wraps this package for go:generate-style use.
package errtype

import (
	"dirpx.dev/errtype/emitter"
	"dirpx.dev/errtype/parser"
)

// Generate expands every error_type! invocation in src into one generated
// Go source file.
//
// Usage:
//
//	out, err := errtype.Generate(src,
//	    errtype.WithPackage("apperr"),
//	    errtype.WithHeader(license),
//	)
//
// The returned bytes are gofmt-formatted and carry the standard
// "Code generated" marker. It always returns either a complete file or an
// error — never a partial expansion.
func Generate(src []byte, opts ...Option) ([]byte, error) {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}

	f, err := parser.ParseFile(src)
	if err != nil {
		return nil, err
	}

	pkg := f.Package
	if pkg == "" {
		pkg = c.pkg
	}

	return emitter.Emit(emitter.Input{
		Package: pkg,
		Imports: f.Imports,
		Enums:   f.Enums,
		Header:  c.header,
	})
}
