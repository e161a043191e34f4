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

// Package parser turns definition-file source into validated decl
// descriptors.
//
// # Grammar
//
// A definition source is an optional package/import header followed by one
// or more invocations:
//
//	package apperr
//	import (
//	    "io/fs"
//	)
//
//	error_type! {
//	    #[attribute]
//	    pub enum AppError {
//	        Io(*fs.PathError) {
//	            cause;
//	        },
//	        Simple(string) {
//	            desc (e) e;
//	            from (b: []byte) string(b);
//	        },
//	    }
//	}
//
// Inside a variant's braces, any subset of the clause forms may appear, in
// any order:
//
//	disp (bind, sink) expr;   // custom display; expr writes to sink
//	desc (bind) expr;         // custom description
//	desc ();                  // delegate to the payload's own description
//	cause (bind) expr;        // custom cause
//	cause;                    // delegate to the payload's own cause
//	from (bind: Source) expr; // extra conversion; repeatable
//
// # Resolution model
//
// Each variant's clause block is scanned head-first: read one clause,
// dispatch on its keyword, update exactly one slot of the accumulating
// clause set, continue with the remainder. Because dispatch is by keyword
// and the slots are independent, the written order of clauses can never
// change the resolution. When the block is exhausted, untouched slots
// receive their defaults.
//
// # Failure model
//
// Everything is a generation-time failure, reported with a line:col
// position and wrapping one of the package sentinels (ErrMalformed,
// ErrUnknownClause, ErrDuplicateClause, ErrUnexpectedEOF). A second disp,
// desc or cause clause on one variant is always an error — there is no
// "last wins". No partial result is ever returned.
//
// Type expressions and clause expressions are captured as opaque balanced
// spans and spliced into generated code verbatim; the parser checks their
// delimiters, not their meaning.
package parser
