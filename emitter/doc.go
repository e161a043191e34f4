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

// Package emitter renders validated decl descriptors into a complete,
// gofmt-clean Go source file.
//
// # What one enum expands to
//
// For an enum E with variants V(T):
//
//   - a kind type (EKind) with one constant per variant and a String method;
//   - the E struct: an internal kind tag plus one typed payload field per
//     variant;
//   - an unconditional bare-payload constructor per variant (NewEV), and
//     one extra constructor per "from" clause (EFrom<Type>);
//   - a match-back accessor per variant (V() (T, bool)), plus Kind and
//     VariantName;
//   - the display dispatch (Error), description dispatch (Description),
//     cause dispatch (Cause, mirrored by Unwrap) and debug form (GoString),
//     each a single switch over the kind tag;
//   - one small helper function per custom clause. The helpers take the
//     clause bindings as parameters, so the author's binding names can
//     never collide with anything in the dispatch methods, and unused
//     bindings are legal without underscore tricks.
//
// Variants whose slots resolved to defaults dispatch through the
// errtype/apis delegation helpers instead of a generated helper.
//
// # Determinism
//
// The same input always emits the same bytes: variants render in
// declaration order, conversions in clause order, and every generated name
// is a pure function of the declaration. Clause order within a variant
// never influences the output because the parser already resolved clauses
// into position-independent slots.
package emitter
