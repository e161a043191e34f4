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

// Package typeexpr provides normalization and validation for the Go type
// expressions that appear in error-type definitions: variant payload types
// and conversion source types.
//
// A type expression is treated as an opaque, single Go type. The generator
// never interprets its structure; it only guarantees the properties the
// emitter depends on:
//
//   - the expression is non-empty;
//   - parentheses, brackets and braces are balanced;
//   - the expression is a single type (no top-level comma or semicolon),
//     because multi-field and named-field payloads are not representable.
//
// The package also derives deterministic name fragments from type
// expressions (see TypeExpr.Mangle), which the emitter uses to name the
// per-conversion constructor functions.
package typeexpr
