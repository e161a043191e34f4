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

// Package ident provides parsing and validation for identifiers that appear
// in error-type definitions.
//
// An "identifier" is any name the definition author chooses: the enum name,
// a variant name, or a clause binding name. Identifiers are meant to be:
//
//   - valid Go identifiers (ASCII letters, digits, underscore);
//   - not Go keywords;
//   - short enough to splice into generated names.
//
// IMPORTANT: Empty identifiers ("") are NOT allowed. Every name position in
// a definition MUST carry a non-empty identifier.
//
// This package defines the canonical representation and the functions that
// convert raw definition-file input to that canonical form.
package ident
