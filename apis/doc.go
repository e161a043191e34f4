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

// Package apis defines the public Go-level contracts between generated
// error enums and the rest of the world.
//
// It plays two roles:
//
//  1. Capability interfaces (DescribedError, CausedError, VariantError)
//     that every generated enum implements. Transport adapters (errtype/grpcx,
//     errtype/httpx), loggers and business logic should target these
//     interfaces instead of concrete generated types.
//
//  2. Delegation helpers (Display, Describe, CauseOf) that generated code
//     calls when a variant's slot resolved to its default: "the payload's
//     own display / description / cause". Routing the defaults through this
//     package means payload types themselves never have to implement any
//     error contract — a plain string or a marker struct is a fine payload.
//
// This package must remain lightweight: generated files import it, so it
// only contains interfaces and small helpers with no heavy dependencies.
package apis
