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

// Package decl defines the generation-time descriptor model for error-type
// definitions: the enum declaration, its variants, and each variant's
// resolved clause set.
//
// These descriptors exist only between parsing and emission. They have no
// runtime representation; once the generated enum and its methods are
// emitted, the descriptors are discarded.
//
// The model is the shared surface between the parser (which produces it) and
// the emitter (which consumes it). Tools that want to build declarations
// programmatically, without the textual grammar, can construct these values
// directly and call Validate.
package decl
