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

package emitter

import (
	"errors"
	"fmt"

	"dirpx.dev/errtype/decl"
	"dirpx.dev/errtype/ident"
)

var (
	// ErrReservedVariant is returned when a variant name collides with a
	// method the generator always emits on the enum.
	ErrReservedVariant = errors.New("errtype: variant name collides with a generated method")

	// ErrReservedBinding is returned when a disp clause binds one of the
	// few names the generated display dispatch needs for itself.
	ErrReservedBinding = errors.New("errtype: binding name is reserved")

	// ErrFieldCollision is returned when two variant names would map to the
	// same payload field in the generated struct (names that differ only in
	// the case of their first letter), or when a variant would collide with
	// the internal kind field.
	ErrFieldCollision = errors.New("errtype: variant names collide in generated struct")
)

// reservedMethods are the methods every generated enum carries. A variant
// with one of these names would collide with them, because accessors are
// named after the variant verbatim.
var reservedMethods = map[string]struct{}{
	"Error": {}, "Description": {}, "Cause": {}, "Unwrap": {},
	"Kind": {}, "VariantName": {}, "GoString": {}, "String": {},
}

// naming derives every generated identifier for one enum. All derivations
// are pure string functions of the declaration, so emission is deterministic
// by construction.
//
// Visibility rule: the enum identifier's own casing propagates to every
// derived top-level name. "pub enum AppError" yields NewAppErrorIo and
// AppErrorFromBytes; "enum parseError" yields newParseErrorIo and
// parseErrorFromBytes.
type naming struct {
	enum ident.Ident
}

// kindType names the kind enumeration type, e.g. "AppErrorKind".
func (n naming) kindType() string {
	return n.enum.String() + "Kind"
}

// kindConst names one kind constant, e.g. "AppErrorKindIo".
func (n naming) kindConst(v ident.Ident) string {
	return n.kindType() + v.Export()
}

// field names the payload struct field for a variant: the variant name with
// its first letter lower-cased, e.g. "io", "simple".
func (n naming) field(v ident.Ident) string {
	return v.Unexport()
}

// constructor names the unconditional bare-payload constructor,
// e.g. "NewAppErrorIo".
func (n naming) constructor(v ident.Ident) string {
	return n.visibility("New" + n.enum.Export() + v.Export())
}

// conversion names one extra conversion constructor,
// e.g. "AppErrorFromBytes" for `from (b: []byte) ...`.
func (n naming) conversion(c decl.Conversion) string {
	return n.visibility(n.enum.Export() + "From" + c.Source.Mangle())
}

// helper names one per-variant strategy helper function. These are the
// internal dispatch targets (one per custom clause) and are always
// unexported; prefixing with the enum name keeps repeated definitions in
// the same package from colliding.
func (n naming) helper(role string, v ident.Ident) string {
	return n.enum.Unexport() + role + v.Export()
}

// visibility aligns a derived top-level name with the enum's own casing.
func (n naming) visibility(name string) string {
	if n.enum.Exported() {
		return name
	}
	return ident.Ident(name).Unexport()
}

// check validates the emit-level naming constraints that decl.Validate
// cannot know about: reserved method names, struct field collisions and
// reserved display bindings.
func (n naming) check(d *decl.EnumDecl) error {
	fields := make(map[string]ident.Ident, len(d.Variants)+1)
	fields["kind"] = "kind"
	for _, v := range d.Variants {
		if _, reserved := reservedMethods[v.Name.String()]; reserved {
			return fmt.Errorf("enum %s: variant %s: %w", d.Name, v.Name, ErrReservedVariant)
		}
		f := n.field(v.Name)
		if prev, dup := fields[f]; dup {
			return fmt.Errorf("enum %s: variants %s and %s: %w", d.Name, prev, v.Name, ErrFieldCollision)
		}
		fields[f] = v.Name
		if v.Clauses.Display.Kind == decl.DisplayCustom {
			if v.Clauses.Display.Bind == v.Clauses.Display.Sink {
				return fmt.Errorf("enum %s: variant %s: disp binds %q twice: %w",
					d.Name, v.Name, v.Clauses.Display.Bind, ErrReservedBinding)
			}
		}
	}
	return nil
}
