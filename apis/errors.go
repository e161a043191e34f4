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

package apis

// DescribedError represents an error that provides a short, stable
// description in addition to its formatted message.
//
// For generated enums the description is resolved per variant: either
// delegated to the payload's own description or computed by the variant's
// desc clause. The description is meant to be a terse classification
// ("file missing", "kaboom!"), while Error() may carry formatted, per-value
// detail.
//
// Every enum the generator emits implements this interface. Payload types do
// NOT have to: dispatch happens inside the generated enum, so a plain string
// or a marker struct can be a payload without implementing anything.
type DescribedError interface {
	error

	// Description returns the variant-resolved description of the error.
	Description() string
}

// CausedError represents an error that exposes its underlying cause.
//
// While Go 1.13 introduced errors.Unwrap, having this interface lets
// adapters keep the contract explicit and work with causes without reaching
// for errors.As directly. Generated enums implement both: Cause carries the
// variant-resolved strategy and Unwrap forwards to it.
//
// Implementations SHOULD return the direct, immediate cause of the error. If
// there is no underlying cause, they SHOULD return nil.
type CausedError interface {
	error

	// Cause returns the underlying error that triggered this one, if any.
	// May return nil.
	Cause() error
}

// VariantError represents an error that knows which variant of its
// enumeration it currently holds.
//
// The variant name is stable and machine-usable; transport adapters use it
// as the reason marker when projecting a generated error onto a wire format.
type VariantError interface {
	error

	// VariantName returns the name of the variant the error currently
	// holds, exactly as declared in the definition (e.g. "Io", "Simple").
	VariantName() string
}
