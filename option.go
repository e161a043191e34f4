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

package errtype

// config carries the per-call generation settings assembled from Options.
type config struct {
	pkg    string
	header string
}

// Option is a functional option for a Generate call.
type Option func(*config)

// WithPackage sets the output package name used when the definition source
// has no leading "package" line. A package line in the source always wins:
// the definition is the authority on where its generated code lives.
func WithPackage(name string) Option {
	return func(c *config) {
		c.pkg = name
	}
}

// WithHeader sets a verbatim comment block (typically a license header)
// emitted at the very top of the generated file, above the
// "Code generated" marker. The text must already be valid Go comment text.
func WithHeader(header string) Option {
	return func(c *config) {
		c.header = header
	}
}
