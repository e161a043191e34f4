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

import (
	"errors"
	"strings"
	"testing"

	"dirpx.dev/errtype/emitter"
	"dirpx.dev/errtype/parser"
)

const minimal = `error_type! {
    pub enum PingError {
        Timeout(string) {}
    }
}
`

func TestGenerate(t *testing.T) {
	out, err := Generate([]byte(minimal), WithPackage("ping"))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	s := string(out)
	if !strings.Contains(s, "package ping") {
		t.Error("output missing the configured package")
	}
	if !strings.Contains(s, "type PingError struct") {
		t.Error("output missing the generated type")
	}
	if !strings.HasPrefix(s, "// Code generated by errtype. DO NOT EDIT.") {
		t.Error("output missing the generated-code marker")
	}
}

// A package line in the source wins over the WithPackage fallback.
func TestGeneratePackagePrecedence(t *testing.T) {
	src := "package fromsource\n\n" + minimal
	out, err := Generate([]byte(src), WithPackage("fromoption"))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(string(out), "package fromsource") {
		t.Error("source package line did not win over the option")
	}
	if strings.Contains(string(out), "fromoption") {
		t.Error("option package leaked into output")
	}
}

func TestGenerateNoPackageAnywhere(t *testing.T) {
	_, err := Generate([]byte(minimal))
	if !errors.Is(err, emitter.ErrNoPackage) {
		t.Errorf("Generate error = %v, want emitter.ErrNoPackage", err)
	}
}

func TestGenerateParseFailureIsTotal(t *testing.T) {
	out, err := Generate([]byte(`error_type! { pub enum Broken {`), WithPackage("p"))
	if !errors.Is(err, parser.ErrUnexpectedEOF) {
		t.Errorf("Generate error = %v, want parser.ErrUnexpectedEOF", err)
	}
	if out != nil {
		t.Error("Generate returned partial output alongside an error")
	}
}

func TestGenerateHeader(t *testing.T) {
	out, err := Generate([]byte(minimal), WithPackage("p"), WithHeader("// Copyright 2025 Acme Inc."))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.HasPrefix(string(out), "// Copyright 2025 Acme Inc.") {
		t.Error("header not emitted at the top of the file")
	}
}
