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

// Package httpx renders generated error enums as google.rpc.Status JSON
// bodies over HTTP.
package httpx

import (
	"net/http"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/anypb"

	"dirpx.dev/errtype/apis"
)

// StatusFn maps a generated error to an HTTP status code. Implementations
// typically switch on apis.VariantError's VariantName.
type StatusFn func(err error) int

// Writer is a thin adapter that turns a generated error into an HTTP
// response carrying a google.rpc.Status body.
type Writer struct {
	// Domain is stamped into the ErrorInfo detail. May be empty.
	Domain string

	// Status resolves the HTTP status code for an error. When nil, every
	// error maps to http.StatusInternalServerError.
	Status StatusFn
}

// Write serializes err as a google.rpc.Status JSON body and writes it to
// the response writer. The ErrorInfo detail carries the variant name as
// reason plus description and cause metadata.
//
// No automatic redaction or filtering is performed here: whatever the error
// exposes is written as-is. Higher-level handlers should apply policies if
// needed.
func (w Writer) Write(rw http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	code := http.StatusInternalServerError
	if w.Status != nil {
		code = w.Status(err)
	}

	info := &errdetails.ErrorInfo{
		Domain:   w.Domain,
		Metadata: map[string]string{},
	}
	if ve, ok := err.(apis.VariantError); ok {
		info.Reason = ve.VariantName()
	}
	if de, ok := err.(apis.DescribedError); ok {
		info.Metadata["description"] = de.Description()
	}
	if ce, ok := err.(apis.CausedError); ok {
		if cause := ce.Cause(); cause != nil {
			info.Metadata["cause"] = cause.Error()
		}
	}

	body := &spb.Status{
		Code:    int32(code),
		Message: err.Error(),
	}
	if detail, aerr := anypb.New(info); aerr == nil {
		body.Details = append(body.Details, detail)
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(code)

	// IMPORTANT: protobuf JSON through protojson must be used to ensure
	// proper serialization of nested structures, field names (json_name),
	// and well-known types.
	b, _ := (protojson.MarshalOptions{
		EmitUnpopulated: false,
		UseProtoNames:   false, // use json_name
	}).Marshal(body)
	_, _ = rw.Write(b)
}
