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

// Package grpcx projects generated error enums onto gRPC statuses.
//
// The adapter targets the errtype/apis capability interfaces, never a
// concrete generated type, so one Converter serves every enum the generator
// produced anywhere in the program.
package grpcx

import (
	"context"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/anypb"

	"dirpx.dev/errtype/apis"
)

// CodeFn maps a generated error to a gRPC status code. Implementations
// typically switch on apis.VariantError's VariantName.
type CodeFn func(err error) gcodes.Code

// Converter turns generated errors into gRPC statuses with a
// google.rpc.ErrorInfo detail.
type Converter struct {
	// Domain is the logical service domain stamped into the ErrorInfo
	// detail, e.g. "billing.dirpx.dev". May be empty.
	Domain string

	// Code resolves the status code for an error. When nil, every error
	// maps to codes.Unknown.
	Code CodeFn
}

// ToStatus converts err into a *status.Status whose ErrorInfo detail
// carries the variant name as the machine-readable reason and the
// variant-resolved description and cause as metadata.
//
// A nil err yields an OK status.
func (c Converter) ToStatus(err error) *gstatus.Status {
	if err == nil {
		return gstatus.New(gcodes.OK, "")
	}

	code := gcodes.Unknown
	if c.Code != nil {
		code = c.Code(err)
	}
	base := gstatus.New(code, err.Error())

	info := &errdetails.ErrorInfo{
		Domain:   c.Domain,
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

	// Try to attach the detail. If it fails — return base.
	if with, derr := base.WithDetails(info); derr == nil {
		return with
	}
	return base
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// generated errors escaping a handler into rich statuses via the Converter.
func UnaryServerInterceptor(c Converter) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		if _, ok := err.(apis.VariantError); !ok {
			// Not ours — return as-is.
			return nil, err
		}
		return nil, c.ToStatus(err).Err()
	}
}

// ExtractErrorInfo pulls the google.rpc.ErrorInfo detail out of a gRPC
// error, if present. Useful in tests and client code.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		switch v := d.(type) {
		case *errdetails.ErrorInfo:
			return v, true
		case *anypb.Any:
			info := new(errdetails.ErrorInfo)
			if uerr := v.UnmarshalTo(info); uerr == nil {
				return info, true
			}
		}
	}
	return nil, false
}
