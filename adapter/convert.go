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

// Package adapter projects structured errors onto the portable apis shapes.
package adapter

import (
	"dirpx.dev/serrors/apis"
	"dirpx.dev/serrors/code"
)

// Describe collapses an error's optional capability interfaces (Coder,
// Retryable, Severe) into a flat ErrorDescriptor.
//
// The descriptor is intended for structured logging, tracing, or message bus
// propagation: callers that route or alert on errors get plain fields instead
// of repeating the type assertions themselves.
func Describe(err error) apis.ErrorDescriptor {
	if err == nil {
		return apis.ErrorDescriptor{}
	}
	d := apis.ErrorDescriptor{
		Code:    int(code.Unknown),
		Message: err.Error(),
	}
	if c, ok := err.(apis.Coder); ok {
		d.Code = c.ErrorCode()
	}
	if r, ok := err.(apis.Retryable); ok {
		d.Retryable = r.IsRetryable()
	}
	if s, ok := err.(apis.Severe); ok {
		d.HighSeverity = s.IsHighSeverity()
	}
	return d
}

// View extracts the serializable ErrorView from err.
//
// Errors that implement apis.Viewer expose their own view; anything else is
// projected as an unclassified failure carrying only its message. This
// function performs no automatic redaction or filtering; it exposes exactly
// what the error instance contains.
func View(err error) apis.ErrorView {
	if err == nil {
		return apis.ErrorView{}
	}
	if v, ok := err.(apis.Viewer); ok {
		return v.ErrorView()
	}
	return apis.ErrorView{
		Code:   int(code.Unknown),
		Detail: err.Error(),
	}
}
