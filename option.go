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

package serrors

import (
	"dirpx.dev/serrors/opctx"
	"dirpx.dev/serrors/reason"
)

// Option is a functional option for constructing an Error. It always
// takes an *Error and returns a (possibly new) *Error.
type Option[R reason.Domain] func(*Error[R]) *Error[R]

// WithDetailOption sets the detail text on the error being constructed.
// Intended to be used with New(...).
func WithDetailOption[R reason.Domain](detail string) Option[R] {
	return func(e *Error[R]) *Error[R] {
		return e.WithDetail(detail)
	}
}

// WithPositionOption sets the position marker on construction.
// Intended to be used with New(...).
func WithPositionOption[R reason.Domain](pos string) Option[R] {
	return func(e *Error[R]) *Error[R] {
		return e.WithPosition(pos)
	}
}

// WithFrameOption appends an initial context snapshot on construction.
// Intended to be used with New(...).
func WithFrameOption[R reason.Domain](ctx *opctx.Context) Option[R] {
	return func(e *Error[R]) *Error[R] {
		return e.WithFrame(ctx)
	}
}
