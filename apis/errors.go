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

// Coder is implemented by reasons (and errors) that classify themselves
// with a stable numeric code.
//
// Codes are the primary value that boundary adapters use to decide which
// transport status to return. They are intended to be stable across
// versions: consumers persist and compare them, so an implementation
// must never change the code of an existing classification.
//
// The universal taxonomy's codes live in the 100–301 range; domain
// reasons may claim other ranges. Implementations without a meaningful
// code should not implement this interface at all — callers fall back
// to 500 for non-coding reasons.
type Coder interface {
	// ErrorCode returns the stable numeric classification code.
	ErrorCode() int
}

// Retryable is implemented by reasons that can answer whether automatic
// retry is generally sensible for them. Retry scheduling itself is a
// consumer concern; this interface only exposes the classification.
type Retryable interface {
	// IsRetryable reports whether retrying the failed operation may
	// plausibly succeed without any corrective action.
	IsRetryable() bool
}

// Severe is implemented by reasons that can answer whether they warrant
// operational alerting (as opposed to routine failure handling).
type Severe interface {
	// IsHighSeverity reports whether the failure is operationally urgent.
	IsHighSeverity() bool
}

// Viewer is implemented by errors that can produce a transport-friendly,
// self-contained representation of themselves.
//
// This is the bridge between the generic error container and non-generic
// boundary code: an HTTP or gRPC adapter receives a plain error, asserts
// Viewer, and works with the snapshot without knowing the domain reason
// type.
//
// The returned view MUST be safe to marshal and SHOULD contain all
// information that is safe to disclose to operators. Redaction for
// end-user exposure is the consumer's responsibility.
type Viewer interface {
	error

	// ErrorCode returns the stable numeric classification code, or 500
	// when the underlying reason does not define one.
	ErrorCode() int

	// ErrorView returns a transport-friendly snapshot of the error.
	ErrorView() ErrorView
}
