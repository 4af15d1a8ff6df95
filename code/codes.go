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

package code

// Business-category error codes (1xx)
//
// These describe failures whose root cause lies in the request itself or
// in the caller's view of domain state. Retrying without changing the
// input will not help.
const (
	// Validation indicates that the input violates a structural or semantic
	// rule: format, range, charset, or cross-field consistency.
	//
	// Transport mapping is framework-specific.
	// Can be mapped to an HTTP 400.
	Validation Code = 100

	// Business indicates a domain-rule violation: the request is
	// well-formed but the operation is not permitted by business logic
	// (insufficient balance, state machine violation, etc.).
	//
	// Transport mapping is framework-specific.
	// Can be mapped to an HTTP 422.
	Business Code = 101

	// NotFound indicates that the requested entity does not exist in the
	// current domain scope or storage.
	//
	// Transport mapping is framework-specific.
	// Can be mapped to an HTTP 404.
	NotFound Code = 102

	// Permission indicates that the caller is not allowed to perform the
	// target operation. Covers both missing and insufficient privileges.
	//
	// Transport mapping is framework-specific.
	// Can be mapped to an HTTP 403.
	Permission Code = 103

	// Logic indicates a programming error: an invariant the code itself
	// was supposed to uphold did not hold. These are bugs, not inputs.
	//
	// Transport mapping is framework-specific.
	// Can be mapped to an HTTP 500.
	Logic Code = 104
)

// Infrastructure-category error codes (2xx)
//
// These describe failures in the environment the service runs in.
// Most of them are transient and worth retrying.
const (
	// Data indicates corrupted, inconsistent, or unparseable stored data.
	// An optional position marker can pinpoint where parsing failed.
	//
	// Transport mapping is framework-specific.
	// Can be mapped to an HTTP 500.
	Data Code = 200

	// System indicates a host or runtime failure: out of memory, disk
	// errors, process limits.
	//
	// Transport mapping is framework-specific.
	// Can be mapped to an HTTP 500.
	System Code = 201

	// Network indicates a connectivity failure: refused connections,
	// partitions, DNS errors.
	//
	// Transport mapping is framework-specific.
	// Can be mapped to an HTTP 502.
	Network Code = 202

	// Resource indicates exhaustion of a bounded resource: pool saturation,
	// quota, file descriptors.
	//
	// Transport mapping is framework-specific.
	// Can be mapped to an HTTP 503.
	Resource Code = 203

	// Timeout indicates that the operation exceeded its time budget.
	//
	// Transport mapping is framework-specific.
	// Can be mapped to an HTTP 504.
	Timeout Code = 204
)

// Configuration / external-boundary error codes (3xx)
const (
	// Config indicates invalid, missing, or inconsistent configuration.
	// The reason taxonomy further distinguishes core, feature, and dynamic
	// configuration failures under this single code.
	//
	// Transport mapping is framework-specific.
	// Can be mapped to an HTTP 500.
	Config Code = 300

	// External indicates a failure reported by a third-party service or
	// dependency outside this system's control.
	//
	// Transport mapping is framework-specific.
	// Can be mapped to an HTTP 502.
	External Code = 301
)

// Unknown is the fallback code for errors that carry no classification.
// It deliberately reads like a generic server failure.
const Unknown Code = 500
