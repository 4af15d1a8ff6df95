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

// Package serrors is a structured error model for applications that need
// typed, classified errors propagated across module boundaries with full
// contextual traceability.
//
// An Error[R] carries a domain-typed reason, optional technical detail
// and source position, and an ordered stack of operation contexts
// accumulated as the error travels up the call stack. Domain reason
// types are ordinary application enums satisfying reason.Domain; the
// reason.Universal taxonomy bridges modules that do not know each
// other's types.
//
// Typical flow: a low-level failure is lifted into the model with Owe or
// one of the Owe* shortcuts, each layer attaches its opctx.Context on
// the way up, and a boundary (httpx, grpcx, or a log statement) renders
// or maps the final value. Every operation in this package is a total,
// infallible transformation — lifting, enriching, and converting errors
// never fails and never performs I/O.
//
// The subpackages divide the model the same way:
//
//   - reason  — universal taxonomy + domain reason capabilities
//   - code    — registry of the stable numeric error codes
//   - opctx   — operation contexts, scope guards, exit logging
//   - apis    — transport-facing contracts (views, mapper interface)
//   - mapper  — status mapping from error codes to HTTP/gRPC
//   - httpx   — HTTP response writer for structured errors
//   - grpcx   — gRPC interceptor projecting structured errors to statuses
//   - adapter — flat descriptor/view projections for logging and routing
package serrors
