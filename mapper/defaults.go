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

package mapper

import (
	"net/http"

	"dirpx.dev/serrors/code"
	"google.golang.org/grpc/codes"
)

// defaultHTTP defines the library's built-in HTTP mappings for the registered
// error codes. These are only defaults: callers are expected to override them
// at the boundary where HTTP is actually produced (REST gateway, HTTP handler,
// etc.) when their API contract differs.
//
// The intent is to stay close to common REST conventions while preserving the
// business/infrastructure split of the code taxonomy.
var defaultHTTP = map[code.Code]int{
	// 4xx — the request itself is the problem.
	code.Validation: http.StatusBadRequest,          // Malformed input, validation errors, contract violation.
	code.Business:   http.StatusUnprocessableEntity, // Well-formed request rejected by domain rules.
	code.NotFound:   http.StatusNotFound,            // Target resource does not exist (or is not visible to the caller).
	code.Permission: http.StatusForbidden,           // Caller is known but not allowed to perform the action.

	// 5xx — server / dependency / transient issues.
	code.Logic:    http.StatusInternalServerError, // Invariant violation inside the service; a bug, not an input.
	code.Data:     http.StatusInternalServerError, // Stored data corrupt or unparseable; nothing the client can fix.
	code.System:   http.StatusInternalServerError, // Host or runtime failure; do not expose internal details.
	code.Network:  http.StatusBadGateway,          // Connectivity failure visible to the client as a bad upstream.
	code.Resource: http.StatusServiceUnavailable,  // Bounded resource exhausted; service cannot accept more work.
	code.Timeout:  http.StatusGatewayTimeout,      // Operation exceeded its time budget.
	code.Config:   http.StatusInternalServerError, // Misconfiguration is a server-side defect from the client's view.
	code.External: http.StatusBadGateway,          // Third-party dependency failed in a way visible to the client.

	code.Unknown: http.StatusInternalServerError, // Unclassified failure.
}

// defaultGRPC defines the library's built-in gRPC mappings for the registered
// error codes. These values are chosen to align with canonical gRPC status
// codes while still preserving the higher-level meanings of the code taxonomy.
// As with HTTP, callers may override these at the transport edge if a
// different mapping policy is required.
var defaultGRPC = map[code.Code]codes.Code{
	// Input / domain rules.
	code.Validation: codes.InvalidArgument,    // Bad input shape or validation errors.
	code.Business:   codes.FailedPrecondition, // Domain state does not permit the operation.
	code.NotFound:   codes.NotFound,           // Resource does not exist (or not visible).
	code.Permission: codes.PermissionDenied,   // Caller lacks privileges for the action.

	// Server-side defects.
	code.Logic:  codes.Internal, // Invariant violation; a bug in the service.
	code.Data:   codes.DataLoss, // Stored data corrupt or unrecoverable.
	code.System: codes.Internal, // Host or runtime failure.
	code.Config: codes.Internal, // Misconfiguration surfaces as an internal defect.

	// Environment / transient.
	code.Network:  codes.Unavailable,       // Connectivity failure; retrying may help.
	code.Resource: codes.ResourceExhausted, // Pool, quota, or descriptor exhaustion.
	code.Timeout:  codes.DeadlineExceeded,  // Time budget exceeded.
	code.External: codes.Unavailable,       // Third-party dependency failed; retrying may help.

	code.Unknown: codes.Internal, // Unclassified failure.
}
