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

import (
	"dirpx.dev/serrors/code"
	grpccodes "google.golang.org/grpc/codes"
)

// Status is a resolved transport mapping for one error code.
type Status struct {
	// HTTP is the HTTP response status, e.g. http.StatusNotFound.
	HTTP int

	// GRPC is the gRPC status code, e.g. codes.NotFound.
	GRPC grpccodes.Code
}

// Mapper resolves stable error codes (see Coder) to transport statuses.
//
// Implementations must be safe for concurrent use; the expected pattern
// is build-once at startup, read-only afterwards.
type Mapper interface {
	// HTTPStatus returns the HTTP status for c.
	HTTPStatus(c code.Code) int

	// GRPCStatus returns the gRPC status code for c.
	GRPCStatus(c code.Code) grpccodes.Code

	// Status resolves both transports in one call.
	Status(c code.Code) Status

	// Explain returns a textual trace of how the statuses for c were
	// resolved. Intended for diagnostics and tests, not for clients.
	Explain(c code.Code) string
}
