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
	"fmt"
	"strings"

	"dirpx.dev/serrors/apis"
	"dirpx.dev/serrors/code"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot.
//
// The resulting apis.Mapper is fully thread-safe and designed for long-lived reuse.
// Each build creates a self-contained mapper instance — no shared references
// to global state or user-provided structures remain.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (HTTP & gRPC).
//  2. Apply user-provided options (defaults, overrides, fallbacks).
//  3. Freeze all maps into immutable copies (fresh allocations).
func New(opts ...Option) apis.Mapper {
	// (0) Start with an empty builder.
	// We do not assume any pre-seeded state.
	b := newBuilder()

	// (1) Seed the builder with package-level defaults.
	// Copy into builder-owned maps to prevent external mutation.
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		b.grpcDefaults[k] = v
	}

	// (2) Apply user-supplied options (defaults, overrides, fallbacks).
	for _, opt := range opts {
		opt(b)
	}

	// (3) Freeze everything into a read-only snapshot.
	// Each map is freshly allocated.
	return &mapper{
		httpDefault:  freezeHTTP(b.httpDefaults),
		grpcDefault:  freezeGRPC(b.grpcDefaults),
		httpOverride: freezeHTTP(b.httpOverride),
		grpcOverride: freezeGRPC(b.grpcOverride),

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}
}

// mapper is an immutable mapper implementation that combines per-code
// defaults and per-code exact overrides. Lookups are O(1) and safe for
// concurrent use once constructed.
type mapper struct {
	// httpDefault holds the base HTTP status for a given error code.
	// Used when no override is present.
	httpDefault map[code.Code]int

	// grpcDefault holds the base gRPC status for a given error code.
	grpcDefault map[code.Code]codes.Code

	// httpOverride holds explicit HTTP statuses for specific codes.
	// These take precedence over defaults.
	httpOverride map[code.Code]int

	// grpcOverride holds explicit gRPC statuses for specific codes.
	grpcOverride map[code.Code]codes.Code

	// fallbackHTTP is used when there is no mapping at all for a code.
	// Typically http.StatusInternalServerError.
	fallbackHTTP int

	// fallbackGRPC is used when there is no mapping at all for a code.
	// Typically codes.Internal.
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given code.
//
// Resolution order (highest to lowest):
//  1. exact per-code override (explicitly registered);
//  2. per-code default (library or user overridden);
//  3. ultimate fallback (500 unless reconfigured).
func (m *mapper) HTTPStatus(c code.Code) int {
	if v, ok := m.httpOverride[c]; ok {
		return v
	}
	if v, ok := m.httpDefault[c]; ok {
		return v
	}
	return m.fallbackHTTP
}

// GRPCStatus resolves a gRPC status for the given code.
// Uses the same precedence as HTTPStatus, but returns gRPC codes.
func (m *mapper) GRPCStatus(c code.Code) codes.Code {
	if v, ok := m.grpcOverride[c]; ok {
		return v
	}
	if v, ok := m.grpcDefault[c]; ok {
		return v
	}
	return m.fallbackGRPC
}

// Status resolves both HTTP and gRPC for the same code.
// This keeps HTTP/gRPC decisions consistent for a single logical error.
func (m *mapper) Status(c code.Code) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(c),
		GRPC: m.GRPCStatus(c),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a particular code.
//
// This is primarily a diagnostic tool: it shows which tier matched
// (override, default, or fallback) for each transport.
//
// Example output:
//
//	code=not_found(102)
//	http: source=default -> 404
//	grpc: source=default -> NOTFOUND(5)
func (m *mapper) Explain(c code.Code) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "code=%s(%d)\n", c, int(c))
	_, _ = fmt.Fprintln(&b, m.explainHTTP(c))
	_, _ = fmt.Fprintln(&b, m.explainGRPC(c))
	return strings.TrimSuffix(b.String(), "\n")
}

// explainHTTP returns a formatted line describing how the HTTP status was
// chosen: override, default, or fallback.
func (m *mapper) explainHTTP(c code.Code) string {
	if v, ok := m.httpOverride[c]; ok {
		return fmt.Sprintf("http: source=override -> %d", v)
	}
	if v, ok := m.httpDefault[c]; ok {
		return fmt.Sprintf("http: source=default -> %d", v)
	}
	return fmt.Sprintf("http: source=fallback -> %d", m.fallbackHTTP)
}

// explainGRPC returns a formatted line describing how the gRPC status was
// chosen: override, default, or fallback.
func (m *mapper) explainGRPC(c code.Code) string {
	if v, ok := m.grpcOverride[c]; ok {
		return fmt.Sprintf("grpc: source=override -> %s(%d)", strings.ToUpper(v.String()), int(v))
	}
	if v, ok := m.grpcDefault[c]; ok {
		return fmt.Sprintf("grpc: source=default -> %s(%d)", strings.ToUpper(v.String()), int(v))
	}
	return fmt.Sprintf("grpc: source=fallback -> %s(%d)", strings.ToUpper(m.fallbackGRPC.String()), int(m.fallbackGRPC))
}
