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

// Package grpcx adapts structured errors to gRPC statuses.
package grpcx

import (
	"context"

	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/serrors/apis"
	"dirpx.dev/serrors/code"
)

// Extras holds optional request-scoped metadata that can be embedded into
// the error details. All fields are optional.
type Extras struct {
	// CorrelationID is a client/server correlation token (request ID, idempotency key).
	CorrelationID string

	// TraceID is the distributed trace identifier (W3C traceparent / OpenTelemetry).
	TraceID string

	// SpanID is the span identifier within the trace.
	SpanID string
}

// MetaFn extracts Extras from context and the failed call's error.
// It can return an empty Extras if nothing is available.
type MetaFn func(ctx context.Context, err error) Extras

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// structured errors (anything implementing apis.Viewer) into gRPC statuses
// with the error view attached as a google.protobuf.Struct detail.
//
// The provided apis.Mapper is used to map error codes into transport status
// codes.
//
// The optional MetaFn can be used to extract additional metadata from
// context to populate the detail payload. If nil, no extra metadata is added.
func UnaryServerInterceptor(m apis.Mapper, metaFn MetaFn) grpc.UnaryServerInterceptor {
	if metaFn == nil {
		metaFn = func(context.Context, error) Extras { return Extras{} }
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		v, ok := err.(apis.Viewer)
		if !ok {
			// Not ours — return as-is.
			return nil, err
		}

		view := v.ErrorView()
		st := m.Status(code.Code(view.Code))
		ex := metaFn(ctx, err)

		msg := view.Detail
		if msg == "" {
			msg = view.Reason
		}
		base := gstatus.New(st.GRPC, msg)

		// Try to attach the view as details. If it fails — return base.
		// WithDetails wraps the message into an Any itself.
		if detail, derr := structpb.NewStruct(detailFields(view, err, ex)); derr == nil {
			if with, werr := base.WithDetails(detail); werr == nil {
				return nil, with.Err()
			}
		}

		return nil, base.Err()
	}
}

// detailFields flattens the error view and extras into a structpb-compatible
// map. Frames become a list of {target, items} objects.
func detailFields(view apis.ErrorView, err error, ex Extras) map[string]any {
	fields := map[string]any{
		"code":   view.Code,
		"reason": view.Reason,
	}
	if view.Detail != "" {
		fields["detail"] = view.Detail
	}
	if view.Position != "" {
		fields["position"] = view.Position
	}
	if len(view.Frames) > 0 {
		frames := make([]any, 0, len(view.Frames))
		for _, f := range view.Frames {
			items := make([]any, 0, len(f.Items))
			for _, it := range f.Items {
				items = append(items, map[string]any{"key": it.Key, "value": it.Value})
			}
			frames = append(frames, map[string]any{"target": f.Target, "items": items})
		}
		fields["frames"] = frames
	}

	if r, ok := err.(apis.Retryable); ok && r.IsRetryable() {
		fields["retryable"] = true
	}
	if s, ok := err.(apis.Severe); ok && s.IsHighSeverity() {
		fields["high_severity"] = true
	}

	if ex.CorrelationID != "" {
		fields["correlation_id"] = ex.CorrelationID
	}
	if ex.TraceID != "" {
		fields["trace_id"] = ex.TraceID
	}
	if ex.SpanID != "" {
		fields["span_id"] = ex.SpanID
	}
	return fields
}

// ExtractDetail pulls the error-view detail out of a gRPC error, if present.
// Useful in tests and client code.
func ExtractDetail(err error) (*structpb.Struct, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if s, ok := d.(*structpb.Struct); ok {
			return s, true
		}
	}
	return nil, false
}
