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

package grpcx

import (
	"context"
	"errors"
	"testing"

	"dirpx.dev/serrors"
	"dirpx.dev/serrors/mapper"
	"dirpx.dev/serrors/opctx"
	"dirpx.dev/serrors/reason"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
)

func invoke(t *testing.T, interceptor grpc.UnaryServerInterceptor, handlerErr error) error {
	t.Helper()
	handler := func(ctx context.Context, req any) (any, error) {
		if handlerErr != nil {
			return nil, handlerErr
		}
		return "ok", nil
	}
	_, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/svc/Method"}, handler)
	return err
}

func TestInterceptorPassesSuccessThrough(t *testing.T) {
	interceptor := UnaryServerInterceptor(mapper.New(), nil)
	assert.NoError(t, invoke(t, interceptor, nil))
}

func TestInterceptorMapsStructuredError(t *testing.T) {
	ctx := opctx.Want("charge_card")
	ctx.Record("amount", 100)

	serr := serrors.New(reason.Timeout("payment backend")).
		WithDetail("deadline exceeded after 5s").
		WithFrame(ctx)

	interceptor := UnaryServerInterceptor(mapper.New(), nil)
	err := invoke(t, interceptor, serr)
	require.Error(t, err)

	st, ok := gstatus.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.DeadlineExceeded, st.Code())
	assert.Equal(t, "deadline exceeded after 5s", st.Message())

	detail, ok := ExtractDetail(err)
	require.True(t, ok)
	fields := detail.AsMap()
	assert.Equal(t, float64(204), fields["code"])
	assert.Equal(t, "timeout << payment backend", fields["reason"])
	assert.Equal(t, true, fields["retryable"])

	frames, ok := fields["frames"].([]any)
	require.True(t, ok)
	require.Len(t, frames, 1)
	frame := frames[0].(map[string]any)
	assert.Equal(t, "charge_card", frame["target"])
}

func TestInterceptorAttachesExtras(t *testing.T) {
	metaFn := func(ctx context.Context, err error) Extras {
		return Extras{CorrelationID: "req-1", TraceID: "trace-2", SpanID: "span-3"}
	}
	interceptor := UnaryServerInterceptor(mapper.New(), metaFn)

	err := invoke(t, interceptor, serrors.OweSys[reason.Universal](errors.New("oom")))
	require.Error(t, err)

	detail, ok := ExtractDetail(err)
	require.True(t, ok)
	fields := detail.AsMap()
	assert.Equal(t, "req-1", fields["correlation_id"])
	assert.Equal(t, "trace-2", fields["trace_id"])
	assert.Equal(t, "span-3", fields["span_id"])
	assert.Equal(t, true, fields["high_severity"])
}

func TestInterceptorIgnoresForeignErrors(t *testing.T) {
	interceptor := UnaryServerInterceptor(mapper.New(), nil)

	plain := errors.New("not ours")
	err := invoke(t, interceptor, plain)
	assert.Same(t, plain, err, "foreign errors pass through untouched")

	_, ok := ExtractDetail(err)
	assert.False(t, ok)
}

func TestInterceptorEmptyDetailFallsBackToReason(t *testing.T) {
	interceptor := UnaryServerInterceptor(mapper.New(), nil)

	err := invoke(t, interceptor, serrors.New(reason.Permission("admin only")))
	require.Error(t, err)

	st, ok := gstatus.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.PermissionDenied, st.Code())
	assert.Equal(t, "permission error << admin only", st.Message())
}

func TestExtractDetailNilError(t *testing.T) {
	_, ok := ExtractDetail(nil)
	assert.False(t, ok)
}
