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

package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"dirpx.dev/serrors"
	"dirpx.dev/serrors/mapper"
	"dirpx.dev/serrors/opctx"
	"dirpx.dev/serrors/reason"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteStructuredError(t *testing.T) {
	ctx := opctx.Want("place_order")
	ctx.Record("user", "u-1")

	err := serrors.New(reason.NotFound("order 42")).
		WithDetail("sql: no rows").
		WithFrame(ctx)

	rec := httptest.NewRecorder()
	w := Writer{Mapper: mapper.New()}
	w.Write(rec, err, Meta{Correlation: "req-9", TraceID: "trace-1"})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, float64(102), got["code"])
	assert.Equal(t, "not found << order 42", got["reason"])
	assert.Equal(t, "sql: no rows", got["detail"])
	assert.Equal(t, "req-9", got["correlation"])
	assert.Equal(t, "trace-1", got["trace_id"])

	frames, ok := got["frames"].([]any)
	require.True(t, ok)
	require.Len(t, frames, 1)
	frame := frames[0].(map[string]any)
	assert.Equal(t, "place_order", frame["target"])
}

func TestWriteRetryableError(t *testing.T) {
	err := serrors.OweNet[reason.Universal](errors.New("connection refused"))

	rec := httptest.NewRecorder()
	w := Writer{Mapper: mapper.New()}
	w.Write(rec, err, Meta{RetryAfterSeconds: 3})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "3", rec.Header().Get("Retry-After"))

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, true, got["retryable"])
	assert.Equal(t, float64(3), got["retry_after_seconds"])
}

func TestWritePlainError(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Writer{Mapper: mapper.New()}
	w.Write(rec, errors.New("boom"), Meta{})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, float64(500), got["code"])
	assert.Equal(t, "boom", got["detail"])
}

func TestWriteNilErrorWritesNothing(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Writer{Mapper: mapper.New()}
	w.Write(rec, nil, Meta{})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, rec.Body.Len())
}
