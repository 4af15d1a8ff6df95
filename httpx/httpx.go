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

// Package httpx adapts structured errors to HTTP responses.
package httpx

import (
	"encoding/json"
	"net/http"
	"strconv"

	"dirpx.dev/serrors/apis"
	"dirpx.dev/serrors/code"
)

// Meta carries extra context that the HTTP layer can add on top of the error.
// All fields are optional and typically come from request context, headers,
// rate-limiter output, or router-level logic.
type Meta struct {
	Correlation       string
	TraceID           string
	SpanID            string
	RetryAfterSeconds int32
}

// payload is the wire shape of an HTTP error response: the error view plus
// request-scoped metadata.
type payload struct {
	apis.ErrorView
	Retryable         bool   `json:"retryable,omitempty"`
	Correlation       string `json:"correlation,omitempty"`
	TraceID           string `json:"trace_id,omitempty"`
	SpanID            string `json:"span_id,omitempty"`
	RetryAfterSeconds int32  `json:"retry_after_seconds,omitempty"`
}

// Writer is a thin adapter that knows how to turn a structured error into an
// HTTP response using the provided status mapper.
type Writer struct {
	Mapper apis.Mapper
}

// Write serializes err as a JSON error payload and writes it to the response
// writer. The HTTP status is resolved via the Mapper from the error's code.
//
// Errors that do not implement apis.Viewer are written as an unclassified
// failure carrying only their message.
//
// No automatic redaction or filtering is performed here: whatever is present
// in the error and Meta is exposed as-is. Higher-level handlers should apply
// policies if needed.
func (w Writer) Write(rw http.ResponseWriter, err error, meta Meta) {
	if err == nil {
		return
	}

	var view apis.ErrorView
	if v, ok := err.(apis.Viewer); ok {
		view = v.ErrorView()
	} else {
		view = apis.ErrorView{
			Code:   int(code.Unknown),
			Detail: err.Error(),
		}
	}

	st := w.Mapper.Status(code.Code(view.Code))

	p := payload{
		ErrorView:         view,
		Correlation:       meta.Correlation,
		TraceID:           meta.TraceID,
		SpanID:            meta.SpanID,
		RetryAfterSeconds: meta.RetryAfterSeconds,
	}
	if r, ok := err.(apis.Retryable); ok {
		p.Retryable = r.IsRetryable()
	}

	rw.Header().Set("Content-Type", "application/json")
	if meta.RetryAfterSeconds > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(int(meta.RetryAfterSeconds)))
	}
	rw.WriteHeader(st.HTTP)

	b, _ := json.Marshal(p)
	_, _ = rw.Write(b)
}
