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

package serrors

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"dirpx.dev/serrors/apis"
	"dirpx.dev/serrors/opctx"
	"dirpx.dev/serrors/reason"
)

// Error is the structured error envelope, parameterized by the domain
// reason type R.
//
// It carries:
//   - Reason: the typed, matchable cause (required, set at construction);
//   - Detail: free-text technical detail, e.g. the stringified underlying
//     error (optional);
//   - Position: a free-form source-location marker — file:line, row index,
//     JSON path (optional, deliberately untyped);
//   - Frames: the ordered stack of operation contexts accumulated as the
//     error propagated upward.
//
// All mutation helpers (WithX) return a shallow copy, so Error instances
// can be safely shared and enriched in a functional style. The frame
// stack is shared between copies and copied only on append, so cloning
// an error during propagation does not scale with the depth of its
// context history.
type Error[R reason.Domain] struct {
	reason   R
	detail   string
	position string

	// frames is append-only and shared across shallow copies. Appends go
	// through appendFrame, which always allocates a fresh backing array,
	// so no copy ever observes another copy's additions.
	frames []opctx.Context
}

// New constructs an Error from a domain reason and applies the provided
// options in order.
//
// Usage:
//
//	return serrors.New(OrderStorageFull,
//	    serrors.WithDetailOption[OrderReason]("capacity exceeded"),
//	    serrors.WithPositionOption[OrderReason](serrors.Location()),
//	)
func New[R reason.Domain](r R, opts ...Option[R]) *Error[R] {
	e := &Error[R]{reason: r}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Reason returns the typed cause.
func (e *Error[R]) Reason() R { return e.reason }

// Detail returns the technical detail text. Empty means not set.
func (e *Error[R]) Detail() string { return e.detail }

// Position returns the source-location marker. Empty means not set.
func (e *Error[R]) Position() string { return e.position }

// Frames returns a copy of the accumulated context stack in attachment
// order: index 0 is the first context attached after the error was
// created (the innermost layer).
func (e *Error[R]) Frames() []opctx.Context {
	if len(e.frames) == 0 {
		return nil
	}
	out := make([]opctx.Context, len(e.frames))
	copy(out, e.frames)
	return out
}

// WithReason returns a shallow copy of e with the reason replaced.
// The frame stack, detail, and position are preserved.
func (e *Error[R]) WithReason(r R) *Error[R] {
	cp := *e
	cp.reason = r
	return &cp
}

// WithDetail returns a shallow copy of e with the detail text set.
// Intended to be called at most once, at the origin of the failure;
// re-wrapping layers should attach frames, not rewrite the detail.
func (e *Error[R]) WithDetail(detail string) *Error[R] {
	cp := *e
	cp.detail = detail
	return &cp
}

// WithPosition returns a shallow copy of e with the position marker set.
// Pair it with Location() to record the call site.
func (e *Error[R]) WithPosition(pos string) *Error[R] {
	cp := *e
	cp.position = pos
	return &cp
}

// WithFrame returns a shallow copy of e with a snapshot of ctx appended
// to the context stack. The snapshot is independent of the live context
// (later Records do not leak in) and will never emit an exit log of its
// own. The caller's context value is not modified.
func (e *Error[R]) WithFrame(ctx *opctx.Context) *Error[R] {
	if ctx == nil {
		return e
	}
	cp := *e
	cp.frames = appendFrame(e.frames, ctx.Snapshot())
	return &cp
}

// appendFrame returns a NEW slice with src's frames followed by f. It
// always allocates a fresh backing array: errors that share a prior
// stack stay isolated from each other's appends.
func appendFrame(src []opctx.Context, f opctx.Context) []opctx.Context {
	out := make([]opctx.Context, len(src)+1)
	copy(out, src)
	out[len(src)] = f
	return out
}

// ErrorCode returns the reason's stable numeric code when the reason
// implements apis.Coder, and 500 otherwise. 500 is the documented
// default for domain reasons that opt out of numeric coding.
func (e *Error[R]) ErrorCode() int {
	if c, ok := any(e.reason).(apis.Coder); ok {
		return c.ErrorCode()
	}
	return 500
}

// IsRetryable reports whether retrying the failed operation may succeed.
// It delegates to the reason when the reason implements apis.Retryable,
// and reports false otherwise.
func (e *Error[R]) IsRetryable() bool {
	if r, ok := any(e.reason).(apis.Retryable); ok {
		return r.IsRetryable()
	}
	return false
}

// IsHighSeverity reports whether the failure warrants operator attention.
// It delegates to the reason when the reason implements apis.Severe, and
// reports false otherwise.
func (e *Error[R]) IsHighSeverity() bool {
	if s, ok := any(e.reason).(apis.Severe); ok {
		return s.IsHighSeverity()
	}
	return false
}

// Error implements the built-in error interface.
//
// The format is deterministic and line-oriented:
//
//	[<code>] <reason>
//	  -> Detail: <detail>
//	  -> At: <position>
//	  -> Context stack:
//	     1. target: <target>
//	        <key>: <value>
//
// Detail and position lines appear only when set; frames render in
// attachment order. The output is meant for operators and developers —
// it is not filtered for end users.
func (e *Error[R]) Error() string {
	if e == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(strconv.Itoa(e.ErrorCode()))
	b.WriteString("] ")
	b.WriteString(e.reason.String())
	if e.detail != "" {
		b.WriteString("\n  -> Detail: ")
		b.WriteString(e.detail)
	}
	if e.position != "" {
		b.WriteString("\n  -> At: ")
		b.WriteString(e.position)
	}
	if len(e.frames) > 0 {
		b.WriteString("\n  -> Context stack:")
		for i := range e.frames {
			f := &e.frames[i]
			b.WriteString("\n     ")
			b.WriteString(strconv.Itoa(i + 1))
			b.WriteString(". ")
			if f.Target() != "" {
				b.WriteString("target: ")
				b.WriteString(f.Target())
			}
			for _, it := range f.Items() {
				b.WriteString("\n        ")
				b.WriteString(it.Key)
				b.WriteString(": ")
				b.WriteString(it.Value)
			}
		}
	}
	return b.String()
}

// Equal reports structural equality: reason, detail, position, and the
// full frame stack contents must all match. Pointer identity and frame
// stack sharing are irrelevant.
func (e *Error[R]) Equal(other *Error[R]) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.reason != other.reason || e.detail != other.detail || e.position != other.position {
		return false
	}
	if len(e.frames) != len(other.frames) {
		return false
	}
	for i := range e.frames {
		if !e.frames[i].Equal(&other.frames[i]) {
			return false
		}
	}
	return true
}

// ErrorView returns the transport-friendly snapshot used by the httpx
// and grpcx boundaries.
func (e *Error[R]) ErrorView() apis.ErrorView {
	v := apis.ErrorView{
		Code:     e.ErrorCode(),
		Reason:   e.reason.String(),
		Detail:   e.detail,
		Position: e.position,
	}
	if len(e.frames) > 0 {
		v.Frames = make([]apis.FrameView, len(e.frames))
		for i := range e.frames {
			f := &e.frames[i]
			fv := apis.FrameView{Target: f.Target()}
			for _, it := range f.Items() {
				fv.Items = append(fv.Items, apis.ItemView{Key: it.Key, Value: it.Value})
			}
			v.Frames[i] = fv
		}
	}
	return v
}

// Err normalizes a possibly-nil typed pointer into a plain error value.
// Returning a nil *Error[R] through an error interface yields a non-nil
// interface; call Err at the boundary instead:
//
//	return serrors.OweSys[OrderReason](doWork()).Err()
func (e *Error[R]) Err() error {
	if e == nil {
		return nil
	}
	return e
}

// Location returns the caller's "file:line", trimmed to the last two
// path segments. Use it with WithPosition to record where a failure was
// lifted into the structured model.
func Location() string {
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		return "unknown:0"
	}
	// Keep paths short: "pkg/file.go:42" reads better in stacked output
	// than a full build path.
	if i := strings.LastIndexByte(file, '/'); i >= 0 {
		if j := strings.LastIndexByte(file[:i], '/'); j >= 0 {
			file = file[j+1:]
		}
	}
	return fmt.Sprintf("%s:%d", file, line)
}
