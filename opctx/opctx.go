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

package opctx

import (
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Outcome is the final state of an attempted operation.
type Outcome uint8

const (
	// OutcomePending means the operation has not been resolved yet.
	// For exit logging it is treated as a failure: if code forgets to mark
	// success, the log surfaces the bug instead of hiding it.
	OutcomePending Outcome = iota

	// OutcomeSuccess means the operation completed as intended.
	OutcomeSuccess

	// OutcomeFailure means the operation failed.
	OutcomeFailure

	// OutcomeCancelled means the operation was abandoned on purpose.
	// This is a semantic label for reporting, not a cancellation mechanism.
	OutcomeCancelled
)

// String returns the exit-log prefix for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "suc"
	case OutcomeCancelled:
		return "cancel"
	default:
		// Pending is reported as failure, see OutcomePending.
		return "fail"
	}
}

// Item is one recorded key/value annotation. Items are breadcrumbs, not a
// map: duplicate keys are retained in insertion order.
type Item struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Context is one layer's record of "what operation was being attempted"
// plus diagnostic key/value items. A Context is created at the top of a
// logical operation, enriched as work proceeds, and on failure cloned
// into a serrors.Error's context stack.
//
// A Context is not safe for concurrent mutation; it is meant to live on
// one goroutine's stack for the duration of one operation. Snapshots are
// plain immutable data and safe to share.
type Context struct {
	target  string
	items   []Item
	outcome Outcome

	// logTarget is the package path of the code that created the context,
	// captured at the construction call site. Exit logs are attributed to
	// the caller's module, never to this library's.
	logTarget string

	autoLog bool

	// logged flips when the exit record has been emitted. Exactly one
	// emission happens per live context no matter how many guards fire.
	logged bool

	// archived marks snapshot copies stored inside error values. Archived
	// copies are data, not active guards: they never emit exit logs.
	archived bool
}

// New returns an empty context attributed to the caller's package.
func New() *Context {
	return &Context{logTarget: callerPackage(2)}
}

// Want returns a context for the named operation ("place_order",
// "validate_user"), attributed to the caller's package.
func Want(target string) *Context {
	return &Context{target: target, logTarget: callerPackage(2)}
}

// WithAutoLog enables exit logging: Close (usually deferred) will emit
// one record reflecting the final outcome and all items.
func (c *Context) WithAutoLog() *Context {
	c.autoLog = true
	return c
}

// WithLogTarget overrides the log attribution target. Normally the
// constructor's call-site capture is what you want; this exists for
// helpers that construct contexts on behalf of other packages.
func (c *Context) WithLogTarget(target string) *Context {
	c.logTarget = target
	return c
}

// SetTarget names (or renames) the attempted operation.
func (c *Context) SetTarget(target string) { c.target = target }

// Target returns the operation name. Empty when not set.
func (c *Context) Target() string { return c.target }

// Record appends one key/value item. Values are stringified with the
// same conversions cast.ToString applies (numbers, bools, Stringers,
// errors, ...). Items are append-only; recording an existing key again
// appends a second item rather than overwriting.
func (c *Context) Record(key string, val any) {
	c.items = append(c.items, Item{Key: key, Value: cast.ToString(val)})
}

// Items returns a copy of the recorded items in insertion order.
func (c *Context) Items() []Item {
	if len(c.items) == 0 {
		return nil
	}
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of recorded items.
func (c *Context) Len() int { return len(c.items) }

// Outcome returns the current outcome state.
func (c *Context) Outcome() Outcome { return c.outcome }

// MarkSuccess resolves the operation as successful. Calling it again is
// harmless; last write wins.
func (c *Context) MarkSuccess() { c.outcome = OutcomeSuccess }

// MarkFailure resolves the operation as failed.
func (c *Context) MarkFailure() { c.outcome = OutcomeFailure }

// MarkCancelled resolves the operation as abandoned.
func (c *Context) MarkCancelled() { c.outcome = OutcomeCancelled }

// LogTarget returns the log attribution target (caller package path).
func (c *Context) LogTarget() string { return c.logTarget }

// Snapshot returns an independent copy of the context suitable for
// archiving inside an error value. The copy has its own items backing
// array (later Records on the live context do not leak into it) and
// auto-logging is force-disabled: only the live, scope-owning context
// may emit the exit record.
func (c *Context) Snapshot() Context {
	cp := *c
	cp.autoLog = false
	cp.archived = true
	if len(c.items) > 0 {
		cp.items = make([]Item, len(c.items))
		copy(cp.items, c.items)
	} else {
		cp.items = nil
	}
	return cp
}

// Equal reports structural equality of target, items, and outcome.
// Log-related bookkeeping is excluded: an archived snapshot compares
// equal to the live context it was taken from.
func (c *Context) Equal(other *Context) bool {
	if c == nil || other == nil {
		return c == other
	}
	if c.target != other.target || c.outcome != other.outcome {
		return false
	}
	if len(c.items) != len(other.items) {
		return false
	}
	for i := range c.items {
		if c.items[i] != other.items[i] {
			return false
		}
	}
	return true
}

// Close finalizes the context. If auto-logging is enabled and no exit
// record has been emitted yet, exactly one record is emitted at a
// severity matching the outcome (success → info, cancelled → warn,
// failure/pending → error). Intended to be deferred at context creation:
//
//	ctx := opctx.Want("place_order").WithAutoLog()
//	defer ctx.Close()
func (c *Context) Close() {
	if !c.autoLog || c.logged || c.archived {
		return
	}
	c.logged = true
	c.emitOutcome()
}

// String renders the target line followed by the numbered items, one per
// line, in insertion order.
func (c *Context) String() string {
	var b strings.Builder
	if c.target != "" {
		b.WriteString("target: ")
		b.WriteString(c.target)
		b.WriteByte('\n')
	}
	for i, it := range c.items {
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(". ")
		b.WriteString(it.Key)
		b.WriteString(": ")
		b.WriteString(it.Value)
		b.WriteByte('\n')
	}
	return b.String()
}

// summary renders the context on one line for log messages.
func (c *Context) summary() string {
	if len(c.items) == 0 {
		return c.target
	}
	var b strings.Builder
	b.WriteString(c.target)
	for i, it := range c.items {
		if i == 0 && c.target == "" {
			b.WriteString(it.Key + "=" + it.Value)
			continue
		}
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString(" ")
		}
		b.WriteString(it.Key + "=" + it.Value)
	}
	return b.String()
}

// callerPackage resolves the package path of the caller `skip` frames up.
// Capturing the call site here — instead of defaulting to a constant
// computed inside this library — keeps exit logs attributed to the code
// that actually owns the operation.
func callerPackage(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}
	name := fn.Name()
	// Name is "path/to/pkg.Func" or "path/to/pkg.(*T).Method".
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		if j := strings.IndexByte(name[i:], '.'); j >= 0 {
			return name[:i+j]
		}
		return name
	}
	if j := strings.IndexByte(name, '.'); j >= 0 {
		return name[:j]
	}
	return name
}
