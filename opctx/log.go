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
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// sink holds the configured logger. nil means logging is disabled and
// every logging method returns before doing any formatting work.
var sink atomic.Pointer[logrus.Logger]

// SetLogger installs the logrus logger that receives context records.
// Passing nil disables logging again. Safe to call concurrently.
func SetLogger(l *logrus.Logger) {
	if l == nil {
		sink.Store(nil)
		return
	}
	sink.Store(l)
}

// fields builds the structured payload shared by all emissions: the log
// target, the operation name, and every recorded item. Duplicate item
// keys collapse last-write-wins in the structured view; the full ordered
// trail stays available via Items and String.
func (c *Context) fields() logrus.Fields {
	f := make(logrus.Fields, len(c.items)+2)
	f["target"] = c.logTarget
	if c.target != "" {
		f["op"] = c.target
	}
	for _, it := range c.items {
		f[it.Key] = it.Value
	}
	return f
}

// emitOutcome writes the single exit record for the context. Severity
// follows the outcome: success → info, cancelled → warn, anything else
// (failure, or pending treated as failure) → error.
func (c *Context) emitOutcome() {
	l := sink.Load()
	if l == nil {
		return
	}
	e := l.WithFields(c.fields())
	msg := c.outcome.String() + "! " + c.summary()
	switch c.outcome {
	case OutcomeSuccess:
		e.Info(msg)
	case OutcomeCancelled:
		e.Warn(msg)
	default:
		e.Error(msg)
	}
}

// Info emits one informational record carrying the context fields.
// A no-op when no logger is configured.
func (c *Context) Info(msg string) {
	if l := sink.Load(); l != nil {
		l.WithFields(c.fields()).Info(msg)
	}
}

// Debug emits one debug record carrying the context fields.
func (c *Context) Debug(msg string) {
	if l := sink.Load(); l != nil {
		l.WithFields(c.fields()).Debug(msg)
	}
}

// Warn emits one warning record carrying the context fields.
func (c *Context) Warn(msg string) {
	if l := sink.Load(); l != nil {
		l.WithFields(c.fields()).Warn(msg)
	}
}

// Error emits one error record carrying the context fields.
func (c *Context) Error(msg string) {
	if l := sink.Load(); l != nil {
		l.WithFields(c.fields()).Error(msg)
	}
}

// Trace emits one trace record carrying the context fields.
func (c *Context) Trace(msg string) {
	if l := sink.Load(); l != nil {
		l.WithFields(c.fields()).Trace(msg)
	}
}
