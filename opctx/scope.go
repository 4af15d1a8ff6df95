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

// Scope is a guard over a Context that guarantees exactly one exit-log
// emission on every path out of the guarded region — normal return,
// early return, or propagated failure. Obtain one with Context.Scope or
// Context.ScopeSuccess and defer End:
//
//	ctx := opctx.Want("place_order")
//	scope := ctx.ScopeSuccess()
//	defer scope.End()
//	...
//	if err != nil {
//	    scope.MarkFailure()
//	    return err
//	}
type Scope struct {
	ctx *Context

	// assumeSuccess marks the context successful at End unless the scope
	// was explicitly failed or cancelled inside the region.
	assumeSuccess bool

	resolved bool
	ended    bool
}

// Scope returns a guard with the fail-safe default: unless MarkSuccess
// is called inside the region, End reports the operation as failed.
func (c *Context) Scope() *Scope {
	return &Scope{ctx: c}
}

// ScopeSuccess returns a guard that assumes the happy path: End marks
// the operation successful unless MarkFailure or Cancel was called.
// This reduces the risk of forgetting the success mark on the common
// path; opt in only where an unmarked exit really does mean success.
func (c *Context) ScopeSuccess() *Scope {
	return &Scope{ctx: c, assumeSuccess: true}
}

// Ctx returns the guarded context for recording items inside the region.
func (s *Scope) Ctx() *Context { return s.ctx }

// MarkSuccess resolves the guarded operation as successful.
func (s *Scope) MarkSuccess() {
	s.ctx.MarkSuccess()
	s.resolved = true
}

// MarkFailure resolves the guarded operation as failed, overriding an
// assume-success scope.
func (s *Scope) MarkFailure() {
	s.ctx.MarkFailure()
	s.resolved = true
}

// Cancel resolves the guarded operation as abandoned.
func (s *Scope) Cancel() {
	s.ctx.MarkCancelled()
	s.resolved = true
}

// End finalizes the scope: it applies the default outcome if nothing was
// explicitly resolved, then emits exactly one exit record for the
// context (regardless of WithAutoLog — taking a scope is itself the
// opt-in). Subsequent End calls, and a later Context.Close, do nothing.
func (s *Scope) End() {
	if s.ended {
		return
	}
	s.ended = true
	if !s.resolved {
		if s.assumeSuccess {
			s.ctx.MarkSuccess()
		} else if s.ctx.outcome == OutcomePending {
			s.ctx.MarkFailure()
		}
	}
	if s.ctx.logged || s.ctx.archived {
		return
	}
	s.ctx.logged = true
	s.ctx.emitOutcome()
}
