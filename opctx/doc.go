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

// Package opctx records what an operation was trying to do.
//
// A Context names the attempted operation ("place_order") and accumulates
// ordered key/value breadcrumbs while the operation runs. On failure the
// context is snapshotted into a serrors.Error so the full trail travels
// with the error; on any outcome it can emit exactly one structured exit
// record (via a deferred Close or a Scope guard) so operations are
// accounted for even when nobody looked at the error.
//
// Logging goes through a process-wide logrus sink installed with
// SetLogger. Without a sink every logging method is a cheap no-op, so
// libraries can record contexts unconditionally and leave the decision
// to the application.
//
// The outcome model is fail-safe: a context that reaches its exit log
// without an explicit MarkSuccess reports a failure. Use ScopeSuccess
// for regions where an unmarked exit genuinely means success.
package opctx
