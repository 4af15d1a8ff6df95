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

package apis

// ErrorView is a minimal, serializable representation of a structured
// error.
//
// This is *not* the concrete error type used internally — it is the
// shape we are comfortable exposing over the wire or logging. Keeping it
// here (in apis) lets the HTTP and gRPC adapters share the same struct.
type ErrorView struct {
	// Code is the stable numeric classification code (see Coder).
	Code int `json:"code"`

	// Reason is the rendered display form of the typed reason, e.g.
	// "system error << out of memory". Machine handling should key on
	// Code, not on this text.
	Reason string `json:"reason"`

	// Detail is the free-text technical detail, typically the message of
	// the underlying error. May be empty.
	Detail string `json:"detail,omitempty"`

	// Position is the free-form source-location marker. May be empty.
	Position string `json:"position,omitempty"`

	// Frames is the accumulated context stack in attachment order.
	Frames []FrameView `json:"frames,omitempty"`
}

// FrameView is one operation-context frame of an ErrorView.
type FrameView struct {
	// Target is the operation the layer was attempting. May be empty.
	Target string `json:"target,omitempty"`

	// Items are the layer's diagnostic key/value breadcrumbs in
	// insertion order. Duplicate keys are retained.
	Items []ItemView `json:"items,omitempty"`
}

// ItemView is a single key/value annotation of a frame.
type ItemView struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
