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

// ErrorDescriptor is a flat summary of an error's handling semantics.
//
// It collapses the optional capability interfaces (Coder, Retryable,
// Severe) into plain fields so callers that route or alert on errors do
// not need to repeat the type assertions themselves.
type ErrorDescriptor struct {
	// Code is the stable classification code, or 500 when the error
	// does not implement Coder.
	Code int `json:"code"`

	// Message is the error's rendered text (error.Error()).
	Message string `json:"message"`

	// Retryable reports whether retrying the failed operation may
	// succeed. False when the error does not implement Retryable.
	Retryable bool `json:"retryable"`

	// HighSeverity reports whether the failure warrants operator
	// attention. False when the error does not implement Severe.
	HighSeverity bool `json:"high_severity"`
}
