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

// Package code registers the stable numeric error codes used across serrors.
//
// A "code" is the top-level, machine-readable classification of an error,
// such as 100 (validation), 102 (not_found) or 201 (system). Codes are
// meant to be:
//
//   - stable: a registered value never changes meaning;
//   - numeric: suitable for persistence, comparison, and wire payloads;
//   - grouped: 1xx business, 2xx infrastructure, 3xx config/external,
//     with 500 as the unclassified fallback.
//
// The display names attached to codes are a reading aid only. Machine
// handling must key on the numeric value.
package code
