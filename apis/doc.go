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

// Package apis defines the public Go-level contracts of the serrors
// model.
//
// The goal of this package is to provide *small, composable* interfaces
// and view types that boundary code (HTTP adapters, gRPC adapters,
// loggers) can target without importing the generic error container.
// Generic types cannot cross a plain-interface boundary, so the
// contracts here are what a transport sees: a stable numeric code, a
// retryability flag, and a serializable snapshot of the error.
//
// This package must remain lightweight; it contains interfaces and very
// small view types only.
package apis
