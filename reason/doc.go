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

// Package reason defines the failure-cause types of the serrors model.
//
// It has two halves:
//
//   - Universal — a closed taxonomy of twelve generic failure causes
//     (validation, business, not-found, permission, data, system, network,
//     resource, timeout, config, external, logic), each with a stable
//     numeric code, a layer category, and derived retryability / severity
//     properties. This is the lingua franca that independently developed
//     modules can exchange without knowing each other's domain enums.
//
//   - Domain and FromUniversal — the capability constraints an
//     application-defined reason type must satisfy to be carried inside a
//     serrors.Error. Domain is the minimal baseline (comparable +
//     displayable); FromUniversal additionally lets generic code build
//     domain reasons out of Universal values, and is required only by the
//     operations that actually need it.
//
// The two capabilities are split on purpose: bundling them would force
// every function that merely attaches a caller-supplied reason to demand
// universal convertibility it never uses.
package reason
