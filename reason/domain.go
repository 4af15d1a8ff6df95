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

package reason

import "fmt"

// Domain is the baseline capability an application-defined reason type
// must provide to participate in the structured error model: comparison
// (tests and retry logic match on reasons) and human-readable display.
//
// This is deliberately minimal. Code that only attaches caller-supplied
// reason values has no business demanding that the reason type also know
// how to build itself from the universal taxonomy — that additive
// capability lives in FromUniversal, and only the operations that
// actually manufacture reasons require it.
type Domain interface {
	comparable
	fmt.Stringer
}

// FromUniversal is the additive capability for reason types that can be
// produced from the universal taxonomy. Generic infrastructure code that
// knows nothing about a domain's variants uses it to mint domain reason
// values for generic causes (system, network, timeout, ...).
//
// The constraint is self-referential: the method receives a Universal and
// returns a value of the implementing type, so generic code can call it
// on the zero value of R:
//
//	var zero R
//	r := zero.FromUniversal(reason.Of(reason.KindSystem))
//
// Implementations should be value-preserving: the returned reason must
// carry (or wrap) the given Universal so that classification queries like
// retryability still answer correctly after the conversion.
type FromUniversal[R Domain] interface {
	Domain
	FromUniversal(Universal) R
}
