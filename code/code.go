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

package code

import (
	"encoding"
	"errors"
	"strconv"
)

// Code is the canonical, stable numeric identifier of an error class.
//
// It is defined as a separate type (not just int) so that other packages
// can explicitly declare which values they expect and to avoid accidental
// mixing of error codes with HTTP statuses or other numeric identifiers.
//
// IMPORTANT: code values are a cross-system compatibility contract.
// Consumers persist and compare them, so a registered value must never
// be reassigned to a different meaning. New classes take new numbers.
type Code int

var (
	// ErrCodeUnknown is returned when a value does not correspond to any
	// registered error code.
	//
	// Having a dedicated sentinel error makes it easier for callers and tests
	// to detect "this is about code registration" vs "this is some other error".
	ErrCodeUnknown = errors.New("serrors: unknown code")
)

// Ensure Code implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Parse takes a raw integer and validates it against the registry.
// On success it returns the canonical Code value.
func Parse(v int) (Code, error) {
	c := Code(v)
	if !Registered(c) {
		return Unknown, ErrCodeUnknown
	}
	return c, nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level values in init() or var blocks.
func MustParse(v int) Code {
	c, err := Parse(v)
	if err != nil {
		panic(err)
	}
	return c
}

// Registered reports whether c is one of the registered error codes.
// Unknown (500) counts as registered: it is the documented fallback.
func Registered(c Code) bool {
	_, ok := names[c]
	return ok
}

// Int returns the raw numeric value of the code.
func (c Code) Int() int {
	return int(c)
}

// String returns the short lowercase name of the code, or its decimal
// form when the code is not registered.
func (c Code) String() string {
	if n, ok := names[c]; ok {
		return n
	}
	return strconv.Itoa(int(c))
}

// MarshalText implements encoding.TextMarshaler.
//
// It always emits the decimal form: the numeric value is the stable
// contract, the name is only a reading aid.
func (c Code) MarshalText() ([]byte, error) {
	return []byte(strconv.Itoa(int(c))), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It parses the decimal form and validates the value against the registry.
func (c *Code) UnmarshalText(text []byte) error {
	v, err := strconv.Atoi(string(text))
	if err != nil {
		return ErrCodeUnknown
	}
	parsed, err := Parse(v)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// names maps every registered code to its short display name.
var names = map[Code]string{
	Validation: "validation",
	Business:   "business",
	NotFound:   "not_found",
	Permission: "permission",
	Logic:      "logic",
	Data:       "data",
	System:     "system",
	Network:    "network",
	Resource:   "resource",
	Timeout:    "timeout",
	Config:     "config",
	External:   "external",
	Unknown:    "unknown",
}
