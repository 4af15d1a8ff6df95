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

package serrors

import (
	"dirpx.dev/serrors/opctx"
	"dirpx.dev/serrors/reason"
)

// Owe lifts an arbitrary error into the structured model under a
// caller-supplied domain reason. The underlying error's message becomes
// the detail text. A nil err returns nil without any allocation, so the
// call is free on the success path:
//
//	if err := store.Save(order); err != nil {
//	    return serrors.Owe(err, OrderStorageFull)
//	}
//
// Owe requires only the baseline Domain capability: reason types with no
// relationship to the universal taxonomy can use it.
func Owe[R reason.Domain](err error, r R) *Error[R] {
	if err == nil {
		return nil
	}
	return &Error[R]{reason: r, detail: err.Error()}
}

// oweUniversal is the shared body of the shortcut conversions: it mints
// the domain reason from an EMPTY-payload universal variant and stores
// the error's message in detail only. Storing the message in one place —
// never both the reason payload and the detail — is what keeps the
// rendered error free of duplicated text.
func oweUniversal[R reason.FromUniversal[R]](err error, k reason.Kind) *Error[R] {
	if err == nil {
		return nil
	}
	var zero R
	return &Error[R]{reason: zero.FromUniversal(reason.Of(k)), detail: err.Error()}
}

// OweValidation converts err into a validation-classified Error.
// Nil in, nil out.
func OweValidation[R reason.FromUniversal[R]](err error) *Error[R] {
	return oweUniversal[R](err, reason.KindValidation)
}

// OweBiz converts err into a business-rule-classified Error.
func OweBiz[R reason.FromUniversal[R]](err error) *Error[R] {
	return oweUniversal[R](err, reason.KindBusiness)
}

// OweNotFound converts err into a not-found-classified Error.
func OweNotFound[R reason.FromUniversal[R]](err error) *Error[R] {
	return oweUniversal[R](err, reason.KindNotFound)
}

// OwePermission converts err into a permission-classified Error.
func OwePermission[R reason.FromUniversal[R]](err error) *Error[R] {
	return oweUniversal[R](err, reason.KindPermission)
}

// OweData converts err into a data-classified Error.
func OweData[R reason.FromUniversal[R]](err error) *Error[R] {
	return oweUniversal[R](err, reason.KindData)
}

// OweSys converts err into a system-classified Error.
func OweSys[R reason.FromUniversal[R]](err error) *Error[R] {
	return oweUniversal[R](err, reason.KindSystem)
}

// OweNet converts err into a network-classified Error.
func OweNet[R reason.FromUniversal[R]](err error) *Error[R] {
	return oweUniversal[R](err, reason.KindNetwork)
}

// OweResource converts err into a resource-exhaustion-classified Error.
func OweResource[R reason.FromUniversal[R]](err error) *Error[R] {
	return oweUniversal[R](err, reason.KindResource)
}

// OweTimeout converts err into a timeout-classified Error.
func OweTimeout[R reason.FromUniversal[R]](err error) *Error[R] {
	return oweUniversal[R](err, reason.KindTimeout)
}

// OweConfig converts err into a config-classified Error (core config
// sub-reason).
func OweConfig[R reason.FromUniversal[R]](err error) *Error[R] {
	return oweUniversal[R](err, reason.KindConfig)
}

// OweExternal converts err into an external-dependency-classified Error.
func OweExternal[R reason.FromUniversal[R]](err error) *Error[R] {
	return oweUniversal[R](err, reason.KindExternal)
}

// OweLogic converts err into a logic-defect-classified Error.
func OweLogic[R reason.FromUniversal[R]](err error) *Error[R] {
	return oweUniversal[R](err, reason.KindLogic)
}

// With appends a context snapshot to e if e is non-nil. Nil in, nil out
// with no allocation: call it unconditionally on every fallible step.
//
//	return serrors.With(serrors.OweSys[OrderReason](err), ctx).Err()
func With[R reason.Domain](e *Error[R], ctx *opctx.Context) *Error[R] {
	if e == nil {
		return nil
	}
	return e.WithFrame(ctx)
}

// Convert re-types an Error from one domain reason to another using the
// explicit mapping f. Detail and position carry over; the frame stack is
// shared with the source (copy-on-write, so later appends on either side
// stay private). Nil in, nil out.
//
// Go resolves no implicit conversions between reason types, so the
// mapping is a plain function — typically the target domain's
// FromUniversal composed with a variant translation.
func Convert[R1, R2 reason.Domain](e *Error[R1], f func(R1) R2) *Error[R2] {
	if e == nil {
		return nil
	}
	return &Error[R2]{
		reason:   f(e.reason),
		detail:   e.detail,
		position: e.position,
		frames:   e.frames,
	}
}

// ConvertUniversal re-types an Error whose reason is the universal
// taxonomy into any domain that accepts universal reasons. This is the
// common cross-module boundary case: low-level code reports in Universal,
// the caller owns a richer domain type.
func ConvertUniversal[R reason.FromUniversal[R]](e *Error[reason.Universal]) *Error[R] {
	return Convert(e, func(u reason.Universal) R {
		var zero R
		return zero.FromUniversal(u)
	})
}
