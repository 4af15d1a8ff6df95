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

import "strconv"

// Kind identifies one variant of the universal failure taxonomy.
//
// The set is closed: these twelve variants are the lingua franca that
// independently developed modules can agree on without importing each
// other's domain reason types. Application-specific causes belong in a
// domain reason type, not here.
type Kind uint8

const (
	// KindUnknown is the zero value. It is never produced by the
	// constructors in this package and exists only so that the zero
	// Universal is distinguishable from a real classification.
	KindUnknown Kind = iota

	// KindValidation indicates that input failed structural or semantic
	// validation (format, range, cross-field consistency).
	KindValidation

	// KindBusiness indicates a business-rule violation: the input was
	// well-formed, but the domain state does not allow the operation.
	KindBusiness

	// KindNotFound indicates that a referenced entity does not exist in
	// the current scope.
	KindNotFound

	// KindPermission indicates the caller is not allowed to perform the
	// operation.
	KindPermission

	// KindData indicates corrupt, inconsistent, or unparseable data. It
	// optionally carries a numeric position marker (row, offset, index).
	KindData

	// KindSystem indicates a system-level failure: I/O errors, OS-level
	// faults, unexpected internal conditions.
	KindSystem

	// KindNetwork indicates a network-level failure: unreachable peers,
	// connection resets, DNS failures.
	KindNetwork

	// KindResource indicates resource exhaustion: memory, disk, handles,
	// pool capacity.
	KindResource

	// KindTimeout indicates that an operation exceeded its time budget.
	KindTimeout

	// KindConfig indicates a configuration problem. It carries a
	// sub-reason distinguishing core, feature, and dynamic configuration.
	KindConfig

	// KindExternal indicates a failure reported by an external system the
	// caller depends on but does not control.
	KindExternal

	// KindLogic indicates a programming error: an invariant that should
	// have been impossible to violate was violated.
	KindLogic
)

// Category groups the taxonomy into three numeric layers used for
// ordering and reporting.
type Category uint8

const (
	// CategoryUnknown is the zero value, returned only for KindUnknown.
	CategoryUnknown Category = iota

	// CategoryBusiness covers caller-correctable failures: validation,
	// business rules, missing entities, permissions.
	CategoryBusiness

	// CategoryInfrastructure covers failures of the machinery underneath
	// the business logic: data, system, network, resource, timeout.
	CategoryInfrastructure

	// CategoryConfigExternal covers failures that originate outside the
	// running code path: configuration, external systems, logic defects.
	CategoryConfigExternal
)

// String returns a short lowercase label for the category.
func (c Category) String() string {
	switch c {
	case CategoryBusiness:
		return "business"
	case CategoryInfrastructure:
		return "infrastructure"
	case CategoryConfigExternal:
		return "config_external"
	default:
		return "unknown"
	}
}

// ConfKind distinguishes the configuration sub-reasons of KindConfig.
type ConfKind uint8

const (
	// ConfNone means "not a config error" (all non-config variants).
	ConfNone ConfKind = iota
	// ConfCore marks errors in core (startup-critical) configuration.
	ConfCore
	// ConfFeature marks errors in feature-level configuration.
	ConfFeature
	// ConfDynamic marks errors in dynamically reloaded configuration.
	ConfDynamic
)

// String returns the rendering prefix used inside config error messages.
func (c ConfKind) String() string {
	switch c {
	case ConfCore:
		return "core config"
	case ConfFeature:
		return "feature config"
	case ConfDynamic:
		return "dynamic config"
	default:
		return ""
	}
}

// Universal is one classified failure cause from the closed taxonomy.
//
// It is a small, comparable value type: construct it with the per-variant
// constructors below, copy it freely, compare it with ==. The message is
// opaque diagnostic text — no length or format constraints are enforced,
// and an empty message is valid (the owe-style shortcut conversions rely
// on that to keep the message in the error's detail field only).
type Universal struct {
	kind Kind
	msg  string

	// dataPos is the optional position marker of KindData values.
	// dataPosSet keeps Universal comparable without a pointer.
	dataPos    int
	dataPosSet bool

	// conf is the sub-reason of KindConfig values, ConfNone otherwise.
	conf ConfKind
}

// Validation classifies a validation failure.
func Validation(msg string) Universal { return Universal{kind: KindValidation, msg: msg} }

// Business classifies a business-rule violation.
func Business(msg string) Universal { return Universal{kind: KindBusiness, msg: msg} }

// NotFound classifies a missing-entity failure.
func NotFound(msg string) Universal { return Universal{kind: KindNotFound, msg: msg} }

// Permission classifies a permission failure.
func Permission(msg string) Universal { return Universal{kind: KindPermission, msg: msg} }

// Data classifies a data failure with no position marker.
func Data(msg string) Universal { return Universal{kind: KindData, msg: msg} }

// DataAt classifies a data failure at a known position (row index, byte
// offset, record number — the unit is up to the caller).
func DataAt(msg string, pos int) Universal {
	return Universal{kind: KindData, msg: msg, dataPos: pos, dataPosSet: true}
}

// System classifies a system-level failure.
func System(msg string) Universal { return Universal{kind: KindSystem, msg: msg} }

// Network classifies a network-level failure.
func Network(msg string) Universal { return Universal{kind: KindNetwork, msg: msg} }

// Resource classifies a resource-exhaustion failure.
func Resource(msg string) Universal { return Universal{kind: KindResource, msg: msg} }

// Timeout classifies a deadline overrun.
func Timeout(msg string) Universal { return Universal{kind: KindTimeout, msg: msg} }

// CoreConfig classifies a core configuration failure.
func CoreConfig(msg string) Universal {
	return Universal{kind: KindConfig, msg: msg, conf: ConfCore}
}

// FeatureConfig classifies a feature configuration failure.
func FeatureConfig(msg string) Universal {
	return Universal{kind: KindConfig, msg: msg, conf: ConfFeature}
}

// DynamicConfig classifies a dynamic configuration failure.
func DynamicConfig(msg string) Universal {
	return Universal{kind: KindConfig, msg: msg, conf: ConfDynamic}
}

// External classifies a failure of an external dependency.
func External(msg string) Universal { return Universal{kind: KindExternal, msg: msg} }

// Logic classifies a programming error.
func Logic(msg string) Universal { return Universal{kind: KindLogic, msg: msg} }

// Of constructs a Universal of the given kind with an empty message.
// Config kinds default to the core sub-reason. This is the constructor
// used by the shortcut conversions, which keep the message elsewhere.
func Of(k Kind) Universal {
	u := Universal{kind: k}
	if k == KindConfig {
		u.conf = ConfCore
	}
	return u
}

// Kind returns the active variant.
func (u Universal) Kind() Kind { return u.kind }

// Message returns the diagnostic message payload. May be empty.
func (u Universal) Message() string { return u.msg }

// DataPos returns the position marker of a data error, if one was set.
func (u Universal) DataPos() (int, bool) { return u.dataPos, u.dataPosSet }

// Conf returns the configuration sub-reason (ConfNone unless KindConfig).
func (u Universal) Conf() ConfKind { return u.conf }

// Category returns the layer classification of the variant.
// Total over all twelve variants.
func (u Universal) Category() Category {
	switch u.kind {
	case KindValidation, KindBusiness, KindNotFound, KindPermission:
		return CategoryBusiness
	case KindData, KindSystem, KindNetwork, KindResource, KindTimeout:
		return CategoryInfrastructure
	case KindConfig, KindExternal, KindLogic:
		return CategoryConfigExternal
	default:
		return CategoryUnknown
	}
}

// IsRetryable reports whether automatic retry is generally sensible for
// this variant. The mapping is fixed: network, timeout, resource, system,
// and external failures are retryable; everything else is not.
func (u Universal) IsRetryable() bool {
	switch u.kind {
	case KindNetwork, KindTimeout, KindResource, KindSystem, KindExternal:
		return true
	default:
		return false
	}
}

// IsHighSeverity reports whether this variant warrants operational
// alerting. System, resource, and config failures are high severity.
func (u Universal) IsHighSeverity() bool {
	switch u.kind {
	case KindSystem, KindResource, KindConfig:
		return true
	default:
		return false
	}
}

// ErrorCode returns the stable numeric identifier of the variant.
//
// These values are part of the cross-system compatibility contract:
// consumers persist and compare them, so changing a value for an existing
// variant is a breaking change. New variants must take new numbers.
func (u Universal) ErrorCode() int {
	switch u.kind {
	case KindValidation:
		return 100
	case KindBusiness:
		return 101
	case KindNotFound:
		return 102
	case KindPermission:
		return 103
	case KindLogic:
		return 104
	case KindData:
		return 200
	case KindSystem:
		return 201
	case KindNetwork:
		return 202
	case KindResource:
		return 203
	case KindTimeout:
		return 204
	case KindConfig:
		return 300
	case KindExternal:
		return 301
	default:
		return 500
	}
}

// label returns the fixed per-variant display prefix.
func (u Universal) label() string {
	switch u.kind {
	case KindValidation:
		return "validation error"
	case KindBusiness:
		return "biz error"
	case KindNotFound:
		return "not found"
	case KindPermission:
		return "permission error"
	case KindData:
		return "data error"
	case KindSystem:
		return "system error"
	case KindNetwork:
		return "network error"
	case KindResource:
		return "resource error"
	case KindTimeout:
		return "timeout"
	case KindConfig:
		return "config error"
	case KindExternal:
		return "external error"
	case KindLogic:
		return "logic error"
	default:
		return "unknown error"
	}
}

// String renders the variant as "<label> << <message>".
//
// The message is included verbatim and exactly once; when it is empty the
// rendering is the bare label. Config errors interpose the sub-reason:
// "config error << core config > <message>". Data errors with a position
// append it as "(pos N)".
func (u Universal) String() string {
	body := u.msg
	if u.kind == KindConfig {
		if body == "" {
			body = u.conf.String()
		} else {
			body = u.conf.String() + " > " + body
		}
	}
	if u.kind == KindData && u.dataPosSet {
		if body == "" {
			body = "(pos " + strconv.Itoa(u.dataPos) + ")"
		} else {
			body += " (pos " + strconv.Itoa(u.dataPos) + ")"
		}
	}
	if body == "" {
		return u.label()
	}
	return u.label() + " << " + body
}

// FromUniversal makes Universal satisfy the FromUniversal capability for
// itself, so Error[Universal] and the shortcut conversions work without a
// domain reason type.
func (u Universal) FromUniversal(v Universal) Universal { return v }
