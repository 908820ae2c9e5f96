/*
   Copyright 2025 The DIRPX Authors.

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

import "fmt"

// WarnKind classifies a non-fatal finding of a resolution pass. Nothing a
// warning describes aborts the pass; the worst outcome is an incomplete
// access map, which the warning exists to make diagnosable.
type WarnKind int

const (
	// WarnMalformedRecord marks a hint record that was skipped during
	// registration (empty unit name, empty type reference, or a record
	// that contributes nothing).
	WarnMalformedRecord WarnKind = iota
	// WarnUnresolvableCondition marks a trigger that referenced a type or
	// property missing from the fact base. The condition evaluated false
	// (fail-closed); the warning often indicates a missing hint source
	// rather than a correctly-inactive configuration.
	WarnUnresolvableCondition
	// WarnConflictingTrigger marks a unit whose records declared two
	// different explicit triggers. The first declaration wins.
	WarnConflictingTrigger
	// WarnShadowedSelfTrigger marks a unit declared both self-conditioned
	// and explicitly triggered. The explicit trigger wins.
	WarnShadowedSelfTrigger
	// WarnDanglingImport marks an import edge naming a unit no record
	// ever declared. The edge is ignored.
	WarnDanglingImport
)

// String returns the kind name.
func (k WarnKind) String() string {
	switch k {
	case WarnMalformedRecord:
		return "malformed-record"
	case WarnUnresolvableCondition:
		return "unresolvable-condition"
	case WarnConflictingTrigger:
		return "conflicting-trigger"
	case WarnShadowedSelfTrigger:
		return "shadowed-self-trigger"
	case WarnDanglingImport:
		return "dangling-import"
	default:
		return "unknown"
	}
}

// Warning is one non-fatal finding, attributed to the configuration unit it
// concerns.
type Warning struct {
	// Kind classifies the finding.
	Kind WarnKind
	// Unit names the configuration unit involved (may be empty when the
	// record was too malformed to name one).
	Unit string
	// Detail is a human-readable elaboration.
	Detail string
}

// String renders "kind unit: detail" for logs.
func (w Warning) String() string {
	if w.Unit == "" {
		return fmt.Sprintf("%s: %s", w.Kind, w.Detail)
	}
	return fmt.Sprintf("%s %s: %s", w.Kind, w.Unit, w.Detail)
}
