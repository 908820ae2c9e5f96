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

// Lifecycle describes how a configuration unit becomes directly active.
// "Always active" and "active iff its own presence condition holds" are
// distinct lifecycles and must stay distinguishable.
type Lifecycle int

const (
	// LifecycleRoot units are always active: they seed every resolution.
	LifecycleRoot Lifecycle = iota
	// LifecycleSelf units are active iff their own type is present in the
	// fact base (the unit name doubles as the presence condition).
	LifecycleSelf
	// LifecycleTriggered units are active iff their explicit trigger
	// condition evaluates true.
	LifecycleTriggered
)

// String returns the lifecycle name for diagnostics.
func (l Lifecycle) String() string {
	switch l {
	case LifecycleRoot:
		return "root"
	case LifecycleSelf:
		return "self"
	case LifecycleTriggered:
		return "triggered"
	default:
		return "unknown"
	}
}

// Unit is an assembled configuration unit: the merge of every Record that
// targets the same name. Units are produced by a Registry and are read-only
// during resolution.
type Unit struct {
	// Name is the unit's unique identity.
	Name string
	// Lifecycle selects how the unit becomes directly active.
	Lifecycle Lifecycle
	// Trigger is the explicit condition for LifecycleTriggered units.
	// Zero otherwise.
	Trigger Condition
	// Imports is the deduplicated, sorted union of all record imports.
	Imports []string
}

// SelfCondition returns the presence predicate a LifecycleSelf unit is
// gated on. Meaningless for other lifecycles.
func (u Unit) SelfCondition() Condition {
	return TypePresent(u.Name)
}
