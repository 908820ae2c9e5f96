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

import (
	"fmt"
	"sort"
)

// CauseKind classifies why a unit entered the Active Set.
type CauseKind int

const (
	// CauseRoot marks a unit active because it has no trigger at all.
	CauseRoot CauseKind = iota
	// CauseTriggered marks a unit whose (explicit or self) trigger
	// condition evaluated true.
	CauseTriggered
	// CauseImported marks a unit activated by an import edge from an
	// already-active unit.
	CauseImported
)

// Cause records the provenance of one Active Set member. Traceability is a
// first-class product: every member can be explained back to a root or a
// satisfied condition.
type Cause struct {
	// Kind classifies the activation.
	Kind CauseKind
	// Via names the importing unit for CauseImported.
	Via string
	// Trigger is the satisfied condition for CauseTriggered.
	Trigger Condition
}

// String renders the cause for diagnostics.
func (c Cause) String() string {
	switch c.Kind {
	case CauseRoot:
		return "root"
	case CauseTriggered:
		return fmt.Sprintf("triggered: %s", c.Trigger)
	case CauseImported:
		return fmt.Sprintf("imported by %s", c.Via)
	default:
		return "unknown"
	}
}

// ActiveSet is the trigger resolver's output: the configuration units judged
// reachable for one fact base, each with its activation cause. Membership is
// a set; insertion is idempotent and order never affects the final contents.
type ActiveSet struct {
	members map[string]Cause
}

// NewActiveSet returns an empty Active Set.
func NewActiveSet() *ActiveSet {
	return &ActiveSet{members: make(map[string]Cause)}
}

// Add inserts unit with its cause. It reports whether the unit was newly
// added; re-adding an existing member is a no-op that keeps the original
// cause (first activation wins, so cause chains stay acyclic).
func (s *ActiveSet) Add(unit string, cause Cause) bool {
	if _, ok := s.members[unit]; ok {
		return false
	}
	s.members[unit] = cause
	return true
}

// Contains reports membership.
func (s *ActiveSet) Contains(unit string) bool {
	_, ok := s.members[unit]
	return ok
}

// Cause returns the activation cause for a member.
func (s *ActiveSet) Cause(unit string) (Cause, bool) {
	c, ok := s.members[unit]
	return c, ok
}

// Len returns the member count.
func (s *ActiveSet) Len() int {
	return len(s.members)
}

// Names returns the members sorted by name. Sorting keeps downstream output
// reproducible; set semantics are unaffected.
func (s *ActiveSet) Names() []string {
	out := make([]string, 0, len(s.members))
	for name := range s.members {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// AccessMap is the resolver pipeline's sole product: canonical type name to
// aggregated access level. All writes go through Add so the union law can
// never degrade into last-write-wins.
type AccessMap map[string]Access

// Add unions a into the entry for typeName.
func (m AccessMap) Add(typeName string, a Access) {
	m[typeName] = m[typeName].Union(a)
}

// Types returns the mapped type names in sorted order.
func (m AccessMap) Types() []string {
	out := make([]string, 0, len(m))
	for name := range m {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Origins maps a canonical type name to the sorted active units that
// requested access to it. It backs the "why is this type in the image"
// explanation.
type Origins map[string][]string

// Resolution bundles everything one resolution pass produces. It is derived
// once per build from frozen inputs and never mutated afterward.
type Resolution struct {
	// Active is the set of configuration units judged reachable.
	Active *ActiveSet
	// Access is the final type-accessibility mapping.
	Access AccessMap
	// Origins traces each type back to the units that requested it.
	Origins Origins
	// Warnings are the non-fatal findings of the pass (unresolvable
	// conditions, skipped records, trigger conflicts).
	Warnings []Warning
}
