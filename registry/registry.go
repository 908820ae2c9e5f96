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

package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"dirpx.dev/hfx/apis"
)

var (
	// ErrEmptyUnit is returned when a record names no owning unit.
	ErrEmptyUnit = errors.New("hfx(registry): record has no owning unit")
	// ErrEmptyTypeRef is returned when an access request carries an empty
	// type reference.
	ErrEmptyTypeRef = errors.New("hfx(registry): access request has empty type reference")
	// ErrEmptyRecord is returned when a record contributes nothing at all:
	// no requests, no imports, no trigger information.
	ErrEmptyRecord = errors.New("hfx(registry): record contributes nothing")
)

// New constructs an empty apis.Registry.
func New(cfg apis.Config) apis.Registry {
	_ = cfg // no knobs influence registration today; kept for builder symmetry
	return &registry{units: make(map[string]*unitState)}
}

// unitState is the mutable accumulation of every record targeting one unit.
type unitState struct {
	lifecycle apis.Lifecycle
	trigger   apis.Condition
	imports   map[string]struct{}
	records   []apis.Record
}

// registry accumulates records and assembles units. Population happens once
// per build before resolution; the mutex only guards that population phase.
type registry struct {
	mu    sync.Mutex
	units map[string]*unitState
	count int
	warns []apis.Warning
}

// Add validates rec and merges it into the owning unit's state.
//
// Lifecycle precedence when records disagree: an explicit trigger beats a
// self condition, which beats root ("always active"). The outcome is
// order-independent; shadowing and conflicts are surfaced as warnings, not
// errors, so the rest of a crowd-sourced hint database still takes effect.
func (r *registry) Add(rec apis.Record) error {
	unit := strings.TrimSpace(rec.Unit)
	if unit == "" {
		return ErrEmptyUnit
	}
	for _, req := range rec.Requests {
		if strings.TrimSpace(req.Type) == "" {
			return ErrEmptyTypeRef
		}
	}
	if len(rec.Requests) == 0 && len(rec.Imports) == 0 &&
		rec.Trigger.IsZero() && !rec.SelfTriggered {
		return ErrEmptyRecord
	}
	rec.Unit = unit

	r.mu.Lock()
	defer r.mu.Unlock()

	st, ok := r.units[unit]
	if !ok {
		st = &unitState{imports: make(map[string]struct{})}
		r.units[unit] = st
	}
	r.mergeLifecycle(unit, st, rec)
	for _, imp := range rec.Imports {
		if imp = strings.TrimSpace(imp); imp != "" {
			st.imports[imp] = struct{}{}
		}
	}
	st.records = append(st.records, rec)
	r.count++
	return nil
}

// mergeLifecycle applies the explicit > self > root precedence. Callers hold r.mu.
func (r *registry) mergeLifecycle(unit string, st *unitState, rec apis.Record) {
	if !rec.Trigger.IsZero() {
		switch st.lifecycle {
		case apis.LifecycleTriggered:
			if st.trigger != rec.Trigger {
				r.warns = append(r.warns, apis.Warning{
					Kind: apis.WarnConflictingTrigger,
					Unit: unit,
					Detail: fmt.Sprintf("trigger %s ignored, unit already triggered by %s",
						rec.Trigger, st.trigger),
				})
			}
		case apis.LifecycleSelf:
			r.warns = append(r.warns, apis.Warning{
				Kind:   apis.WarnShadowedSelfTrigger,
				Unit:   unit,
				Detail: fmt.Sprintf("self condition shadowed by explicit trigger %s", rec.Trigger),
			})
			st.lifecycle = apis.LifecycleTriggered
			st.trigger = rec.Trigger
		default:
			st.lifecycle = apis.LifecycleTriggered
			st.trigger = rec.Trigger
		}
		return
	}
	if rec.SelfTriggered {
		switch st.lifecycle {
		case apis.LifecycleTriggered:
			r.warns = append(r.warns, apis.Warning{
				Kind:   apis.WarnShadowedSelfTrigger,
				Unit:   unit,
				Detail: fmt.Sprintf("self condition shadowed by explicit trigger %s", st.trigger),
			})
		default:
			st.lifecycle = apis.LifecycleSelf
		}
	}
	// A record with no trigger information leaves the lifecycle alone:
	// root is only ever the state no record upgraded away from.
}

// Unit returns the assembled unit by name.
func (r *registry) Unit(name string) (apis.Unit, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.units[name]
	if !ok {
		return apis.Unit{}, false
	}
	return assemble(name, st), true
}

// Units returns every assembled unit, sorted by name for reproducible
// iteration downstream.
func (r *registry) Units() []apis.Unit {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.units))
	for name := range r.units {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]apis.Unit, 0, len(names))
	for _, name := range names {
		out = append(out, assemble(name, r.units[name]))
	}
	return out
}

// RecordsOf returns the stored records owned by a unit, in insertion order.
func (r *registry) RecordsOf(unit string) []apis.Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.units[unit]
	if !ok {
		return nil
	}
	out := make([]apis.Record, len(st.records))
	copy(out, st.records)
	return out
}

// Count returns the number of stored records.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Warnings returns the merge findings gathered so far.
func (r *registry) Warnings() []apis.Warning {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]apis.Warning, len(r.warns))
	copy(out, r.warns)
	return out
}

// Reset clears all state.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.units = make(map[string]*unitState)
	r.count = 0
	r.warns = nil
}

// assemble freezes one unit's accumulated state into an apis.Unit.
func assemble(name string, st *unitState) apis.Unit {
	imports := make([]string, 0, len(st.imports))
	for imp := range st.imports {
		imports = append(imports, imp)
	}
	sort.Strings(imports)
	return apis.Unit{
		Name:      name,
		Lifecycle: st.lifecycle,
		Trigger:   st.trigger,
		Imports:   imports,
	}
}
