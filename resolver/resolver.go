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

// Package resolver computes the Active Set: the configuration units
// reachable for one fact base, by worklist fixed point over the
// trigger/import relation.
//
// Seeds are the directly active units: roots (no trigger at all) and units
// whose trigger or self condition evaluates true. The fixed point then
// follows import edges: a unit imported by an active unit becomes active
// unconditionally, an OR with its own trigger, never an AND. Per-unit
// states are Unseen -> Enqueued -> Active with no transition out of Active;
// insertion into the Active Set is idempotent, which is what makes cyclic
// import graphs terminate. Each unit enters the set at most once, so a
// resolution over n units performs at most n activations.
package resolver

import (
	"fmt"

	"dirpx.dev/hfx/apis"
)

// New constructs an apis.Resolver around the given evaluator.
// The returned resolver is an immutable value; each Resolve call is an
// independent pure computation over its inputs.
func New(cfg apis.Config, ev apis.Evaluator) apis.Resolver {
	_ = cfg // no knobs influence traversal today; kept for builder symmetry
	return resolver{ev: ev}
}

type resolver struct {
	ev apis.Evaluator
}

// workItem is one pending activation with its provenance.
type workItem struct {
	unit  string
	cause apis.Cause
}

// Resolve computes the Active Set for reg against fb.
//
// Evaluation order never affects membership: seeds are collected from the
// registry's sorted unit listing and the worklist is FIFO, but any order
// would converge on the same set (confluence); the ordering only makes
// warnings and cause chains reproducible between runs.
func (r resolver) Resolve(reg apis.Registry, fb apis.FactBase) (*apis.ActiveSet, []apis.Warning) {
	active := apis.NewActiveSet()
	var warns []apis.Warning
	if reg == nil {
		return active, warns
	}

	units := reg.Units()
	queue := make([]workItem, 0, len(units))
	enqueued := make(map[string]struct{}, len(units))
	push := func(it workItem) {
		if _, ok := enqueued[it.unit]; ok {
			return
		}
		enqueued[it.unit] = struct{}{}
		queue = append(queue, it)
	}

	// Seed with every directly active unit.
	for _, u := range units {
		switch u.Lifecycle {
		case apis.LifecycleRoot:
			push(workItem{unit: u.Name, cause: apis.Cause{Kind: apis.CauseRoot}})

		case apis.LifecycleSelf:
			r.seedConditional(fb, u, u.SelfCondition(), push, &warns)

		case apis.LifecycleTriggered:
			r.seedConditional(fb, u, u.Trigger, push, &warns)
		}
	}

	// Fixed point: pop, mark active, enqueue imports.
	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]
		if !active.Add(it.unit, it.cause) {
			continue
		}
		u, ok := reg.Unit(it.unit)
		if !ok {
			// Unreachable for seeded units; guards against registries
			// mutated mid-resolution in violation of the contract.
			continue
		}
		for _, imp := range u.Imports {
			if active.Contains(imp) {
				continue
			}
			if _, known := reg.Unit(imp); !known {
				warns = append(warns, apis.Warning{
					Kind:   apis.WarnDanglingImport,
					Unit:   it.unit,
					Detail: fmt.Sprintf("import %s names no known unit", imp),
				})
				continue
			}
			push(workItem{
				unit:  imp,
				cause: apis.Cause{Kind: apis.CauseImported, Via: it.unit},
			})
		}
	}
	return active, warns
}

// seedConditional enqueues u when cond holds. An unresolvable condition is
// fail-closed: the unit stays inactive (unless something imports it later)
// and the failure is surfaced, since it usually means a missing hint source
// rather than a correctly-inactive configuration.
func (r resolver) seedConditional(fb apis.FactBase, u apis.Unit, cond apis.Condition, push func(workItem), warns *[]apis.Warning) {
	ok, err := r.ev.Evaluate(cond, fb)
	if err != nil {
		*warns = append(*warns, apis.Warning{
			Kind:   apis.WarnUnresolvableCondition,
			Unit:   u.Name,
			Detail: fmt.Sprintf("%s: %v", cond, err),
		})
		return
	}
	if ok {
		push(workItem{
			unit:  u.Name,
			cause: apis.Cause{Kind: apis.CauseTriggered, Trigger: cond},
		})
	}
}
