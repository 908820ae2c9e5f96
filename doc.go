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

// Package hfx computes build-time reflective-access configuration from
// declarative hints.
//
// hfx answers one question: given a closed world of known types,
// annotations and properties, and a set of hint records declaring "when
// this trigger holds, these configuration units apply and these types need
// this access", which units are active and what access does each type end
// up with?
//
// # Pipeline
//
// A resolution pass runs four stages over explicit, immutable inputs:
//
//   - Registry: hint records from one or more sources are merged into
//     per-unit state. A unit's lifecycle is decided by precedence (an
//     explicit trigger condition beats self-triggering, which beats
//     unconditional root activation) so the outcome never depends on the
//     order records arrive in. Malformed records are skipped with a
//     warning and never abort the pass.
//
//   - Evaluator: conditions (type present/absent, annotation present,
//     property equals/set) are decided against a fact base. Outcomes are
//     memoized per {condition, fact base} pair. A condition that cannot
//     be decided evaluates false, fail-closed, with a warning.
//
//   - Resolver: a worklist fixed point over the unit graph. Root units
//     seed the set, conditional units join when their trigger holds, and
//     an active unit's imports join unconditionally. Each unit is visited
//     at most once and keeps the first cause that activated it. The
//     resulting Active Set is order-independent.
//
//   - Aggregator: access requests of active units are folded per type
//     with bitwise union, so access only ever widens and duplicate or
//     reordered requests change nothing. Units that never activated
//     contribute nothing at all.
//
// The stages are pure: no package-level state, no hidden caches shared
// between passes. Two calls with equal inputs produce equal Resolutions.
//
// # Usage
//
//	fb, err := factbase.New(
//	    factbase.WithTypes("com.example.TypeFoo"),
//	    factbase.WithProperty("app.mode", "server"),
//	)
//	...
//	res, err := hfx.Resolve(fb, hintfile.Source("./hints"))
//	...
//	for _, name := range res.Active.Names() {
//	    fmt.Println(name, res.Active.Cause(name))
//	}
//
// Resolve is a convenience wrapper over the stage constructors in the
// registry, condition, resolver and aggregate packages; callers needing
// custom stages can wire them directly through apis.Builder.
package hfx
