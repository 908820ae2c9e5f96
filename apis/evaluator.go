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

// Evaluator decides closed-world predicates against a fact base.
//
// # Contract
//
//   - Evaluate MUST be deterministic and side-effect free: the same
//     (condition, fact base) pair always yields the same result. The
//     resolver may re-evaluate conditions during fixed-point iteration.
//   - A condition referencing something outside the fact base evaluates
//     (false, err): fail-closed, with the error describing why the
//     reference could not be resolved. Callers surface it as a
//     WarnUnresolvableCondition and continue.
type Evaluator interface {
	Evaluate(c Condition, fb FactBase) (bool, error)
}

// Resolver computes the Active Set by fixed-point reachability over the
// trigger/import relation. The returned warnings carry unresolvable
// conditions and dangling imports encountered along the way.
type Resolver interface {
	Resolve(reg Registry, fb FactBase) (*ActiveSet, []Warning)
}

// Aggregator merges the access requests of every record owned by an active
// unit into the final access map, applying the union law. Output is
// deterministic for a fixed Active Set regardless of iteration order.
type Aggregator interface {
	Aggregate(active *ActiveSet, reg Registry) (AccessMap, Origins)
}
