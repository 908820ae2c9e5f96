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

// FactBase is the read-only snapshot of the closed world a resolution pass
// runs against: which types exist, which annotations they carry, and which
// build properties are set.
//
// # Contract
//
//   - A FactBase MUST be fully constructed and frozen before any Evaluator
//     or Resolver call; answers MUST be stable across repeated queries
//     within one pass, since conditions are re-evaluated during fixed-point
//     iteration.
//   - Implementations SHOULD be comparable values (e.g. pointers) so
//     evaluators can memoize per fact base.
type FactBase interface {
	// TypeExists reports whether the canonical type name is loadable in
	// the closed world.
	TypeExists(name string) bool
	// AnnotationPresent reports whether the named type carries the given
	// annotation identity.
	AnnotationPresent(typeName, annotation string) bool
	// PropertyValue returns the build property for key, if set.
	PropertyValue(key string) (string, bool)
}

// Source supplies hint records. Sources are collected into an explicit
// registration list at startup; order of records affects diagnostics only,
// never resolution results.
type Source interface {
	// Records returns the finite record list. Called once per build.
	Records() ([]Record, error)
}
