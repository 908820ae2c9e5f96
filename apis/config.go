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

// Config carries read-only resolution knobs. It is passed by value and must
// be treated as immutable by implementations.
type Config struct {
	// DefaultAccess is substituted for requests that leave their access
	// level unspecified (AccessNone). Defaults to AccessAll: most
	// permissive when unspecified, which is distinct from "absent".
	DefaultAccess Access

	// EvalCacheSize bounds the condition evaluator's memoization cache.
	// Zero or negative selects the package default.
	EvalCacheSize int

	// MaxUnwrap limits container unwrapping depth (ptr/slice/map/...)
	// when deriving canonical names from Go type handles. Acts as a
	// safety guard against pathological nesting.
	MaxUnwrap int

	// MapPreferElem controls which side of map[K]V is considered primary
	// when searching for the nearest named inner type. If true, prefer V.
	MapPreferElem bool
}

// Builder composes the resolution pipeline for a Config.
// ext is an optional extension context; its meaning is implementation-defined.
type Builder interface {
	// BuildRegistry constructs an empty Registry for Config.
	BuildRegistry(cfg Config, ext any) Registry
	// BuildEvaluator constructs a condition Evaluator for Config.
	BuildEvaluator(cfg Config, ext any) Evaluator
	// BuildResolver constructs a trigger Resolver around an Evaluator.
	BuildResolver(cfg Config, ev Evaluator, ext any) Resolver
	// BuildAggregator constructs an access Aggregator for Config.
	BuildAggregator(cfg Config, ext any) Aggregator
}
