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

package builder

import (
	"dirpx.dev/hfx/aggregate"
	"dirpx.dev/hfx/apis"
	"dirpx.dev/hfx/condition"
	"dirpx.dev/hfx/registry"
	"dirpx.dev/hfx/resolver"
)

// New creates and returns a new instance of an apis.Builder composing the
// default pipeline: accumulating registry, memoizing condition evaluator,
// worklist trigger resolver, union-law aggregator.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildRegistry builds an empty apis.Registry for the provided configuration.
func (b *builder) BuildRegistry(cfg apis.Config, _ any) apis.Registry {
	return registry.New(cfg)
}

// BuildEvaluator builds a memoizing condition evaluator for the provided
// configuration.
func (b *builder) BuildEvaluator(cfg apis.Config, _ any) apis.Evaluator {
	return condition.New(cfg)
}

// BuildResolver builds a trigger resolver around ev. A nil ev gets a fresh
// default evaluator so the resolver is always usable.
func (b *builder) BuildResolver(cfg apis.Config, ev apis.Evaluator, _ any) apis.Resolver {
	if ev == nil {
		ev = condition.New(cfg)
	}
	return resolver.New(cfg, ev)
}

// BuildAggregator builds an access aggregator for the provided configuration.
func (b *builder) BuildAggregator(cfg apis.Config, _ any) apis.Aggregator {
	return aggregate.New(cfg)
}
