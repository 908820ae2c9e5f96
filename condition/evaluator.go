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

// Package condition evaluates closed-world predicates against a fact base.
//
// Evaluation is deterministic and side-effect free, so results are memoized:
// the trigger resolver re-evaluates conditions during fixed-point iteration
// and should hit memory, not the fact base, the second time around. A
// condition that references a type or property missing from the fact base
// evaluates false (fail-closed: absence of reflective access is safer than
// granting it unnecessarily) and reports ErrUnresolvable so callers can warn.
package condition

import (
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"dirpx.dev/hfx/apis"
	"dirpx.dev/hfx/config"
)

// ErrUnresolvable indicates a condition referencing something outside the
// fact base. The evaluation result is false regardless.
var ErrUnresolvable = errors.New("hfx(condition): unresolvable condition")

// New constructs a memoizing apis.Evaluator. The cache is bounded by
// cfg.EvalCacheSize and keyed on (condition, fact base), so one evaluator
// may serve several closed worlds without cross-talk.
func New(cfg apis.Config) apis.Evaluator {
	size := cfg.EvalCacheSize
	if size <= 0 {
		size = config.DefaultEvalCacheSize
	}
	// lru.New only fails for a non-positive size, which is excluded above.
	cache, err := lru.New[cacheKey, outcome](size)
	if err != nil {
		panic(err)
	}
	return &evaluator{cache: cache}
}

// cacheKey identifies one memoized evaluation. Fact bases are expected to be
// pointer-backed (see apis.FactBase contract), which keeps the key comparable.
type cacheKey struct {
	c  apis.Condition
	fb apis.FactBase
}

// outcome is a memoized evaluation result.
type outcome struct {
	value        bool
	unresolvable bool
	detail       string
}

type evaluator struct {
	cache *lru.Cache[cacheKey, outcome]
}

// Evaluate decides c against fb. See the package doc for the fail-closed
// contract; the error, when non-nil, wraps ErrUnresolvable.
func (e *evaluator) Evaluate(c apis.Condition, fb apis.FactBase) (bool, error) {
	if fb == nil {
		return false, fmt.Errorf("%w: nil fact base", ErrUnresolvable)
	}
	key := cacheKey{c: c, fb: fb}
	if out, ok := e.cache.Get(key); ok {
		return result(out)
	}
	out := decide(c, fb)
	e.cache.Add(key, out)
	return result(out)
}

func result(out outcome) (bool, error) {
	if out.unresolvable {
		return out.value, fmt.Errorf("%w: %s", ErrUnresolvable, out.detail)
	}
	return out.value, nil
}

// decide performs the actual predicate dispatch, uncached.
func decide(c apis.Condition, fb apis.FactBase) outcome {
	switch c.Kind {
	case apis.CondTypePresent:
		if c.Type == "" {
			return unresolvable("type-present condition with empty type")
		}
		return value(fb.TypeExists(c.Type))

	case apis.CondTypeAbsent:
		if c.Type == "" {
			return unresolvable("type-absent condition with empty type")
		}
		return value(!fb.TypeExists(c.Type))

	case apis.CondAnnotationPresent:
		if c.Type == "" || c.Annotation == "" {
			return unresolvable("annotation condition with empty reference")
		}
		// Asking about annotations on a type outside the closed world is
		// an authoring error, not a legitimate false.
		if !fb.TypeExists(c.Type) {
			return unresolvable(fmt.Sprintf("annotation condition references unknown type %s", c.Type))
		}
		return value(fb.AnnotationPresent(c.Type, c.Annotation))

	case apis.CondPropertyEquals:
		if c.Key == "" {
			return unresolvable("property condition with empty key")
		}
		v, ok := fb.PropertyValue(c.Key)
		if !ok {
			return unresolvable(fmt.Sprintf("property %s not set", c.Key))
		}
		return value(v == c.Value)

	case apis.CondPropertySet:
		if c.Key == "" {
			return unresolvable("property condition with empty key")
		}
		_, ok := fb.PropertyValue(c.Key)
		return value(ok)

	default:
		return unresolvable(fmt.Sprintf("unknown condition kind %d", c.Kind))
	}
}

func value(v bool) outcome {
	return outcome{value: v}
}

func unresolvable(detail string) outcome {
	return outcome{unresolvable: true, detail: detail}
}
