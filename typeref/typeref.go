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

// Package typeref derives canonical type identities for hint authoring.
//
// A type in the closed world can be referenced two ways:
//
//   - Textually, by fully-qualified name, for types not available at
//     hint-compile time (Named).
//   - Directly, by a Go type or value handle, validated at compile time
//     (Of / OfType).
//
// Both forms normalize to the same canonical string identity so access
// requests deduplicate regardless of which mode authored them. Handles are
// unwrapped to the nearest named inner type (pointers, slices, arrays,
// channels and maps are containers, not identities) and generic
// instantiation parameters are stripped.
package typeref

import (
	"errors"
	"path"
	"strings"
	"sync"

	"dirpx.dev/hfx/apis"
)

var (
	// ErrNilType is returned when a nil type handle is provided.
	ErrNilType = errors.New("hfx(typeref): nil type provided")
	// ErrNotNamed indicates that the provided type (after unwrapping
	// containers) does not contain a named type (e.g. anonymous struct,
	// func, interface{}).
	ErrNotNamed = errors.New("hfx(typeref): type has no canonical name")
	// ErrEmptyName is returned when a textual reference is blank.
	ErrEmptyName = errors.New("hfx(typeref): empty type name provided")
)

// Namer lets a value declare its own canonical closed-world identity,
// bypassing reflection entirely. It is the fast path for domain types that
// already know the name their hints were authored against.
type Namer interface {
	// HintTypeName returns the canonical type identity.
	HintTypeName() string
}

// Named validates a textual fully-qualified name and returns it as the
// canonical identity. Surrounding whitespace is trimmed; the interior is
// taken verbatim, since naming schemes differ per closed world.
func Named(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	return name, nil
}

// Of derives the canonical identity for a value. If v implements Namer its
// declared name wins; otherwise the identity is computed from v's type.
func Of(v any, cfg apis.Config) (string, error) {
	if v == nil {
		return "", ErrNilType
	}
	if n, ok := v.(Namer); ok {
		return Named(n.HintTypeName())
	}
	return OfType(typeOf(v), cfg)
}

// cacheKey ensures memoization respects all config knobs that affect
// normalization.
type cacheKey struct {
	t             typeHandle
	maxUnwrap     int16
	mapPreferElem bool
}

// nameCache caches canonical names by (type, config knobs).
var nameCache sync.Map // key: cacheKey, val: string

// OfType derives the canonical identity for a type handle with memoization.
func OfType(t typeHandle, cfg apis.Config) (string, error) {
	if t == nil {
		return "", ErrNilType
	}
	key := cacheKey{
		t:             t,
		maxUnwrap:     int16(cfg.MaxUnwrap),
		mapPreferElem: cfg.MapPreferElem,
	}
	if v, ok := nameCache.Load(key); ok {
		if s := v.(string); s != "" {
			return s, nil
		}
		return "", ErrNotNamed
	}

	base, err := normalize(t, cfg)
	if err != nil {
		nameCache.Store(key, "")
		return "", err
	}

	name := stripTypeParams(base.Name())
	if p := base.PkgPath(); p != "" {
		name = path.Base(p) + "." + name
	}

	nameCache.Store(key, name)
	return name, nil
}

// stripTypeParams removes generic type instantiation suffix:
// "T[int,string]" -> "T".
func stripTypeParams(name string) string {
	if i := strings.IndexByte(name, '['); i >= 0 {
		return name[:i]
	}
	return name
}
