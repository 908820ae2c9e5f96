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

// Package factbase provides the in-memory closed-world snapshot resolution
// runs against. A snapshot is fully constructed through options and frozen:
// every query returns stable answers for the lifetime of the build.
package factbase

import (
	"errors"
	"strings"
)

// ErrNilSnapshot is returned by options applied outside New.
var ErrNilSnapshot = errors.New("hfx(factbase): option applied to nil snapshot")

// annotationKey identifies one (type, annotation) association.
type annotationKey struct {
	typeName   string
	annotation string
}

// snapshot is the frozen fact base. It is pointer-backed so evaluators can
// use it as a memoization key (see apis.FactBase contract).
type snapshot struct {
	types       map[string]struct{}
	annotations map[annotationKey]struct{}
	props       map[string]string
}

// Option populates a snapshot during construction.
type Option func(*snapshot) error

// New constructs a frozen fact base from the given options.
func New(opts ...Option) (*Snapshot, error) {
	s := &snapshot{
		types:       make(map[string]struct{}),
		annotations: make(map[annotationKey]struct{}),
		props:       make(map[string]string),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return &Snapshot{inner: s}, nil
}

// Snapshot is the public handle to a frozen fact base.
type Snapshot struct {
	inner *snapshot
}

// TypeExists reports whether the canonical type name is part of the closed world.
func (s *Snapshot) TypeExists(name string) bool {
	_, ok := s.inner.types[name]
	return ok
}

// AnnotationPresent reports whether typeName carries annotation.
func (s *Snapshot) AnnotationPresent(typeName, annotation string) bool {
	_, ok := s.inner.annotations[annotationKey{typeName: typeName, annotation: annotation}]
	return ok
}

// PropertyValue returns the build property for key, if set.
func (s *Snapshot) PropertyValue(key string) (string, bool) {
	v, ok := s.inner.props[key]
	return v, ok
}

// TypeCount returns the number of known types (diagnostics only).
func (s *Snapshot) TypeCount() int {
	return len(s.inner.types)
}

// WithTypes declares types as loadable in the closed world.
// Blank names are ignored.
func WithTypes(names ...string) Option {
	return func(s *snapshot) error {
		if s == nil {
			return ErrNilSnapshot
		}
		for _, name := range names {
			if name = strings.TrimSpace(name); name != "" {
				s.types[name] = struct{}{}
			}
		}
		return nil
	}
}

// WithAnnotation declares that typeName carries annotation. The type itself
// is declared as a side effect: an annotated type necessarily exists.
func WithAnnotation(typeName, annotation string) Option {
	return func(s *snapshot) error {
		if s == nil {
			return ErrNilSnapshot
		}
		typeName = strings.TrimSpace(typeName)
		annotation = strings.TrimSpace(annotation)
		if typeName == "" || annotation == "" {
			return nil
		}
		s.types[typeName] = struct{}{}
		s.annotations[annotationKey{typeName: typeName, annotation: annotation}] = struct{}{}
		return nil
	}
}

// WithProperty sets one build property.
func WithProperty(key, value string) Option {
	return func(s *snapshot) error {
		if s == nil {
			return ErrNilSnapshot
		}
		if key = strings.TrimSpace(key); key != "" {
			s.props[key] = value
		}
		return nil
	}
}

// WithProperties sets build properties from a map.
func WithProperties(props map[string]string) Option {
	return func(s *snapshot) error {
		if s == nil {
			return ErrNilSnapshot
		}
		for k, v := range props {
			if k = strings.TrimSpace(k); k != "" {
				s.props[k] = v
			}
		}
		return nil
	}
}
