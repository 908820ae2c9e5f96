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

// Package source composes hint sources. Discovery is an explicit
// registration list assembled at startup: callers enumerate their providers
// and combine them with Multi. Nothing is loaded dynamically.
package source

import "dirpx.dev/hfx/apis"

// Static wraps an in-memory record list as an apis.Source. The slice is not
// copied; callers must not mutate it after handing it over.
func Static(recs ...apis.Record) apis.Source {
	return static(recs)
}

type static []apis.Record

// Records returns the wrapped list.
func (s static) Records() ([]apis.Record, error) {
	return s, nil
}

// Multi concatenates sources in registration order. Nil sources are
// ignored. The first source error aborts collection: a provider that cannot
// enumerate its records at all is a broken build input, unlike a single
// malformed record.
func Multi(sources ...apis.Source) apis.Source {
	out := make(multi, 0, len(sources))
	for _, s := range sources {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

type multi []apis.Source

// Records concatenates all wrapped sources' records.
func (m multi) Records() ([]apis.Record, error) {
	var out []apis.Record
	for _, s := range m {
		recs, err := s.Records()
		if err != nil {
			return nil, err
		}
		out = append(out, recs...)
	}
	return out, nil
}
