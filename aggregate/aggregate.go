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

// Package aggregate merges the access requests of every active
// configuration unit into the final type-accessibility mapping.
//
// Merging is the union law and nothing else: access levels for a type are
// always the union of every individually requested level. Union is
// commutative, associative and idempotent, which is what makes the output
// independent of the order active units or their records are iterated in.
// A request with an unspecified level gets the configured default
// (AccessAll unless overridden): most permissive when unspecified, which is
// deliberately distinct from "no entry at all".
package aggregate

import (
	"sort"

	"dirpx.dev/hfx/apis"
	"dirpx.dev/hfx/config"
)

// New constructs an apis.Aggregator.
func New(cfg apis.Config) apis.Aggregator {
	def := cfg.DefaultAccess
	if def == apis.AccessNone && cfg == (apis.Config{}) {
		// A zero Config means "defaults", not "grant nothing".
		def = config.DefaultAccess
	}
	return aggregator{defaultAccess: def}
}

type aggregator struct {
	defaultAccess apis.Access
}

// Aggregate produces the access map and its provenance for the given
// Active Set.
func (a aggregator) Aggregate(active *apis.ActiveSet, reg apis.Registry) (apis.AccessMap, apis.Origins) {
	out := make(apis.AccessMap)
	origins := make(apis.Origins)
	if active == nil || reg == nil {
		return out, origins
	}

	for _, unit := range active.Names() {
		for _, rec := range reg.RecordsOf(unit) {
			for _, req := range rec.Requests {
				access := req.Access
				if access == apis.AccessNone {
					access = a.defaultAccess
				}
				out.Add(req.Type, access)
				origins[req.Type] = appendUnit(origins[req.Type], unit)
			}
		}
	}
	for name := range origins {
		sort.Strings(origins[name])
	}
	return out, origins
}

// appendUnit adds unit to list once.
func appendUnit(list []string, unit string) []string {
	for _, u := range list {
		if u == unit {
			return list
		}
	}
	return append(list, unit)
}
