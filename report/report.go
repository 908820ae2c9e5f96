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

// Package report renders resolutions for humans and downstream tooling.
//
// The dump format is stable and diffable: sorted sections of
// tab-separated lines, one fact per line. Explain answers the question the
// whole design exists for: why does this type retain reflective access,
// and which configuration unit pulled it in.
package report

import (
	"fmt"
	"io"

	"dirpx.dev/hfx/apis"
)

// Dump writes the resolution to w: active units with their causes, the
// access map, then warnings. Output is identical for identical resolutions.
func Dump(w io.Writer, res *apis.Resolution) error {
	if res == nil {
		return nil
	}
	if _, err := fmt.Fprintln(w, "== active units"); err != nil {
		return err
	}
	if res.Active != nil {
		for _, name := range res.Active.Names() {
			cause, _ := res.Active.Cause(name)
			if _, err := fmt.Fprintf(w, "%s\t%s\n", name, cause); err != nil {
				return err
			}
		}
	}
	if _, err := fmt.Fprintln(w, "== access"); err != nil {
		return err
	}
	for _, name := range res.Access.Types() {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", name, res.Access[name]); err != nil {
			return err
		}
	}
	if len(res.Warnings) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "== warnings"); err != nil {
		return err
	}
	for _, warn := range res.Warnings {
		if _, err := fmt.Fprintf(w, "%s\n", warn); err != nil {
			return err
		}
	}
	return nil
}

// Explain traces typeName back through the units that requested it, each
// followed to its activation root. One line per contributing unit, e.g.
//
//	org.example.JsonSupport (imported by org.example.JacksonConfiguration <- triggered: type com.fasterxml.jackson.databind.ObjectMapper present)
//
// An empty result means the type is not part of the resolved surface.
func Explain(res *apis.Resolution, typeName string) []string {
	if res == nil || res.Active == nil {
		return nil
	}
	units := res.Origins[typeName]
	out := make([]string, 0, len(units))
	for _, unit := range units {
		out = append(out, unit+" ("+chain(res.Active, unit)+")")
	}
	return out
}

// chain renders a unit's activation provenance back to its root cause.
// Cause chains are acyclic because the Active Set keeps the first
// activation only, so the walk terminates; the visited guard is a backstop
// against hand-built resolutions.
func chain(active *apis.ActiveSet, unit string) string {
	visited := map[string]bool{unit: true}
	cause, ok := active.Cause(unit)
	if !ok {
		return "not active"
	}
	s := cause.String()
	for cause.Kind == apis.CauseImported && !visited[cause.Via] {
		visited[cause.Via] = true
		next, ok := active.Cause(cause.Via)
		if !ok {
			break
		}
		cause = next
		s += " <- " + cause.String()
	}
	return s
}
