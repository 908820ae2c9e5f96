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

// Package gopkgs builds a fact base from a Go module: the closed world is
// the set of named types exported by the loaded packages. Types are
// identified as "pkg.Type" with the package path's base segment, matching
// the canonical identities package typeref derives from type handles.
//
// The provider populates types only. Go packages carry no annotation
// analog, so annotation conditions against this world resolve false
// (fail-closed); build properties are supplied separately through the
// factbase options.
package gopkgs

import (
	"go/types"
	"path"

	"github.com/pkg/errors"
	"golang.org/x/tools/go/packages"

	"dirpx.dev/hfx/factbase"
)

// Config controls the package load.
type Config struct {
	// Dir is the working directory for the load ("" = process cwd).
	Dir string
	// Patterns are go/packages load patterns ("./...", import paths).
	// Empty defaults to "./...".
	Patterns []string
	// IncludeUnexported also records unexported named types. Off by
	// default: hints are authored against a module's public surface.
	IncludeUnexported bool
	// Extra options (properties, annotations, additional types) merged
	// into the resulting snapshot.
	Extra []factbase.Option
}

// Snapshot loads the configured packages and freezes their named types into
// a fact base.
func Snapshot(cfg Config) (*factbase.Snapshot, error) {
	patterns := cfg.Patterns
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}
	pkgs, err := packages.Load(&packages.Config{
		Mode: packages.NeedName | packages.NeedTypes,
		Dir:  cfg.Dir,
	}, patterns...)
	if err != nil {
		return nil, errors.Wrap(err, "gopkgs: load packages")
	}
	if n := packages.PrintErrors(pkgs); n > 0 {
		return nil, errors.Errorf("gopkgs: %d packages failed to load", n)
	}

	var names []string
	for _, pkg := range pkgs {
		if pkg.Types == nil {
			continue
		}
		base := path.Base(pkg.Types.Path())
		scope := pkg.Types.Scope()
		for _, name := range scope.Names() {
			obj, ok := scope.Lookup(name).(*types.TypeName)
			if !ok {
				continue
			}
			if !cfg.IncludeUnexported && !obj.Exported() {
				continue
			}
			names = append(names, base+"."+obj.Name())
		}
	}

	opts := append([]factbase.Option{factbase.WithTypes(names...)}, cfg.Extra...)
	return factbase.New(opts...)
}
