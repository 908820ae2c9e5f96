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

// Package hintfile loads hint records from YAML documents.
//
// A hint document is a flat list of records:
//
//	hints:
//	  - unit: org.example.JacksonConfiguration
//	    trigger:
//	      onType: com.fasterxml.jackson.databind.ObjectMapper
//	    imports: [org.example.JsonSupport]
//	    types:
//	      - name: com.fasterxml.jackson.databind.ObjectMapper
//	        access: [PUBLIC_METHODS, DECLARED_CONSTRUCTORS]
//	      - name: org.example.JsonView   # unspecified access -> default
//
// Besides onType, a trigger may use onMissingType, onAnnotation
// (type + annotation), onProperty (key + value) or onPropertySet (key);
// "self: true" at the record level marks a self-conditioned unit instead.
// Decoding is strict: unknown fields fail the whole document, keeping typos
// from silently dropping hints. Semantic validation (empty names, records
// contributing nothing) stays with the registry, which skips bad records
// individually.
package hintfile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"dirpx.dev/hfx/apis"
)

// document is the YAML shape of a hint file.
type document struct {
	Hints []entry `yaml:"hints"`
}

type entry struct {
	Unit    string       `yaml:"unit"`
	Trigger *triggerSpec `yaml:"trigger"`
	Self    bool         `yaml:"self"`
	Imports []string     `yaml:"imports"`
	Types   []typeSpec   `yaml:"types"`
}

type triggerSpec struct {
	OnType        string          `yaml:"onType"`
	OnMissingType string          `yaml:"onMissingType"`
	OnAnnotation  *annotationSpec `yaml:"onAnnotation"`
	OnProperty    *propertySpec   `yaml:"onProperty"`
	OnPropertySet string          `yaml:"onPropertySet"`
}

type annotationSpec struct {
	Type       string `yaml:"type"`
	Annotation string `yaml:"annotation"`
}

type propertySpec struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

type typeSpec struct {
	Name   string   `yaml:"name"`
	Access []string `yaml:"access"`
}

// Load reads one hint document. origin labels the records for diagnostics
// (usually the file path).
func Load(r io.Reader, origin string) ([]apis.Record, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc document
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "hintfile: decode %s", origin)
	}

	out := make([]apis.Record, 0, len(doc.Hints))
	for i, e := range doc.Hints {
		rec, err := e.record(origin, i)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// File loads one hint document from disk.
func File(path string) ([]apis.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "hintfile: open")
	}
	defer f.Close()
	return Load(f, path)
}

// Dir loads every .yaml/.yml file directly under dir, in sorted name order
// so record origins are reproducible between runs.
func Dir(dir string) ([]apis.Record, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "hintfile: read dir")
	}
	names := make([]string, 0, len(des))
	for _, de := range des {
		if de.IsDir() {
			continue
		}
		switch filepath.Ext(de.Name()) {
		case ".yaml", ".yml":
			names = append(names, de.Name())
		}
	}
	sort.Strings(names)

	var out []apis.Record
	for _, name := range names {
		recs, err := File(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		out = append(out, recs...)
	}
	return out, nil
}

// Source wraps a directory as an apis.Source, loading lazily on first use.
func Source(dir string) apis.Source {
	return dirSource(dir)
}

type dirSource string

// Records loads the directory's hint documents.
func (d dirSource) Records() ([]apis.Record, error) {
	return Dir(string(d))
}

// record maps one YAML entry to an apis.Record.
func (e entry) record(origin string, idx int) (apis.Record, error) {
	rec := apis.Record{
		Unit:          e.Unit,
		SelfTriggered: e.Self,
		Imports:       e.Imports,
		Origin:        fmt.Sprintf("%s#%d", origin, idx),
	}
	if e.Trigger != nil {
		cond, err := e.Trigger.condition(origin, idx)
		if err != nil {
			return apis.Record{}, err
		}
		rec.Trigger = cond
	}
	for _, ts := range e.Types {
		var access apis.Access
		for _, name := range ts.Access {
			bit, err := apis.ParseAccess(name)
			if err != nil {
				return apis.Record{}, errors.Wrapf(err, "hintfile: %s hint %d type %s", origin, idx, ts.Name)
			}
			access = access.Union(bit)
		}
		rec.Requests = append(rec.Requests, apis.Request{Type: ts.Name, Access: access})
	}
	return rec, nil
}

// condition maps a trigger spec to exactly one predicate.
func (t triggerSpec) condition(origin string, idx int) (apis.Condition, error) {
	var conds []apis.Condition
	if t.OnType != "" {
		conds = append(conds, apis.TypePresent(t.OnType))
	}
	if t.OnMissingType != "" {
		conds = append(conds, apis.TypeAbsent(t.OnMissingType))
	}
	if t.OnAnnotation != nil {
		conds = append(conds, apis.AnnotationPresent(t.OnAnnotation.Type, t.OnAnnotation.Annotation))
	}
	if t.OnProperty != nil {
		conds = append(conds, apis.PropertyEquals(t.OnProperty.Key, t.OnProperty.Value))
	}
	if t.OnPropertySet != "" {
		conds = append(conds, apis.PropertySet(t.OnPropertySet))
	}
	switch len(conds) {
	case 0:
		return apis.Condition{}, errors.Errorf("hintfile: %s hint %d: trigger sets no predicate", origin, idx)
	case 1:
		return conds[0], nil
	default:
		return apis.Condition{}, errors.Errorf("hintfile: %s hint %d: trigger sets %d predicates, want one", origin, idx, len(conds))
	}
}
