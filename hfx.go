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

package hfx

import (
	"errors"

	"dirpx.dev/hfx/apis"
	"dirpx.dev/hfx/builder"
	"dirpx.dev/hfx/config"
)

var (
	// ErrNilFactBase is returned when Resolve is called without a fact base.
	ErrNilFactBase = errors.New("hfx: nil fact base")
	// ErrNilSource is returned when Resolve is called without a hint source.
	ErrNilSource = errors.New("hfx: nil hint source")
)

// Resolve runs a full resolution pass: loads records from src, merges them
// into a registry, resolves the active set against fb and aggregates the
// access map.
//
// Malformed records and undecidable conditions are reported through
// Resolution.Warnings and never abort the pass. The only errors returned
// are nil inputs and a source that fails to produce records at all.
func Resolve(fb apis.FactBase, src apis.Source, opts ...config.Option) (*apis.Resolution, error) {
	if fb == nil {
		return nil, ErrNilFactBase
	}
	if src == nil {
		return nil, ErrNilSource
	}
	cfg := config.NewConfig(opts...)
	b := builder.New()

	reg := b.BuildRegistry(cfg, nil)
	recs, err := src.Records()
	if err != nil {
		return nil, err
	}

	var warns []apis.Warning
	for _, rec := range recs {
		if aerr := reg.Add(rec); aerr != nil {
			warns = append(warns, apis.Warning{
				Kind:   apis.WarnMalformedRecord,
				Unit:   rec.Unit,
				Detail: aerr.Error(),
			})
		}
	}
	warns = append(warns, reg.Warnings()...)

	ev := b.BuildEvaluator(cfg, nil)
	res := b.BuildResolver(cfg, ev, nil)
	active, rwarns := res.Resolve(reg, fb)
	warns = append(warns, rwarns...)

	agg := b.BuildAggregator(cfg, nil)
	access, origins := agg.Aggregate(active, reg)

	return &apis.Resolution{
		Active:   active,
		Access:   access,
		Origins:  origins,
		Warnings: warns,
	}, nil
}
