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

package resolver_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/hfx/apis"
	"dirpx.dev/hfx/condition"
	"dirpx.dev/hfx/config"
	"dirpx.dev/hfx/factbase"
	"dirpx.dev/hfx/registry"
	"dirpx.dev/hfx/resolver"
)

func newResolver(t *testing.T) apis.Resolver {
	t.Helper()
	cfg := config.DefaultConfig()
	return resolver.New(cfg, condition.New(cfg))
}

func populate(t *testing.T, recs ...apis.Record) apis.Registry {
	t.Helper()
	reg := registry.New(config.DefaultConfig())
	for _, rec := range recs {
		require.NoError(t, reg.Add(rec))
	}
	return reg
}

func worldWith(t *testing.T, types ...string) apis.FactBase {
	t.Helper()
	fb, err := factbase.New(factbase.WithTypes(types...))
	require.NoError(t, err)
	return fb
}

// The scenario from the design discussion: Root (no trigger), ConfigA
// (triggered on TypeFoo, imports ConfigB), ConfigB (reachable only via
// import).
func scenarioRecords() []apis.Record {
	return []apis.Record{
		{Unit: "Root", Requests: []apis.Request{{Type: "com.example.RootType"}}},
		{
			Unit:     "ConfigA",
			Trigger:  apis.TypePresent("com.example.TypeFoo"),
			Imports:  []string{"ConfigB"},
			Requests: []apis.Request{{Type: "com.example.TypeX", Access: apis.AccessPublicMethods}},
		},
		{
			Unit:          "ConfigB",
			SelfTriggered: true,
			Requests:      []apis.Request{{Type: "com.example.TypeX", Access: apis.AccessPublicConstructors}},
		},
	}
}

func TestResolve_TriggerChain(t *testing.T) {
	res := newResolver(t)
	reg := populate(t, scenarioRecords()...)

	t.Run("TypeFoo present activates the whole chain", func(t *testing.T) {
		active, _ := res.Resolve(reg, worldWith(t, "com.example.TypeFoo"))
		assert.Equal(t, []string{"ConfigA", "ConfigB", "Root"}, active.Names())

		// Provenance: ConfigB entered via the import edge, ConfigA via
		// its trigger, Root as a root.
		c, ok := active.Cause("ConfigB")
		require.True(t, ok)
		assert.Equal(t, apis.CauseImported, c.Kind)
		assert.Equal(t, "ConfigA", c.Via)

		c, ok = active.Cause("ConfigA")
		require.True(t, ok)
		assert.Equal(t, apis.CauseTriggered, c.Kind)
		assert.Equal(t, apis.TypePresent("com.example.TypeFoo"), c.Trigger)

		c, ok = active.Cause("Root")
		require.True(t, ok)
		assert.Equal(t, apis.CauseRoot, c.Kind)
	})

	t.Run("TypeFoo absent leaves only Root", func(t *testing.T) {
		active, _ := res.Resolve(reg, worldWith(t))
		assert.Equal(t, []string{"Root"}, active.Names())
	})
}

func TestResolve_ImportImpliesActivation(t *testing.T) {
	// B's own trigger is false; the import from active A must activate B
	// anyway (import edges OR with self-triggering).
	res := newResolver(t)
	reg := populate(t,
		apis.Record{Unit: "A", Imports: []string{"B"}},
		apis.Record{Unit: "B", Trigger: apis.TypePresent("com.example.Missing"), Requests: []apis.Request{{Type: "t"}}},
	)

	active, _ := res.Resolve(reg, worldWith(t))
	assert.True(t, active.Contains("B"))
	c, _ := active.Cause("B")
	assert.Equal(t, apis.CauseImported, c.Kind)
}

func TestResolve_CyclicImports(t *testing.T) {
	t.Run("cycle reached from a root terminates and activates both", func(t *testing.T) {
		res := newResolver(t)
		reg := populate(t,
			apis.Record{Unit: "Root", Imports: []string{"A"}},
			apis.Record{Unit: "A", Imports: []string{"B"}},
			apis.Record{Unit: "B", Imports: []string{"A"}},
		)
		active, warns := res.Resolve(reg, worldWith(t))
		assert.Equal(t, []string{"A", "B", "Root"}, active.Names())
		assert.Empty(t, warns)
		// Bounded by the unit count.
		assert.LessOrEqual(t, active.Len(), 3)
	})

	t.Run("cycle with no entry point never self-activates", func(t *testing.T) {
		res := newResolver(t)
		// A and B trigger only on each other's activation via imports;
		// neither is a root and neither self-condition holds.
		reg := populate(t,
			apis.Record{Unit: "A", SelfTriggered: true, Imports: []string{"B"}},
			apis.Record{Unit: "B", SelfTriggered: true, Imports: []string{"A"}},
		)
		active, _ := res.Resolve(reg, worldWith(t))
		assert.Equal(t, 0, active.Len())
	})
}

func TestResolve_SelfConditionedUnit(t *testing.T) {
	res := newResolver(t)
	reg := populate(t,
		apis.Record{Unit: "com.example.AutoConfig", SelfTriggered: true, Requests: []apis.Request{{Type: "t"}}},
	)

	// Own type present: active.
	active, _ := res.Resolve(reg, worldWith(t, "com.example.AutoConfig"))
	assert.True(t, active.Contains("com.example.AutoConfig"))
	c, _ := active.Cause("com.example.AutoConfig")
	assert.Equal(t, apis.CauseTriggered, c.Kind)
	assert.Equal(t, apis.TypePresent("com.example.AutoConfig"), c.Trigger)

	// Own type absent: inactive. Distinct from a root, which is active
	// in every world.
	active, _ = res.Resolve(reg, worldWith(t))
	assert.False(t, active.Contains("com.example.AutoConfig"))
}

func TestResolve_FailClosedOnUnresolvableCondition(t *testing.T) {
	res := newResolver(t)
	reg := populate(t,
		apis.Record{
			Unit:     "Flaky",
			Trigger:  apis.PropertyEquals("absent.key", "x"),
			Requests: []apis.Request{{Type: "t"}},
		},
	)

	active, warns := res.Resolve(reg, worldWith(t))
	assert.False(t, active.Contains("Flaky"), "unresolvable must never activate")
	require.Len(t, warns, 1)
	assert.Equal(t, apis.WarnUnresolvableCondition, warns[0].Kind)
	assert.Equal(t, "Flaky", warns[0].Unit)
}

func TestResolve_DanglingImportWarns(t *testing.T) {
	res := newResolver(t)
	reg := populate(t,
		apis.Record{Unit: "Root", Imports: []string{"Nowhere"}},
	)

	active, warns := res.Resolve(reg, worldWith(t))
	assert.Equal(t, []string{"Root"}, active.Names())
	require.Len(t, warns, 1)
	assert.Equal(t, apis.WarnDanglingImport, warns[0].Kind)
}

// permutedRegistry shuffles unit iteration order to exercise confluence.
type permutedRegistry struct {
	apis.Registry
	rng *rand.Rand
}

func (p *permutedRegistry) Units() []apis.Unit {
	units := p.Registry.Units()
	p.rng.Shuffle(len(units), func(i, j int) {
		units[i], units[j] = units[j], units[i]
	})
	return units
}

func TestResolve_MembershipIsOrderIndependent(t *testing.T) {
	res := newResolver(t)
	reg := populate(t,
		apis.Record{Unit: "Root1", Imports: []string{"Shared"}},
		apis.Record{Unit: "Root2", Imports: []string{"Shared", "Leaf"}},
		apis.Record{Unit: "Shared", Imports: []string{"Leaf"}},
		apis.Record{Unit: "Leaf", Requests: []apis.Request{{Type: "t"}}},
		apis.Record{Unit: "Cond", Trigger: apis.TypePresent("com.example.TypeFoo"), Imports: []string{"Leaf"}},
		apis.Record{Unit: "Dead", Trigger: apis.TypePresent("com.example.Missing"), Requests: []apis.Request{{Type: "u"}}},
	)
	fb := worldWith(t, "com.example.TypeFoo")

	want, _ := res.Resolve(reg, fb)
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 25; i++ {
		got, _ := res.Resolve(&permutedRegistry{Registry: reg, rng: rng}, fb)
		assert.Equal(t, want.Names(), got.Names(), "permutation %d changed membership", i)
	}
}

func TestResolve_NilRegistry(t *testing.T) {
	res := newResolver(t)
	active, warns := res.Resolve(nil, worldWith(t))
	assert.Equal(t, 0, active.Len())
	assert.Empty(t, warns)
}
