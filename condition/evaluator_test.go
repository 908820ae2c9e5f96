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

package condition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/hfx/apis"
	"dirpx.dev/hfx/condition"
	"dirpx.dev/hfx/config"
	"dirpx.dev/hfx/factbase"
)

func world(t *testing.T) apis.FactBase {
	t.Helper()
	fb, err := factbase.New(
		factbase.WithTypes("com.example.Foo"),
		factbase.WithAnnotation("com.example.Config", "org.spring.Configuration"),
		factbase.WithProperty("json.enabled", "true"),
	)
	require.NoError(t, err)
	return fb
}

func TestEvaluate_Predicates(t *testing.T) {
	ev := condition.New(config.DefaultConfig())
	fb := world(t)

	testCases := []struct {
		description      string
		cond             apis.Condition
		want             bool
		wantUnresolvable bool
	}{
		{
			description: "present type",
			cond:        apis.TypePresent("com.example.Foo"),
			want:        true,
		},
		{
			description: "missing type is a legitimate false, not unresolvable",
			cond:        apis.TypePresent("com.example.Missing"),
			want:        false,
		},
		{
			description: "type absent",
			cond:        apis.TypeAbsent("com.example.Missing"),
			want:        true,
		},
		{
			description: "annotation present",
			cond:        apis.AnnotationPresent("com.example.Config", "org.spring.Configuration"),
			want:        true,
		},
		{
			description: "annotation missing on known type",
			cond:        apis.AnnotationPresent("com.example.Foo", "org.spring.Configuration"),
			want:        false,
		},
		{
			description:      "annotation on unknown type is unresolvable",
			cond:             apis.AnnotationPresent("com.example.Missing", "org.spring.Configuration"),
			wantUnresolvable: true,
		},
		{
			description: "property equals",
			cond:        apis.PropertyEquals("json.enabled", "true"),
			want:        true,
		},
		{
			description: "property differs",
			cond:        apis.PropertyEquals("json.enabled", "false"),
			want:        false,
		},
		{
			description:      "property missing is unresolvable",
			cond:             apis.PropertyEquals("absent.key", "x"),
			wantUnresolvable: true,
		},
		{
			description: "property set",
			cond:        apis.PropertySet("json.enabled"),
			want:        true,
		},
		{
			description: "property unset is a legitimate false",
			cond:        apis.PropertySet("absent.key"),
			want:        false,
		},
		{
			description:      "zero condition is unresolvable",
			cond:             apis.Condition{},
			wantUnresolvable: true,
		},
		{
			description:      "empty type reference is unresolvable",
			cond:             apis.TypePresent(""),
			wantUnresolvable: true,
		},
		{
			description:      "empty property key is unresolvable",
			cond:             apis.PropertySet(""),
			wantUnresolvable: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got, err := ev.Evaluate(tc.cond, fb)
			if tc.wantUnresolvable {
				// Fail-closed: unresolvable never evaluates true.
				assert.False(t, got)
				assert.ErrorIs(t, err, condition.ErrUnresolvable)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEvaluate_NilFactBase(t *testing.T) {
	ev := condition.New(config.DefaultConfig())
	got, err := ev.Evaluate(apis.TypePresent("com.example.Foo"), nil)
	assert.False(t, got)
	assert.ErrorIs(t, err, condition.ErrUnresolvable)
}

// countingFactBase counts queries so memoization is observable.
type countingFactBase struct {
	typeCalls int
}

func (c *countingFactBase) TypeExists(name string) bool {
	c.typeCalls++
	return name == "com.example.Foo"
}
func (c *countingFactBase) AnnotationPresent(string, string) bool { return false }
func (c *countingFactBase) PropertyValue(string) (string, bool)   { return "", false }

func TestEvaluate_MemoizesPerFactBase(t *testing.T) {
	ev := condition.New(config.NewConfig(config.WithEvalCacheSize(8)))
	cond := apis.TypePresent("com.example.Foo")

	fb1 := &countingFactBase{}
	for i := 0; i < 5; i++ {
		got, err := ev.Evaluate(cond, fb1)
		require.NoError(t, err)
		assert.True(t, got)
	}
	assert.Equal(t, 1, fb1.typeCalls, "repeated evaluation must hit the cache")

	// A different fact base must not see fb1's cached answers.
	fb2 := &countingFactBase{}
	_, err := ev.Evaluate(cond, fb2)
	require.NoError(t, err)
	assert.Equal(t, 1, fb2.typeCalls)
}

func TestEvaluate_UnresolvableIsCachedAndStable(t *testing.T) {
	ev := condition.New(config.DefaultConfig())
	fb := world(t)
	cond := apis.PropertyEquals("absent.key", "x")

	for i := 0; i < 3; i++ {
		got, err := ev.Evaluate(cond, fb)
		assert.False(t, got)
		assert.ErrorIs(t, err, condition.ErrUnresolvable)
	}
}
