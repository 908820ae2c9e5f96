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

package apis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/hfx/apis"
)

func TestActiveSet_AddIsIdempotent(t *testing.T) {
	s := apis.NewActiveSet()

	assert.True(t, s.Add("A", apis.Cause{Kind: apis.CauseRoot}))
	// Re-adding reports "already present" and keeps the original cause.
	assert.False(t, s.Add("A", apis.Cause{Kind: apis.CauseImported, Via: "B"}))

	c, ok := s.Cause("A")
	require.True(t, ok)
	assert.Equal(t, apis.CauseRoot, c.Kind)
	assert.Equal(t, 1, s.Len())
}

func TestActiveSet_NamesSorted(t *testing.T) {
	s := apis.NewActiveSet()
	s.Add("b", apis.Cause{})
	s.Add("a", apis.Cause{})
	s.Add("c", apis.Cause{})
	assert.Equal(t, []string{"a", "b", "c"}, s.Names())
	assert.True(t, s.Contains("b"))
	assert.False(t, s.Contains("d"))
}

func TestAccessMap_AddUnions(t *testing.T) {
	m := make(apis.AccessMap)
	m.Add("t", apis.AccessPublicMethods)
	m.Add("t", apis.AccessPublicConstructors)
	m.Add("t", apis.AccessPublicMethods) // no-op under union
	assert.Equal(t, apis.AccessPublicMethods|apis.AccessPublicConstructors, m["t"])
	assert.Equal(t, []string{"t"}, m.Types())
}

func TestCause_String(t *testing.T) {
	assert.Equal(t, "root", apis.Cause{Kind: apis.CauseRoot}.String())
	assert.Equal(t, "imported by A", apis.Cause{Kind: apis.CauseImported, Via: "A"}.String())
	assert.Equal(t,
		"triggered: type com.example.Foo present",
		apis.Cause{Kind: apis.CauseTriggered, Trigger: apis.TypePresent("com.example.Foo")}.String())
}

func TestCondition_String(t *testing.T) {
	testCases := []struct {
		cond apis.Condition
		want string
	}{
		{apis.TypePresent("a.B"), "type a.B present"},
		{apis.TypeAbsent("a.B"), "type a.B absent"},
		{apis.AnnotationPresent("a.B", "x.Y"), "type a.B annotated with x.Y"},
		{apis.PropertyEquals("k", "v"), `property k == "v"`},
		{apis.PropertySet("k"), "property k set"},
		{apis.Condition{}, "invalid condition"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, tc.cond.String())
	}
}
