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

// every capability bit, in declaration order.
var allBits = []apis.Access{
	apis.AccessResource,
	apis.AccessClassMetadata,
	apis.AccessPublicMethods,
	apis.AccessDeclaredMethods,
	apis.AccessPublicConstructors,
	apis.AccessDeclaredConstructors,
	apis.AccessPublicFields,
	apis.AccessDeclaredFields,
}

func TestAccess_UnionLaws(t *testing.T) {
	for _, a := range allBits {
		for _, b := range allBits {
			// Commutative.
			assert.Equal(t, a.Union(b), b.Union(a))
			// Idempotent: merging twice is merging once.
			assert.Equal(t, a.Union(b), a.Union(b).Union(b))
			for _, c := range allBits {
				// Associative.
				assert.Equal(t, a.Union(b).Union(c), a.Union(b.Union(c)))
			}
		}
	}
}

func TestAccess_AllIsUnionOfEverything(t *testing.T) {
	var acc apis.Access
	for _, bit := range allBits {
		acc = acc.Union(bit)
	}
	assert.Equal(t, apis.AccessAll, acc)
	for _, bit := range allBits {
		assert.True(t, apis.AccessAll.Has(bit))
	}
}

func TestAccess_StringStableFormat(t *testing.T) {
	assert.Equal(t, "NONE", apis.AccessNone.String())
	assert.Equal(t, "ALL", apis.AccessAll.String())
	assert.Equal(t, "PUBLIC_METHODS", apis.AccessPublicMethods.String())

	// Bit order, not argument order, determines rendering.
	a := apis.AccessDeclaredFields.Union(apis.AccessResource)
	b := apis.AccessResource.Union(apis.AccessDeclaredFields)
	assert.Equal(t, "RESOURCE|DECLARED_FIELDS", a.String())
	assert.Equal(t, a.String(), b.String())
}

func TestParseAccess_RoundTripsSingleLevels(t *testing.T) {
	for _, bit := range allBits {
		got, err := apis.ParseAccess(bit.String())
		require.NoError(t, err)
		assert.Equal(t, bit, got)
	}

	got, err := apis.ParseAccess("ALL")
	require.NoError(t, err)
	assert.Equal(t, apis.AccessAll, got)

	_, err = apis.ParseAccess("EVERYTHING")
	assert.ErrorIs(t, err, apis.ErrUnknownAccess)
}
