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

package apis

import (
	"errors"
	"strings"
)

// Access is a bit-set of independent reflective capabilities granted to a
// type in the closed world.
//
// # Contract
//
//   - Access values combine by bitwise union (Union). Union is commutative,
//     associative and idempotent; merging the same level twice is a no-op.
//   - The aggregate access for a type MUST always be the union of every
//     individually requested level, never a last-write overwrite.
//   - AccessNone ("no bits") means "no explicit level was requested" and is
//     distinct from "no entry at all" in an AccessMap. Aggregation replaces
//     AccessNone with Config.DefaultAccess before merging.
type Access uint16

const (
	// AccessResource allows loading the type's bytes as a resource.
	AccessResource Access = 1 << iota
	// AccessClassMetadata allows introspecting the class shape without
	// touching members (names, modifiers, hierarchy).
	AccessClassMetadata
	// AccessPublicMethods allows invoking public methods reflectively.
	AccessPublicMethods
	// AccessDeclaredMethods allows invoking declared (incl. non-public) methods.
	AccessDeclaredMethods
	// AccessPublicConstructors allows reflective construction via public constructors.
	AccessPublicConstructors
	// AccessDeclaredConstructors allows construction via declared constructors.
	AccessDeclaredConstructors
	// AccessPublicFields allows reading/writing public fields.
	AccessPublicFields
	// AccessDeclaredFields allows reading/writing declared fields.
	AccessDeclaredFields
)

const (
	// AccessNone carries no capability bits. See the type contract for the
	// difference between AccessNone and an absent map entry.
	AccessNone Access = 0

	// AccessAll is the union of every capability and the default applied to
	// requests that leave the level unspecified.
	AccessAll = AccessResource | AccessClassMetadata |
		AccessPublicMethods | AccessDeclaredMethods |
		AccessPublicConstructors | AccessDeclaredConstructors |
		AccessPublicFields | AccessDeclaredFields
)

// ErrUnknownAccess is returned by ParseAccess for an unrecognized level name.
var ErrUnknownAccess = errors.New("hfx(apis): unknown access level name")

// accessNames lists capability names in bit order. The order is part of the
// stable String() format consumed by diff-based tooling.
var accessNames = []struct {
	bit  Access
	name string
}{
	{AccessResource, "RESOURCE"},
	{AccessClassMetadata, "CLASS_METADATA"},
	{AccessPublicMethods, "PUBLIC_METHODS"},
	{AccessDeclaredMethods, "DECLARED_METHODS"},
	{AccessPublicConstructors, "PUBLIC_CONSTRUCTORS"},
	{AccessDeclaredConstructors, "DECLARED_CONSTRUCTORS"},
	{AccessPublicFields, "PUBLIC_FIELDS"},
	{AccessDeclaredFields, "DECLARED_FIELDS"},
}

// Union returns the combination of a and b.
func (a Access) Union(b Access) Access {
	return a | b
}

// Has reports whether every bit of b is present in a.
func (a Access) Has(b Access) bool {
	return a&b == b
}

// String renders the bit-set in a stable, diffable form: "NONE", "ALL", or
// capability names joined by "|" in bit order.
func (a Access) String() string {
	switch a {
	case AccessNone:
		return "NONE"
	case AccessAll:
		return "ALL"
	}
	parts := make([]string, 0, len(accessNames))
	for _, n := range accessNames {
		if a.Has(n.bit) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseAccess maps a single capability name (as produced by String, plus the
// aliases "ALL" and "NONE") back to its bit value.
func ParseAccess(name string) (Access, error) {
	switch name {
	case "ALL":
		return AccessAll, nil
	case "NONE":
		return AccessNone, nil
	}
	for _, n := range accessNames {
		if n.name == name {
			return n.bit, nil
		}
	}
	return AccessNone, ErrUnknownAccess
}
