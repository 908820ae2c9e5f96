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

// Request asks for one type to retain reflective accessibility at a given
// level. Multiple requests for the same type are legal; they merge by union.
type Request struct {
	// Type is the canonical type identity (see package typeref).
	Type string
	// Access is the requested capability set. AccessNone means the author
	// left the level unspecified; aggregation substitutes the configured
	// default (AccessAll unless overridden).
	Access Access
}

// Record is the authoring-time hint artifact: one contribution to an owning
// configuration unit. Many records may target the same unit; they accumulate
// in a Registry.
type Record struct {
	// Unit names the owning configuration unit. Required.
	Unit string

	// Trigger is an explicit trigger override. Zero means "no explicit
	// trigger"; the unit is then a root, or self-conditioned if
	// SelfTriggered is set. An explicit trigger takes precedence over
	// SelfTriggered.
	Trigger Condition

	// SelfTriggered marks the unit as active iff its own type is present
	// in the fact base. This models a configuration class whose hints
	// apply exactly when the class itself is part of the closed world,
	// as opposed to a root hint host that is always active.
	SelfTriggered bool

	// Imports lists configuration units this record pulls in transitively.
	// An import of an active unit activates the imported unit
	// unconditionally.
	Imports []string

	// Requests are the type-accessibility requests this record contributes.
	Requests []Request

	// Origin identifies where the record was authored (file, provider id).
	// Purely diagnostic; empty is fine.
	Origin string
}
