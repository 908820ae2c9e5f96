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

// Registry accumulates hint records and assembles them into configuration
// units. It is populated fully before resolution begins and is read-only
// during resolution.
type Registry interface {
	// Add validates and stores one record. Malformed records yield an
	// error and leave the registry unchanged; callers skip them and keep
	// going (partial-failure tolerance).
	Add(rec Record) error
	// Unit returns the assembled unit by name.
	Unit(name string) (Unit, bool)
	// Units returns every assembled unit, sorted by name.
	Units() []Unit
	// RecordsOf returns the stored records owned by a unit, in insertion
	// order.
	RecordsOf(unit string) []Record
	// Count returns the number of stored records.
	Count() int
	// Warnings returns non-fatal findings gathered while merging records
	// (trigger conflicts, shadowed self triggers).
	Warnings() []Warning
	// Reset clears all state.
	Reset()
}
