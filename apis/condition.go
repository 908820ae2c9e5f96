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

import "fmt"

// CondKind selects the closed-world predicate a Condition expresses.
//
// # Contract
//
//   - Kinds are stable public API; new kinds may be added, existing kinds
//     MUST NOT change semantics in breaking ways.
//   - The zero value (CondInvalid) never evaluates true. Evaluators MUST
//     treat it as unresolvable (fail-closed), not as an error that aborts
//     a resolution pass.
type CondKind int

const (
	// CondInvalid is the zero value: an absent or malformed predicate.
	CondInvalid CondKind = iota
	// CondTypePresent holds when the referenced type exists in the fact base.
	CondTypePresent
	// CondTypeAbsent holds when the referenced type does not exist.
	CondTypeAbsent
	// CondAnnotationPresent holds when the referenced type exists and
	// carries the referenced annotation.
	CondAnnotationPresent
	// CondPropertyEquals holds when the property key resolves to the
	// expected value.
	CondPropertyEquals
	// CondPropertySet holds when the property key has any value at all.
	CondPropertySet
)

// Condition is an immutable closed-world predicate attached to a
// configuration unit as its trigger. Conditions are plain comparable data;
// all evaluation lives in an Evaluator.
type Condition struct {
	// Kind selects the predicate. CondInvalid means "no condition".
	Kind CondKind
	// Type is the canonical type name for the type/annotation kinds.
	Type string
	// Annotation is the annotation identity for CondAnnotationPresent.
	Annotation string
	// Key and Value parameterize the property kinds. Value is unused for
	// CondPropertySet.
	Key, Value string
}

// TypePresent builds a "type exists on the classpath" condition.
func TypePresent(typeName string) Condition {
	return Condition{Kind: CondTypePresent, Type: typeName}
}

// TypeAbsent builds a "type is missing from the classpath" condition.
func TypeAbsent(typeName string) Condition {
	return Condition{Kind: CondTypeAbsent, Type: typeName}
}

// AnnotationPresent builds a "type carries annotation" condition.
func AnnotationPresent(typeName, annotation string) Condition {
	return Condition{Kind: CondAnnotationPresent, Type: typeName, Annotation: annotation}
}

// PropertyEquals builds a "property key has value" condition.
func PropertyEquals(key, value string) Condition {
	return Condition{Kind: CondPropertyEquals, Key: key, Value: value}
}

// PropertySet builds a "property key is set" condition.
func PropertySet(key string) Condition {
	return Condition{Kind: CondPropertySet, Key: key}
}

// IsZero reports whether c carries no predicate at all.
func (c Condition) IsZero() bool {
	return c == Condition{}
}

// String renders the predicate for diagnostics, e.g.
// "type com.example.Foo present" or "property spring.json.enabled == true".
func (c Condition) String() string {
	switch c.Kind {
	case CondTypePresent:
		return fmt.Sprintf("type %s present", c.Type)
	case CondTypeAbsent:
		return fmt.Sprintf("type %s absent", c.Type)
	case CondAnnotationPresent:
		return fmt.Sprintf("type %s annotated with %s", c.Type, c.Annotation)
	case CondPropertyEquals:
		return fmt.Sprintf("property %s == %q", c.Key, c.Value)
	case CondPropertySet:
		return fmt.Sprintf("property %s set", c.Key)
	default:
		return "invalid condition"
	}
}
