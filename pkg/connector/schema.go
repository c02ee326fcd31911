/*
Copyright Nomura Research Institute, Ltd.

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

package connector

// AttrType is the logical data type of a connector attribute. The native API
// carries every value as a string; the type drives the conversion.
type AttrType int

const (
	TypeString AttrType = iota
	TypeInteger
	TypeBoolean
	TypeTimestamp
)

func (t AttrType) String() string {
	switch t {
	case TypeInteger:
		return "Integer"
	case TypeBoolean:
		return "Boolean"
	case TypeTimestamp:
		return "Timestamp"
	default:
		return "String"
	}
}

// AttributeInfo describes one attribute of an object class as projected from
// the live user-pool schema. Immutable once built.
type AttributeInfo struct {
	Name              string
	NativeName        string
	Type              AttrType
	Required          bool
	MultiValued       bool
	Creatable         bool
	Updatable         bool
	Readable          bool
	ReturnedByDefault bool
	CaseIgnore        bool
}

// SchemaMap is the connectorName -> AttributeInfo lookup used for both
// directions of attribute translation. Treated as immutable after construction
// and safe to share across concurrent operations; rebuilding it is an explicit
// act tied to schema refresh.
type SchemaMap map[string]AttributeInfo

// ObjectClassInfo is the connector-visible schema of one object class.
type ObjectClassInfo struct {
	Class      ObjectClass
	Attributes []AttributeInfo
}

// Attribute returns the attribute info with the given connector name.
func (i ObjectClassInfo) Attribute(name string) (AttributeInfo, bool) {
	for _, a := range i.Attributes {
		if a.Name == name {
			return a, true
		}
	}
	return AttributeInfo{}, false
}

// Schema is the full projected schema for the connector.
type Schema struct {
	User  ObjectClassInfo
	Group ObjectClassInfo
}
