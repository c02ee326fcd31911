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

import (
	"fmt"
	"strconv"
	"time"
)

// Operational attribute names shared with the IDM side. These are the
// framework-reserved names; everything else is resolved through the schema map.
const (
	UidName      = "__UID__"
	NameName     = "__NAME__"
	EnableName   = "__ENABLE__"
	PasswordName = "__PASSWORD__"
)

// ObjectClass identifies the kind of object an operation targets.
type ObjectClass string

const (
	UserClass  ObjectClass = "User"
	GroupClass ObjectClass = "Group"
)

// Attribute is the typed, generically-named attribute representation exchanged
// with the IDM side. Values hold typed scalars (string, int, bool, time.Time).
type Attribute struct {
	Name   string
	Values []any

	// Incomplete marks an attribute whose values were deliberately not
	// fetched (partial attribute values requested).
	Incomplete bool
}

// New builds an attribute from a name and values.
func New(name string, values ...any) Attribute {
	return Attribute{Name: name, Values: values}
}

// StringValue returns the single value stringified.
func (a Attribute) StringValue() (string, error) {
	v, err := a.singleValue()
	if err != nil {
		return "", err
	}
	switch t := v.(type) {
	case string:
		return t, nil
	case int:
		return strconv.Itoa(t), nil
	case int32:
		return strconv.FormatInt(int64(t), 10), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case bool:
		return strconv.FormatBool(t), nil
	default:
		return fmt.Sprintf("%v", t), nil
	}
}

// BoolValue returns the single value as a bool.
func (a Attribute) BoolValue() (bool, error) {
	v, err := a.singleValue()
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, &InvalidAttributeError{Attr: a.Name, Reason: fmt.Sprintf("expected boolean value, got %T", v)}
	}
	return b, nil
}

// IntValue returns the single value as an int.
func (a Attribute) IntValue() (int, error) {
	v, err := a.singleValue()
	if err != nil {
		return 0, err
	}
	switch t := v.(type) {
	case int:
		return t, nil
	case int32:
		return int(t), nil
	case int64:
		return int(t), nil
	default:
		return 0, &InvalidAttributeError{Attr: a.Name, Reason: fmt.Sprintf("expected integer value, got %T", v)}
	}
}

// TimeValue returns the single value as a time.Time.
func (a Attribute) TimeValue() (time.Time, error) {
	v, err := a.singleValue()
	if err != nil {
		return time.Time{}, err
	}
	t, ok := v.(time.Time)
	if !ok {
		return time.Time{}, &InvalidAttributeError{Attr: a.Name, Reason: fmt.Sprintf("expected timestamp value, got %T", v)}
	}
	return t, nil
}

// StringValues stringifies every value of a multi-valued attribute.
func (a Attribute) StringValues() []string {
	out := make([]string, 0, len(a.Values))
	for _, v := range a.Values {
		if s, ok := v.(string); ok {
			out = append(out, s)
			continue
		}
		out = append(out, fmt.Sprintf("%v", v))
	}
	return out
}

func (a Attribute) singleValue() (any, error) {
	if len(a.Values) == 0 {
		return nil, &InvalidAttributeError{Attr: a.Name, Reason: "no value provided"}
	}
	if len(a.Values) > 1 {
		return nil, &InvalidAttributeError{Attr: a.Name, Reason: "multiple values provided for single-valued attribute"}
	}
	return a.Values[0], nil
}

// AttributeDelta describes one attribute modification in an update operation.
// Either Replace is set, or Add/Remove carry an explicit membership delta.
// A delta with no values at all means "delete this attribute".
type AttributeDelta struct {
	Name    string
	Add     []any
	Remove  []any
	Replace []any
}

// IsDelete reports whether the delta removes the attribute entirely.
func (d AttributeDelta) IsDelete() bool {
	return len(d.Add) == 0 && len(d.Remove) == 0 && len(d.Replace) == 0
}

// ReplaceAttribute views the delta's replacement values as a plain attribute.
func (d AttributeDelta) ReplaceAttribute() Attribute {
	return Attribute{Name: d.Name, Values: d.Replace}
}

// Uid is an identity reference: the immutable primary key of an entity plus
// an optional, possibly stale, human-readable name hint.
type Uid struct {
	Value    string
	NameHint string
}

// Object is a connector-visible entity snapshot returned by read operations.
type Object struct {
	Class      ObjectClass
	Uid        Uid
	Name       string
	Attributes []Attribute
}

// Attribute returns the named attribute, if present.
func (o Object) Attribute(name string) (Attribute, bool) {
	for _, a := range o.Attributes {
		if a.Name == name {
			return a, true
		}
	}
	return Attribute{}, false
}

// ResultsHandler consumes one search result. Returning false stops the search.
type ResultsHandler func(Object) bool
