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

// OperationOptions carries the query options the IDM passes to read
// operations.
type OperationOptions struct {
	// AttributesToGet is the explicit attribute selection list. nil means
	// "return the default attribute set".
	AttributesToGet []string

	// AllowPartialAttributeValues tells the connector to skip expensive
	// per-result association lookups and mark them as incomplete instead.
	AllowPartialAttributeValues bool
}

// ShouldReturn reports whether the named attribute belongs in the result.
// With no selection list every attribute is returned.
func (o OperationOptions) ShouldReturn(attr string) bool {
	if o.AttributesToGet == nil {
		return true
	}
	for _, a := range o.AttributesToGet {
		if a == attr {
			return true
		}
	}
	return false
}

// RequestedExplicitly reports whether the named attribute appears in the
// selection list. Unlike ShouldReturn, a nil list yields false; this drives
// the conditional fetch of not-returned-by-default associations.
func (o OperationOptions) RequestedExplicitly(attr string) bool {
	for _, a := range o.AttributesToGet {
		if a == attr {
			return true
		}
	}
	return false
}

// FilterOp is a predicate kind the native search grammar supports.
type FilterOp int

const (
	FilterEquals FilterOp = iota
	FilterStartsWith
)

// Filter is a single-predicate search filter, already translated by the
// framework from the IDM's filter expression. Only equality and prefix match
// survive translation; anything else arrives as a nil filter (full scan).
type Filter struct {
	Attr  string
	Op    FilterOp
	Value string
}

// ByName reports whether the filter is an equality match on the name.
func (f *Filter) ByName() bool {
	return f.Op == FilterEquals && f.Attr == NameName
}

// ByUid reports whether the filter is an equality match on the primary key.
func (f *Filter) ByUid() bool {
	return f.Op == FilterEquals && f.Attr == UidName
}
