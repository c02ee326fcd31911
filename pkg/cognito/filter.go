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

package cognito

import (
	"fmt"
	"strings"

	"github.com/openstandia/connector-amazon-cognito-user-pool/pkg/connector"
)

// renderUserFilter renders a connector filter to the ListUsers filter grammar
// (`field = "value"` or `field ^= "value"`):
// https://docs.aws.amazon.com/cognito-user-identity-pools/latest/APIReference/API_ListUsers.html
//
// Only a small set of native fields is searchable and custom attributes are
// not among them; an unsupported predicate renders to "" which means a full
// unfiltered scan.
func renderUserFilter(schema connector.SchemaMap, f *connector.Filter) string {
	if f == nil {
		return ""
	}

	native := nativeFilterField(schema, f.Attr)
	if native == "" {
		return ""
	}

	op := "="
	if f.Op == connector.FilterStartsWith {
		op = "^="
	}
	return fmt.Sprintf("%s %s %q", native, op, f.Value)
}

// nativeFilterField maps a connector attribute name to the native field the
// search grammar accepts. Custom attributes are not filterable.
func nativeFilterField(schema connector.SchemaMap, attr string) string {
	switch attr {
	case connector.UidName:
		return attrSub
	case connector.NameName:
		return attrUsername
	}

	if strings.HasPrefix(attr, escapedCustomAttrPrefix) || strings.HasPrefix(attr, customAttrPrefix) {
		return ""
	}

	if info, ok := schema[attr]; ok && info.NativeName != "" {
		return info.NativeName
	}
	return UnescapeName(attr)
}
