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
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"

	"github.com/openstandia/connector-amazon-cognito-user-pool/pkg/connector"
)

// Cognito custom attribute names start with "custom:". The ":" is reserved in
// XML identifiers on the IDM side, so it is rewritten to "_" and restored on
// the way back.
const (
	customAttrPrefix        = "custom:"
	escapedCustomAttrPrefix = "custom_"
)

// Cognito carries DATE_TIME attributes as bare YYYY-MM-DD strings.
const cognitoDateFormat = "2006-01-02"

// EscapeName rewrites the "custom:" prefix of a Cognito custom attribute name
// to the connector-safe "custom_" form. Names without the prefix are returned
// unchanged.
func EscapeName(name string) string {
	if strings.HasPrefix(name, customAttrPrefix) {
		return escapedCustomAttrPrefix + name[len(customAttrPrefix):]
	}
	return name
}

// UnescapeName restores an escaped name to the original Cognito name.
func UnescapeName(name string) string {
	if strings.HasPrefix(name, escapedCustomAttrPrefix) {
		return customAttrPrefix + name[len(escapedCustomAttrPrefix):]
	}
	return name
}

// ToConnectorAttribute converts a Cognito attribute to the connector's typed
// representation. Cognito returns every attribute as a string even if its
// logical type is numeric, boolean or date; the schema entry drives the
// conversion.
func ToConnectorAttribute(info connector.AttributeInfo, attr types.AttributeType) (connector.Attribute, error) {
	name := EscapeName(aws.ToString(attr.Name))
	value := aws.ToString(attr.Value)

	switch info.Type {
	case connector.TypeInteger:
		i, err := strconv.Atoi(value)
		if err != nil {
			return connector.Attribute{}, &connector.TypeConversionError{Attr: name, Value: value, Cause: err}
		}
		return connector.New(name, i), nil

	case connector.TypeTimestamp:
		t, err := parseCognitoTime(value)
		if err != nil {
			return connector.Attribute{}, &connector.TypeConversionError{Attr: name, Value: value, Cause: err}
		}
		return connector.New(name, t), nil

	case connector.TypeBoolean:
		// Permissive on purpose: only a case-insensitive "true" is true,
		// anything else is false and never an error.
		return connector.New(name, strings.EqualFold(value, "true")), nil

	default:
		return connector.New(name, value), nil
	}
}

// ToCognitoAttribute converts a connector attribute to Cognito's string-only
// wire representation. The schema map is keyed by the escaped name; an
// attribute not present in it fails before any native call.
func ToCognitoAttribute(schema connector.SchemaMap, attr connector.Attribute) (types.AttributeType, error) {
	value, err := toCognitoValue(schema, attr)
	if err != nil {
		return types.AttributeType{}, err
	}
	return types.AttributeType{
		Name:  aws.String(UnescapeName(attr.Name)),
		Value: aws.String(value),
	}, nil
}

func toCognitoValue(schema connector.SchemaMap, attr connector.Attribute) (string, error) {
	info, ok := schema[attr.Name]
	if !ok {
		return "", &connector.SchemaMismatchError{Attr: attr.Name}
	}

	if info.Type == connector.TypeTimestamp {
		// The format must be YYYY-MM-DD in Cognito. Any time-of-day held
		// locally is discarded on the wire.
		t, err := attr.TimeValue()
		if err != nil {
			return "", err
		}
		return t.Format(cognitoDateFormat), nil
	}

	return attr.StringValue()
}

// ToCognitoAttributeForDelete builds the wire form that removes an attribute.
// Cognito deletes the attribute when updating the value with "".
func ToCognitoAttributeForDelete(attr connector.Attribute) types.AttributeType {
	return types.AttributeType{
		Name:  aws.String(UnescapeName(attr.Name)),
		Value: aws.String(""),
	}
}

// parseCognitoTime accepts the date-only form Cognito uses for DATE_TIME
// attributes as well as a full instant, normalized to the local zone.
func parseCognitoTime(value string) (time.Time, error) {
	if t, err := time.ParseInLocation(cognitoDateFormat, value, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(time.Local), nil
}

// toZonedTime converts a native instant to the local system zone.
func toZonedTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return t.In(time.Local)
}
