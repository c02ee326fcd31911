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
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openstandia/connector-amazon-cognito-user-pool/pkg/connector"
)

func TestEscapeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "custom attribute",
			input:    "custom:employeeNumber",
			expected: "custom_employeeNumber",
		},
		{
			name:     "standard attribute",
			input:    "email",
			expected: "email",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "prefix only",
			input:    "custom:",
			expected: "custom_",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EscapeName(tt.input))
		})
	}
}

func TestUnescapeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "escaped custom attribute",
			input:    "custom_employeeNumber",
			expected: "custom:employeeNumber",
		},
		{
			name:     "standard attribute",
			input:    "email",
			expected: "email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UnescapeName(tt.input))
		})
	}
}

func TestEscapeNameRoundTrip(t *testing.T) {
	assert.Equal(t, "custom:dept", UnescapeName(EscapeName("custom:dept")))

	// A native name that already starts with "custom_" collides with the
	// escaped form and does not survive the round trip.
	assert.Equal(t, "custom:dept", UnescapeName("custom_dept"))

	// Escaping twice is a no-op: the second pass sees no "custom:" prefix.
	assert.Equal(t, "custom_dept", EscapeName(EscapeName("custom:dept")))
}

func TestToConnectorAttribute(t *testing.T) {
	tests := []struct {
		name      string
		info      connector.AttributeInfo
		attr      types.AttributeType
		expected  connector.Attribute
		expectErr bool
	}{
		{
			name: "string attribute",
			info: connector.AttributeInfo{Name: "email", Type: connector.TypeString},
			attr: types.AttributeType{Name: aws.String("email"), Value: aws.String("foo@example.com")},
			expected: connector.Attribute{
				Name:   "email",
				Values: []any{"foo@example.com"},
			},
		},
		{
			name: "integer attribute",
			info: connector.AttributeInfo{Name: "custom_age", Type: connector.TypeInteger},
			attr: types.AttributeType{Name: aws.String("custom:age"), Value: aws.String("42")},
			expected: connector.Attribute{
				Name:   "custom_age",
				Values: []any{42},
			},
		},
		{
			name:      "non-numeric value for integer attribute",
			info:      connector.AttributeInfo{Name: "custom_age", Type: connector.TypeInteger},
			attr:      types.AttributeType{Name: aws.String("custom:age"), Value: aws.String("abc")},
			expectErr: true,
		},
		{
			name: "boolean true attribute",
			info: connector.AttributeInfo{Name: "email_verified", Type: connector.TypeBoolean},
			attr: types.AttributeType{Name: aws.String("email_verified"), Value: aws.String("true")},
			expected: connector.Attribute{
				Name:   "email_verified",
				Values: []any{true},
			},
		},
		{
			name: "boolean uppercase TRUE attribute",
			info: connector.AttributeInfo{Name: "email_verified", Type: connector.TypeBoolean},
			attr: types.AttributeType{Name: aws.String("email_verified"), Value: aws.String("TRUE")},
			expected: connector.Attribute{
				Name:   "email_verified",
				Values: []any{true},
			},
		},
		{
			name: "non-boolean value is false, never an error",
			info: connector.AttributeInfo{Name: "email_verified", Type: connector.TypeBoolean},
			attr: types.AttributeType{Name: aws.String("email_verified"), Value: aws.String("garbage")},
			expected: connector.Attribute{
				Name:   "email_verified",
				Values: []any{false},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ToConnectorAttribute(tt.info, tt.attr)

			if tt.expectErr {
				require.Error(t, err)
				var convErr *connector.TypeConversionError
				assert.ErrorAs(t, err, &convErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestToConnectorAttributeTimestamp(t *testing.T) {
	info := connector.AttributeInfo{Name: "custom_joined", Type: connector.TypeTimestamp}

	t.Run("date only", func(t *testing.T) {
		result, err := ToConnectorAttribute(info, types.AttributeType{
			Name:  aws.String("custom:joined"),
			Value: aws.String("2024-03-15"),
		})
		require.NoError(t, err)

		got, ok := result.Values[0].(time.Time)
		require.True(t, ok)
		assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local), got)
	})

	t.Run("full instant", func(t *testing.T) {
		result, err := ToConnectorAttribute(info, types.AttributeType{
			Name:  aws.String("custom:joined"),
			Value: aws.String("2024-03-15T10:30:00Z"),
		})
		require.NoError(t, err)

		got, ok := result.Values[0].(time.Time)
		require.True(t, ok)
		assert.True(t, got.Equal(time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)))
		assert.Equal(t, time.Local.String(), got.Location().String())
	})

	t.Run("unparsable", func(t *testing.T) {
		_, err := ToConnectorAttribute(info, types.AttributeType{
			Name:  aws.String("custom:joined"),
			Value: aws.String("15/03/2024"),
		})
		var convErr *connector.TypeConversionError
		assert.ErrorAs(t, err, &convErr)
	})
}

func TestToCognitoAttribute(t *testing.T) {
	schema := connector.SchemaMap{
		"email":         {Name: "email", NativeName: "email", Type: connector.TypeString},
		"custom_age":    {Name: "custom_age", NativeName: "custom:age", Type: connector.TypeInteger},
		"custom_joined": {Name: "custom_joined", NativeName: "custom:joined", Type: connector.TypeTimestamp},
	}

	tests := []struct {
		name          string
		attr          connector.Attribute
		expectedName  string
		expectedValue string
		expectErr     bool
	}{
		{
			name:          "string attribute",
			attr:          connector.New("email", "foo@example.com"),
			expectedName:  "email",
			expectedValue: "foo@example.com",
		},
		{
			name:          "integer attribute stringified",
			attr:          connector.New("custom_age", 42),
			expectedName:  "custom:age",
			expectedValue: "42",
		},
		{
			name:          "timestamp is formatted date only",
			attr:          connector.New("custom_joined", time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)),
			expectedName:  "custom:joined",
			expectedValue: "2024-03-15",
		},
		{
			name:      "attribute not in schema",
			attr:      connector.New("unknown", "x"),
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ToCognitoAttribute(schema, tt.attr)

			if tt.expectErr {
				require.Error(t, err)
				var mismatch *connector.SchemaMismatchError
				assert.ErrorAs(t, err, &mismatch)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedName, aws.ToString(result.Name))
			assert.Equal(t, tt.expectedValue, aws.ToString(result.Value))
		})
	}
}

func TestToCognitoAttributeForDelete(t *testing.T) {
	result := ToCognitoAttributeForDelete(connector.New("custom_age"))

	assert.Equal(t, "custom:age", aws.ToString(result.Name))
	assert.Equal(t, "", aws.ToString(result.Value))
}
