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
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"

	"github.com/openstandia/connector-amazon-cognito-user-pool/pkg/connector"
)

// Native attribute names.
//
// The username for the user must be unique within the user pool and cannot be
// changed after the user is created:
// https://docs.aws.amazon.com/cognito-user-identity-pools/latest/APIReference/API_AdminCreateUser.html
const (
	attrSub               = "sub"
	attrUsername          = "username"
	attrEmail             = "email"
	attrPreferredUsername = "preferred_username"
)

// User metadata attributes.
const (
	AttrUserCreateDate       = "UserCreateDate"
	AttrUserLastModifiedDate = "UserLastModifiedDate"
	AttrUserStatus           = "UserStatus"
)

// AttrGroups is the user-side association attribute. Not returned by default
// because resolving it costs one extra paginated call per result.
const AttrGroups = "groups"

// AttrPasswordPermanent makes AdminSetUserPassword mark the password
// permanent instead of temporary.
const AttrPasswordPermanent = "password_permanent"

// Group attributes.
const (
	attrGroupName        = "GroupName"
	AttrDescription      = "Description"
	AttrPrecedence       = "Precedence"
	AttrRoleArn          = "RoleArn"
	AttrCreationDate     = "CreationDate"
	AttrLastModifiedDate = "LastModifiedDate"
	AttrUsers            = "users"
)

// UserSchema projects the live user-pool definition into the connector-visible
// schema of the User object class.
func UserSchema(pool *types.UserPoolType) connector.ObjectClassInfo {
	caseSensitive := usernameCaseSensitive(pool)

	attrs := []connector.AttributeInfo{
		// sub (__UID__). Must be optional: it is not present for create.
		{
			Name:              connector.UidName,
			NativeName:        attrSub,
			Type:              connector.TypeString,
			Creatable:         false,
			Updatable:         false,
			Readable:          true,
			ReturnedByDefault: true,
		},
		// username (__NAME__). Updating it is prohibited by Cognito.
		{
			Name:              connector.NameName,
			NativeName:        attrUsername,
			Type:              connector.TypeString,
			Required:          true,
			Creatable:         true,
			Updatable:         false,
			Readable:          true,
			ReturnedByDefault: true,
			CaseIgnore:        !caseSensitive,
		},
		{
			Name:              connector.EnableName,
			Type:              connector.TypeBoolean,
			Creatable:         true,
			Updatable:         true,
			Readable:          true,
			ReturnedByDefault: true,
		},
		{
			Name:      connector.PasswordName,
			Type:      connector.TypeString,
			Creatable: true,
			Updatable: true,
		},
		{
			Name:      AttrPasswordPermanent,
			Type:      connector.TypeBoolean,
			Creatable: true,
			Updatable: true,
		},
	}

	for _, s := range pool.SchemaAttributes {
		name := stringValue(s.Name)
		if name == attrSub {
			continue
		}
		info := connector.AttributeInfo{
			Name:              EscapeName(name),
			NativeName:        name,
			Type:              mapAttrDataType(s.AttributeDataType),
			Required:          boolValue(s.Required),
			Creatable:         true,
			Updatable:         boolValue(s.Mutable),
			Readable:          true,
			ReturnedByDefault: true,
		}
		if (name == attrEmail || name == attrPreferredUsername) && !caseSensitive {
			info.CaseIgnore = true
		}
		attrs = append(attrs, info)
	}

	attrs = append(attrs,
		connector.AttributeInfo{
			Name:              AttrUserCreateDate,
			Type:              connector.TypeTimestamp,
			Readable:          true,
			ReturnedByDefault: true,
		},
		connector.AttributeInfo{
			Name:              AttrUserLastModifiedDate,
			Type:              connector.TypeTimestamp,
			Readable:          true,
			ReturnedByDefault: true,
		},
		connector.AttributeInfo{
			Name:              AttrUserStatus,
			Type:              connector.TypeString,
			Readable:          true,
			ReturnedByDefault: true,
		},
		connector.AttributeInfo{
			Name:        AttrGroups,
			Type:        connector.TypeString,
			MultiValued: true,
			Creatable:   true,
			Updatable:   true,
			Readable:    true,
		},
	)

	return connector.ObjectClassInfo{Class: connector.UserClass, Attributes: attrs}
}

// GroupSchema projects the Group object-class schema. Group attributes are
// fixed; the pool definition does not extend them.
func GroupSchema(_ *types.UserPoolType) connector.ObjectClassInfo {
	attrs := []connector.AttributeInfo{
		{
			Name:              connector.UidName,
			NativeName:        attrGroupName,
			Type:              connector.TypeString,
			Required:          true,
			Creatable:         true,
			Updatable:         false,
			Readable:          true,
			ReturnedByDefault: true,
		},
		{
			Name:              connector.NameName,
			NativeName:        attrGroupName,
			Type:              connector.TypeString,
			Required:          true,
			Creatable:         true,
			Updatable:         false,
			Readable:          true,
			ReturnedByDefault: true,
		},
		{
			Name:              AttrCreationDate,
			Type:              connector.TypeTimestamp,
			Readable:          true,
			ReturnedByDefault: true,
		},
		{
			Name:              AttrLastModifiedDate,
			Type:              connector.TypeTimestamp,
			Readable:          true,
			ReturnedByDefault: true,
		},
		{
			Name:              AttrDescription,
			Type:              connector.TypeString,
			Creatable:         true,
			Updatable:         true,
			Readable:          true,
			ReturnedByDefault: true,
		},
		{
			Name:              AttrPrecedence,
			Type:              connector.TypeInteger,
			Creatable:         true,
			Updatable:         true,
			Readable:          true,
			ReturnedByDefault: true,
		},
		{
			Name:              AttrRoleArn,
			Type:              connector.TypeString,
			Creatable:         true,
			Updatable:         true,
			Readable:          true,
			ReturnedByDefault: true,
		},
		{
			Name:        AttrUsers,
			Type:        connector.TypeString,
			MultiValued: true,
			Creatable:   true,
			Updatable:   true,
			Readable:    true,
		},
	}

	return connector.ObjectClassInfo{Class: connector.GroupClass, Attributes: attrs}
}

// BuildUserSchemaMap builds the connectorName -> AttributeInfo lookup used by
// the attribute codec and the search filter renderer.
func BuildUserSchemaMap(info connector.ObjectClassInfo) connector.SchemaMap {
	m := make(connector.SchemaMap, len(info.Attributes))
	for _, a := range info.Attributes {
		m[a.Name] = a
	}
	return m
}

// mapAttrDataType maps Cognito's schema attribute data type to the four
// logical connector types:
// https://docs.aws.amazon.com/cognito-user-identity-pools/latest/APIReference/API_SchemaAttributeType.html
func mapAttrDataType(t types.AttributeDataType) connector.AttrType {
	switch t {
	case types.AttributeDataTypeNumber:
		return connector.TypeInteger
	case types.AttributeDataTypeDatetime:
		return connector.TypeTimestamp
	case types.AttributeDataTypeBoolean:
		return connector.TypeBoolean
	default:
		return connector.TypeString
	}
}

func usernameCaseSensitive(pool *types.UserPoolType) bool {
	if pool == nil || pool.UsernameConfiguration == nil || pool.UsernameConfiguration.CaseSensitive == nil {
		return true
	}
	return *pool.UsernameConfiguration.CaseSensitive
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func boolValue(b *bool) bool {
	return b != nil && *b
}
