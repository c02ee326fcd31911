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
	"github.com/openstandia/connector-amazon-cognito-user-pool/pkg/connector"
)

// attrRole classifies an incoming attribute so handlers dispatch on a role
// resolved once per attribute instead of re-matching names inline.
type attrRole int

const (
	rolePlain attrRole = iota
	roleUid
	roleName
	roleEnable
	rolePassword
	rolePasswordPermanent
	roleAssociation
	roleDescription
	rolePrecedence
	roleRoleArn
)

var userAttrRoles = map[string]attrRole{
	connector.UidName:      roleUid,
	connector.NameName:     roleName,
	connector.EnableName:   roleEnable,
	connector.PasswordName: rolePassword,
	AttrPasswordPermanent:  rolePasswordPermanent,
	AttrGroups:             roleAssociation,
}

var groupAttrRoles = map[string]attrRole{
	connector.UidName:  roleUid,
	connector.NameName: roleName,
	AttrDescription:    roleDescription,
	AttrPrecedence:     rolePrecedence,
	AttrRoleArn:        roleRoleArn,
	AttrUsers:          roleAssociation,
}
