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
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"

	"github.com/openstandia/connector-amazon-cognito-user-pool/internal/platform/logger"
	"github.com/openstandia/connector-amazon-cognito-user-pool/pkg/connector"
)

// GroupHandler implements create/update/delete/search for the Group object
// class. Group names are their own primary key; Cognito forbids renaming.
type GroupHandler struct {
	api        CognitoAPI
	userPoolID string
	assoc      *associationHandler
}

// NewGroupHandler creates a group handler bound to one user pool.
func NewGroupHandler(api CognitoAPI, userPoolID string) *GroupHandler {
	return &GroupHandler{
		api:        api,
		userPoolID: userPoolID,
		assoc:      newAssociationHandler(api, userPoolID),
	}
}

// Create provisions a new group:
// https://docs.aws.amazon.com/cognito-user-identity-pools/latest/APIReference/API_CreateGroup.html
//
// Member assignment needs AdminAddUserToGroup calls after CreateGroup, so the
// operation is not a single transaction; a vanished group or user during the
// member sync surfaces as retryable so the IDM can re-drive the create.
func (h *GroupHandler) Create(ctx context.Context, attrs []connector.Attribute) (connector.Uid, error) {
	if len(attrs) == 0 {
		return connector.Uid{}, &connector.InvalidAttributeError{Reason: "attributes not provided or empty"}
	}

	input := &cognitoidentityprovider.CreateGroupInput{
		UserPoolId: aws.String(h.userPoolID),
	}
	var users []string

	for _, a := range attrs {
		switch groupAttrRoles[a.Name] {
		case roleUid, roleName:
			v, err := a.StringValue()
			if err != nil {
				return connector.Uid{}, err
			}
			input.GroupName = aws.String(v)
		case roleDescription:
			v, err := a.StringValue()
			if err != nil {
				return connector.Uid{}, err
			}
			input.Description = aws.String(v)
		case rolePrecedence:
			i, err := a.IntValue()
			if err != nil {
				return connector.Uid{}, err
			}
			input.Precedence = aws.Int32(int32(i))
		case roleRoleArn:
			v, err := a.StringValue()
			if err != nil {
				return connector.Uid{}, err
			}
			input.RoleArn = aws.String(v)
		case roleAssociation:
			users = a.StringValues()
		default:
			return connector.Uid{}, &connector.SchemaMismatchError{Attr: a.Name}
		}
	}

	output, err := h.api.CreateGroup(ctx, input)
	if err != nil {
		if isResourceExists(err) {
			groupName := aws.ToString(input.GroupName)
			logger.Log.WithField("group", groupName).Warn("Group already exists when creating")
			return connector.Uid{}, &connector.AlreadyExistsError{Name: groupName, Class: connector.GroupClass, Cause: err}
		}
		return connector.Uid{}, translateError("CreateGroup", err)
	}

	groupName := aws.ToString(input.GroupName)
	if output.Group != nil && output.Group.GroupName != nil {
		groupName = *output.Group.GroupName
	}
	uid := connector.Uid{Value: groupName, NameHint: groupName}

	if err := h.assoc.syncUsersToGroup(ctx, groupName, users); err != nil {
		if isResourceNotFound(err) {
			logger.Log.WithField("group", groupName).Warn("Group was deleted when setting members after create")
			return uid, &connector.RetryableError{Reason: "group was deleted when setting members after create", Cause: err}
		}
		if isUserNotFound(err) {
			logger.Log.WithField("group", groupName).Warn("User was deleted when setting members after create")
			return uid, &connector.RetryableError{Reason: "user was deleted when setting members after create", Cause: err}
		}
		return uid, translateError("AdminAddUserToGroup", err)
	}

	return uid, nil
}

// Update applies a set of attribute deltas:
// https://docs.aws.amazon.com/cognito-user-identity-pools/latest/APIReference/API_UpdateGroup.html
//
// Deleting a value uses the native sentinel of each field: "" for the
// description, 0 for the precedence, "" for the role ARN. UpdateGroup is
// issued only when one of those fields actually changed; the member sync
// follows as separate calls with the same non-transactional caveat as Create.
func (h *GroupHandler) Update(ctx context.Context, uid connector.Uid, deltas []connector.AttributeDelta) (connector.Uid, error) {
	if uid.Value == "" {
		return connector.Uid{}, &connector.InvalidAttributeError{Attr: connector.UidName, Reason: "uid not provided"}
	}

	input := &cognitoidentityprovider.UpdateGroupInput{
		UserPoolId: aws.String(h.userPoolID),
		GroupName:  aws.String(uid.Value),
	}
	changed := false
	var usersReplace []string
	var usersAdd, usersRemove []string
	haveMemberDelta := false

	for _, d := range deltas {
		role := groupAttrRoles[d.Name]

		if d.IsDelete() {
			switch role {
			case roleDescription:
				// Description is removed by setting "".
				input.Description = aws.String("")
				changed = true
			case rolePrecedence:
				// Precedence is removed by setting 0.
				input.Precedence = aws.Int32(0)
				changed = true
			case roleRoleArn:
				// RoleArn is removed by setting "".
				input.RoleArn = aws.String("")
				changed = true
			case roleAssociation:
				usersReplace = []string{}
			default:
				return connector.Uid{}, &connector.SchemaMismatchError{Attr: d.Name}
			}
			continue
		}

		switch role {
		case roleDescription:
			v, err := d.ReplaceAttribute().StringValue()
			if err != nil {
				return connector.Uid{}, err
			}
			input.Description = aws.String(v)
			changed = true
		case rolePrecedence:
			i, err := d.ReplaceAttribute().IntValue()
			if err != nil {
				return connector.Uid{}, err
			}
			input.Precedence = aws.Int32(int32(i))
			changed = true
		case roleRoleArn:
			v, err := d.ReplaceAttribute().StringValue()
			if err != nil {
				return connector.Uid{}, err
			}
			input.RoleArn = aws.String(v)
			changed = true
		case roleAssociation:
			if len(d.Replace) > 0 {
				usersReplace = d.ReplaceAttribute().StringValues()
			} else {
				usersAdd = connector.Attribute{Name: d.Name, Values: d.Add}.StringValues()
				usersRemove = connector.Attribute{Name: d.Name, Values: d.Remove}.StringValues()
				haveMemberDelta = true
			}
		case roleUid, roleName:
			return connector.Uid{}, &connector.InvalidAttributeError{Attr: d.Name, Reason: "group name cannot be updated"}
		default:
			return connector.Uid{}, &connector.SchemaMismatchError{Attr: d.Name}
		}
	}

	if changed {
		_, err := h.api.UpdateGroup(ctx, input)
		if err != nil {
			if isResourceNotFound(err) {
				logger.Log.WithField("uid", uid.Value).Warn("Group not found when updating")
				return connector.Uid{}, &connector.UnknownUidError{Uid: uid, Class: connector.GroupClass, Cause: err}
			}
			return connector.Uid{}, translateError("UpdateGroup", err)
		}
	}

	var err error
	if usersReplace != nil {
		err = h.assoc.syncUsersToGroup(ctx, uid.Value, usersReplace)
	} else if haveMemberDelta {
		err = h.assoc.applyUsersToGroup(ctx, uid.Value, usersAdd, usersRemove)
	}
	if err != nil {
		if isResourceNotFound(err) {
			logger.Log.WithField("uid", uid.Value).Warn("Group not found when updating members")
			return connector.Uid{}, &connector.UnknownUidError{Uid: uid, Class: connector.GroupClass, Cause: err}
		}
		if isUserNotFound(err) {
			logger.Log.WithField("uid", uid.Value).Warn("User not found when updating members")
			return connector.Uid{}, &connector.RetryableError{Reason: "user was deleted while updating members", Cause: err}
		}
		return connector.Uid{}, translateError("AdminAddUserToGroup", err)
	}

	return uid, nil
}

// Delete empties the group's membership, then removes the group:
// https://docs.aws.amazon.com/cognito-user-identity-pools/latest/APIReference/API_DeleteGroup.html
func (h *GroupHandler) Delete(ctx context.Context, uid connector.Uid) error {
	if uid.Value == "" {
		return &connector.InvalidAttributeError{Attr: connector.UidName, Reason: "uid not provided"}
	}

	if err := h.assoc.removeAllUsers(ctx, uid.Value); err != nil {
		if isResourceNotFound(err) {
			logger.Log.WithField("uid", uid.Value).Warn("Group not found when deleting")
			return &connector.UnknownUidError{Uid: uid, Class: connector.GroupClass, Cause: err}
		}
		return translateError("ListUsersInGroup", err)
	}

	_, err := h.api.DeleteGroup(ctx, &cognitoidentityprovider.DeleteGroupInput{
		UserPoolId: aws.String(h.userPoolID),
		GroupName:  aws.String(uid.Value),
	})
	if err != nil {
		if isResourceNotFound(err) {
			logger.Log.WithField("uid", uid.Value).Warn("Group not found when deleting")
			return &connector.UnknownUidError{Uid: uid, Class: connector.GroupClass, Cause: err}
		}
		return translateError("DeleteGroup", err)
	}
	return nil
}

// Search emits every group matching the filter. The native ListGroups call
// cannot filter server-side at all, so anything but a by-name/by-uid match is
// a full listing:
// https://docs.aws.amazon.com/cognito-user-identity-pools/latest/APIReference/API_ListGroups.html
func (h *GroupHandler) Search(ctx context.Context, f *connector.Filter, handle connector.ResultsHandler, opts connector.OperationOptions) error {
	if f != nil && (f.ByName() || f.ByUid()) {
		return h.getGroupByName(ctx, f.Value, handle, opts)
	}

	var token *string
	for {
		output, err := h.api.ListGroups(ctx, &cognitoidentityprovider.ListGroupsInput{
			UserPoolId: aws.String(h.userPoolID),
			NextToken:  token,
		})
		if err != nil {
			return translateError("ListGroups", err)
		}

		for _, g := range output.Groups {
			obj, err := h.toObject(ctx, g, opts)
			if err != nil {
				return err
			}
			if !handle(obj) {
				return nil
			}
		}

		token = output.NextToken
		if token == nil {
			return nil
		}
	}
}

func (h *GroupHandler) getGroupByName(ctx context.Context, groupName string, handle connector.ResultsHandler, opts connector.OperationOptions) error {
	output, err := h.api.GetGroup(ctx, &cognitoidentityprovider.GetGroupInput{
		UserPoolId: aws.String(h.userPoolID),
		GroupName:  aws.String(groupName),
	})
	if err != nil {
		if isResourceNotFound(err) {
			// Empty search result, not an error.
			return nil
		}
		return translateError("GetGroup", err)
	}
	if output.Group == nil {
		return nil
	}

	obj, err := h.toObject(ctx, *output.Group, opts)
	if err != nil {
		return err
	}
	handle(obj)
	return nil
}

// toObject projects a native group record, honoring the attribute selection
// list and the partial-attribute-values option. The member list is an extra
// paginated call per result, so it is fetched only when explicitly requested.
func (h *GroupHandler) toObject(ctx context.Context, g types.GroupType, opts connector.OperationOptions) (connector.Object, error) {
	name := aws.ToString(g.GroupName)
	obj := connector.Object{
		Class: connector.GroupClass,
		Uid:   connector.Uid{Value: name, NameHint: name},
		Name:  name,
	}

	if opts.ShouldReturn(AttrDescription) && g.Description != nil {
		obj.Attributes = append(obj.Attributes, connector.New(AttrDescription, *g.Description))
	}
	if opts.ShouldReturn(AttrPrecedence) && g.Precedence != nil {
		obj.Attributes = append(obj.Attributes, connector.New(AttrPrecedence, int(*g.Precedence)))
	}
	if opts.ShouldReturn(AttrRoleArn) && g.RoleArn != nil {
		obj.Attributes = append(obj.Attributes, connector.New(AttrRoleArn, *g.RoleArn))
	}
	if opts.ShouldReturn(AttrCreationDate) && g.CreationDate != nil {
		obj.Attributes = append(obj.Attributes, connector.New(AttrCreationDate, toZonedTime(g.CreationDate)))
	}
	if opts.ShouldReturn(AttrLastModifiedDate) && g.LastModifiedDate != nil {
		obj.Attributes = append(obj.Attributes, connector.New(AttrLastModifiedDate, toZonedTime(g.LastModifiedDate)))
	}

	switch {
	case opts.AllowPartialAttributeValues:
		logger.Log.Debug("Suppressing member fetch because partial attribute values are requested")
		obj.Attributes = append(obj.Attributes, connector.Attribute{
			Name:       AttrUsers,
			Values:     []any{},
			Incomplete: true,
		})
	case opts.AttributesToGet == nil:
		// Members are not returned by default.
	case opts.RequestedExplicitly(AttrUsers):
		users, err := h.assoc.usersInGroup(ctx, name)
		if err != nil {
			return connector.Object{}, err
		}
		obj.Attributes = append(obj.Attributes, connector.Attribute{Name: AttrUsers, Values: anyValues(users)})
	}

	return obj, nil
}
