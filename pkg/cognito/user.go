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
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/google/uuid"

	"github.com/openstandia/connector-amazon-cognito-user-pool/internal/platform/logger"
	"github.com/openstandia/connector-amazon-cognito-user-pool/pkg/connector"
)

// UserHandler implements create/update/delete/search for the User object
// class. Each operation is a strictly sequential chain of admin API calls;
// the dependent calls after the primary mutation are not transactional with
// it (see Create and Update).
type UserHandler struct {
	api                       CognitoAPI
	userPoolID                string
	suppressInvitationMessage bool
	schema                    connector.SchemaMap
	assoc                     *associationHandler
}

// NewUserHandler creates a user handler bound to one user pool. The schema
// map must be the one built by BuildUserSchemaMap for the current schema
// fetch; it is treated as immutable.
func NewUserHandler(api CognitoAPI, userPoolID string, schema connector.SchemaMap, suppressInvitationMessage bool) *UserHandler {
	return &UserHandler{
		api:                       api,
		userPoolID:                userPoolID,
		suppressInvitationMessage: suppressInvitationMessage,
		schema:                    schema,
		assoc:                     newAssociationHandler(api, userPoolID),
	}
}

// Create provisions a new user:
// https://docs.aws.amazon.com/cognito-user-identity-pools/latest/APIReference/API_AdminCreateUser.html
//
// Enable state, password and group membership each need their own API call
// after AdminCreateUser, so the operation is not a single transaction. If one
// of the dependent calls fails the created user persists; the IDM resolves
// the inconsistency by retrying the same operation.
func (h *UserHandler) Create(ctx context.Context, attrs []connector.Attribute) (connector.Uid, error) {
	if len(attrs) == 0 {
		return connector.Uid{}, &connector.InvalidAttributeError{Reason: "attributes not provided or empty"}
	}

	input := &cognitoidentityprovider.AdminCreateUserInput{
		UserPoolId: aws.String(h.userPoolID),
	}
	if h.suppressInvitationMessage {
		input.MessageAction = types.MessageActionTypeSuppress
	}

	enabled := true
	var password *string
	var passwordPermanent *bool
	var groups []string
	var userAttrs []types.AttributeType

	for _, a := range attrs {
		switch userAttrRoles[a.Name] {
		case roleName:
			v, err := a.StringValue()
			if err != nil {
				return connector.Uid{}, err
			}
			input.Username = aws.String(v)
		case roleEnable:
			b, err := a.BoolValue()
			if err != nil {
				return connector.Uid{}, err
			}
			enabled = b
		case rolePassword:
			v, err := a.StringValue()
			if err != nil {
				return connector.Uid{}, err
			}
			password = aws.String(v)
		case rolePasswordPermanent:
			b, err := a.BoolValue()
			if err != nil {
				return connector.Uid{}, err
			}
			passwordPermanent = aws.Bool(b)
		case roleAssociation:
			groups = a.StringValues()
		default:
			na, err := ToCognitoAttribute(h.schema, a)
			if err != nil {
				return connector.Uid{}, err
			}
			userAttrs = append(userAttrs, na)
		}
	}
	input.UserAttributes = userAttrs

	// Generate a username if the IDM has no mapping to it. Cognito requires
	// one at creation time.
	if input.Username == nil {
		input.Username = aws.String(uuid.NewString())
	}

	output, err := h.api.AdminCreateUser(ctx, input)
	if err != nil {
		return connector.Uid{}, translateError("AdminCreateUser", err)
	}

	username := aws.ToString(input.Username)
	uid := connector.Uid{NameHint: username}
	if output.User != nil {
		for _, a := range output.User.Attributes {
			if aws.ToString(a.Name) == attrSub {
				uid.Value = aws.ToString(a.Value)
				break
			}
		}
	}

	if !enabled {
		if err := h.disableUser(ctx, uid, username); err != nil {
			return uid, err
		}
	}
	if err := h.updatePassword(ctx, username, password, passwordPermanent); err != nil {
		return uid, err
	}
	if err := h.assoc.syncGroupsToUser(ctx, username, groups); err != nil {
		if isUserNotFound(err) {
			logger.Log.WithField("user", username).Warn("User was deleted when setting groups after create")
			return uid, &connector.RetryableError{Reason: "user was deleted when setting groups after create", Cause: err}
		}
		return uid, translateError("AdminAddUserToGroup", err)
	}

	return uid, nil
}

// Update applies a set of attribute deltas:
// https://docs.aws.amazon.com/cognito-user-identity-pools/latest/APIReference/API_AdminUpdateUserAttributes.html
//
// Same non-transactional caveat as Create: enable state, password and group
// membership follow the primary attribute update as separate calls and are
// never rolled back.
func (h *UserHandler) Update(ctx context.Context, uid connector.Uid, deltas []connector.AttributeDelta) (connector.Uid, error) {
	if uid.Value == "" {
		return connector.Uid{}, &connector.InvalidAttributeError{Attr: connector.UidName, Reason: "uid not provided"}
	}

	username, err := h.resolveUsername(ctx, uid)
	if err != nil {
		return connector.Uid{}, err
	}

	var updateAttrs []types.AttributeType
	var enabled *bool
	var password *string
	var passwordPermanent *bool
	var groupsReplace []string
	var groupsAdd, groupsRemove []string
	haveGroupDelta := false

	for _, d := range deltas {
		role := userAttrRoles[d.Name]

		// A delta with no values means the IDM decided to delete the
		// attribute.
		if d.IsDelete() {
			if role == roleAssociation {
				groupsReplace = []string{}
			} else {
				updateAttrs = append(updateAttrs, ToCognitoAttributeForDelete(connector.Attribute{Name: d.Name}))
			}
			continue
		}

		switch role {
		case roleEnable:
			b, err := d.ReplaceAttribute().BoolValue()
			if err != nil {
				return connector.Uid{}, err
			}
			enabled = aws.Bool(b)
		case rolePassword:
			v, err := d.ReplaceAttribute().StringValue()
			if err != nil {
				return connector.Uid{}, err
			}
			password = aws.String(v)
		case rolePasswordPermanent:
			b, err := d.ReplaceAttribute().BoolValue()
			if err != nil {
				return connector.Uid{}, err
			}
			passwordPermanent = aws.Bool(b)
		case roleAssociation:
			if len(d.Replace) > 0 {
				groupsReplace = d.ReplaceAttribute().StringValues()
			} else {
				groupsAdd = connector.Attribute{Name: d.Name, Values: d.Add}.StringValues()
				groupsRemove = connector.Attribute{Name: d.Name, Values: d.Remove}.StringValues()
				haveGroupDelta = true
			}
		default:
			na, err := ToCognitoAttribute(h.schema, d.ReplaceAttribute())
			if err != nil {
				return connector.Uid{}, err
			}
			updateAttrs = append(updateAttrs, na)
		}
	}

	if len(updateAttrs) > 0 {
		_, err := h.api.AdminUpdateUserAttributes(ctx, &cognitoidentityprovider.AdminUpdateUserAttributesInput{
			UserPoolId:     aws.String(h.userPoolID),
			Username:       aws.String(username),
			UserAttributes: updateAttrs,
		})
		if err != nil {
			if isUserNotFound(err) {
				logger.Log.WithField("uid", uid.Value).Warn("User not found when updating attributes")
				return connector.Uid{}, &connector.UnknownUidError{Uid: uid, Class: connector.UserClass, Cause: err}
			}
			return connector.Uid{}, translateError("AdminUpdateUserAttributes", err)
		}
	}

	if enabled != nil {
		if *enabled {
			err = h.enableUser(ctx, uid, username)
		} else {
			err = h.disableUser(ctx, uid, username)
		}
		if err != nil {
			return connector.Uid{}, err
		}
	}
	if err := h.updatePassword(ctx, username, password, passwordPermanent); err != nil {
		return connector.Uid{}, err
	}
	var syncErr error
	if groupsReplace != nil {
		syncErr = h.assoc.syncGroupsToUser(ctx, username, groupsReplace)
	} else if haveGroupDelta {
		syncErr = h.assoc.applyGroupsToUser(ctx, username, groupsAdd, groupsRemove)
	}
	if syncErr != nil {
		if isUserNotFound(syncErr) {
			logger.Log.WithField("uid", uid.Value).Warn("User not found when updating groups")
			return connector.Uid{}, &connector.UnknownUidError{Uid: uid, Class: connector.UserClass, Cause: syncErr}
		}
		return connector.Uid{}, translateError("AdminAddUserToGroup", syncErr)
	}

	return uid, nil
}

// Delete removes the user:
// https://docs.aws.amazon.com/cognito-user-identity-pools/latest/APIReference/API_AdminDeleteUser.html
func (h *UserHandler) Delete(ctx context.Context, uid connector.Uid) error {
	if uid.Value == "" {
		return &connector.InvalidAttributeError{Attr: connector.UidName, Reason: "uid not provided"}
	}

	username, err := h.resolveUsername(ctx, uid)
	if err != nil {
		return err
	}

	_, err = h.api.AdminDeleteUser(ctx, &cognitoidentityprovider.AdminDeleteUserInput{
		UserPoolId: aws.String(h.userPoolID),
		Username:   aws.String(username),
	})
	if err != nil {
		if isUserNotFound(err) {
			logger.Log.WithField("uid", uid.Value).Warn("User not found when deleting")
			return &connector.UnknownUidError{Uid: uid, Class: connector.UserClass, Cause: err}
		}
		return translateError("AdminDeleteUser", err)
	}
	return nil
}

// Search emits every user matching the filter. A name-equality filter is a
// direct get; everything else goes through the paginated ListUsers call with
// whatever native filter the grammar supports.
func (h *UserHandler) Search(ctx context.Context, f *connector.Filter, handle connector.ResultsHandler, opts connector.OperationOptions) error {
	if f != nil && f.ByName() {
		return h.getUserByName(ctx, f.Value, handle, opts)
	}

	input := &cognitoidentityprovider.ListUsersInput{
		UserPoolId: aws.String(h.userPoolID),
	}
	if filter := renderUserFilter(h.schema, f); filter != "" {
		input.Filter = aws.String(filter)
	}

	var token *string
	for {
		input.PaginationToken = token
		output, err := h.api.ListUsers(ctx, input)
		if err != nil {
			return translateError("ListUsers", err)
		}

		for _, u := range output.Users {
			obj, err := h.toObject(ctx, aws.ToString(u.Username), u.Enabled,
				u.UserCreateDate, u.UserLastModifiedDate, string(u.UserStatus), u.Attributes, opts)
			if err != nil {
				return err
			}
			if !handle(obj) {
				return nil
			}
		}

		token = output.PaginationToken
		if token == nil {
			return nil
		}
	}
}

func (h *UserHandler) getUserByName(ctx context.Context, username string, handle connector.ResultsHandler, opts connector.OperationOptions) error {
	output, err := h.api.AdminGetUser(ctx, &cognitoidentityprovider.AdminGetUserInput{
		UserPoolId: aws.String(h.userPoolID),
		Username:   aws.String(username),
	})
	if err != nil {
		if isUserNotFound(err) {
			// Empty search result, not an error.
			return nil
		}
		return translateError("AdminGetUser", err)
	}

	obj, err := h.toObject(ctx, aws.ToString(output.Username), output.Enabled,
		output.UserCreateDate, output.UserLastModifiedDate, string(output.UserStatus), output.UserAttributes, opts)
	if err != nil {
		return err
	}
	handle(obj)
	return nil
}

// resolveUsername returns the current username for the identity reference.
// Cognito keys most admin calls by username, but the reference may carry only
// the immutable sub; in that case the user is found by a sub-filtered search.
func (h *UserHandler) resolveUsername(ctx context.Context, uid connector.Uid) (string, error) {
	if uid.NameHint != "" {
		return uid.NameHint, nil
	}

	var matches []types.UserType
	var token *string
	for {
		output, err := h.api.ListUsers(ctx, &cognitoidentityprovider.ListUsersInput{
			UserPoolId:      aws.String(h.userPoolID),
			Filter:          aws.String(fmt.Sprintf("%s = %q", attrSub, uid.Value)),
			PaginationToken: token,
		})
		if err != nil {
			return "", translateError("ListUsers", err)
		}
		matches = append(matches, output.Users...)
		token = output.PaginationToken
		if token == nil {
			break
		}
	}

	if len(matches) == 0 {
		logger.Log.WithField("uid", uid.Value).Warn("User not found when resolving username")
		return "", &connector.UnknownUidError{Uid: uid, Class: connector.UserClass}
	}
	if len(matches) > 1 {
		return "", &connector.OperationFailedError{
			API:   "ListUsers",
			Cause: errors.New("multiple users returned when searching by sub = " + uid.Value),
		}
	}
	return aws.ToString(matches[0].Username), nil
}

func (h *UserHandler) enableUser(ctx context.Context, uid connector.Uid, username string) error {
	_, err := h.api.AdminEnableUser(ctx, &cognitoidentityprovider.AdminEnableUserInput{
		UserPoolId: aws.String(h.userPoolID),
		Username:   aws.String(username),
	})
	if err != nil {
		if isUserNotFound(err) {
			logger.Log.WithField("uid", uid.Value).Warn("User not found when enabling")
			return &connector.UnknownUidError{Uid: uid, Class: connector.UserClass, Cause: err}
		}
		return translateError("AdminEnableUser", err)
	}
	return nil
}

func (h *UserHandler) disableUser(ctx context.Context, uid connector.Uid, username string) error {
	_, err := h.api.AdminDisableUser(ctx, &cognitoidentityprovider.AdminDisableUserInput{
		UserPoolId: aws.String(h.userPoolID),
		Username:   aws.String(username),
	})
	if err != nil {
		if isUserNotFound(err) {
			logger.Log.WithField("uid", uid.Value).Warn("User not found when disabling")
			return &connector.UnknownUidError{Uid: uid, Class: connector.UserClass, Cause: err}
		}
		return translateError("AdminDisableUser", err)
	}
	return nil
}

func (h *UserHandler) updatePassword(ctx context.Context, username string, password *string, permanent *bool) error {
	if password == nil {
		return nil
	}

	_, err := h.api.AdminSetUserPassword(ctx, &cognitoidentityprovider.AdminSetUserPasswordInput{
		UserPoolId: aws.String(h.userPoolID),
		Username:   aws.String(username),
		Password:   password,
		Permanent:  permanent != nil && *permanent,
	})
	if err != nil {
		var invalidPassword *types.InvalidPasswordException
		if errors.As(err, &invalidPassword) {
			return &connector.InvalidAttributeError{
				Attr:   connector.PasswordName,
				Reason: "password policy error in cognito",
				Cause:  err,
			}
		}
		return translateError("AdminSetUserPassword", err)
	}
	return nil
}

// toObject projects a native user record into the connector representation,
// honoring the attribute selection list and the partial-attribute-values
// option. Group membership is an extra paginated call per result, so it is
// fetched only when explicitly requested.
func (h *UserHandler) toObject(ctx context.Context, username string, enabled bool,
	created, modified *time.Time, status string, attrs []types.AttributeType,
	opts connector.OperationOptions) (connector.Object, error) {

	obj := connector.Object{
		Class: connector.UserClass,
		Name:  username,
		Uid:   connector.Uid{NameHint: username},
	}

	if opts.ShouldReturn(connector.EnableName) {
		obj.Attributes = append(obj.Attributes, connector.New(connector.EnableName, enabled))
	}
	if opts.ShouldReturn(AttrUserCreateDate) && created != nil {
		obj.Attributes = append(obj.Attributes, connector.New(AttrUserCreateDate, toZonedTime(created)))
	}
	if opts.ShouldReturn(AttrUserLastModifiedDate) && modified != nil {
		obj.Attributes = append(obj.Attributes, connector.New(AttrUserLastModifiedDate, toZonedTime(modified)))
	}
	if opts.ShouldReturn(AttrUserStatus) {
		obj.Attributes = append(obj.Attributes, connector.New(AttrUserStatus, status))
	}

	for _, a := range attrs {
		name := aws.ToString(a.Name)
		if name == attrSub {
			// Always returned.
			obj.Uid.Value = aws.ToString(a.Value)
			continue
		}
		info, ok := h.schema[EscapeName(name)]
		if !ok {
			continue
		}
		if !opts.ShouldReturn(info.Name) {
			continue
		}
		ca, err := ToConnectorAttribute(info, a)
		if err != nil {
			return connector.Object{}, err
		}
		obj.Attributes = append(obj.Attributes, ca)
	}

	switch {
	case opts.AllowPartialAttributeValues:
		logger.Log.Debug("Suppressing group fetch because partial attribute values are requested")
		obj.Attributes = append(obj.Attributes, connector.Attribute{
			Name:       AttrGroups,
			Values:     []any{},
			Incomplete: true,
		})
	case opts.AttributesToGet == nil:
		// Groups are not returned by default.
	case opts.RequestedExplicitly(AttrGroups):
		groups, err := h.assoc.groupsForUser(ctx, username)
		if err != nil {
			return connector.Object{}, translateError("AdminListGroupsForUser", err)
		}
		obj.Attributes = append(obj.Attributes, connector.Attribute{Name: AttrGroups, Values: anyValues(groups)})
	}

	return obj, nil
}

func anyValues(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
