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
)

// associationHandler reconciles the user<->group many-to-many association.
// The native API only offers per-pair add/remove primitives, so every change
// is a sequence of AdminAddUserToGroup/AdminRemoveUserFromGroup calls; the
// handler never retries and surfaces not-found faults to the caller.
type associationHandler struct {
	api        CognitoAPI
	userPoolID string
}

func newAssociationHandler(api CognitoAPI, userPoolID string) *associationHandler {
	return &associationHandler{api: api, userPoolID: userPoolID}
}

// syncGroupsToUser reconciles the user's group membership against the desired
// set. A nil slice means the caller expressed no opinion and nothing happens;
// an empty non-nil slice removes every membership.
func (h *associationHandler) syncGroupsToUser(ctx context.Context, username string, groups []string) error {
	if groups == nil {
		return nil
	}

	desired := make(map[string]struct{}, len(groups))
	for _, g := range groups {
		desired[g] = struct{}{}
	}

	err := h.forEachGroupOfUser(ctx, username, func(groupName string) error {
		if _, ok := desired[groupName]; ok {
			delete(desired, groupName)
			return nil
		}
		return h.removeUserFromGroup(ctx, username, groupName)
	})
	if err != nil {
		return err
	}

	for g := range desired {
		if err := h.addUserToGroup(ctx, username, g); err != nil {
			return err
		}
	}
	return nil
}

// applyGroupsToUser applies an explicit membership delta, adds first, then
// removes. No reconciliation fetch is made.
func (h *associationHandler) applyGroupsToUser(ctx context.Context, username string, add, remove []string) error {
	for _, g := range add {
		if err := h.addUserToGroup(ctx, username, g); err != nil {
			return err
		}
	}
	for _, g := range remove {
		if err := h.removeUserFromGroup(ctx, username, g); err != nil {
			return err
		}
	}
	return nil
}

// syncUsersToGroup reconciles the group's member list against the desired
// set; same nil/empty semantics as syncGroupsToUser.
func (h *associationHandler) syncUsersToGroup(ctx context.Context, groupName string, users []string) error {
	if users == nil {
		return nil
	}

	desired := make(map[string]struct{}, len(users))
	for _, u := range users {
		desired[u] = struct{}{}
	}

	err := h.forEachUserInGroup(ctx, groupName, func(username string) error {
		if _, ok := desired[username]; ok {
			delete(desired, username)
			return nil
		}
		return h.removeUserFromGroup(ctx, username, groupName)
	})
	if err != nil {
		return err
	}

	for u := range desired {
		if err := h.addUserToGroup(ctx, u, groupName); err != nil {
			return err
		}
	}
	return nil
}

// applyUsersToGroup applies an explicit member delta, adds first, then
// removes.
func (h *associationHandler) applyUsersToGroup(ctx context.Context, groupName string, add, remove []string) error {
	for _, u := range add {
		if err := h.addUserToGroup(ctx, u, groupName); err != nil {
			return err
		}
	}
	for _, u := range remove {
		if err := h.removeUserFromGroup(ctx, u, groupName); err != nil {
			return err
		}
	}
	return nil
}

// removeAllUsers empties the group's membership.
func (h *associationHandler) removeAllUsers(ctx context.Context, groupName string) error {
	return h.forEachUserInGroup(ctx, groupName, func(username string) error {
		return h.removeUserFromGroup(ctx, username, groupName)
	})
}

// groupsForUser returns the names of every group the user belongs to.
func (h *associationHandler) groupsForUser(ctx context.Context, username string) ([]string, error) {
	var groups []string
	err := h.forEachGroupOfUser(ctx, username, func(groupName string) error {
		groups = append(groups, groupName)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return groups, nil
}

// usersInGroup returns the usernames of every member of the group.
func (h *associationHandler) usersInGroup(ctx context.Context, groupName string) ([]string, error) {
	var users []string
	err := h.forEachUserInGroup(ctx, groupName, func(username string) error {
		users = append(users, username)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (h *associationHandler) addUserToGroup(ctx context.Context, username, groupName string) error {
	_, err := h.api.AdminAddUserToGroup(ctx, &cognitoidentityprovider.AdminAddUserToGroupInput{
		UserPoolId: aws.String(h.userPoolID),
		Username:   aws.String(username),
		GroupName:  aws.String(groupName),
	})
	return err
}

func (h *associationHandler) removeUserFromGroup(ctx context.Context, username, groupName string) error {
	_, err := h.api.AdminRemoveUserFromGroup(ctx, &cognitoidentityprovider.AdminRemoveUserFromGroupInput{
		UserPoolId: aws.String(h.userPoolID),
		Username:   aws.String(username),
		GroupName:  aws.String(groupName),
	})
	return err
}

func (h *associationHandler) forEachGroupOfUser(ctx context.Context, username string, fn func(groupName string) error) error {
	var nextToken *string
	for {
		output, err := h.api.AdminListGroupsForUser(ctx, &cognitoidentityprovider.AdminListGroupsForUserInput{
			UserPoolId: aws.String(h.userPoolID),
			Username:   aws.String(username),
			NextToken:  nextToken,
		})
		if err != nil {
			return err
		}

		for _, g := range output.Groups {
			if g.GroupName == nil {
				continue
			}
			if err := fn(*g.GroupName); err != nil {
				return err
			}
		}

		nextToken = output.NextToken
		if nextToken == nil {
			return nil
		}
	}
}

func (h *associationHandler) forEachUserInGroup(ctx context.Context, groupName string, fn func(username string) error) error {
	var nextToken *string
	for {
		output, err := h.api.ListUsersInGroup(ctx, &cognitoidentityprovider.ListUsersInGroupInput{
			UserPoolId: aws.String(h.userPoolID),
			GroupName:  aws.String(groupName),
			NextToken:  nextToken,
		})
		if err != nil {
			return err
		}

		for _, u := range output.Users {
			if u.Username == nil {
				continue
			}
			if err := fn(*u.Username); err != nil {
				return err
			}
		}

		nextToken = output.NextToken
		if nextToken == nil {
			return nil
		}
	}
}
