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
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"

	"github.com/openstandia/connector-amazon-cognito-user-pool/internal/platform/logger"
	"github.com/openstandia/connector-amazon-cognito-user-pool/pkg/connector"
)

// Connector binds the generic object-class operations to one Cognito user
// pool. RefreshSchema must run before any other operation so that the handlers
// see the pool's live attribute definitions.
type Connector struct {
	api        CognitoAPI
	userPoolID string

	suppressInvitationMessage bool

	schema        connector.Schema
	userSchemaMap connector.SchemaMap
}

// NewConnector creates a connector bound to one user pool. The schema is not
// fetched yet; call RefreshSchema first.
func NewConnector(api CognitoAPI, userPoolID string, suppressInvitationMessage bool) *Connector {
	return &Connector{
		api:                       api,
		userPoolID:                userPoolID,
		suppressInvitationMessage: suppressInvitationMessage,
	}
}

// RefreshSchema fetches the user pool definition and rebuilds the
// connector-visible schema from it. Custom attributes added to the pool after
// the last refresh become visible here.
func (c *Connector) RefreshSchema(ctx context.Context) (connector.Schema, error) {
	output, err := c.api.DescribeUserPool(ctx, &cognitoidentityprovider.DescribeUserPoolInput{
		UserPoolId: aws.String(c.userPoolID),
	})
	if err != nil {
		return connector.Schema{}, translateError("DescribeUserPool", err)
	}
	if output.UserPool == nil {
		return connector.Schema{}, &connector.OperationFailedError{
			API:   "DescribeUserPool",
			Cause: fmt.Errorf("no user pool returned for %s", c.userPoolID),
		}
	}

	c.schema = connector.Schema{
		User:  UserSchema(output.UserPool),
		Group: GroupSchema(output.UserPool),
	}
	c.userSchemaMap = BuildUserSchemaMap(c.schema.User)

	logger.Log.WithField("userPoolId", c.userPoolID).
		WithField("userAttributes", len(c.schema.User.Attributes)).
		Debug("Refreshed user pool schema")
	return c.schema, nil
}

// Test verifies connectivity and configuration by describing the user pool.
func (c *Connector) Test(ctx context.Context) error {
	_, err := c.api.DescribeUserPool(ctx, &cognitoidentityprovider.DescribeUserPoolInput{
		UserPoolId: aws.String(c.userPoolID),
	})
	if err != nil {
		return translateError("DescribeUserPool", err)
	}
	return nil
}

// Create provisions a new object of the given class.
func (c *Connector) Create(ctx context.Context, class connector.ObjectClass, attrs []connector.Attribute) (connector.Uid, error) {
	switch class {
	case connector.UserClass:
		schema, err := c.schemaMap()
		if err != nil {
			return connector.Uid{}, err
		}
		return NewUserHandler(c.api, c.userPoolID, schema, c.suppressInvitationMessage).Create(ctx, attrs)
	case connector.GroupClass:
		return NewGroupHandler(c.api, c.userPoolID).Create(ctx, attrs)
	default:
		return connector.Uid{}, unsupportedClass(class)
	}
}

// Update applies attribute deltas to an existing object.
func (c *Connector) Update(ctx context.Context, class connector.ObjectClass, uid connector.Uid, deltas []connector.AttributeDelta) (connector.Uid, error) {
	switch class {
	case connector.UserClass:
		schema, err := c.schemaMap()
		if err != nil {
			return connector.Uid{}, err
		}
		return NewUserHandler(c.api, c.userPoolID, schema, c.suppressInvitationMessage).Update(ctx, uid, deltas)
	case connector.GroupClass:
		return NewGroupHandler(c.api, c.userPoolID).Update(ctx, uid, deltas)
	default:
		return connector.Uid{}, unsupportedClass(class)
	}
}

// Delete removes an existing object.
func (c *Connector) Delete(ctx context.Context, class connector.ObjectClass, uid connector.Uid) error {
	switch class {
	case connector.UserClass:
		schema, err := c.schemaMap()
		if err != nil {
			return err
		}
		return NewUserHandler(c.api, c.userPoolID, schema, c.suppressInvitationMessage).Delete(ctx, uid)
	case connector.GroupClass:
		return NewGroupHandler(c.api, c.userPoolID).Delete(ctx, uid)
	default:
		return unsupportedClass(class)
	}
}

// Search emits all objects of the class matching the filter through the
// handler. A nil filter lists everything.
func (c *Connector) Search(ctx context.Context, class connector.ObjectClass, f *connector.Filter, handle connector.ResultsHandler, opts connector.OperationOptions) error {
	switch class {
	case connector.UserClass:
		schema, err := c.schemaMap()
		if err != nil {
			return err
		}
		return NewUserHandler(c.api, c.userPoolID, schema, c.suppressInvitationMessage).Search(ctx, f, handle, opts)
	case connector.GroupClass:
		return NewGroupHandler(c.api, c.userPoolID).Search(ctx, f, handle, opts)
	default:
		return unsupportedClass(class)
	}
}

func (c *Connector) schemaMap() (connector.SchemaMap, error) {
	if c.userSchemaMap == nil {
		return nil, &connector.OperationFailedError{
			API:   "DescribeUserPool",
			Cause: fmt.Errorf("schema not fetched yet for user pool %s", c.userPoolID),
		}
	}
	return c.userSchemaMap, nil
}

func unsupportedClass(class connector.ObjectClass) error {
	return &connector.InvalidAttributeError{Reason: fmt.Sprintf("unsupported object class: %s", class)}
}
