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
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/openstandia/connector-amazon-cognito-user-pool/pkg/cognito/mocks"
	"github.com/openstandia/connector-amazon-cognito-user-pool/pkg/connector"
)

func describeOutput() *cognitoidentityprovider.DescribeUserPoolOutput {
	return &cognitoidentityprovider.DescribeUserPoolOutput{UserPool: testUserPool()}
}

func TestConnectorRefreshSchema(t *testing.T) {
	mockAPI := mocks.NewMockCognitoAPI(t)
	c := NewConnector(mockAPI, testPoolID, false)

	mockAPI.On("DescribeUserPool", mock.Anything, mock.AnythingOfType("*cognitoidentityprovider.DescribeUserPoolInput")).
		Return(describeOutput(), nil)

	schema, err := c.RefreshSchema(context.Background())

	require.NoError(t, err)
	assert.Equal(t, connector.UserClass, schema.User.Class)
	assert.Equal(t, connector.GroupClass, schema.Group.Class)

	_, ok := schema.User.Attribute("custom_age")
	assert.True(t, ok)
}

func TestConnectorTest(t *testing.T) {
	t.Run("reachable pool", func(t *testing.T) {
		mockAPI := mocks.NewMockCognitoAPI(t)
		c := NewConnector(mockAPI, testPoolID, false)

		mockAPI.On("DescribeUserPool", mock.Anything, mock.AnythingOfType("*cognitoidentityprovider.DescribeUserPoolInput")).
			Return(describeOutput(), nil)

		assert.NoError(t, c.Test(context.Background()))
	})

	t.Run("unreachable pool", func(t *testing.T) {
		mockAPI := mocks.NewMockCognitoAPI(t)
		c := NewConnector(mockAPI, testPoolID, false)

		mockAPI.On("DescribeUserPool", mock.Anything, mock.AnythingOfType("*cognitoidentityprovider.DescribeUserPoolInput")).
			Return(nil, errors.New("connection refused"))

		assert.Error(t, c.Test(context.Background()))
	})
}

func TestConnectorRequiresSchemaForUserOps(t *testing.T) {
	mockAPI := mocks.NewMockCognitoAPI(t)
	c := NewConnector(mockAPI, testPoolID, false)

	_, err := c.Create(context.Background(), connector.UserClass, []connector.Attribute{
		connector.New(connector.NameName, "foo"),
	})

	var failed *connector.OperationFailedError
	require.ErrorAs(t, err, &failed)
}

func TestConnectorDispatch(t *testing.T) {
	mockAPI := mocks.NewMockCognitoAPI(t)
	c := NewConnector(mockAPI, testPoolID, false)

	mockAPI.On("DescribeUserPool", mock.Anything, mock.AnythingOfType("*cognitoidentityprovider.DescribeUserPoolInput")).
		Return(describeOutput(), nil)
	_, err := c.RefreshSchema(context.Background())
	require.NoError(t, err)

	t.Run("user create goes through AdminCreateUser", func(t *testing.T) {
		mockAPI.On("AdminCreateUser", mock.Anything, mock.AnythingOfType("*cognitoidentityprovider.AdminCreateUserInput")).
			Return(createdUserOutput("foo", testSub), nil).Once()

		uid, err := c.Create(context.Background(), connector.UserClass, []connector.Attribute{
			connector.New(connector.NameName, "foo"),
		})

		require.NoError(t, err)
		assert.Equal(t, testSub, uid.Value)
	})

	t.Run("group create goes through CreateGroup", func(t *testing.T) {
		mockAPI.On("CreateGroup", mock.Anything, mock.AnythingOfType("*cognitoidentityprovider.CreateGroupInput")).
			Return(&cognitoidentityprovider.CreateGroupOutput{}, nil).Once()

		uid, err := c.Create(context.Background(), connector.GroupClass, []connector.Attribute{
			connector.New(connector.NameName, "admins"),
		})

		require.NoError(t, err)
		assert.Equal(t, "admins", uid.Value)
	})

	t.Run("unsupported object class", func(t *testing.T) {
		_, err := c.Create(context.Background(), connector.ObjectClass("Device"), nil)
		assert.Error(t, err)

		err = c.Delete(context.Background(), connector.ObjectClass("Device"), connector.Uid{Value: "x"})
		assert.Error(t, err)
	})
}
