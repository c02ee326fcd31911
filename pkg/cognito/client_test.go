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

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/openstandia/connector-amazon-cognito-user-pool/pkg/cognito/mocks"
)

func TestFindUserPoolIDByName(t *testing.T) {
	tests := []struct {
		name         string
		userPoolName string
		setupMocks   func(*mocks.MockCognitoAPI)
		expectedID   string
		expectErr    bool
	}{
		{
			name:         "pool found on first page",
			userPoolName: "my-pool",
			setupMocks: func(mockAPI *mocks.MockCognitoAPI) {
				mockAPI.On("ListUserPools", mock.Anything, mock.AnythingOfType("*cognitoidentityprovider.ListUserPoolsInput")).
					Return(&cognitoidentityprovider.ListUserPoolsOutput{
						UserPools: []types.UserPoolDescriptionType{
							{Id: aws.String("us-east-1_AAA"), Name: aws.String("other-pool")},
							{Id: aws.String("us-east-1_BBB"), Name: aws.String("my-pool")},
						},
					}, nil)
			},
			expectedID: "us-east-1_BBB",
		},
		{
			name:         "match is case insensitive",
			userPoolName: "MY-POOL",
			setupMocks: func(mockAPI *mocks.MockCognitoAPI) {
				mockAPI.On("ListUserPools", mock.Anything, mock.AnythingOfType("*cognitoidentityprovider.ListUserPoolsInput")).
					Return(&cognitoidentityprovider.ListUserPoolsOutput{
						UserPools: []types.UserPoolDescriptionType{
							{Id: aws.String("us-east-1_BBB"), Name: aws.String("my-pool")},
						},
					}, nil)
			},
			expectedID: "us-east-1_BBB",
		},
		{
			name:         "pool found on second page",
			userPoolName: "my-pool",
			setupMocks: func(mockAPI *mocks.MockCognitoAPI) {
				mockAPI.On("ListUserPools", mock.Anything, mock.MatchedBy(func(input *cognitoidentityprovider.ListUserPoolsInput) bool {
					return input.NextToken == nil
				})).Return(&cognitoidentityprovider.ListUserPoolsOutput{
					UserPools: []types.UserPoolDescriptionType{
						{Id: aws.String("us-east-1_AAA"), Name: aws.String("other-pool")},
					},
					NextToken: aws.String("next"),
				}, nil)
				mockAPI.On("ListUserPools", mock.Anything, mock.MatchedBy(func(input *cognitoidentityprovider.ListUserPoolsInput) bool {
					return aws.ToString(input.NextToken) == "next"
				})).Return(&cognitoidentityprovider.ListUserPoolsOutput{
					UserPools: []types.UserPoolDescriptionType{
						{Id: aws.String("us-east-1_BBB"), Name: aws.String("my-pool")},
					},
				}, nil)
			},
			expectedID: "us-east-1_BBB",
		},
		{
			name:         "pool not found",
			userPoolName: "missing-pool",
			setupMocks: func(mockAPI *mocks.MockCognitoAPI) {
				mockAPI.On("ListUserPools", mock.Anything, mock.AnythingOfType("*cognitoidentityprovider.ListUserPoolsInput")).
					Return(&cognitoidentityprovider.ListUserPoolsOutput{}, nil)
			},
			expectErr: true,
		},
		{
			name:         "list fails",
			userPoolName: "my-pool",
			setupMocks: func(mockAPI *mocks.MockCognitoAPI) {
				mockAPI.On("ListUserPools", mock.Anything, mock.AnythingOfType("*cognitoidentityprovider.ListUserPoolsInput")).
					Return(nil, errors.New("AWS error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAPI := mocks.NewMockCognitoAPI(t)
			tt.setupMocks(mockAPI)

			result, err := FindUserPoolIDByName(context.Background(), mockAPI, tt.userPoolName)

			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedID, result)
		})
	}
}

func TestBuildProxyURL(t *testing.T) {
	t.Run("host and port", func(t *testing.T) {
		u, err := buildProxyURL(ClientOptions{ProxyHost: "proxy.example.com", ProxyPort: 3128})
		require.NoError(t, err)
		assert.Equal(t, "http://proxy.example.com:3128", u.String())
	})

	t.Run("with credentials", func(t *testing.T) {
		u, err := buildProxyURL(ClientOptions{
			ProxyHost:     "proxy.example.com",
			ProxyPort:     3128,
			ProxyUser:     "user",
			ProxyPassword: "pass",
		})
		require.NoError(t, err)
		assert.Equal(t, "user", u.User.Username())
		pass, set := u.User.Password()
		assert.True(t, set)
		assert.Equal(t, "pass", pass)
	})
}
