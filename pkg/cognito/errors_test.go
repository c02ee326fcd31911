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
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openstandia/connector-amazon-cognito-user-pool/pkg/connector"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    any
		retryable bool
	}{
		{
			name:   "invalid parameter",
			err:    &types.InvalidParameterException{Message: aws.String("bad")},
			target: new(*connector.InvalidAttributeError),
		},
		{
			name:   "user not found",
			err:    &types.UserNotFoundException{Message: aws.String("gone")},
			target: new(*connector.UnknownUidError),
		},
		{
			name:   "resource not found",
			err:    &types.ResourceNotFoundException{Message: aws.String("gone")},
			target: new(*connector.UnknownUidError),
		},
		{
			name:   "username exists",
			err:    &types.UsernameExistsException{Message: aws.String("taken")},
			target: new(*connector.AlreadyExistsError),
		},
		{
			name:   "group exists",
			err:    &types.GroupExistsException{Message: aws.String("taken")},
			target: new(*connector.AlreadyExistsError),
		},
		{
			name:      "limit exceeded",
			err:       &types.LimitExceededException{Message: aws.String("limit")},
			target:    new(*connector.RetryableError),
			retryable: true,
		},
		{
			name:      "too many requests",
			err:       &types.TooManyRequestsException{Message: aws.String("slow down")},
			target:    new(*connector.RetryableError),
			retryable: true,
		},
		{
			name:      "internal error",
			err:       &types.InternalErrorException{Message: aws.String("oops")},
			target:    new(*connector.RetryableError),
			retryable: true,
		},
		{
			name:   "unmapped service fault",
			err:    &types.NotAuthorizedException{Message: aws.String("denied")},
			target: new(*connector.OperationFailedError),
		},
		{
			name:   "plain error",
			err:    errors.New("network down"),
			target: new(*connector.OperationFailedError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			translated := translateError("TestOp", tt.err)

			require.Error(t, translated)
			switch target := tt.target.(type) {
			case **connector.InvalidAttributeError:
				assert.ErrorAs(t, translated, target)
			case **connector.UnknownUidError:
				assert.ErrorAs(t, translated, target)
			case **connector.AlreadyExistsError:
				assert.ErrorAs(t, translated, target)
			case **connector.RetryableError:
				assert.ErrorAs(t, translated, target)
			case **connector.OperationFailedError:
				assert.ErrorAs(t, translated, target)
			default:
				t.Fatalf("unexpected target type %T", tt.target)
			}
			assert.Equal(t, tt.retryable, connector.IsRetryable(translated))
			assert.ErrorIs(t, translated, tt.err)
		})
	}
}

func TestTranslateErrorClassMapping(t *testing.T) {
	var unknown *connector.UnknownUidError

	err := translateError("AdminGetUser", &types.UserNotFoundException{Message: aws.String("gone")})
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, connector.UserClass, unknown.Class)

	err = translateError("GetGroup", &types.ResourceNotFoundException{Message: aws.String("gone")})
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, connector.GroupClass, unknown.Class)
}

func TestTranslateErrorKeepsAPIErrorCode(t *testing.T) {
	var failed *connector.OperationFailedError

	err := translateError("AdminGetUser", &types.NotAuthorizedException{Message: aws.String("denied")})
	require.ErrorAs(t, err, &failed)
	assert.Contains(t, failed.API, "AdminGetUser")
	assert.Contains(t, failed.API, "NotAuthorizedException")
}
