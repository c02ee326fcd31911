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

	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/aws/smithy-go"

	"github.com/openstandia/connector-amazon-cognito-user-pool/pkg/connector"
)

// translateError maps a Cognito fault to the connector error taxonomy.
// Throttling, limit and internal faults are marked retryable so the caller's
// outer retry policy can re-drive the whole operation; everything the table
// doesn't know escalates to a generic operation-failed error.
func translateError(op string, err error) error {
	var (
		invalidParam  *types.InvalidParameterException
		userNotFound  *types.UserNotFoundException
		resNotFound   *types.ResourceNotFoundException
		usernameTaken *types.UsernameExistsException
		groupTaken    *types.GroupExistsException
		limitExceeded *types.LimitExceededException
		tooMany       *types.TooManyRequestsException
		internalErr   *types.InternalErrorException
	)

	switch {
	case errors.As(err, &invalidParam):
		return &connector.InvalidAttributeError{Attr: "", Cause: err}
	case errors.As(err, &userNotFound):
		return &connector.UnknownUidError{Class: connector.UserClass, Cause: err}
	case errors.As(err, &resNotFound):
		return &connector.UnknownUidError{Class: connector.GroupClass, Cause: err}
	case errors.As(err, &usernameTaken):
		return &connector.AlreadyExistsError{Class: connector.UserClass, Cause: err}
	case errors.As(err, &groupTaken):
		return &connector.AlreadyExistsError{Class: connector.GroupClass, Cause: err}
	case errors.As(err, &limitExceeded), errors.As(err, &tooMany), errors.As(err, &internalErr):
		return &connector.RetryableError{Reason: op, Cause: err}
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return &connector.OperationFailedError{API: op + " (" + apiErr.ErrorCode() + ")", Cause: err}
	}
	return &connector.OperationFailedError{API: op, Cause: err}
}

func isUserNotFound(err error) bool {
	var e *types.UserNotFoundException
	return errors.As(err, &e)
}

func isResourceNotFound(err error) bool {
	var e *types.ResourceNotFoundException
	return errors.As(err, &e)
}

func isResourceExists(err error) bool {
	var e *types.GroupExistsException
	return errors.As(err, &e)
}
