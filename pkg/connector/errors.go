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

package connector

import (
	"errors"
	"fmt"
)

// SchemaMismatchError reports an attribute name that is not present in the
// derived schema map. Raised before any native call is issued.
type SchemaMismatchError struct {
	Attr string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("attribute %q is not defined in the schema", e.Attr)
}

// UnknownUidError reports an operation against an identity that does not
// exist (anymore) in the user pool.
type UnknownUidError struct {
	Uid   Uid
	Class ObjectClass
	Cause error
}

func (e *UnknownUidError) Error() string {
	return fmt.Sprintf("unknown %s identity %q", e.Class, e.Uid.Value)
}

func (e *UnknownUidError) Unwrap() error { return e.Cause }

// AlreadyExistsError reports a create against a name that is already taken.
type AlreadyExistsError struct {
	Name  string
	Class ObjectClass
	Cause error
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Class, e.Name)
}

func (e *AlreadyExistsError) Unwrap() error { return e.Cause }

// RetryableError marks a fault the caller's outer retry policy may re-drive
// the whole operation for. The connector never retries internally.
type RetryableError struct {
	Reason string
	Cause  error
}

func (e *RetryableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("retryable: %s: %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("retryable: %v", e.Cause)
}

func (e *RetryableError) Unwrap() error { return e.Cause }

// TypeConversionError reports a malformed numeric or date value coming from
// the wire. Not expected when the schema is self-consistent; hard failure.
type TypeConversionError struct {
	Attr  string
	Value string
	Cause error
}

func (e *TypeConversionError) Error() string {
	return fmt.Sprintf("cannot convert value %q of attribute %q: %v", e.Value, e.Attr, e.Cause)
}

func (e *TypeConversionError) Unwrap() error { return e.Cause }

// InvalidAttributeError reports an attribute value the native API or the
// connector rejected (wrong type, policy violation, missing value).
type InvalidAttributeError struct {
	Attr   string
	Reason string
	Cause  error
}

func (e *InvalidAttributeError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid attribute %q: %s", e.Attr, e.Reason)
	}
	return fmt.Sprintf("invalid attribute %q: %v", e.Attr, e.Cause)
}

func (e *InvalidAttributeError) Unwrap() error { return e.Cause }

// OperationFailedError is the catch-all for unexpected transport or API
// conditions not mapped to a typed fault.
type OperationFailedError struct {
	API   string
	Cause error
}

func (e *OperationFailedError) Error() string {
	return fmt.Sprintf("unexpected error calling %q: %v", e.API, e.Cause)
}

func (e *OperationFailedError) Unwrap() error { return e.Cause }

// IsRetryable reports whether err carries a RetryableError anywhere in its
// chain.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}
