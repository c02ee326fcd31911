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

package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	ENV_PREFIX = "COGNITO_CONNECTOR"

	USER_POOL_ID                = "User_Pool_Id"
	USER_POOL_NAME              = "User_Pool_Name"
	AWS_REGION                  = "AWS_Region"
	AWS_ACCESS_KEY_ID           = "AWS_Access_Key_Id"
	AWS_SECRET_ACCESS_KEY       = "AWS_Secret_Access_Key"
	ENDPOINT_OVERRIDE           = "Endpoint_Override"
	HTTP_PROXY_HOST             = "HTTP_Proxy_Host"
	HTTP_PROXY_PORT             = "HTTP_Proxy_Port"
	HTTP_PROXY_USER             = "HTTP_Proxy_User"
	HTTP_PROXY_PASSWORD         = "HTTP_Proxy_Password"
	ASSUME_ROLE_ARN             = "Assume_Role_Arn"
	ASSUME_ROLE_EXTERNAL_ID     = "Assume_Role_External_Id"
	ASSUME_ROLE_DURATION_SEC    = "Assume_Role_Duration_Seconds"
	SUPPRESS_INVITATION_MESSAGE = "Suppress_Invitation_Message"
	LOG_LEVEL                   = "Log_Level"
	LOG_FORMAT                  = "Log_Format"
)

// Config carries all connector settings. The user pool is addressed by its ID,
// or by its display name which is resolved to an ID at startup; credentials
// default to the AWS provider chain.
type Config struct {
	UserPoolID                string `validate:"required_without=UserPoolName"`
	UserPoolName              string
	AWSRegion                 string
	AWSAccessKeyID            string
	AWSSecretAccessKey        string `validate:"required_with=AWSAccessKeyID"`
	EndpointOverride          string `validate:"omitempty,url"`
	HTTPProxyHost             string
	HTTPProxyPort             int `validate:"gte=0,lte=65535"`
	HTTPProxyUser             string
	HTTPProxyPassword         string
	AssumeRoleArn             string
	AssumeRoleExternalID      string
	AssumeRoleDurationSec     int `validate:"gte=0"`
	SuppressInvitationMessage bool
	LogLevel                  string `validate:"oneof=panic fatal error warn info debug trace"`
	LogFormat                 string `validate:"oneof=text json"`
}

func (c Config) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", USER_POOL_ID, c.UserPoolID)
	fmt.Fprintf(&b, "%s: %s\n", USER_POOL_NAME, c.UserPoolName)
	fmt.Fprintf(&b, "%s: %s\n", AWS_REGION, c.AWSRegion)
	fmt.Fprintf(&b, "%s: %s\n", ENDPOINT_OVERRIDE, c.EndpointOverride)
	fmt.Fprintf(&b, "%s: %s\n", HTTP_PROXY_HOST, c.HTTPProxyHost)
	fmt.Fprintf(&b, "%s: %d\n", HTTP_PROXY_PORT, c.HTTPProxyPort)
	fmt.Fprintf(&b, "%s: %s\n", ASSUME_ROLE_ARN, c.AssumeRoleArn)
	fmt.Fprintf(&b, "%s: %t\n", SUPPRESS_INVITATION_MESSAGE, c.SuppressInvitationMessage)
	fmt.Fprintf(&b, "%s: %s\n", LOG_LEVEL, c.LogLevel)
	fmt.Fprintf(&b, "%s: %s\n", LOG_FORMAT, c.LogFormat)
	return b.String()
}

// GetConfig reads the connector settings from the environment. Secrets are
// deliberately absent from String().
func GetConfig() *Config {
	options := viper.New()

	options.SetDefault(SUPPRESS_INVITATION_MESSAGE, true)
	options.SetDefault(ASSUME_ROLE_DURATION_SEC, 0)
	options.SetDefault(LOG_LEVEL, "info")
	options.SetDefault(LOG_FORMAT, "text")

	options.SetEnvPrefix(ENV_PREFIX)
	options.AutomaticEnv()

	return &Config{
		UserPoolID:                options.GetString(USER_POOL_ID),
		UserPoolName:              options.GetString(USER_POOL_NAME),
		AWSRegion:                 options.GetString(AWS_REGION),
		AWSAccessKeyID:            options.GetString(AWS_ACCESS_KEY_ID),
		AWSSecretAccessKey:        options.GetString(AWS_SECRET_ACCESS_KEY),
		EndpointOverride:          options.GetString(ENDPOINT_OVERRIDE),
		HTTPProxyHost:             options.GetString(HTTP_PROXY_HOST),
		HTTPProxyPort:             options.GetInt(HTTP_PROXY_PORT),
		HTTPProxyUser:             options.GetString(HTTP_PROXY_USER),
		HTTPProxyPassword:         options.GetString(HTTP_PROXY_PASSWORD),
		AssumeRoleArn:             options.GetString(ASSUME_ROLE_ARN),
		AssumeRoleExternalID:      options.GetString(ASSUME_ROLE_EXTERNAL_ID),
		AssumeRoleDurationSec:     options.GetInt(ASSUME_ROLE_DURATION_SEC),
		SuppressInvitationMessage: options.GetBool(SUPPRESS_INVITATION_MESSAGE),
		LogLevel:                  options.GetString(LOG_LEVEL),
		LogFormat:                 options.GetString(LOG_FORMAT),
	}
}

// Validate checks the configuration for missing or malformed settings.
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
			return fmt.Errorf("invalid configuration, check fields: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
