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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigDefaults(t *testing.T) {
	t.Setenv("COGNITO_CONNECTOR_USER_POOL_ID", "us-east-1_TEST")

	cfg := GetConfig()

	assert.Equal(t, "us-east-1_TEST", cfg.UserPoolID)
	assert.True(t, cfg.SuppressInvitationMessage)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestGetConfigFromEnvironment(t *testing.T) {
	t.Setenv("COGNITO_CONNECTOR_USER_POOL_NAME", "MyUserPool")
	t.Setenv("COGNITO_CONNECTOR_AWS_REGION", "eu-west-1")
	t.Setenv("COGNITO_CONNECTOR_SUPPRESS_INVITATION_MESSAGE", "false")
	t.Setenv("COGNITO_CONNECTOR_HTTP_PROXY_HOST", "proxy.example.com")
	t.Setenv("COGNITO_CONNECTOR_HTTP_PROXY_PORT", "3128")
	t.Setenv("COGNITO_CONNECTOR_ASSUME_ROLE_ARN", "arn:aws:iam::123456789012:role/connector")
	t.Setenv("COGNITO_CONNECTOR_LOG_LEVEL", "debug")
	t.Setenv("COGNITO_CONNECTOR_LOG_FORMAT", "json")

	cfg := GetConfig()

	assert.Equal(t, "MyUserPool", cfg.UserPoolName)
	assert.Equal(t, "eu-west-1", cfg.AWSRegion)
	assert.False(t, cfg.SuppressInvitationMessage)
	assert.Equal(t, "proxy.example.com", cfg.HTTPProxyHost)
	assert.Equal(t, 3128, cfg.HTTPProxyPort)
	assert.Equal(t, "arn:aws:iam::123456789012:role/connector", cfg.AssumeRoleArn)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			UserPoolID: "us-east-1_TEST",
			LogLevel:   "info",
			LogFormat:  "text",
		}
	}

	t.Run("minimal valid config", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})

	t.Run("user pool id or name is required", func(t *testing.T) {
		cfg := valid()
		cfg.UserPoolID = ""

		err := cfg.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UserPoolID")
	})

	t.Run("user pool name alone is enough", func(t *testing.T) {
		cfg := valid()
		cfg.UserPoolID = ""
		cfg.UserPoolName = "MyUserPool"

		assert.NoError(t, cfg.Validate())
	})

	t.Run("access key without secret", func(t *testing.T) {
		cfg := valid()
		cfg.AWSAccessKeyID = "AKIA123"

		assert.Error(t, cfg.Validate())
	})

	t.Run("static credential pair", func(t *testing.T) {
		cfg := valid()
		cfg.AWSAccessKeyID = "AKIA123"
		cfg.AWSSecretAccessKey = "secret"

		assert.NoError(t, cfg.Validate())
	})

	t.Run("invalid proxy port", func(t *testing.T) {
		cfg := valid()
		cfg.HTTPProxyPort = 70000

		assert.Error(t, cfg.Validate())
	})

	t.Run("invalid log level", func(t *testing.T) {
		cfg := valid()
		cfg.LogLevel = "loud"

		assert.Error(t, cfg.Validate())
	})

	t.Run("invalid endpoint override", func(t *testing.T) {
		cfg := valid()
		cfg.EndpointOverride = "not a url"

		assert.Error(t, cfg.Validate())
	})
}

func TestStringOmitsSecrets(t *testing.T) {
	cfg := &Config{
		UserPoolID:         "us-east-1_TEST",
		AWSAccessKeyID:     "AKIA123",
		AWSSecretAccessKey: "supersecret",
		HTTPProxyPassword:  "proxysecret",
		LogLevel:           "info",
		LogFormat:          "text",
	}

	s := cfg.String()

	assert.Contains(t, s, "us-east-1_TEST")
	assert.NotContains(t, s, "supersecret")
	assert.NotContains(t, s, "proxysecret")
}
