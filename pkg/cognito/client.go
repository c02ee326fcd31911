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
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

const assumeRoleSessionName = "cognito-user-pool-connector"

// ClientOptions selects how the Cognito client authenticates and where it
// connects. Zero values fall back to the default AWS credential chain and
// endpoints.
type ClientOptions struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string

	// EndpointOverride points the client at a non-standard endpoint, for
	// local emulators or VPC endpoints.
	EndpointOverride string

	// HTTP proxy settings for all AWS API traffic.
	ProxyHost     string
	ProxyPort     int
	ProxyUser     string
	ProxyPassword string

	// AssumeRoleArn switches the client to temporary credentials obtained
	// through STS before talking to Cognito.
	AssumeRoleArn         string
	AssumeRoleExternalID  string
	AssumeRoleDurationSec int
}

// NewAPIClient builds a Cognito identity provider client from the options.
// Static credentials, when given, take priority over the default provider
// chain; an assume-role ARN wraps whichever source credentials are in effect.
func NewAPIClient(ctx context.Context, opts ClientOptions) (CognitoAPI, error) {
	var loadOpts []func(*config.LoadOptions) error
	if opts.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(opts.Region))
	}
	if opts.AccessKeyID != "" && opts.SecretAccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, "")))
	}
	if opts.ProxyHost != "" {
		proxyURL, err := buildProxyURL(opts)
		if err != nil {
			return nil, err
		}
		loadOpts = append(loadOpts, config.WithHTTPClient(&http.Client{
			Transport: &http.Transport{Proxy: http.ProxyURL(proxyURL)},
		}))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	if opts.AssumeRoleArn != "" {
		cfg.Credentials = aws.NewCredentialsCache(stscreds.NewAssumeRoleProvider(
			sts.NewFromConfig(cfg), opts.AssumeRoleArn,
			func(o *stscreds.AssumeRoleOptions) {
				o.RoleSessionName = assumeRoleSessionName
				if opts.AssumeRoleExternalID != "" {
					o.ExternalID = aws.String(opts.AssumeRoleExternalID)
				}
				if opts.AssumeRoleDurationSec > 0 {
					o.Duration = time.Duration(opts.AssumeRoleDurationSec) * time.Second
				}
			}))
	}

	return cognitoidentityprovider.NewFromConfig(cfg, func(o *cognitoidentityprovider.Options) {
		if opts.EndpointOverride != "" {
			o.BaseEndpoint = aws.String(opts.EndpointOverride)
		}
	}), nil
}

func buildProxyURL(opts ClientOptions) (*url.URL, error) {
	raw := fmt.Sprintf("http://%s:%d", opts.ProxyHost, opts.ProxyPort)
	proxyURL, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid proxy address %s: %w", raw, err)
	}
	if opts.ProxyUser != "" {
		proxyURL.User = url.UserPassword(opts.ProxyUser, opts.ProxyPassword)
	}
	return proxyURL, nil
}

// FindUserPoolIDByName resolves a user pool ID from its display name. Pool
// names are not unique in Cognito; the first case-insensitive match wins.
func FindUserPoolIDByName(ctx context.Context, api CognitoAPI, userPoolName string) (string, error) {
	var nextToken *string
	for {
		output, err := api.ListUserPools(ctx, &cognitoidentityprovider.ListUserPoolsInput{
			MaxResults: aws.Int32(60), // Max allowed by AWS
			NextToken:  nextToken,
		})
		if err != nil {
			return "", fmt.Errorf("failed to list user pools: %w", err)
		}

		for _, pool := range output.UserPools {
			if pool.Name != nil && strings.EqualFold(*pool.Name, userPoolName) && pool.Id != nil {
				return *pool.Id, nil
			}
		}

		nextToken = output.NextToken
		if nextToken == nil {
			return "", fmt.Errorf("user pool with name %s not found", userPoolName)
		}
	}
}
