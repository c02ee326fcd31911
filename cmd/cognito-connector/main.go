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

// Command cognito-connector is an operational CLI around the connector: it
// verifies connectivity, dumps the live schema and lists pool contents using
// the same code paths the IDM integration uses.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openstandia/connector-amazon-cognito-user-pool/internal/config"
	"github.com/openstandia/connector-amazon-cognito-user-pool/internal/platform/logger"
	"github.com/openstandia/connector-amazon-cognito-user-pool/pkg/cognito"
	"github.com/openstandia/connector-amazon-cognito-user-pool/pkg/connector"
)

func NewRootCommand() *cobra.Command {

	var attributesToGet []string

	var rootCmd = &cobra.Command{
		Use:          "cognito-connector",
		Short:        "Amazon Cognito user pool provisioning connector",
		SilenceUsage: true,
	}

	var testCmd = &cobra.Command{
		Use:   "test",
		Short: "Verify connectivity and configuration against the user pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := buildConnector(cmd.Context())
			if err != nil {
				return err
			}
			if err := conn.Test(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("OK")
			return nil
		},
	}

	var schemaCmd = &cobra.Command{
		Use:   "schema",
		Short: "Dump the connector-visible schema of the user pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := buildConnector(cmd.Context())
			if err != nil {
				return err
			}
			schema, err := conn.RefreshSchema(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(schema)
		},
	}

	var listUsersCmd = &cobra.Command{
		Use:   "list-users",
		Short: "List all users in the user pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd.Context(), connector.UserClass, attributesToGet)
		},
	}

	var listGroupsCmd = &cobra.Command{
		Use:   "list-groups",
		Short: "List all groups in the user pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd.Context(), connector.GroupClass, attributesToGet)
		},
	}

	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(schemaCmd)

	rootCmd.AddCommand(listUsersCmd)
	listUsersCmd.Flags().StringSliceVarP(&attributesToGet, "attributes", "a", nil, "Attributes to return (default: all returned-by-default attributes)")

	rootCmd.AddCommand(listGroupsCmd)
	listGroupsCmd.Flags().StringSliceVarP(&attributesToGet, "attributes", "a", nil, "Attributes to return (default: all returned-by-default attributes)")

	return rootCmd
}

func buildConnector(ctx context.Context) (*cognito.Connector, error) {
	cfg := config.GetConfig()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.InitLogger(cfg.LogLevel, cfg.LogFormat)
	logger.Log.Debug("Connector configuration:\n" + cfg.String())

	api, err := cognito.NewAPIClient(ctx, cognito.ClientOptions{
		Region:                cfg.AWSRegion,
		AccessKeyID:           cfg.AWSAccessKeyID,
		SecretAccessKey:       cfg.AWSSecretAccessKey,
		EndpointOverride:      cfg.EndpointOverride,
		ProxyHost:             cfg.HTTPProxyHost,
		ProxyPort:             cfg.HTTPProxyPort,
		ProxyUser:             cfg.HTTPProxyUser,
		ProxyPassword:         cfg.HTTPProxyPassword,
		AssumeRoleArn:         cfg.AssumeRoleArn,
		AssumeRoleExternalID:  cfg.AssumeRoleExternalID,
		AssumeRoleDurationSec: cfg.AssumeRoleDurationSec,
	})
	if err != nil {
		return nil, err
	}

	userPoolID := cfg.UserPoolID
	if userPoolID == "" {
		userPoolID, err = cognito.FindUserPoolIDByName(ctx, api, cfg.UserPoolName)
		if err != nil {
			return nil, err
		}
		logger.Log.WithField("userPoolId", userPoolID).Debug("Resolved user pool ID from its name")
	}

	return cognito.NewConnector(api, userPoolID, cfg.SuppressInvitationMessage), nil
}

func runSearch(ctx context.Context, class connector.ObjectClass, attributesToGet []string) error {
	conn, err := buildConnector(ctx)
	if err != nil {
		return err
	}
	if _, err := conn.RefreshSchema(ctx); err != nil {
		return err
	}

	opts := connector.OperationOptions{AttributesToGet: attributesToGet}
	count := 0
	err = conn.Search(ctx, class, nil, func(obj connector.Object) bool {
		if err := printJSON(obj); err != nil {
			logger.Log.WithError(err).Error("Failed to write search result")
			return false
		}
		count++
		return true
	}, opts)
	if err != nil {
		return err
	}

	logger.Log.WithField("count", count).Info("Search finished")
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
