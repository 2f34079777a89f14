/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"

	uxferrors "github.com/suparena/uxfetch/errors"
)

// Config holds the connection settings for the remote store.
type Config struct {
	// Region is the AWS region hosting the experiment tables (required).
	Region string
	// Profile names a profile from the shared AWS credentials file.
	Profile string
	// AccessKey and SecretKey form an explicit static credential pair.
	// Both must be set for the pair to be used.
	AccessKey string
	SecretKey string
}

type credentialSource int

const (
	credentialsAmbient credentialSource = iota
	credentialsProfile
	credentialsStatic
)

// credentialSource resolves the credential precedence:
// explicit access/secret pair > named profile > ambient default chain.
func (c Config) credentialSource() credentialSource {
	if c.AccessKey != "" && c.SecretKey != "" {
		return credentialsStatic
	}
	if c.Profile != "" {
		return credentialsProfile
	}
	return credentialsAmbient
}

// Store implements datastore.TableScanner on top of AWS DynamoDB.
type Store struct {
	client DynamoAPI
}

// New initializes a Store by resolving AWS credentials per the precedence
// rules in Config and constructing a DynamoDB client.
func New(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.Region == "" {
		return nil, uxferrors.NewUsageError("region is required")
	}

	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}
	switch cfg.credentialSource() {
	case credentialsStatic:
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	case credentialsProfile:
		opts = append(opts, config.WithSharedConfigProfile(cfg.Profile))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, uxferrors.NewAuthenticationError("load AWS configuration", err)
	}

	return &Store{client: sdk.NewFromConfig(awsCfg)}, nil
}

// NewFromAPI constructs a Store around an existing client. Used by tests.
func NewFromAPI(api DynamoAPI) *Store {
	return &Store{client: api}
}
