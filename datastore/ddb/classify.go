/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"errors"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"

	uxferrors "github.com/suparena/uxfetch/errors"
)

// classify maps an AWS SDK error into the uxfetch error taxonomy.
func classify(op, table string, err error) error {
	var rnf *types.ResourceNotFoundException
	if errors.As(err, &rnf) {
		return uxferrors.NewNotFoundError("", table)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "UnrecognizedClientException",
			"AccessDeniedException",
			"InvalidSignatureException",
			"ExpiredTokenException",
			"MissingAuthenticationTokenException":
			return uxferrors.NewAuthenticationError(op, err)
		}
	}

	// An unresolved credential chain fails client-side at signing, before
	// any service response, so no APIError appears in the chain.
	var opErr *smithy.OperationError
	if errors.As(err, &opErr) {
		msg := opErr.Error()
		if strings.Contains(msg, "failed to retrieve credentials") ||
			strings.Contains(msg, "failed to sign request") {
			return uxferrors.NewAuthenticationError(op, err)
		}
	}

	return uxferrors.NewRemoteServiceError(op, table, err)
}
