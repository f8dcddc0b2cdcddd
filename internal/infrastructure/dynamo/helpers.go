package dynamo

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"github.com/codnextech/anchored-api/internal/domain"
)

// strKey builds a DynamoDB primary key map with a single string attribute.
func strKey(name, value string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		name: &types.AttributeValueMemberS{Value: value},
	}
}

// classify maps a DynamoDB call failure onto the domain storage sentinels.
// Operators get a connectivity-vs-permission split; the raw SDK error stays
// in the wrap chain for logs but is never shown to callers.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("store call timed out: %w", domain.ErrStoreUnavailable)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "AccessDeniedException", "UnrecognizedClientException",
			"InvalidSignatureException", "MissingAuthenticationToken":
			return fmt.Errorf("%s: %w", apiErr.ErrorCode(), domain.ErrStoreDenied)
		}
		return fmt.Errorf("%s: %w", apiErr.ErrorCode(), domain.ErrStorage)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("network failure: %w", domain.ErrStoreUnavailable)
	}

	// An operation error with no API response usually means the endpoint
	// was never reached.
	var opErr *smithy.OperationError
	if errors.As(err, &opErr) {
		return fmt.Errorf("%s %s failed: %w", opErr.Service(), opErr.Operation(), domain.ErrStoreUnavailable)
	}

	return fmt.Errorf("%v: %w", err, domain.ErrStorage)
}
