package dynamo

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// AdminEmailRepo is a point lookup into the externally managed allow-list
// table. This process never writes to it.
type AdminEmailRepo struct {
	client    *dynamodb.Client
	tableName string
	timeout   time.Duration
}

func NewAdminEmailRepo(client *dynamodb.Client, tableName string, timeout time.Duration) *AdminEmailRepo {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &AdminEmailRepo{client: client, tableName: tableName, timeout: timeout}
}

// Contains reports whether the (lower-cased) email has a row in the
// allow-list table. Errors are returned as-is; the credential store decides
// the fallback policy.
func (r *AdminEmailRepo) Contains(ctx context.Context, email string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &r.tableName,
		Key:       strKey("email", email),
	})
	if err != nil {
		return false, classify(err)
	}
	return out.Item != nil, nil
}
