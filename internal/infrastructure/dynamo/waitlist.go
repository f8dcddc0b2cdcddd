package dynamo

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/codnextech/anchored-api/internal/domain"
)

// upsertExpr writes the mutable fields on every submission and backfills
// entry_id/created_at only when the row is new, so a repeat signup keeps
// its original identity and creation time.
const upsertExpr = "SET first_name = :fn, last_name = :ln, gdpr_consent = :gc, updated_at = :now, " +
	"entry_id = if_not_exists(entry_id, :id), created_at = if_not_exists(created_at, :now)"

// WaitlistRepo provides typed DynamoDB operations for the waitlist table.
type WaitlistRepo struct {
	client    *dynamodb.Client
	tableName string
	timeout   time.Duration
}

func NewWaitlistRepo(client *dynamodb.Client, tableName string, timeout time.Duration) *WaitlistRepo {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &WaitlistRepo{client: client, tableName: tableName, timeout: timeout}
}

// Upsert inserts or updates the entry keyed by e.Email and returns the
// stored row. e.EntryID is only used when the email is new; concurrent
// same-key writes resolve last-write-wins inside DynamoDB.
func (r *WaitlistRepo) Upsert(ctx context.Context, e *domain.WaitlistEntry) (*domain.WaitlistEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	now := time.Now().UTC()
	values, err := attributevalue.MarshalMap(map[string]interface{}{
		":fn":  e.FirstName,
		":ln":  e.LastName,
		":gc":  e.GDPRConsent,
		":now": now,
		":id":  e.EntryID,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal waitlist entry: %w", err)
	}

	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("email", e.Email),
		UpdateExpression:          aws.String(upsertExpr),
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return nil, classify(err)
	}

	var stored domain.WaitlistEntry
	if err := attributevalue.UnmarshalMap(out.Attributes, &stored); err != nil {
		return nil, fmt.Errorf("unmarshal stored entry: %w", domain.ErrStorage)
	}
	return &stored, nil
}

// ListByRecency returns every entry, most recent signup first.
func (r *WaitlistRepo) ListByRecency(ctx context.Context) ([]domain.WaitlistEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	var entries []domain.WaitlistEntry
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, classify(err)
		}
		var page []domain.WaitlistEntry
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("unmarshal waitlist page: %w", domain.ErrStorage)
		}
		entries = append(entries, page...)
	}

	sortByCreatedAtDesc(entries)
	return entries, nil
}

// sortByCreatedAtDesc orders in memory: the table has no range key and the
// listing is all-entries-no-pagination, so a scan plus sort stays simpler
// than maintaining a GSI for the same O(n) read.
func sortByCreatedAtDesc(entries []domain.WaitlistEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
}
