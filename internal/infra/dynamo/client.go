// Package dynamo is the DynamoDB store driver. Every record lives in one
// table keyed by PK/SK; the key prefix names the record kind.
package dynamo

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"pix-funnel/internal/usecase/shared"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	pkConversation = "CONV#"
	pkAffinity     = "AFFINITY#"
	pkContactDay   = "CONTACTS#"
	pkPayment      = "PAYMENT#"
	pkDispatch     = "DISPATCH#"

	skMeta = "META"
)

// dynamodbAPI is the subset of *dynamodb.Client the driver uses.
type dynamodbAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// Durable implements shared.Durable on a single DynamoDB table.
type Durable struct {
	conversations *ConversationTable
	affinity      *AffinityTable
	contacts      *ContactTable
	payments      *PaymentTable
	dispatches    *DispatchTable
}

var _ shared.Durable = (*Durable)(nil)

func New(api dynamodbAPI, tableName string, slogger *slog.Logger) (*Durable, error) {
	if api == nil {
		return nil, errors.New("dynamo: api must not be nil")
	}
	if strings.TrimSpace(tableName) == "" {
		return nil, errors.New("dynamo: table name must not be empty")
	}
	t := table{api: api, name: tableName, slogger: slogger}
	return &Durable{
		conversations: &ConversationTable{t},
		affinity:      &AffinityTable{t},
		contacts:      &ContactTable{t},
		payments:      &PaymentTable{t},
		dispatches:    &DispatchTable{t},
	}, nil
}

func (d *Durable) Conversations() shared.ConversationMirror { return d.conversations }
func (d *Durable) Affinity() shared.AffinityRepository      { return d.affinity }
func (d *Durable) Contacts() shared.ContactRepository       { return d.contacts }
func (d *Durable) Payments() shared.PaymentLedger           { return d.payments }
func (d *Durable) Dispatches() shared.DispatchJournal       { return d.dispatches }

type table struct {
	api     dynamodbAPI
	name    string
	slogger *slog.Logger
}

func (t table) key(pk, sk string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: pk},
		"SK": &types.AttributeValueMemberS{Value: sk},
	}
}

func (t table) getItem(ctx context.Context, pk, sk string) (map[string]types.AttributeValue, error) {
	out, err := t.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(t.name),
		Key:            t.key(pk, sk),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if out == nil || len(out.Item) == 0 {
		return nil, nil
	}
	return out.Item, nil
}

func isConditionFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}
