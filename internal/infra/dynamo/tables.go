package dynamo

import (
	"context"
	"log/slog"
	"sort"
	"strconv"
	"time"

	"pix-funnel/internal/domain/contact"
	"pix-funnel/internal/domain/conversation"
	"pix-funnel/internal/domain/identity"
	"pix-funnel/internal/infra"
	"pix-funnel/internal/pkg/errs"
	"pix-funnel/internal/usecase/shared"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var ErrInvalidDay = errs.New("invalid day, expected YYYY-MM-DD")

type ConversationTable struct{ table }

// Save writes the snapshot unless the stored item carries a newer version.
func (t *ConversationTable) Save(ctx context.Context, s conversation.Snapshot) error {
	item, err := attributevalue.MarshalMap(toConversationItem(s))
	if err != nil {
		return infra.WrapRepoErr(t.slogger, infra.KindDBFailure, "failed to marshal conversation", err)
	}
	_, err = t.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(t.name),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK) OR version < :v"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberN{Value: strconv.FormatUint(s.Version, 10)},
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return nil
		}
		return infra.WrapRepoErr(t.slogger, infra.KindDBFailure, "failed to save conversation", err)
	}
	return nil
}

func (t *ConversationTable) Delete(ctx context.Context, key identity.Key) error {
	_, err := t.api.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(t.name),
		Key:       t.key(pkConversation+key.String(), skMeta),
	})
	if err != nil {
		return infra.WrapRepoErr(t.slogger, infra.KindDBFailure, "failed to delete conversation", err)
	}
	return nil
}

func (t *ConversationTable) ListActive(ctx context.Context) ([]conversation.Snapshot, error) {
	p := dynamodb.NewScanPaginator(t.api, &dynamodb.ScanInput{
		TableName:        aws.String(t.name),
		FilterExpression: aws.String("begins_with(PK, :prefix)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":prefix": &types.AttributeValueMemberS{Value: pkConversation},
		},
		ConsistentRead: aws.Bool(true),
	})

	var out []conversation.Snapshot
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, infra.WrapRepoErr(t.slogger, infra.KindDBFailure, "failed to scan conversations", err)
		}
		var items []conversationItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, infra.WrapRepoErr(t.slogger, infra.KindDBFailure, "failed to unmarshal conversations", err)
		}
		for _, it := range items {
			s := it.snapshot()
			if !s.Status.IsValid() {
				t.slogger.Warn("skipping mirrored conversation with unknown status",
					slog.String("identity", it.Identity),
					slog.String("status", it.Status))
				continue
			}
			out = append(out, s)
		}
	}
	return out, nil
}

type AffinityTable struct{ table }

func (t *AffinityTable) Find(ctx context.Context, key identity.Key) (string, error) {
	raw, err := t.getItem(ctx, pkAffinity+key.String(), skMeta)
	if err != nil {
		return "", infra.WrapRepoErr(t.slogger, infra.KindDBFailure, "failed to find affinity", err)
	}
	if raw == nil {
		return "", infra.NewNotFound("affinity not found")
	}
	var it affinityItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return "", infra.WrapRepoErr(t.slogger, infra.KindDBFailure, "failed to unmarshal affinity", err)
	}
	return it.Instance, nil
}

// Remember is first-write-wins: a failed condition means another replica
// already bound the identity, and its instance is returned.
func (t *AffinityTable) Remember(ctx context.Context, key identity.Key, instance string) (string, error) {
	item, err := attributevalue.MarshalMap(affinityItem{
		PK:         pkAffinity + key.String(),
		SK:         skMeta,
		Instance:   instance,
		AssignedAt: time.Now().UnixNano(),
	})
	if err != nil {
		return "", infra.WrapRepoErr(t.slogger, infra.KindDBFailure, "failed to marshal affinity", err)
	}
	_, err = t.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(t.name),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})
	if err == nil {
		return instance, nil
	}
	if !isConditionFailed(err) {
		return "", infra.WrapRepoErr(t.slogger, infra.KindDBFailure, "failed to remember affinity", err)
	}
	return t.Find(ctx, key)
}

type ContactTable struct{ table }

func (t *ContactTable) TryInsert(ctx context.Context, c *contact.Contact) (bool, error) {
	item, err := attributevalue.MarshalMap(toContactItem(c))
	if err != nil {
		return false, infra.WrapRepoErr(t.slogger, infra.KindDBFailure, "failed to marshal contact", err)
	}
	_, err = t.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(t.name),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})
	if err != nil {
		if isConditionFailed(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr(t.slogger, infra.KindDBFailure, "failed to insert contact", err)
	}
	return true, nil
}

// List queries one partition per day in the range.
func (t *ContactTable) List(ctx context.Context, fromDay, toDay string) ([]*contact.Contact, error) {
	days, err := daysBetween(fromDay, toDay)
	if err != nil {
		return nil, err
	}

	var out []*contact.Contact
	for _, day := range days {
		p := dynamodb.NewQueryPaginator(t.api, &dynamodb.QueryInput{
			TableName:              aws.String(t.name),
			KeyConditionExpression: aws.String("PK = :pk"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pk": &types.AttributeValueMemberS{Value: pkContactDay + day},
			},
		})
		for p.HasMorePages() {
			page, err := p.NextPage(ctx)
			if err != nil {
				return nil, infra.WrapRepoErr(t.slogger, infra.KindDBFailure, "failed to query contacts", err)
			}
			var items []contactItem
			if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
				return nil, infra.WrapRepoErr(t.slogger, infra.KindDBFailure, "failed to unmarshal contacts", err)
			}
			for _, it := range items {
				c, err := it.contact()
				if err != nil {
					return nil, infra.WrapRepoErr(t.slogger, infra.KindDBFailure, "malformed contact id", err)
				}
				out = append(out, c)
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].SavedAt().Before(out[j].SavedAt()) })
	return out, nil
}

func (t *ContactTable) CountByInstance(ctx context.Context, fromDay, toDay string) (map[string]int64, error) {
	contacts, err := t.List(ctx, fromDay, toDay)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64)
	for _, c := range contacts {
		counts[c.Instance()]++
	}
	return counts, nil
}

func daysBetween(fromDay, toDay string) ([]string, error) {
	from, err := time.Parse(contact.DayLayout, fromDay)
	if err != nil {
		return nil, errs.Wrap(ErrInvalidDay, fromDay)
	}
	to, err := time.Parse(contact.DayLayout, toDay)
	if err != nil {
		return nil, errs.Wrap(ErrInvalidDay, toDay)
	}

	var days []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(contact.DayLayout))
	}
	return days, nil
}

type PaymentTable struct{ table }

// Record keeps the most recent event per order.
func (t *PaymentTable) Record(ctx context.Context, entry shared.PaymentEntry) error {
	receivedAt := toNanos(entry.ReceivedAt)
	item, err := attributevalue.MarshalMap(paymentItem{
		PK:             pkPayment + entry.OrderReference,
		SK:             skMeta,
		OrderReference: entry.OrderReference,
		Status:         string(entry.Status),
		Identity:       entry.Identity.String(),
		ReceivedAt:     receivedAt,
	})
	if err != nil {
		return infra.WrapRepoErr(t.slogger, infra.KindDBFailure, "failed to marshal payment", err)
	}
	_, err = t.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(t.name),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK) OR receivedAt <= :r"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":r": &types.AttributeValueMemberN{Value: strconv.FormatInt(receivedAt, 10)},
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return nil
		}
		return infra.WrapRepoErr(t.slogger, infra.KindDBFailure, "failed to record payment", err)
	}
	return nil
}

func (t *PaymentTable) Latest(ctx context.Context, orderReference string) (*shared.PaymentEntry, error) {
	raw, err := t.getItem(ctx, pkPayment+orderReference, skMeta)
	if err != nil {
		return nil, infra.WrapRepoErr(t.slogger, infra.KindDBFailure, "failed to get payment", err)
	}
	if raw == nil {
		return nil, infra.NewNotFound("payment not found")
	}
	var it paymentItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return nil, infra.WrapRepoErr(t.slogger, infra.KindDBFailure, "failed to unmarshal payment", err)
	}
	return it.entry(), nil
}

type DispatchTable struct{ table }

func (t *DispatchTable) Append(ctx context.Context, entry shared.DispatchEntry) error {
	item, err := attributevalue.MarshalMap(dispatchItem{
		PK:             pkDispatch + entry.ID.String(),
		SK:             skMeta,
		Kind:           entry.Kind,
		Identity:       entry.Identity.String(),
		OrderReference: entry.OrderReference,
		Payload:        string(entry.Payload),
		Attempts:       entry.Attempts,
		Status:         string(entry.Status),
		LastError:      entry.LastError,
		CreatedAt:      toNanos(entry.CreatedAt),
	})
	if err != nil {
		return infra.WrapRepoErr(t.slogger, infra.KindDBFailure, "failed to marshal dispatch", err)
	}
	_, err = t.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(t.name),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})
	if err != nil {
		if isConditionFailed(err) {
			return infra.WrapRepoErr(t.slogger, infra.KindDuplicateKey, "dispatch already journaled", err)
		}
		return infra.WrapRepoErr(t.slogger, infra.KindDBFailure, "failed to journal dispatch", err)
	}
	return nil
}
