package repository

import (
	"context"
	"encoding/json"
	"time"

	"meusdocumentos/internal/domain/entities"
	"meusdocumentos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultConversationsTableName = "conversations"
	conversationsUserIDIndex      = "user_id-index"
)

// Message log and state bag are stored as opaque JSON documents. The chat
// history is only ever read back whole, so there is nothing to query inside.

type conversationItem struct {
	SessionID string `dynamodbav:"session_id"`
	UserID    string `dynamodbav:"user_id"`
	Messages  string `dynamodbav:"messages"`
	State     string `dynamodbav:"state"`
	Data      string `dynamodbav:"data"`
	Status    string `dynamodbav:"status"`
	OrderID   string `dynamodbav:"order_id,omitempty"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ConversationDynamoRepository persists conversation snapshots in DynamoDB.
//
// Table requirements:
//   - PK: session_id (string)
//   - GSI: user_id-index (PK: user_id, SK: updated_at)
//
// Save is an unconditional PutItem (last snapshot wins).

type ConversationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IConversationRepository = (*ConversationDynamoRepository)(nil)

func NewConversationDynamoRepository(ddb *dynamodb.Client) *ConversationDynamoRepository {
	return &ConversationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONVERSATIONS_TABLE", defaultConversationsTableName),
	}
}

func (r *ConversationDynamoRepository) Save(ctx context.Context, rec entities.ConversationRecord) error {
	it, err := toConversationItem(rec)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *ConversationDynamoRepository) GetLatestActiveByUserID(ctx context.Context, userID string) (entities.ConversationRecord, error) {
	// Limit applies before FilterExpression, so a page can come back empty
	// while an older active record still exists. Page until a match or the
	// index is exhausted.
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(conversationsUserIDIndex),
			KeyConditionExpression: aws.String("user_id = :uid"),
			FilterExpression:       aws.String("#status = :active"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":uid":    &types.AttributeValueMemberS{Value: userID},
				":active": &types.AttributeValueMemberS{Value: string(entities.ConversationStatusActive)},
			},
			ScanIndexForward:  aws.Bool(false),
			Limit:             aws.Int32(10),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return entities.ConversationRecord{}, err
		}

		if len(out.Items) > 0 {
			var it conversationItem
			if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
				return entities.ConversationRecord{}, err
			}
			return fromConversationItem(it)
		}
		if out.LastEvaluatedKey == nil {
			return entities.ConversationRecord{}, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func toConversationItem(rec entities.ConversationRecord) (conversationItem, error) {
	messages, err := json.Marshal(rec.Messages)
	if err != nil {
		return conversationItem{}, err
	}
	data, err := json.Marshal(rec.Data)
	if err != nil {
		return conversationItem{}, err
	}
	return conversationItem{
		SessionID: rec.SessionID,
		UserID:    rec.UserID,
		Messages:  string(messages),
		State:     string(rec.State),
		Data:      string(data),
		Status:    string(rec.Status),
		OrderID:   rec.OrderID,
		UpdatedAt: rec.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromConversationItem(it conversationItem) (entities.ConversationRecord, error) {
	rec := entities.ConversationRecord{
		SessionID: it.SessionID,
		UserID:    it.UserID,
		State:     entities.ConversationState(it.State),
		Status:    entities.ConversationStatus(it.Status),
		OrderID:   it.OrderID,
	}
	if it.Messages != "" {
		if err := json.Unmarshal([]byte(it.Messages), &rec.Messages); err != nil {
			return entities.ConversationRecord{}, err
		}
	}
	if it.Data != "" {
		if err := json.Unmarshal([]byte(it.Data), &rec.Data); err != nil {
			return entities.ConversationRecord{}, err
		}
	}
	rec.UpdatedAt, _ = time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return rec, nil
}
