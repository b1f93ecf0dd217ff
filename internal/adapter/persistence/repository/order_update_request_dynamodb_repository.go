package repository

import (
	"context"
	"time"

	"meusdocumentos/internal/domain/entities"
	"meusdocumentos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultUpdateRequestsTableName = "order_update_requests"
	updateRequestsOrderIDIndex     = "order_id-index"
)

type orderUpdateRequestItem struct {
	ID        string `dynamodbav:"id"`
	OrderID   string `dynamodbav:"order_id"`
	Kind      string `dynamodbav:"kind"`
	Text      string `dynamodbav:"text"`
	CreatedAt string `dynamodbav:"created_at"`
}

// OrderUpdateRequestDynamoRepository persists OrderUpdateRequest entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)

type OrderUpdateRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderUpdateRequestRepository = (*OrderUpdateRequestDynamoRepository)(nil)

func NewOrderUpdateRequestDynamoRepository(ddb *dynamodb.Client) *OrderUpdateRequestDynamoRepository {
	return &OrderUpdateRequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("UPDATE_REQUESTS_TABLE", defaultUpdateRequestsTableName),
	}
}

func (r *OrderUpdateRequestDynamoRepository) Create(ctx context.Context, req entities.OrderUpdateRequest) (entities.OrderUpdateRequest, error) {
	it := toOrderUpdateRequestItem(req)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.OrderUpdateRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.OrderUpdateRequest{}, err
	}
	return req, nil
}

func (r *OrderUpdateRequestDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.OrderUpdateRequest, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(updateRequestsOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.OrderUpdateRequest, 0, len(out.Items))
	for _, raw := range out.Items {
		var it orderUpdateRequestItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromOrderUpdateRequestItem(it))
	}
	return items, nil
}

func toOrderUpdateRequestItem(req entities.OrderUpdateRequest) orderUpdateRequestItem {
	return orderUpdateRequestItem{
		ID:        req.ID,
		OrderID:   req.OrderID,
		Kind:      string(req.Kind),
		Text:      req.Text,
		CreatedAt: req.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromOrderUpdateRequestItem(it orderUpdateRequestItem) entities.OrderUpdateRequest {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.OrderUpdateRequest{
		ID:        it.ID,
		OrderID:   it.OrderID,
		Kind:      entities.UpdateRequestKind(it.Kind),
		Text:      it.Text,
		CreatedAt: createdAt,
	}
}
