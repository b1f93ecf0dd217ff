package repository

import (
	"context"
	"errors"
	"time"

	"meusdocumentos/internal/domain/entities"
	"meusdocumentos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrdersTableName = "orders"

type orderItem struct {
	ID            string `dynamodbav:"id"`
	ServiceID     string `dynamodbav:"service_id"`
	ServiceName   string `dynamodbav:"service_name"`
	UserID        string `dynamodbav:"user_id,omitempty"`
	CustomerName  string `dynamodbav:"customer_name"`
	CustomerTaxID string `dynamodbav:"customer_tax_id"`
	CustomerPhone string `dynamodbav:"customer_phone"`
	CustomerEmail string `dynamodbav:"customer_email"`
	BasePrice     int64  `dynamodbav:"base_price"`
	UrgencyFee    int64  `dynamodbav:"urgency_fee"`
	Total         int64  `dynamodbav:"total"`
	Status        string `dynamodbav:"status"`
	PaymentStatus string `dynamodbav:"payment_status"`
	EstimatedDate string `dynamodbav:"estimated_completion_date"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
//
// Create is conditional on the id not existing, so a retried creation never
// overwrites an order.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	it := toOrderItem(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) UpdateStatuses(ctx context.Context, id string, status entities.OrderStatus, payment entities.PaymentStatus) (entities.Order, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #payment_status = :payment_status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":         &types.AttributeValueMemberS{Value: string(status)},
			":payment_status": &types.AttributeValueMemberS{Value: string(payment)},
			":updated_at":     &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":         "status",
			"#payment_status": "payment_status",
			"#updated_at":     "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		ID:            o.ID,
		ServiceID:     o.ServiceID,
		ServiceName:   o.ServiceName,
		UserID:        o.UserID,
		CustomerName:  o.Customer.Name,
		CustomerTaxID: o.Customer.TaxID,
		CustomerPhone: o.Customer.Phone,
		CustomerEmail: o.Customer.Email,
		BasePrice:     o.Pricing.BasePrice,
		UrgencyFee:    o.Pricing.UrgencyFee,
		Total:         o.Pricing.Total,
		Status:        string(o.Status),
		PaymentStatus: string(o.PaymentStatus),
		EstimatedDate: o.EstimatedCompletionDate.UTC().Format(time.RFC3339Nano),
		CreatedAt:     o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	estimated, _ := time.Parse(time.RFC3339Nano, it.EstimatedDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Order{
		ID:          it.ID,
		ServiceID:   it.ServiceID,
		ServiceName: it.ServiceName,
		UserID:      it.UserID,
		Customer: entities.CustomerProfile{
			Name:  it.CustomerName,
			TaxID: it.CustomerTaxID,
			Phone: it.CustomerPhone,
			Email: it.CustomerEmail,
		},
		Pricing: entities.PricingSnapshot{
			BasePrice:  it.BasePrice,
			UrgencyFee: it.UrgencyFee,
			Total:      it.Total,
		},
		Status:                  entities.OrderStatus(it.Status),
		PaymentStatus:           entities.PaymentStatus(it.PaymentStatus),
		EstimatedCompletionDate: estimated,
		CreatedAt:               createdAt,
		UpdatedAt:               updatedAt,
	}
}
