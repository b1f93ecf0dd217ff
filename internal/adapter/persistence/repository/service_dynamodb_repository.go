package repository

import (
	"context"
	"sort"

	"meusdocumentos/internal/domain/entities"
	"meusdocumentos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultServicesTableName = "services"

type serviceItem struct {
	ID            string `dynamodbav:"id"`
	Name          string `dynamodbav:"name"`
	Category      string `dynamodbav:"category"`
	Description   string `dynamodbav:"description"`
	BasePrice     int64  `dynamodbav:"base_price"`
	EstimatedDays int    `dynamodbav:"estimated_days"`
	Position      int    `dynamodbav:"position"`
	Active        bool   `dynamodbav:"active"`
}

// ServiceCatalogDynamoRepository reads the document service catalog from
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The catalog is small and externally managed, so ListActive scans the whole
// table and sorts by position client-side.

type ServiceCatalogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceCatalogRepository = (*ServiceCatalogDynamoRepository)(nil)

func NewServiceCatalogDynamoRepository(ddb *dynamodb.Client) *ServiceCatalogDynamoRepository {
	return &ServiceCatalogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICES_TABLE", defaultServicesTableName),
	}
}

func (r *ServiceCatalogDynamoRepository) ListActive(ctx context.Context) ([]entities.Service, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#active = :true"),
		ExpressionAttributeNames: map[string]string{
			"#active": "active",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return nil, err
	}

	services := make([]entities.Service, 0, len(out.Items))
	for _, raw := range out.Items {
		var it serviceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		services = append(services, fromServiceItem(it))
	}
	sort.SliceStable(services, func(i, j int) bool {
		return services[i].Position < services[j].Position
	})
	return services, nil
}

func (r *ServiceCatalogDynamoRepository) GetByID(ctx context.Context, id string) (entities.Service, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Service{}, err
	}
	if len(out.Item) == 0 {
		return entities.Service{}, nil
	}

	var it serviceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Service{}, err
	}
	return fromServiceItem(it), nil
}

func fromServiceItem(it serviceItem) entities.Service {
	return entities.Service{
		ID:            it.ID,
		Name:          it.Name,
		Category:      it.Category,
		Description:   it.Description,
		BasePrice:     it.BasePrice,
		EstimatedDays: it.EstimatedDays,
		Position:      it.Position,
		Active:        it.Active,
	}
}
