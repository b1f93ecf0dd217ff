package repository

import (
	"context"

	"meusdocumentos/internal/domain/entities"
	"meusdocumentos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProfilesTableName = "customer_profiles"

type customerProfileItem struct {
	UserID string `dynamodbav:"user_id"`
	Name   string `dynamodbav:"name"`
	TaxID  string `dynamodbav:"tax_id"`
	Phone  string `dynamodbav:"phone"`
	Email  string `dynamodbav:"email"`
}

// CustomerProfileDynamoRepository reads saved customer profiles from
// DynamoDB. Profiles are written by the account service; this side only
// reads them to seed requirements gathering.
//
// Table requirements:
//   - PK: user_id (string)

type CustomerProfileDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICustomerProfileRepository = (*CustomerProfileDynamoRepository)(nil)

func NewCustomerProfileDynamoRepository(ddb *dynamodb.Client) *CustomerProfileDynamoRepository {
	return &CustomerProfileDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROFILES_TABLE", defaultProfilesTableName),
	}
}

func (r *CustomerProfileDynamoRepository) GetByUserID(ctx context.Context, userID string) (entities.CustomerProfile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return entities.CustomerProfile{}, err
	}
	if len(out.Item) == 0 {
		return entities.CustomerProfile{}, nil
	}

	var it customerProfileItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CustomerProfile{}, err
	}
	return entities.CustomerProfile{
		Name:  it.Name,
		TaxID: it.TaxID,
		Phone: it.Phone,
		Email: it.Email,
	}, nil
}
