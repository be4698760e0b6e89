package repository

import (
	"context"
	"errors"
	"time"

	"bidboard/internal/domain/entities"
	"bidboard/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEstimatesTableName = "estimates"

type lineItemItem struct {
	ID          string  `dynamodbav:"id"`
	Name        string  `dynamodbav:"name"`
	Description string  `dynamodbav:"description"`
	Qty         float64 `dynamodbav:"qty"`
	Rate        float64 `dynamodbav:"rate"`
	Amount      float64 `dynamodbav:"amount"`
}

type estimateItem struct {
	ID         string         `dynamodbav:"id"`
	Name       string         `dynamodbav:"name"`
	CustomerID string         `dynamodbav:"customer_id"`
	Location   string         `dynamodbav:"location"`
	Status     string         `dynamodbav:"status"`
	Total      float64        `dynamodbav:"total"`
	DueDate    string         `dynamodbav:"due_date"`
	Memo       string         `dynamodbav:"memo"`
	Exclusions string         `dynamodbav:"exclusions"`
	LineItems  []lineItemItem `dynamodbav:"line_items"`
	Margin     *float64       `dynamodbav:"margin,omitempty"`
	Tax        *float64       `dynamodbav:"tax,omitempty"`
	CreatedAt  string         `dynamodbav:"created_at"`
	UpdatedAt  string         `dynamodbav:"updated_at"`
}

// EstimateDynamoRepository persists whole estimate snapshots in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Line items are stored inline as a list attribute, so every Save replaces the
// estimate and its items in a single PutItem.
type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) TableName() string {
	return r.tableName
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	av, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		return entities.Estimate{}, err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Estimate{}, ErrEstimateExists
		}
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

// List scans the table; fine for the size of a bid pipeline.
func (r *EstimateDynamoRepository) List(ctx context.Context) ([]entities.Estimate, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})

	out := []entities.Estimate{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []estimateItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromEstimateItem(it))
		}
	}
	sortNewestFirst(out)
	return out, nil
}

// Save replaces the stored snapshot. Unknown ids return a zero Estimate.
func (r *EstimateDynamoRepository) Save(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	av, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		return entities.Estimate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Estimate{}, nil
		}
		return entities.Estimate{}, err
	}
	return e, nil
}

func toEstimateItem(e entities.Estimate) estimateItem {
	items := make([]lineItemItem, 0, len(e.LineItems))
	for _, li := range e.LineItems {
		items = append(items, lineItemItem(li))
	}
	return estimateItem{
		ID:         e.ID,
		Name:       e.Name,
		CustomerID: e.CustomerID,
		Location:   e.Location,
		Status:     string(e.Status),
		Total:      e.Total,
		DueDate:    e.DueDate,
		Memo:       e.Memo,
		Exclusions: e.Exclusions,
		LineItems:  items,
		Margin:     e.Margin,
		Tax:        e.Tax,
		CreatedAt:  e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:  e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	items := make([]entities.LineItem, 0, len(it.LineItems))
	for _, li := range it.LineItems {
		items = append(items, entities.LineItem(li))
	}
	return entities.Estimate{
		ID:         it.ID,
		Name:       it.Name,
		CustomerID: it.CustomerID,
		Location:   it.Location,
		Status:     entities.EstimateStatus(it.Status),
		Total:      it.Total,
		DueDate:    it.DueDate,
		Memo:       it.Memo,
		Exclusions: it.Exclusions,
		LineItems:  items,
		Margin:     it.Margin,
		Tax:        it.Tax,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
}
