package repository

import (
	"context"
	"time"

	"techfood_payment/internal/domain/entities"
	"techfood_payment/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsOrderIDIndex     = "order_id-index"
)

type paymentItem struct {
	ID        string  `dynamodbav:"id"`
	OrderID   string  `dynamodbav:"order_id"`
	Type      string  `dynamodbav:"type"`
	Amount    float64 `dynamodbav:"amount"`
	Status    string  `dynamodbav:"status"`
	CreatedAt string  `dynamodbav:"created_at"`
	PaidAt    string  `dynamodbav:"paid_at,omitempty"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)
//
// The status check guarding webhook idempotency happens in the use case, so
// two concurrent confirmations for the same order can both pass it; a
// ConditionExpression on status here would close that window.

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Add(ctx context.Context, p *entities.Payment) (uuid.UUID, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return uuid.Nil, err
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
		return uuid.Nil, err
	}
	return p.ID, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id.String()},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return fromPaymentItem(it)
}

func (r *PaymentDynamoRepository) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID.String()},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Items) == 0 {
		return nil, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return nil, err
	}
	return fromPaymentItem(it)
}

func (r *PaymentDynamoRepository) Update(ctx context.Context, p *entities.Payment) error {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func toPaymentItem(p *entities.Payment) paymentItem {
	it := paymentItem{
		ID:        p.ID.String(),
		OrderID:   p.OrderID.String(),
		Type:      string(p.Type),
		Amount:    p.Amount,
		Status:    string(p.Status),
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if p.PaidAt != nil {
		it.PaidAt = p.PaidAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromPaymentItem(it paymentItem) (*entities.Payment, error) {
	id, err := uuid.Parse(it.ID)
	if err != nil {
		return nil, err
	}
	orderID, err := uuid.Parse(it.OrderID)
	if err != nil {
		return nil, err
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	var paidAt *time.Time
	if it.PaidAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.PaidAt); err == nil {
			paidAt = &t
		}
	}

	return &entities.Payment{
		ID:        id,
		OrderID:   orderID,
		Type:      entities.PaymentType(it.Type),
		Amount:    it.Amount,
		Status:    entities.PaymentStatus(it.Status),
		CreatedAt: createdAt,
		PaidAt:    paidAt,
	}, nil
}
