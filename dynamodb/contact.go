package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"phonebook/contact"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

type ContactRepository struct {
	client API
	table  string
	now    func() time.Time
}

type contactItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Number    string `dynamodbav:"number"`
	CreatedAt int64  `dynamodbav:"created_at"`
}

func (i contactItem) toDomain() contact.Contact {
	return contact.Contact{
		ID:     i.ID,
		Name:   i.Name,
		Number: i.Number,
	}
}

func NewContactRepository(client API, table string) *ContactRepository {
	return &ContactRepository{
		client: client,
		table:  table,
		now:    time.Now,
	}
}

func contactKey(id uuid.UUID) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id.String()},
	}
}

func (r *ContactRepository) AllContacts(ctx context.Context) ([]contact.Contact, error) {
	if err := validateTable(r.table); err != nil {
		return nil, err
	}

	var items []contactItem
	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName: &r.table,
	})
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("dynamodb: scan contacts: %w", err)
		}

		var page []contactItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("dynamodb: unmarshal contacts: %w", err)
		}
		items = append(items, page...)
	}

	// scans come back in hash order
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].CreatedAt != items[j].CreatedAt {
			return items[i].CreatedAt < items[j].CreatedAt
		}
		return items[i].ID < items[j].ID
	})

	contacts := make([]contact.Contact, len(items))
	for i, item := range items {
		contacts[i] = item.toDomain()
	}
	return contacts, nil
}

func (r *ContactRepository) ContactByID(ctx context.Context, id string) (contact.Contact, error) {
	if err := validateTable(r.table); err != nil {
		return contact.Contact{}, err
	}
	uid, err := contact.ParseID(id)
	if err != nil {
		return contact.Contact{}, err
	}

	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &r.table,
		Key:       contactKey(uid),
	})
	if err != nil {
		return contact.Contact{}, fmt.Errorf("dynamodb: get contact: %w", err)
	}
	if len(out.Item) == 0 {
		return contact.Contact{}, contact.ErrContactNotFound
	}

	var item contactItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return contact.Contact{}, fmt.Errorf("dynamodb: unmarshal contact: %w", err)
	}
	return item.toDomain(), nil
}

func (r *ContactRepository) CreateContact(ctx context.Context, c contact.Contact) (contact.Contact, error) {
	if err := validateTable(r.table); err != nil {
		return contact.Contact{}, err
	}
	if err := contact.CheckConstraints(c); err != nil {
		return contact.Contact{}, err
	}

	item := contactItem{
		ID:        uuid.NewString(),
		Name:      c.Name,
		Number:    c.Number,
		CreatedAt: r.now().UnixNano(),
	}
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return contact.Contact{}, fmt.Errorf("dynamodb: marshal contact: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &r.table,
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		return contact.Contact{}, fmt.Errorf("dynamodb: put contact: %w", err)
	}

	return item.toDomain(), nil
}

func (r *ContactRepository) UpdateContact(ctx context.Context, c contact.Contact) (contact.Contact, error) {
	if err := validateTable(r.table); err != nil {
		return contact.Contact{}, err
	}
	uid, err := contact.ParseID(c.ID)
	if err != nil {
		return contact.Contact{}, err
	}
	if err := contact.CheckConstraints(c); err != nil {
		return contact.Contact{}, err
	}

	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           &r.table,
		Key:                 contactKey(uid),
		UpdateExpression:    aws.String("SET #name = :name, #number = :number"),
		ConditionExpression: aws.String("attribute_exists(id)"),
		ExpressionAttributeNames: map[string]string{
			"#name":   "name",
			"#number": "number",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name":   &types.AttributeValueMemberS{Value: c.Name},
			":number": &types.AttributeValueMemberS{Value: c.Number},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return contact.Contact{}, contact.ErrContactNotFound
		}
		return contact.Contact{}, fmt.Errorf("dynamodb: update contact: %w", err)
	}

	var item contactItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &item); err != nil {
		return contact.Contact{}, fmt.Errorf("dynamodb: unmarshal contact: %w", err)
	}
	return item.toDomain(), nil
}

func (r *ContactRepository) DeleteContact(ctx context.Context, id string) error {
	if err := validateTable(r.table); err != nil {
		return err
	}
	uid, err := contact.ParseID(id)
	if err != nil {
		return err
	}

	_, err = r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &r.table,
		Key:       contactKey(uid),
	})
	if err != nil {
		return fmt.Errorf("dynamodb: delete contact: %w", err)
	}
	return nil
}

func (r *ContactRepository) CountContacts(ctx context.Context) (int64, error) {
	if err := validateTable(r.table); err != nil {
		return 0, err
	}

	var total int64
	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName: &r.table,
		Select:    types.SelectCount,
	})
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, fmt.Errorf("dynamodb: count contacts: %w", err)
		}
		total += int64(out.Count)
	}
	return total, nil
}
