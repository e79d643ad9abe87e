package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"member_registry/internal/domain/entities"
	"member_registry/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	defaultSubmissionsTableName = "submissions"
	createdAtIndexName          = "created_at-index"

	// recordTypeSubmission is the constant partition key of created_at-index.
	// Every item carries it so the newest-first listing is a single Query
	// with ScanIndexForward=false instead of a full Scan.
	recordTypeSubmission = "submission"
)

type addressItem struct {
	Area string `dynamodbav:"area"`
	Town string `dynamodbav:"town"`
}

type smsStatusItem struct {
	OK       bool   `dynamodbav:"ok"`
	Response string `dynamodbav:"response"`
	SentAt   string `dynamodbav:"sent_at"`
}

type submissionItem struct {
	ID             string         `dynamodbav:"id"`
	RecordType     string         `dynamodbav:"record_type"`
	Name           string         `dynamodbav:"name"`
	Phone          string         `dynamodbav:"phone"`
	BusinessTitle  string         `dynamodbav:"business_title"`
	Address        addressItem    `dynamodbav:"address"`
	AddressVersion int            `dynamodbav:"address_version"`
	Rating         *string        `dynamodbav:"rating,omitempty"`
	CreatedAt      string         `dynamodbav:"created_at"`
	SMSStatus      *smsStatusItem `dynamodbav:"sms_status,omitempty"`
}

// SubmissionDynamoRepository persists Submission entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI created_at-index: PK record_type (string), SK created_at (string)
//
// The repository is the only writer of id and created_at; an unrated
// submission simply has no rating attribute, so nil and 0 survive round trips.
type SubmissionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISubmissionRepository = (*SubmissionDynamoRepository)(nil)

func NewSubmissionDynamoRepository(ddb *dynamodb.Client) *SubmissionDynamoRepository {
	return &SubmissionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SUBMISSIONS_TABLE", defaultSubmissionsTableName),
	}
}

func (r *SubmissionDynamoRepository) Create(ctx context.Context, s entities.Submission) (entities.Submission, error) {
	s.ID = uuid.NewString()
	s.CreatedAt = time.Now().UTC()

	av, err := attributevalue.MarshalMap(toSubmissionItem(s))
	if err != nil {
		return entities.Submission{}, err
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
		return entities.Submission{}, err
	}
	return s, nil
}

func (r *SubmissionDynamoRepository) ListRecent(ctx context.Context, limit int) ([]entities.Submission, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(createdAtIndexName),
		KeyConditionExpression: aws.String("#record_type = :record_type"),
		ExpressionAttributeNames: map[string]string{
			"#record_type": "record_type",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":record_type": &types.AttributeValueMemberS{Value: recordTypeSubmission},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(int32(limit)),
	})
	if err != nil {
		return nil, err
	}

	var items []submissionItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}

	submissions := make([]entities.Submission, 0, len(items))
	for _, it := range items {
		submissions = append(submissions, fromSubmissionItem(it))
	}
	return submissions, nil
}

// SetSMSStatusByID patches the notification outcome onto an existing record.
// The condition enforces the at-most-once contract: if sms_status is already
// set (or the record is gone) the write is a silent no-op.
func (r *SubmissionDynamoRepository) SetSMSStatusByID(ctx context.Context, id string, status entities.SMSStatus) error {
	statusAV, err := attributevalue.Marshal(toSMSStatusItem(status))
	if err != nil {
		return err
	}

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#sms_status)"),
		UpdateExpression:    aws.String("SET #sms_status = :sms_status"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#sms_status": "sms_status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sms_status": statusAV,
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil
		}
		return err
	}
	return nil
}

func toSubmissionItem(s entities.Submission) submissionItem {
	it := submissionItem{
		ID:             s.ID,
		RecordType:     recordTypeSubmission,
		Name:           s.Name,
		Phone:          s.Phone,
		BusinessTitle:  s.BusinessTitle,
		Address:        addressItem{Area: s.Address.Area, Town: s.Address.Town},
		AddressVersion: entities.AddressSchemaVersion,
		CreatedAt:      s.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if s.Rating != nil {
		v := floatToString(*s.Rating)
		it.Rating = &v
	}
	if s.SMSStatus != nil {
		st := toSMSStatusItem(*s.SMSStatus)
		it.SMSStatus = &st
	}
	return it
}

func fromSubmissionItem(it submissionItem) entities.Submission {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	s := entities.Submission{
		ID:            it.ID,
		Name:          it.Name,
		Phone:         it.Phone,
		BusinessTitle: it.BusinessTitle,
		Address:       entities.Address{Area: it.Address.Area, Town: it.Address.Town},
		CreatedAt:     createdAt,
	}
	if it.Rating != nil {
		if v, err := strconv.ParseFloat(*it.Rating, 64); err == nil {
			s.Rating = &v
		}
	}
	if it.SMSStatus != nil {
		sentAt, _ := time.Parse(time.RFC3339Nano, it.SMSStatus.SentAt)
		s.SMSStatus = &entities.SMSStatus{
			OK:       it.SMSStatus.OK,
			Response: it.SMSStatus.Response,
			SentAt:   sentAt,
		}
	}
	return s
}

func toSMSStatusItem(status entities.SMSStatus) smsStatusItem {
	return smsStatusItem{
		OK:       status.OK,
		Response: status.Response,
		SentAt:   status.SentAt.UTC().Format(time.RFC3339Nano),
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
