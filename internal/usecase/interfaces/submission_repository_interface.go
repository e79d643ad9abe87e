package interfaces

import (
	"context"
	"member_registry/internal/domain/entities"
)

// ISubmissionRepository abstracts DynamoDB persistence for Submission.
//
// The service must be able to:
//   - insert a submission (the repository assigns id and createdAt)
//   - list the most recent submissions, newest first, capped
//   - patch the notification outcome onto an existing submission, at most once
type ISubmissionRepository interface {
	Create(ctx context.Context, s entities.Submission) (entities.Submission, error)
	ListRecent(ctx context.Context, limit int) ([]entities.Submission, error)
	SetSMSStatusByID(ctx context.Context, id string, status entities.SMSStatus) error
}
