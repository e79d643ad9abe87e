package usecase

import (
	"context"
	"errors"
	"strings"

	"member_registry/internal/domain/entities"
	"member_registry/internal/usecase/interfaces"
	"member_registry/pkg/phone"
)

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
)

const listRecentLimit = 200

// SubmissionDraft is the coerced-but-unvalidated input produced by the HTTP
// request DTO. The use case owns validation, clamping and phone normalization.
type SubmissionDraft struct {
	Name          string
	Phone         string
	BusinessTitle string
	Address       entities.Address
	Rating        *float64
}

// ISubmissionUseCase exposes the registration operations.
//
//   - POST /api/submit => CreateSubmission()
//   - GET  /api/submit => ListRecent()
type ISubmissionUseCase interface {
	CreateSubmission(ctx context.Context, draft SubmissionDraft) (entities.Submission, error)
	ListRecent(ctx context.Context) ([]entities.Submission, error)
}

type SubmissionUseCase struct {
	repo     interfaces.ISubmissionRepository
	notifier Notifier
}

// Notifier schedules the post-insert SMS. It must not block: the client
// response completes before the dispatch resolves.
type Notifier interface {
	Enqueue(id, name, phone string) bool
}

var _ ISubmissionUseCase = (*SubmissionUseCase)(nil)

// NewSubmissionUseCase wires the use case. notifier may be nil, in which case
// submissions are stored without a notification attempt.
func NewSubmissionUseCase(repo interfaces.ISubmissionRepository, notifier Notifier) *SubmissionUseCase {
	return &SubmissionUseCase{repo: repo, notifier: notifier}
}

// CreateSubmission validates and shapes the draft, persists it, and schedules
// the notification. The stored record is returned as soon as the insert
// succeeds; the SMS outcome is patched onto it later, best effort.
func (u *SubmissionUseCase) CreateSubmission(ctx context.Context, draft SubmissionDraft) (entities.Submission, error) {
	name := strings.TrimSpace(draft.Name)
	rawPhone := strings.TrimSpace(draft.Phone)
	businessTitle := strings.TrimSpace(draft.BusinessTitle)

	if name == "" || rawPhone == "" || businessTitle == "" {
		return entities.Submission{}, ErrMissingRequiredFields
	}

	s := entities.Submission{
		Name:          name,
		Phone:         phone.Normalize(rawPhone),
		BusinessTitle: businessTitle,
		Address: entities.Address{
			Area: strings.TrimSpace(draft.Address.Area),
			Town: strings.TrimSpace(draft.Address.Town),
		},
		Rating: clampRating(draft.Rating),
	}

	created, err := u.repo.Create(ctx, s)
	if err != nil {
		return entities.Submission{}, err
	}

	if u.notifier != nil {
		u.notifier.Enqueue(created.ID, created.Name, created.Phone)
	}
	return created, nil
}

// ListRecent returns the newest submissions first, capped at 200.
func (u *SubmissionUseCase) ListRecent(ctx context.Context) ([]entities.Submission, error) {
	return u.repo.ListRecent(ctx, listRecentLimit)
}

func clampRating(r *float64) *float64 {
	if r == nil {
		return nil
	}
	v := *r
	if v < 0 {
		v = 0
	}
	if v > 5 {
		v = 5
	}
	return &v
}
