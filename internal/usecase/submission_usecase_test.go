package usecase

import (
	"context"
	"errors"
	"testing"

	"member_registry/internal/domain/entities"
	mock_interfaces "member_registry/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type notifierStub struct {
	ids    []string
	names  []string
	phones []string
}

func (n *notifierStub) Enqueue(id, name, phone string) bool {
	n.ids = append(n.ids, id)
	n.names = append(n.names, name)
	n.phones = append(n.phones, phone)
	return true
}

func ratingOf(v float64) *float64 { return &v }

func TestSubmissionUseCase_CreateSubmission(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		uc := NewSubmissionUseCase(nil, nil)
		_, err := uc.CreateSubmission(context.Background(), SubmissionDraft{
			Name: "   ", Phone: "9876543210", BusinessTitle: "Shop",
		})
		if !errors.Is(err, ErrMissingRequiredFields) {
			t.Fatalf("expected ErrMissingRequiredFields, got %v", err)
		}
	})

	t.Run("missing phone", func(t *testing.T) {
		uc := NewSubmissionUseCase(nil, nil)
		_, err := uc.CreateSubmission(context.Background(), SubmissionDraft{
			Name: "A", Phone: "", BusinessTitle: "Shop",
		})
		if !errors.Is(err, ErrMissingRequiredFields) {
			t.Fatalf("expected ErrMissingRequiredFields, got %v", err)
		}
	})

	t.Run("missing business title", func(t *testing.T) {
		uc := NewSubmissionUseCase(nil, nil)
		_, err := uc.CreateSubmission(context.Background(), SubmissionDraft{
			Name: "A", Phone: "9876543210", BusinessTitle: " ",
		})
		if !errors.Is(err, ErrMissingRequiredFields) {
			t.Fatalf("expected ErrMissingRequiredFields, got %v", err)
		}
	})

	t.Run("shapes and stores", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubmissionRepository(ctrl)
		notifier := &notifierStub{}
		uc := NewSubmissionUseCase(repo, notifier)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Submission{})).DoAndReturn(
			func(_ context.Context, s entities.Submission) (entities.Submission, error) {
				if s.Name != "A" || s.BusinessTitle != "Shop" {
					t.Fatalf("unexpected trim result: %+v", s)
				}
				if s.Phone != "919876543210" {
					t.Fatalf("expected normalized phone, got %q", s.Phone)
				}
				if s.Address.Area != "X" || s.Address.Town != "Y" {
					t.Fatalf("unexpected address: %+v", s.Address)
				}
				if s.Rating == nil || *s.Rating != 5 {
					t.Fatalf("expected rating clamped to 5, got %v", s.Rating)
				}
				if s.ID != "" || !s.CreatedAt.IsZero() {
					t.Fatalf("id/createdAt must be left to the repository")
				}
				s.ID = "sub-1"
				return s, nil
			},
		)

		created, err := uc.CreateSubmission(context.Background(), SubmissionDraft{
			Name: "  A  ", Phone: " 9876543210 ", BusinessTitle: " Shop ",
			Address: entities.Address{Area: " X ", Town: " Y "},
			Rating:  ratingOf(7),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != "sub-1" {
			t.Fatalf("expected stored id, got %q", created.ID)
		}
		if len(notifier.ids) != 1 || notifier.ids[0] != "sub-1" || notifier.phones[0] != "919876543210" {
			t.Fatalf("expected one notification for sub-1, got %+v", notifier)
		}
	})

	t.Run("negative rating clamps to zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubmissionRepository(ctrl)
		uc := NewSubmissionUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Submission) (entities.Submission, error) {
				if s.Rating == nil || *s.Rating != 0 {
					t.Fatalf("expected rating clamped to 0, got %v", s.Rating)
				}
				return s, nil
			},
		)

		_, err := uc.CreateSubmission(context.Background(), SubmissionDraft{
			Name: "A", Phone: "9876543210", BusinessTitle: "Shop", Rating: ratingOf(-3),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("absent rating stays nil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubmissionRepository(ctrl)
		uc := NewSubmissionUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Submission) (entities.Submission, error) {
				if s.Rating != nil {
					t.Fatalf("expected nil rating, got %v", *s.Rating)
				}
				return s, nil
			},
		)

		_, err := uc.CreateSubmission(context.Background(), SubmissionDraft{
			Name: "A", Phone: "9876543210", BusinessTitle: "Shop",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("repo error propagates, no notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubmissionRepository(ctrl)
		notifier := &notifierStub{}
		uc := NewSubmissionUseCase(repo, notifier)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Submission{}, errors.New("db"))

		_, err := uc.CreateSubmission(context.Background(), SubmissionDraft{
			Name: "A", Phone: "9876543210", BusinessTitle: "Shop",
		})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
		if len(notifier.ids) != 0 {
			t.Fatalf("expected no notification on failed insert")
		}
	})
}

func TestSubmissionUseCase_ListRecent(t *testing.T) {
	t.Run("caps at 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubmissionRepository(ctrl)
		uc := NewSubmissionUseCase(repo, nil)

		repo.EXPECT().ListRecent(gomock.Any(), 200).Return([]entities.Submission{{ID: "a"}, {ID: "b"}}, nil)

		rows, err := uc.ListRecent(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 2 || rows[0].ID != "a" {
			t.Fatalf("unexpected rows: %+v", rows)
		}
	})

	t.Run("repo error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubmissionRepository(ctrl)
		uc := NewSubmissionUseCase(repo, nil)

		repo.EXPECT().ListRecent(gomock.Any(), 200).Return(nil, errors.New("db"))

		if _, err := uc.ListRecent(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})
}
