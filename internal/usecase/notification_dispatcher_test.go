package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"member_registry/internal/domain/entities"
	mock_interfaces "member_registry/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestNotificationDispatcher_DeliveredPatchesStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockISMSGateway(ctrl)
	repo := mock_interfaces.NewMockISubmissionRepository(ctrl)

	wantMessage := fmt.Sprintf(DefaultMessageTemplate, "A")
	gateway.EXPECT().Send(gomock.Any(), "919876543210", wantMessage).
		Return(entities.SMSResult{OK: true, ProviderResponse: "1701|abc123"})
	repo.EXPECT().SetSMSStatusByID(gomock.Any(), "sub-1", gomock.AssignableToTypeOf(entities.SMSStatus{})).DoAndReturn(
		func(_ context.Context, _ string, status entities.SMSStatus) error {
			if !status.OK || status.Response != "1701|abc123" {
				t.Fatalf("unexpected status: %+v", status)
			}
			if status.SentAt.IsZero() {
				t.Fatalf("expected sentAt to be set")
			}
			return nil
		},
	)

	d := NewNotificationDispatcher(gateway, repo, "")
	if !d.Enqueue("sub-1", "A", "919876543210") {
		t.Fatalf("expected enqueue to succeed")
	}
	d.Stop()

	stats := d.Stats()
	if stats.Enqueued != 1 || stats.Delivered != 1 || stats.Failed != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestNotificationDispatcher_FailureRecordedNotSurfaced(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockISMSGateway(ctrl)
	repo := mock_interfaces.NewMockISubmissionRepository(ctrl)

	gateway.EXPECT().Send(gomock.Any(), "919876543210", gomock.Any()).
		Return(entities.SMSResult{OK: false, Error: "dial tcp: i/o timeout"})
	repo.EXPECT().SetSMSStatusByID(gomock.Any(), "sub-2", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, status entities.SMSStatus) error {
			if status.OK {
				t.Fatalf("expected failed status")
			}
			if status.Response != "dial tcp: i/o timeout" {
				t.Fatalf("expected transport error retained, got %q", status.Response)
			}
			return nil
		},
	)

	d := NewNotificationDispatcher(gateway, repo, "")
	d.Enqueue("sub-2", "B", "919876543210")
	d.Stop()

	if stats := d.Stats(); stats.Failed != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestNotificationDispatcher_PatchErrorIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockISMSGateway(ctrl)
	repo := mock_interfaces.NewMockISubmissionRepository(ctrl)

	gateway.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(entities.SMSResult{OK: true, ProviderResponse: "submitted"})
	repo.EXPECT().SetSMSStatusByID(gomock.Any(), "sub-3", gomock.Any()).Return(errors.New("db"))

	d := NewNotificationDispatcher(gateway, repo, "")
	d.Enqueue("sub-3", "C", "919876543210")
	d.Stop()

	// Delivery still counts; the lost patch is a benign partial state.
	if stats := d.Stats(); stats.Delivered != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestNotificationDispatcher_SaturatedQueueDrops(t *testing.T) {
	d := &NotificationDispatcher{queue: make(chan notificationJob, 1)}

	if !d.Enqueue("sub-1", "A", "919876543210") {
		t.Fatalf("first enqueue should fit")
	}
	if d.Enqueue("sub-2", "B", "919876543210") {
		t.Fatalf("second enqueue should drop")
	}

	stats := d.Stats()
	if stats.Enqueued != 1 || stats.Dropped != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestNotificationDispatcher_StopIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockISMSGateway(ctrl)
	repo := mock_interfaces.NewMockISubmissionRepository(ctrl)

	d := NewNotificationDispatcher(gateway, repo, "")
	d.Stop()
	d.Stop()
}
