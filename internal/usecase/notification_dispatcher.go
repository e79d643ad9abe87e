package usecase

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"member_registry/internal/domain/entities"
	"member_registry/internal/usecase/interfaces"
)

const (
	defaultQueueSize = 64

	// Bound for each detached dispatch, independent of the originating
	// request: the gateway has its own 10s transport timeout, the extra
	// headroom covers the status patch.
	dispatchTimeout = 30 * time.Second
)

// DefaultMessageTemplate must stay aligned with the provider-approved DLT
// template; the provider filters on exact content, so changing it here without
// re-registering it provider-side makes every send fail.
const DefaultMessageTemplate = "Dear %s, your membership registration has been received. Thank you!"

type notificationJob struct {
	SubmissionID string
	Name         string
	Phone        string
}

// DispatcherStats is a point-in-time snapshot of dispatcher activity.
type DispatcherStats struct {
	Enqueued  uint64
	Dropped   uint64
	Delivered uint64
	Failed    uint64
}

// NotificationDispatcher sends the post-registration SMS and patches the
// outcome onto the submission, detached from the request/response lifecycle.
//
// It is modeled as an explicit queue with a single worker rather than a bare
// goroutine per request, so saturation, completion and failures are observable
// through logs and Stats. There are no retries: one attempt per submission,
// and a full queue drops the job (the submission itself is already stored).
type NotificationDispatcher struct {
	gateway  interfaces.ISMSGateway
	repo     interfaces.ISubmissionRepository
	template string

	queue chan notificationJob
	wg    sync.WaitGroup
	once  sync.Once

	enqueued  atomic.Uint64
	dropped   atomic.Uint64
	delivered atomic.Uint64
	failed    atomic.Uint64
}

var _ Notifier = (*NotificationDispatcher)(nil)

// NewNotificationDispatcher builds the dispatcher and starts its worker.
// template must contain a single %s placeholder for the member name; pass ""
// for the default.
func NewNotificationDispatcher(gateway interfaces.ISMSGateway, repo interfaces.ISubmissionRepository, template string) *NotificationDispatcher {
	if template == "" {
		template = DefaultMessageTemplate
	}
	d := &NotificationDispatcher{
		gateway:  gateway,
		repo:     repo,
		template: template,
		queue:    make(chan notificationJob, defaultQueueSize),
	}
	d.wg.Add(1)
	go d.worker()
	return d
}

// Enqueue schedules one notification. It never blocks: when the queue is
// saturated the job is dropped and counted, which is acceptable because the
// notification is best effort by contract.
func (d *NotificationDispatcher) Enqueue(submissionID, name, phone string) bool {
	select {
	case d.queue <- notificationJob{SubmissionID: submissionID, Name: name, Phone: phone}:
		d.enqueued.Add(1)
		return true
	default:
		d.dropped.Add(1)
		log.Printf("[notify][dispatcher] queue full, dropping notification submission_id=%s", submissionID)
		return false
	}
}

// Stop closes the queue and waits for in-flight jobs to finish. Safe to call
// more than once.
func (d *NotificationDispatcher) Stop() {
	d.once.Do(func() { close(d.queue) })
	d.wg.Wait()
}

// Stats reports dispatcher counters for logging/inspection.
func (d *NotificationDispatcher) Stats() DispatcherStats {
	return DispatcherStats{
		Enqueued:  d.enqueued.Load(),
		Dropped:   d.dropped.Load(),
		Delivered: d.delivered.Load(),
		Failed:    d.failed.Load(),
	}
}

func (d *NotificationDispatcher) worker() {
	defer d.wg.Done()
	for job := range d.queue {
		d.dispatch(job)
	}
}

func (d *NotificationDispatcher) dispatch(job notificationJob) {
	ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
	defer cancel()

	message := fmt.Sprintf(d.template, job.Name)
	result := d.gateway.Send(ctx, job.Phone, message)

	status := entities.SMSStatus{
		OK:     result.OK,
		SentAt: time.Now().UTC(),
	}
	if result.Error != "" {
		status.Response = result.Error
	} else {
		status.Response = result.ProviderResponse
	}

	if result.OK {
		d.delivered.Add(1)
		log.Printf("[notify][dispatcher] sms delivered submission_id=%s", job.SubmissionID)
	} else {
		d.failed.Add(1)
		log.Printf("[notify][dispatcher] sms failed submission_id=%s response=%q", job.SubmissionID, status.Response)
	}

	// Best effort: a failed patch leaves the record without smsStatus, which
	// is a benign partial state.
	if err := d.repo.SetSMSStatusByID(ctx, job.SubmissionID, status); err != nil {
		log.Printf("[notify][dispatcher] failed to record sms status submission_id=%s err=%v", job.SubmissionID, err)
	}
}
