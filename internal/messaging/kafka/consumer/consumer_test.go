package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/KATBlackCoder/rapportflow/internal/events"
	notificationMock "github.com/KATBlackCoder/rapportflow/internal/notification/mock"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// fakeReader serves msgs once and then blocks until ctx is cancelled.
type fakeReader struct {
	mu        sync.Mutex
	msgs      []kafkago.Message
	committed []int64
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	r.mu.Lock()
	if len(r.msgs) > 0 {
		msg := r.msgs[0]
		r.msgs = r.msgs[1:]
		r.mu.Unlock()
		return msg, nil
	}
	r.mu.Unlock()
	r.cancel()
	<-ctx.Done()
	return kafkago.Message{}, ctx.Err()
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func message(t *testing.T, offset int64, eventType string, v any) kafkago.Message {
	t.Helper()
	raw, err := json.Marshal(v)
	assert.NoError(t, err)
	return kafkago.Message{
		Offset:  offset,
		Value:   raw,
		Headers: []kafkago.Header{{Key: "event_type", Value: []byte(eventType)}},
	}
}

func TestConsumeReportLifecycle(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctrl := gomock.NewController(t)
	svc := notificationMock.NewMockService(ctrl)
	ctx, cancel := context.WithCancel(context.Background())

	ok := events.ReportLifecycleEvent{EventType: events.ReportSubmitted, QuestionnaireID: 1, RespondentID: 2}
	failing := events.ReportLifecycleEvent{EventType: events.ReportResubmitted, QuestionnaireID: 1, RespondentID: 3}
	reader := &fakeReader{
		cancel: cancel,
		msgs: []kafkago.Message{
			message(t, 1, events.ReportSubmitted, ok),
			{Offset: 2, Value: []byte("{not json")},
			message(t, 3, events.ReportResubmitted, failing),
		},
	}

	svc.EXPECT().HandleReportEvent(gomock.Any(), ok).Return(nil)
	svc.EXPECT().HandleReportEvent(gomock.Any(), failing).Return(errors.New("db down"))

	ConsumeReportLifecycle(ctx, reader, svc, zap.NewNop())

	assert.Equal(t, []int64{1, 2}, reader.committed)
}

func TestConsumeEmployeeLifecycle(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctrl := gomock.NewController(t)
	svc := notificationMock.NewMockService(ctrl)
	ctx, cancel := context.WithCancel(context.Background())

	provisioned := events.EmployeeProvisionedEvent{EventType: events.EmployeeProvisioned, UserID: 5, EmployeeCode: "EMP0001"}
	reader := &fakeReader{
		cancel: cancel,
		msgs: []kafkago.Message{
			message(t, 1, events.EmployeeProvisioned, provisioned),
			message(t, 2, "employee.archived", map[string]string{}),
		},
	}

	svc.EXPECT().HandleEmployeeProvisioned(gomock.Any(), provisioned).Return(nil)

	ConsumeEmployeeLifecycle(ctx, reader, svc, zap.NewNop())

	assert.Equal(t, []int64{1, 2}, reader.committed)
}
