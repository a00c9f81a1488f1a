package kafka

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/grubdash/internal/domain"
	"github.com/Gunvolt24/grubdash/internal/kafka/mocks"
	"github.com/Gunvolt24/grubdash/pkg/ctxmeta"
)

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

var testReaderConfig = kafka.ReaderConfig{Topic: "orders", GroupID: "g1", Brokers: []string{"b:9092"}}

func newTestConsumer(r reader, in orderIntake) *Consumer {
	return newConsumer(r, in, nopLogger{}, ConsumerConfig{
		ProcessTimeout: 30 * time.Millisecond,
		RetryInitial:   5 * time.Millisecond,
		RetryMax:       10 * time.Millisecond,
	}, 1)
}

// blockUntilCancel — второй FetchMessage ждёт отмены контекста.
func blockUntilCancel(r *mocks.Mockreader) {
	r.EXPECT().FetchMessage(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (kafka.Message, error) {
			<-ctx.Done()
			return kafka.Message{}, ctx.Err()
		})
}

// runBriefly запускает Run, даёт отработать первому циклу и отменяет контекст.
func runBriefly(t *testing.T, c *Consumer) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- c.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("want context.Canceled, got %v", err)
		}
	case <-time.After(200 * time.Millisecond):
		t.Fatal("timeout waiting for Run to stop")
	}
}

func TestRun_CommitDecision(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantCommit bool
	}{
		{"created -> commit", nil, true},
		{"invalid input -> commit and skip", domain.InvalidInput("Order must include a deliverTo"), true},
		{"temporary failure -> no commit", errors.New("deadline"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			r := mocks.NewMockreader(ctrl)
			in := mocks.NewMockorderIntake(ctrl)

			r.EXPECT().Config().Return(testReaderConfig).AnyTimes()
			msg := kafka.Message{Topic: "orders", Offset: 7, Value: []byte(`{"data":{}}`)}
			r.EXPECT().FetchMessage(gomock.Any()).Return(msg, nil)
			in.EXPECT().CreateFromMessage(gomock.Any(), msg.Value).Return(domain.Order{ID: "o-1"}, tt.serviceErr)
			// без EXPECT на CommitMessages лишний вызов уронит тест как unexpected call
			if tt.wantCommit {
				r.EXPECT().CommitMessages(gomock.Any(), msg).Return(nil)
			}
			blockUntilCancel(r)

			runBriefly(t, newTestConsumer(r, in))
		})
	}
}

func TestRun_MessageContextCarriesRequestID(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	in := mocks.NewMockorderIntake(ctrl)

	r.EXPECT().Config().Return(testReaderConfig).AnyTimes()
	r.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{Topic: "orders", Partition: 2, Offset: 9, Value: []byte("x")}, nil)
	in.EXPECT().CreateFromMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ []byte) (domain.Order, error) {
			if id, _ := ctxmeta.RequestIDFromContext(ctx); id != "kafka-orders-2-9" {
				t.Errorf("request id = %q", id)
			}
			if _, ok := ctx.Deadline(); !ok {
				t.Errorf("process context must have a deadline")
			}
			return domain.Order{}, nil
		})
	r.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).Return(nil)
	blockUntilCancel(r)

	runBriefly(t, newTestConsumer(r, in))
}

// Ошибки FetchMessage ретраятся; по отмене контекста — корректный выход
func TestRun_FetchError_RetryThenStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	in := mocks.NewMockorderIntake(ctrl)

	r.EXPECT().Config().Return(testReaderConfig).AnyTimes()
	r.EXPECT().FetchMessage(gomock.Any()).
		Return(kafka.Message{}, errors.New("broker error")).
		MinTimes(2)

	c := newTestConsumer(r, in)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()

	if err := c.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("want DeadlineExceeded, got %v", err)
	}
}

// CommitMessages вернул ошибку — только предупреждение; цикл живёт дальше
func TestRun_CommitWarnOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	in := mocks.NewMockorderIntake(ctrl)

	r.EXPECT().Config().Return(testReaderConfig).AnyTimes()
	r.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{Offset: 3, Value: []byte("ok")}, nil)
	in.EXPECT().CreateFromMessage(gomock.Any(), []byte("ok")).Return(domain.Order{ID: "o"}, nil)
	r.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).Return(errors.New("temporary"))
	blockUntilCancel(r)

	runBriefly(t, newTestConsumer(r, in))
}

func TestClose_Once(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)

	r.EXPECT().Close().Return(nil).Times(1)

	c := newTestConsumer(r, mocks.NewMockorderIntake(ctrl))
	if err := c.Close(); err != nil {
		t.Fatalf("expected nil from Close, got %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("second Close must be a no-op, got %v", err)
	}
}
