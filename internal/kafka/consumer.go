// Пакет kafka — приём заказов из топика: каждое сообщение — тело POST /orders.
package kafka

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/Gunvolt24/grubdash/internal/domain"
	"github.com/Gunvolt24/grubdash/internal/ports"
	"github.com/Gunvolt24/grubdash/pkg/ctxmeta"
	"github.com/Gunvolt24/grubdash/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

var _ ports.MessageConsumer = (*Consumer)(nil)

// reader — минимальный контракт над kafka.Reader (подменяется моками в тестах).
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Config() kafka.ReaderConfig
	Close() error
}

// orderIntake — создание заказа из сырого тела сообщения.
type orderIntake interface {
	CreateFromMessage(ctx context.Context, raw []byte) (domain.Order, error)
}

type Consumer struct {
	reader         reader
	intake         orderIntake
	log            ports.Logger
	processTimeout time.Duration
	fetchRetry     *backoff
	closeOnce      sync.Once
}

// NewConsumer — reader с ручным коммитом оффсетов.
func NewConsumer(cfg ConsumerConfig, intake orderIntake, log ports.Logger) *Consumer {
	return newConsumer(kafka.NewReader(cfg.ReaderConfig()), intake, log, cfg, time.Now().UnixNano())
}

func newConsumer(r reader, intake orderIntake, log ports.Logger, cfg ConsumerConfig, seed int64) *Consumer {
	cfg = cfg.withDefaults()
	return &Consumer{
		reader:         r,
		intake:         intake,
		log:            log,
		processTimeout: cfg.ProcessTimeout,
		fetchRetry:     newBackoff(cfg.RetryInitial, cfg.RetryMax, rand.New(rand.NewSource(seed))),
	}
}

// Run — цикл до отмены ctx:
//   - заказ создан — коммит;
//   - InvalidInput — коммит, сообщение пропускается навсегда;
//   - прочие ошибки — без коммита, сообщение будет перечитано (at-least-once).
func (c *Consumer) Run(ctx context.Context) error {
	rc := c.reader.Config()
	c.log.Infof(ctx, "kafka consumer started topic=%s group_id=%s brokers=%v", rc.Topic, rc.GroupID, rc.Brokers)

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			wait := c.fetchRetry.next()
			c.log.Warnf(ctx, "fetch failed: %v (will retry in %s)", err, wait)
			if !sleep(ctx, wait) {
				return ctx.Err()
			}
			continue
		}

		c.fetchRetry.reset()
		metrics.KafkaMessagesConsumed.WithLabelValues(rc.Topic).Inc()

		msgCtx := ctxmeta.WithRequestID(ctx, messageID(msg))
		if c.handle(msgCtx, rc.Topic, msg) {
			c.commit(msgCtx, msg)
			continue
		}
		// пауза перед повторным чтением того же сообщения
		_ = sleep(ctx, c.fetchRetry.jitter(min(c.fetchRetry.initial, 500*time.Millisecond)))
	}
}

// handle — true, если оффсет нужно закоммитить.
func (c *Consumer) handle(ctx context.Context, topic string, msg kafka.Message) bool {
	procCtx, cancel := context.WithTimeout(ctx, c.processTimeout)
	order, err := c.intake.CreateFromMessage(procCtx, msg.Value)
	cancel()

	switch {
	case err == nil:
		metrics.KafkaMessagesProcessed.WithLabelValues(topic).Inc()
		c.log.Infof(ctx, "order accepted from kafka id=%s offset=%d", order.ID, msg.Offset)
		return true
	case errors.Is(err, domain.ErrInvalidInput):
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "invalid message offset=%d: %v (skipped)", msg.Offset, err)
		return true
	default:
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "process failed offset=%d: %v (will retry without commit)", msg.Offset, err)
		return false
	}
}

func (c *Consumer) commit(ctx context.Context, msg kafka.Message) {
	if err := c.reader.CommitMessages(ctx, msg); err != nil {
		c.log.Warnf(ctx, "commit failed offset=%d: %v", msg.Offset, err)
	}
}

// Close — закрывает reader один раз.
func (c *Consumer) Close() (retErr error) {
	c.closeOnce.Do(func() {
		retErr = c.reader.Close()
	})
	return retErr
}

// messageID — request_id для логов обработки сообщения.
func messageID(msg kafka.Message) string {
	return fmt.Sprintf("kafka-%s-%d-%d", msg.Topic, msg.Partition, msg.Offset)
}
