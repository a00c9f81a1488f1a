package kafka

import (
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// Значения по умолчанию, если в конфиге ноль.
const (
	defaultProcessTimeout = 5 * time.Second
	defaultRetryInitial   = 1 * time.Second
	defaultRetryMax       = 30 * time.Second
)

// ConsumerConfig — параметры приёма заказов из топика.
type ConsumerConfig struct {
	Brokers     []string
	Topic       string
	GroupID     string
	StartOffset string // first|last (регистр и пробелы не важны)

	ProcessTimeout time.Duration
	RetryInitial   time.Duration
	RetryMax       time.Duration
}

// ReaderConfig — конфиг kafka.Reader с ручным коммитом (CommitInterval = 0).
func (c ConsumerConfig) ReaderConfig() kafka.ReaderConfig {
	rc := kafka.ReaderConfig{
		Brokers:        c.Brokers,
		GroupID:        c.GroupID,
		Topic:          c.Topic,
		CommitInterval: 0,
		StartOffset:    kafka.LastOffset,
	}
	if strings.EqualFold(strings.TrimSpace(c.StartOffset), "first") {
		rc.StartOffset = kafka.FirstOffset
	}
	return rc
}

func (c ConsumerConfig) withDefaults() ConsumerConfig {
	if c.ProcessTimeout <= 0 {
		c.ProcessTimeout = defaultProcessTimeout
	}
	if c.RetryInitial <= 0 {
		c.RetryInitial = defaultRetryInitial
	}
	if c.RetryMax < c.RetryInitial {
		c.RetryMax = max(defaultRetryMax, c.RetryInitial)
	}
	return c
}
