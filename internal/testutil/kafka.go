//go:build integration

package testutil

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// IntakeTopic — отдельный топик заказов (и группа консьюмера) на один тест.
// Топик создаётся через контроллер кластера; возврат — после появления партиций в метаданных.
func (e *KafkaEnv) IntakeTopic(ctx context.Context, name string) (topic, group string, err error) {
	suffix := strconv.FormatInt(time.Now().UnixNano(), 36)
	topic = fmt.Sprintf("%s-%s-%s", e.BaseTopic, name, suffix)
	group = "grubdash-" + topic

	conn, err := kafka.DialContext(ctx, "tcp", e.Brokers[0])
	if err != nil {
		return "", "", err
	}
	defer conn.Close()

	ctrl, err := conn.Controller()
	if err != nil {
		return "", "", fmt.Errorf("controller: %w", err)
	}
	admin, err := kafka.DialContext(ctx, "tcp", net.JoinHostPort(ctrl.Host, strconv.Itoa(ctrl.Port)))
	if err != nil {
		return "", "", err
	}
	defer admin.Close()

	err = admin.CreateTopics(kafka.TopicConfig{Topic: topic, NumPartitions: 1, ReplicationFactor: 1})
	if err != nil && !strings.Contains(strings.ToLower(err.Error()), "already exists") {
		return "", "", fmt.Errorf("create topic %s: %w", topic, err)
	}

	tick := time.NewTicker(200 * time.Millisecond)
	defer tick.Stop()
	for {
		parts, perr := conn.ReadPartitions(topic)
		if perr == nil && len(parts) > 0 {
			return topic, group, nil
		}
		select {
		case <-ctx.Done():
			return "", "", fmt.Errorf("topic %s not ready: %w", topic, ctx.Err())
		case <-tick.C:
		}
	}
}

// Produce пишет тела запросов POST /orders как сообщения (ключ — порядковый номер).
func (e *KafkaEnv) Produce(ctx context.Context, topic string, bodies ...[]byte) error {
	w := &kafka.Writer{
		Addr:         kafka.TCP(e.Brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
	}
	defer w.Close()

	msgs := make([]kafka.Message, 0, len(bodies))
	for i, b := range bodies {
		msgs = append(msgs, kafka.Message{Key: []byte(strconv.Itoa(i)), Value: b})
	}
	if err := w.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("produce %d messages to %s: %w", len(msgs), topic, err)
	}
	return nil
}
