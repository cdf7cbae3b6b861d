package kafka

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/turtacn/GeoSignal-Intelligence/internal/config"
	"github.com/turtacn/GeoSignal-Intelligence/internal/domain/signal"
	"github.com/turtacn/GeoSignal-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/GeoSignal-Intelligence/pkg/errors"
)

var (
	ErrAlreadyRunning = errors.New(errors.ErrCodeConflict, "consumer already running")
)

// EventWriter persists decoded events.  Implemented by the postgres event
// repository.
type EventWriter interface {
	Insert(ctx context.Context, e signal.EventRow) error
}

// ReaderInterface abstracts kafka.Reader for testing.
type ReaderInterface interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ConsumerMetrics tracks ingest counters.
type ConsumerMetrics struct {
	MessagesConsumed atomic.Int64
	MessagesWritten  atomic.Int64
	MessagesFailed   atomic.Int64
}

// Consumer reads classified events and writes them to the event store.
// Decode failures are logged and committed so a poison message cannot wedge
// the partition; write failures are not committed and will be retried on
// redelivery.
type Consumer struct {
	reader  ReaderInterface
	writer  EventWriter
	logger  logging.Logger
	metrics ConsumerMetrics

	running atomic.Bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	now     func() time.Time
}

// NewConsumer builds a consumer over a kafka-go reader configured from cfg.
func NewConsumer(cfg config.KafkaConfig, writer EventWriter, log logging.Logger) *Consumer {
	if log == nil {
		log = logging.NewNopLogger()
	}
	topic := cfg.Topic
	if topic == "" {
		topic = TopicEventsClassified
	}
	startOffset := kafka.FirstOffset
	if cfg.AutoOffsetReset == "latest" {
		startOffset = kafka.LastOffset
	}
	minBytes := cfg.MinBytes
	if minBytes <= 0 {
		minBytes = 1
	}
	maxBytes := cfg.MaxBytes
	if maxBytes <= 0 {
		maxBytes = 10 * 1024 * 1024
	}
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Brokers,
		GroupID:        cfg.GroupID,
		Topic:          topic,
		MinBytes:       minBytes,
		MaxBytes:       maxBytes,
		CommitInterval: cfg.CommitInterval,
		StartOffset:    startOffset,
	})
	return newConsumer(reader, writer, log)
}

// NewConsumerWithReader wires an explicit reader.  Test hook.
func NewConsumerWithReader(reader ReaderInterface, writer EventWriter, log logging.Logger) *Consumer {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return newConsumer(reader, writer, log)
}

func newConsumer(reader ReaderInterface, writer EventWriter, log logging.Logger) *Consumer {
	return &Consumer{reader: reader, writer: writer, logger: log, now: time.Now}
}

// Start launches the consume loop.  It returns immediately; the loop runs
// until Stop or context cancellation.
func (c *Consumer) Start(ctx context.Context) error {
	if !c.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	ctx, c.cancel = context.WithCancel(ctx)

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.consumeLoop(ctx)
	}()
	c.logger.Info("kafka consumer started")
	return nil
}

func (c *Consumer) consumeLoop(ctx context.Context) {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			c.logger.Warn("fetch message failed", logging.Err(err))
			continue
		}
		c.metrics.MessagesConsumed.Add(1)

		if err := c.handleMessage(ctx, msg); err != nil {
			// Leave uncommitted so the broker redelivers.
			c.metrics.MessagesFailed.Add(1)
			continue
		}
		if err := c.reader.CommitMessages(ctx, msg); err != nil && ctx.Err() == nil {
			c.logger.Warn("commit failed", logging.Err(err))
		}
	}
}

// handleMessage decodes and persists one message.  Decode failures return
// nil after logging: the message is poison and must be skipped, not retried.
func (c *Consumer) handleMessage(ctx context.Context, msg kafka.Message) error {
	env, err := DecodeEventEnvelope(msg.Value)
	if err != nil {
		c.logger.Warn("dropping undecodable event message",
			logging.String("key", string(msg.Key)),
			logging.Int64("offset", msg.Offset),
			logging.Err(err))
		return nil
	}

	if err := c.writer.Insert(ctx, env.ToRow(c.now())); err != nil {
		c.logger.Error("event insert failed",
			logging.String("event_id", env.ID),
			logging.Err(err))
		return errors.Wrap(err, errors.ErrCodeIngestWriteFailed, "failed to persist event")
	}
	c.metrics.MessagesWritten.Add(1)
	return nil
}

// Stop cancels the loop and closes the reader.
func (c *Consumer) Stop() error {
	if !c.running.CompareAndSwap(true, false) {
		return nil
	}
	c.cancel()
	c.wg.Wait()
	err := c.reader.Close()
	c.logger.Info("kafka consumer stopped",
		logging.Int64("consumed", c.metrics.MessagesConsumed.Load()),
		logging.Int64("written", c.metrics.MessagesWritten.Load()),
		logging.Int64("failed", c.metrics.MessagesFailed.Load()))
	return err
}

// Metrics exposes the ingest counters.
func (c *Consumer) Metrics() *ConsumerMetrics {
	return &c.metrics
}

//Personal.AI order the ending
