package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/IBM/sarama"
)

// NotificationConsumer drains the booking-notifications topic and hands
// each notification to web push delivery.
type NotificationConsumer interface {
	StartConsumers(ctx context.Context, numWorkers int) error
	Stop() error
	HealthCheck(ctx context.Context) error
}

type ConsumerConfig struct {
	Brokers        []string
	GroupID        string
	Topics         []string
	SessionTimeout time.Duration
	Heartbeat      time.Duration
	OffsetOldest   bool
	MaxRetries     int
	RetryBackoff   time.Duration
}

func DefaultConsumerConfig() *ConsumerConfig {
	return &ConsumerConfig{
		Brokers:        []string{"localhost:9092"},
		GroupID:        "courtside-notification-workers",
		Topics:         []string{"booking-notifications"},
		SessionTimeout: 30 * time.Second,
		Heartbeat:      3 * time.Second,
		MaxRetries:     3,
		RetryBackoff:   time.Second,
	}
}

type kafkaNotificationConsumer struct {
	group  sarama.ConsumerGroup
	config *ConsumerConfig
	push   PushService
	ctx    context.Context
	cancel context.CancelFunc
}

func NewKafkaNotificationConsumer(config *ConsumerConfig, pushService PushService) (NotificationConsumer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Consumer.Group.Session.Timeout = config.SessionTimeout
	saramaConfig.Consumer.Group.Heartbeat.Interval = config.Heartbeat
	saramaConfig.Consumer.Return.Errors = true
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
	if config.OffsetOldest {
		saramaConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
	}

	group, err := sarama.NewConsumerGroup(config.Brokers, config.GroupID, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &kafkaNotificationConsumer{
		group:  group,
		config: config,
		push:   pushService,
		ctx:    ctx,
		cancel: cancel,
	}, nil
}

func (c *kafkaNotificationConsumer) StartConsumers(ctx context.Context, numWorkers int) error {
	log.Printf("📥 Starting %d push delivery workers (topics: %v)", numWorkers, c.config.Topics)

	go func() {
		for err := range c.group.Errors() {
			log.Printf("📥 Consumer group error: %v", err)
		}
	}()

	for i := 0; i < numWorkers; i++ {
		worker := &pushWorker{
			id:         i,
			push:       c.push,
			maxRetries: c.config.MaxRetries,
			backoff:    c.config.RetryBackoff,
		}
		go func() {
			for {
				select {
				case <-ctx.Done():
					log.Printf("📥 Worker %d shutting down", worker.id)
					return
				default:
					// Consume blocks for the lifetime of a group session
					// and returns on rebalance; loop to rejoin.
					if err := c.group.Consume(ctx, c.config.Topics, worker); err != nil {
						log.Printf("📥 Worker %d consume error: %v", worker.id, err)
						time.Sleep(time.Second)
					}
				}
			}
		}()
	}

	return nil
}

func (c *kafkaNotificationConsumer) Stop() error {
	log.Println("📥 Stopping notification consumer...")
	c.cancel()

	if err := c.group.Close(); err != nil {
		return fmt.Errorf("failed to close consumer group: %w", err)
	}

	log.Println("📥 Notification consumer stopped")
	return nil
}

func (c *kafkaNotificationConsumer) HealthCheck(ctx context.Context) error {
	select {
	case <-c.ctx.Done():
		return fmt.Errorf("consumer context is cancelled")
	default:
		if c.push == nil {
			return fmt.Errorf("push service not configured")
		}
		return nil
	}
}

// pushWorker is the sarama group handler: it decodes notifications off
// the claim and delivers them with bounded exponential-backoff retries.
// Messages are only marked consumed after successful delivery.
type pushWorker struct {
	id         int
	push       PushService
	maxRetries int
	backoff    time.Duration
}

func (w *pushWorker) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (w *pushWorker) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (w *pushWorker) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case msg := <-claim.Messages():
			if msg == nil {
				return nil
			}
			if err := w.deliver(session.Context(), msg); err != nil {
				log.Printf("📥 Worker %d: dropping notification at %s/%d/%d: %v",
					w.id, msg.Topic, msg.Partition, msg.Offset, err)
				continue
			}
			session.MarkMessage(msg, "")

		case <-session.Context().Done():
			return nil
		}
	}
}

func (w *pushWorker) deliver(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var notification PushNotification
	if err := json.Unmarshal(msg.Value, &notification); err != nil {
		return fmt.Errorf("failed to unmarshal notification: %w", err)
	}

	// A stale push (e.g. replayed after an outage) is worse than none.
	if notification.IsExpired() {
		log.Printf("📥 Worker %d: notification %s expired, skipping", w.id, notification.ID)
		return nil
	}

	notification.Status = NotificationStatusSending

	var lastErr error
	for attempt := 0; attempt <= w.maxRetries; attempt++ {
		if attempt > 0 {
			delay := w.backoff * time.Duration(1<<(attempt-1))
			log.Printf("📥 Worker %d: retry %d for notification %s after %v", w.id, attempt, notification.ID, delay)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		if lastErr = w.push.SendNotification(ctx, &notification); lastErr == nil {
			notification.MarkSent()
			log.Printf("🔔 Worker %d: notification %s delivered to partner %s", w.id, notification.ID, notification.PartnerID)
			return nil
		}
	}

	notification.MarkFailed(lastErr)
	return fmt.Errorf("push delivery failed after %d attempts: %w", w.maxRetries+1, lastErr)
}
