package notifications

import (
	"context"
	"fmt"
	"log"
	"sync"

	"courtside/internal/shared/config"

	"github.com/google/uuid"
)

// NotificationService is the application-facing facade over the whole
// pipeline: producing onto Kafka and consuming into web push deliveries.
type NotificationService interface {
	SendNotification(ctx context.Context, notification *PushNotification) error
	SendNewBookingNotification(ctx context.Context, partnerID uuid.UUID, bookingID, venueName, date string, amount float64) error

	Start(ctx context.Context) error
	Stop() error
	HealthCheck(ctx context.Context) error
}

type pushNotificationService struct {
	producer    NotificationProducer
	consumer    NotificationConsumer
	pushService PushService
	numWorkers  int

	// State
	isRunning bool
	mu        sync.RWMutex
	ctx       context.Context
	cancel    context.CancelFunc
}

// NewPushNotificationService wires the producer, consumer and web push
// delivery from the application config.
func NewPushNotificationService(cfg *config.Config, store SubscriptionStore) (NotificationService, error) {
	pushService, err := NewWebPushService(&WebPushConfig{
		VAPIDPublicKey:  cfg.WebPush.VAPIDPublicKey,
		VAPIDPrivateKey: cfg.WebPush.VAPIDPrivateKey,
		Subscriber:      cfg.WebPush.Subscriber,
	}, store)
	if err != nil {
		return nil, fmt.Errorf("failed to create web push service: %w", err)
	}

	producerConfig := DefaultKafkaProducerConfig()
	producerConfig.Brokers = cfg.Kafka.Brokers
	producerConfig.NotificationTopic = cfg.Kafka.NotificationTopic

	producer, err := NewKafkaNotificationProducer(producerConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification producer: %w", err)
	}

	consumerConfig := DefaultConsumerConfig()
	consumerConfig.Brokers = cfg.Kafka.Brokers
	consumerConfig.Topics = []string{cfg.Kafka.NotificationTopic}
	consumerConfig.GroupID = cfg.Kafka.ConsumerGroupID

	consumer, err := NewKafkaNotificationConsumer(consumerConfig, pushService)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification consumer: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	log.Printf("🔔 Push notification service initialized (topic: %s, workers: %d)",
		cfg.Kafka.NotificationTopic, cfg.Kafka.ConsumerWorkers)

	return &pushNotificationService{
		producer:    producer,
		consumer:    consumer,
		pushService: pushService,
		numWorkers:  cfg.Kafka.ConsumerWorkers,
		isRunning:   false,
		ctx:         ctx,
		cancel:      cancel,
	}, nil
}

func (s *pushNotificationService) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("notification service is already running")
	}

	log.Printf("🚀 Starting Push Notification Service...")

	err := s.consumer.StartConsumers(s.ctx, s.numWorkers)
	if err != nil {
		return fmt.Errorf("failed to start consumers: %w", err)
	}

	s.isRunning = true
	log.Printf("✅ Push Notification Service started successfully")

	return nil
}

func (s *pushNotificationService) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return fmt.Errorf("notification service is not running")
	}

	log.Printf("🛑 Stopping Push Notification Service...")

	s.cancel()

	if err := s.consumer.Stop(); err != nil {
		log.Printf("Error stopping consumer: %v", err)
	}

	if err := s.producer.Close(); err != nil {
		log.Printf("Error closing producer: %v", err)
	}

	s.isRunning = false
	log.Printf("✅ Push Notification Service stopped")

	return nil
}

func (s *pushNotificationService) SendNotification(ctx context.Context, notification *PushNotification) error {
	return s.producer.PublishNotification(ctx, notification)
}

// SendNewBookingNotification builds and queues the "new booking" push
// shown on the partner dashboard.
func (s *pushNotificationService) SendNewBookingNotification(ctx context.Context, partnerID uuid.UUID, bookingID, venueName, date string, amount float64) error {
	notification := NewNotificationBuilder().
		WithType(NotificationTypeNewBooking).
		WithPartner(partnerID).
		WithContent(
			"New Booking Received",
			fmt.Sprintf("%s booked for %s · ₹%.0f", venueName, date, amount),
		).
		WithIcons("/icons/icon-192.png", "/icons/badge-72.png").
		WithBookingContext(bookingID, venueName, date, amount).
		Build()

	return s.producer.PublishNotification(ctx, notification)
}

func (s *pushNotificationService) HealthCheck(ctx context.Context) error {
	s.mu.RLock()
	isRunning := s.isRunning
	s.mu.RUnlock()

	if !isRunning {
		return fmt.Errorf("notification service is not running")
	}

	if err := s.producer.HealthCheck(ctx); err != nil {
		return fmt.Errorf("producer health check failed: %w", err)
	}

	if err := s.consumer.HealthCheck(ctx); err != nil {
		return fmt.Errorf("consumer health check failed: %w", err)
	}

	return nil
}
