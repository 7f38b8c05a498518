package broker

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/denmor86/ya-redemption/internal/logger"
	"github.com/denmor86/ya-redemption/internal/models"
	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	// Exchange - topic exchange событий заявок на вывод
	Exchange = "redemption_events"

	RoutingKeySettlementRun = "settlement.run"
)

// RedemptionEvent - событие жизненного цикла заявки
type RedemptionEvent struct {
	RedemptionID     string    `json:"redemption_id"`
	EarnerID         string    `json:"earner_id"`
	Points           int64     `json:"points"`
	Method           string    `json:"method"`
	Status           string    `json:"status"`
	ExternalPayoutID string    `json:"external_payout_id,omitempty"`
	Reason           string    `json:"reason,omitempty"`
	Timestamp        time.Time `json:"timestamp"`
}

// SettlementRunEvent - итог прохода планировщика
type SettlementRunEvent struct {
	models.SettlementSummary
	Timestamp time.Time `json:"timestamp"`
}

// Publisher - публикация событий. Доставка не гарантируется: ошибки публикации не влияют на заявку.
type Publisher interface {
	PublishRedemptionEvent(ctx context.Context, event RedemptionEvent) error
	PublishSettlementRun(ctx context.Context, summary models.SettlementSummary) error
	Close()
}

// NewPublisher - публикатор RabbitMQ, либо заглушка если адрес не задан или брокер недоступен
func NewPublisher(amqpURL string) Publisher {
	if strings.TrimSpace(amqpURL) == "" {
		return &EventProducerFallback{}
	}
	producer, err := NewEventProducer(amqpURL)
	if err != nil {
		logger.Warn("RabbitMQ unavailable, events disabled:", err)
		return &EventProducerFallback{}
	}
	return producer
}

// EventProducer - публикатор событий в RabbitMQ
type EventProducer struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	// канал amqp не потокобезопасен, а публикуют параллельные воркеры
	mu sync.Mutex
}

func NewEventProducer(amqpURL string) (*EventProducer, error) {
	cleanURL, err := sanitizeAMQPURL(amqpURL)
	if err != nil {
		return nil, err
	}

	conn, err := amqp.DialConfig(cleanURL, amqp.Config{Dial: amqp.DefaultDial(10 * time.Second)})
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if err := channel.ExchangeDeclare(Exchange, "topic", true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &EventProducer{conn: conn, channel: channel}, nil
}

func (p *EventProducer) PublishRedemptionEvent(ctx context.Context, event RedemptionEvent) error {
	return p.publish(ctx, "redemption."+event.Status, event)
}

func (p *EventProducer) PublishSettlementRun(ctx context.Context, summary models.SettlementSummary) error {
	return p.publish(ctx, RoutingKeySettlementRun, SettlementRunEvent{SettlementSummary: summary, Timestamp: time.Now().UTC()})
}

func (p *EventProducer) publish(ctx context.Context, routingKey string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         payload,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.PublishWithContext(ctx, Exchange, routingKey, false, false, msg)
	if err == nil {
		return nil
	}
	logger.Warn("Publish failed, reopening channel:", routingKey, err)
	// одна повторная попытка через новый канал
	channel, chErr := p.conn.Channel()
	if chErr != nil {
		return errors.Join(err, chErr)
	}
	p.channel = channel
	return p.channel.PublishWithContext(ctx, Exchange, routingKey, false, false, msg)
}

func (p *EventProducer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}

// EventProducerFallback - публикатор без брокера
type EventProducerFallback struct{}

func (p *EventProducerFallback) PublishRedemptionEvent(ctx context.Context, event RedemptionEvent) error {
	logger.Debug("Event publish skipped:", event.RedemptionID, event.Status)
	return nil
}

func (p *EventProducerFallback) PublishSettlementRun(ctx context.Context, summary models.SettlementSummary) error {
	logger.Debug("Settlement run event publish skipped")
	return nil
}

func (p *EventProducerFallback) Close() {}

func sanitizeAMQPURL(raw string) (string, error) {
	clean := strings.Trim(strings.TrimSpace(raw), "\"'")
	u, err := url.Parse(clean)
	if err != nil {
		return "", err
	}
	if u.Scheme != "amqp" && u.Scheme != "amqps" {
		return "", errors.New("AMQP scheme must be either 'amqp://' or 'amqps://'")
	}
	return clean, nil
}
