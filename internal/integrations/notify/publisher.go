// Package notify публикация событий бронирования в RabbitMQ.
// Доставка писем и уведомлений живёт в отдельных потребителях очереди;
// сбой публикации логируется и никогда не откатывает бронирование.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Publisher публикует события бронирования в очередь
type Publisher struct {
	url   string
	queue string
	log   Logger
}

// NewPublisher создает новый экземпляр publisher
func NewPublisher(url, queue string, log Logger) *Publisher {
	return &Publisher{
		url:   url,
		queue: queue,
		log:   log,
	}
}

// NopPublisher используется, когда публикация событий выключена в конфигурации
type NopPublisher struct {
	log Logger
}

// NewNopPublisher создает publisher-заглушку
func NewNopPublisher(log Logger) *NopPublisher {
	return &NopPublisher{log: log}
}

// PublishBookingConfirmed логирует событие вместо публикации
func (p *NopPublisher) PublishBookingConfirmed(_ context.Context, event BookingConfirmedEvent) error {
	p.log.Info("Notify disabled, skipping booking.confirmed event for booking id=%d", event.BookingID)
	return nil
}

// PublishBookingConfirmed публикует событие подтверждённого бронирования.
// Сообщение персистентное; ошибка возвращается вызывающему, который её
// логирует и продолжает работу.
func (p *Publisher) PublishBookingConfirmed(ctx context.Context, event BookingConfirmedEvent) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("notify: dial failed: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("notify: channel open failed: %w", err)
	}
	defer func() { _ = ch.Close() }()

	// Объявление очереди идемпотентно; durable, чтобы сообщения пережили
	// перезапуск брокера
	if _, err := ch.QueueDeclare(
		p.queue, // name
		true,    // durable
		false,   // autoDelete
		false,   // exclusive
		false,   // noWait
		nil,     // args
	); err != nil {
		return fmt.Errorf("notify: queue declare failed: %w", err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("notify: marshal event failed: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		pub,
	); err != nil {
		return fmt.Errorf("notify: publish failed: %w", err)
	}

	p.log.Info("Published booking.confirmed event for booking id=%d", event.BookingID)

	return nil
}
