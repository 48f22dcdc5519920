// Package mailer is the worker that drains the registration-mail queue and delivers
// the confirmation mails through the mail manager.
package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"expense-tracker/internal/managers"
	"expense-tracker/internal/schemas"
	"expense-tracker/internal/utils"

	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"
)

// Consumer delivers every queued MailParams message. A message is acknowledged once the mail went
// out. Malformed messages are dropped; a failed delivery is requeued once and dropped when it
// fails again.
type Consumer struct {
	mailMgr managers.MailMgr
}

func NewConsumer(mailMgr managers.MailMgr) *Consumer {
	return &Consumer{mailMgr: mailMgr}
}

// Run handles deliveries until ctx is cancelled or the channel is closed by the broker.
func (c *Consumer) Run(ctx context.Context, deliveries <-chan amqp.Delivery) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case delivery, ok := <-deliveries:
			if !ok {
				return errors.New("delivery channel closed")
			}
			c.handle(ctx, delivery)
		}
	}
}

func (c *Consumer) handle(ctx context.Context, delivery amqp.Delivery) {
	ctx = context.WithValue(ctx, utils.TraceIdKey, delivery.MessageId)

	params := &schemas.MailParams{}
	if err := json.Unmarshal(delivery.Body, params); err != nil || params.EmailTo == "" || params.Link == "" {
		if err == nil {
			err = errors.New("message misses recipient or link")
		}
		utils.LogMessageWithFieldsAndError(ctx, "error", "Dropping malformed mail message", err)
		nack(ctx, delivery, false)
		return
	}

	if err := c.mailMgr.SendConfirmationLinkMail(ctx, params.EmailTo, params.Link); err != nil {
		utils.LogMessageWithFieldsAndError(ctx, "warn", "Error delivering confirmation mail", err)
		nack(ctx, delivery, !delivery.Redelivered)
		return
	}

	if err := delivery.Ack(false); err != nil {
		utils.LogMessageWithFieldsAndError(ctx, "error", "Error acknowledging mail message", err)
		return
	}
	utils.LogMessageWithFields(ctx, "info", "Delivered confirmation mail")
}

func nack(ctx context.Context, delivery amqp.Delivery, requeue bool) {
	if err := delivery.Nack(false, requeue); err != nil {
		utils.LogMessageWithFieldsAndError(ctx, "error", "Error rejecting mail message", err)
	}
}

// Subscription is an open consumer on the registration-mail queue.
type Subscription struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	Deliveries <-chan amqp.Delivery
}

// Subscribe connects to the broker, declares queue the same way the publisher does and
// starts consuming with manual acknowledgements, one unacknowledged message at a time.
func Subscribe(url, queue string) (*Subscription, error) {
	log.Info("Subscribing to ", queue)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("error connecting to queue: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("error opening queue channel: %w", err)
	}

	if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("error declaring queue %s: %w", queue, err)
	}

	if err := channel.Qos(1, 0, false); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("error setting prefetch: %w", err)
	}

	deliveries, err := channel.Consume(queue, "", false, false, false, false, nil)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("error consuming queue %s: %w", queue, err)
	}

	return &Subscription{conn: conn, channel: channel, Deliveries: deliveries}, nil
}

func (s *Subscription) Close() error {
	return errors.Join(s.channel.Close(), s.conn.Close())
}
