package managers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"expense-tracker/internal/schemas"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"
)

// QueueMgr publishes confirmation mails for the mailer worker.
type QueueMgr interface {
	PublishMail(ctx context.Context, params *schemas.MailParams) error
	Close() error
}

// ErrMailNotConfirmed is returned when the broker refuses a published message.
var ErrMailNotConfirmed = errors.New("broker did not confirm the mail message")

const publishTimeout = 5 * time.Second

// publishConfirmation is the broker's pending answer to one publish, see *amqp.DeferredConfirmation.
type publishConfirmation interface {
	WaitContext(ctx context.Context) (bool, error)
}

// amqpChannel is the part of *amqp.Channel the publisher needs.
type amqpChannel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	Confirm(noWait bool) error
	PublishConfirmed(ctx context.Context, key string, msg amqp.Publishing) (publishConfirmation, error)
	Close() error
}

// confirmingChannel publishes through the default exchange in confirm mode.
type confirmingChannel struct {
	*amqp.Channel
}

func (c confirmingChannel) PublishConfirmed(ctx context.Context, key string, msg amqp.Publishing) (publishConfirmation, error) {
	confirmation, err := c.PublishWithDeferredConfirmWithContext(ctx, "", key, false, false, msg)
	if err != nil {
		return nil, err
	}
	return confirmation, nil
}

// QueueManager publishes to a durable RabbitMQ queue through the default exchange.
type QueueManager struct {
	conn    *amqp.Connection
	channel amqpChannel
	queue   string
}

// NewQueueManager connects to the broker at url and declares queue.
func NewQueueManager(url, queue string) (QueueMgr, error) {
	log.Info("Initializing queue manager")

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("error connecting to queue: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("error opening queue channel: %w", err)
	}

	qm, err := newQueueManager(confirmingChannel{channel}, queue)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	qm.conn = conn

	log.Info("Initialized queue manager")
	return qm, nil
}

func newQueueManager(channel amqpChannel, queue string) (*QueueManager, error) {
	if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = channel.Close()
		return nil, fmt.Errorf("error declaring queue %s: %w", queue, err)
	}

	if err := channel.Confirm(false); err != nil {
		_ = channel.Close()
		return nil, fmt.Errorf("error enabling publisher confirms: %w", err)
	}

	return &QueueManager{channel: channel, queue: queue}, nil
}

// PublishMail places params on the queue as a persistent JSON message and waits until the
// broker has taken responsibility for it.
func (qm *QueueManager) PublishMail(ctx context.Context, params *schemas.MailParams) error {
	body, err := json.Marshal(params)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	confirmation, err := qm.channel.PublishConfirmed(ctx, qm.queue, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.New().String(),
		Timestamp:    time.Now(),
		Body:         body,
	})
	if err != nil {
		return err
	}

	acked, err := confirmation.WaitContext(ctx)
	if err != nil {
		return fmt.Errorf("error waiting for publisher confirm: %w", err)
	}
	if !acked {
		return ErrMailNotConfirmed
	}
	return nil
}

// Close closes the channel and the connection.
func (qm *QueueManager) Close() error {
	err := qm.channel.Close()
	if qm.conn != nil {
		if connErr := qm.conn.Close(); connErr != nil && err == nil {
			err = connErr
		}
	}
	return err
}
