package managers

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"expense-tracker/internal/schemas"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConfirmation struct {
	acked bool
	err   error
}

func (c fakeConfirmation) WaitContext(_ context.Context) (bool, error) {
	return c.acked, c.err
}

type fakeChannel struct {
	declared    []string
	declareErr  error
	confirmMode bool
	confirmErr  error
	published   []amqp.Publishing
	keys        []string
	publishErr  error
	nack        bool
	waitErr     error
	closed      bool
}

func (f *fakeChannel) QueueDeclare(name string, durable, _, _, _ bool, _ amqp.Table) (amqp.Queue, error) {
	if !durable {
		return amqp.Queue{}, errors.New("queue must be durable")
	}
	f.declared = append(f.declared, name)
	return amqp.Queue{Name: name}, f.declareErr
}

func (f *fakeChannel) Confirm(_ bool) error {
	f.confirmMode = f.confirmErr == nil
	return f.confirmErr
}

func (f *fakeChannel) PublishConfirmed(_ context.Context, key string, msg amqp.Publishing) (publishConfirmation, error) {
	if f.publishErr != nil {
		return nil, f.publishErr
	}
	f.keys = append(f.keys, key)
	f.published = append(f.published, msg)
	return fakeConfirmation{acked: !f.nack, err: f.waitErr}, nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestPublishMail(t *testing.T) {
	channel := &fakeChannel{}
	qm, err := newQueueManager(channel, "registration-mail")
	require.NoError(t, err)
	assert.Equal(t, []string{"registration-mail"}, channel.declared)
	assert.True(t, channel.confirmMode)

	params := &schemas.MailParams{EmailTo: "john@example.com", Link: "http://x/confirm?token=abc"}
	require.NoError(t, qm.PublishMail(context.Background(), params))

	require.Len(t, channel.published, 1)
	msg := channel.published[0]
	assert.Equal(t, "registration-mail", channel.keys[0])
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.NotEmpty(t, msg.MessageId)

	var decoded schemas.MailParams
	require.NoError(t, json.Unmarshal(msg.Body, &decoded))
	assert.Equal(t, *params, decoded)
	assert.JSONEq(t, `{"emailTo":"john@example.com","link":"http://x/confirm?token=abc"}`, string(msg.Body))
}

func TestPublishMailReturnsBrokerError(t *testing.T) {
	channel := &fakeChannel{publishErr: amqp.ErrClosed}
	qm, err := newQueueManager(channel, "registration-mail")
	require.NoError(t, err)

	err = qm.PublishMail(context.Background(), &schemas.MailParams{EmailTo: "john@example.com"})
	assert.ErrorIs(t, err, amqp.ErrClosed)
}

func TestPublishMailFailsWhenBrokerNacks(t *testing.T) {
	channel := &fakeChannel{nack: true}
	qm, err := newQueueManager(channel, "registration-mail")
	require.NoError(t, err)

	err = qm.PublishMail(context.Background(), &schemas.MailParams{EmailTo: "john@example.com"})
	assert.ErrorIs(t, err, ErrMailNotConfirmed)
}

func TestPublishMailFailsWhenConfirmNeverArrives(t *testing.T) {
	channel := &fakeChannel{waitErr: context.DeadlineExceeded}
	qm, err := newQueueManager(channel, "registration-mail")
	require.NoError(t, err)

	err = qm.PublishMail(context.Background(), &schemas.MailParams{EmailTo: "john@example.com"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewQueueManagerRequiresConfirmMode(t *testing.T) {
	channel := &fakeChannel{confirmErr: errors.New("not supported")}
	_, err := newQueueManager(channel, "registration-mail")

	assert.ErrorContains(t, err, "error enabling publisher confirms")
	assert.True(t, channel.closed)
}

func TestNewQueueManagerClosesChannelOnDeclareError(t *testing.T) {
	channel := &fakeChannel{declareErr: errors.New("access refused")}
	_, err := newQueueManager(channel, "registration-mail")

	assert.ErrorContains(t, err, "error declaring queue registration-mail")
	assert.True(t, channel.closed)
}

func TestQueueManagerClose(t *testing.T) {
	channel := &fakeChannel{}
	qm, err := newQueueManager(channel, "registration-mail")
	require.NoError(t, err)

	require.NoError(t, qm.Close())
	assert.True(t, channel.closed)
}
