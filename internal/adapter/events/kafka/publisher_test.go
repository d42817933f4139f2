package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"coin-ledger/config"
	"coin-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestPublisher_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := &Publisher{writer: w}

	entry := domain.LedgerEntry{
		ID:        uuid.New(),
		AccountID: "alice",
		Amount:    -1,
		Kind:      domain.EntryKindSpend,
		Reference: "create_invoice_2026-10-17T09:00:00Z",
		CreatedAt: time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC),
	}

	require.NoError(t, p.Publish(context.Background(), domain.NewEntryAppendedEvent(entry, 9)))
	require.Len(t, w.messages, 1)

	msg := w.messages[0]
	assert.Equal(t, []byte("alice"), msg.Key)
	assert.Equal(t, entry.CreatedAt, msg.Time)
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, domain.EventEntryAppended, string(msg.Headers[0].Value))

	var decoded domain.LedgerEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, int64(9), decoded.Balance)
	assert.Equal(t, entry.ID, decoded.Entry.ID)

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestPublisher_PublishError(t *testing.T) {
	p := &Publisher{writer: &fakeWriter{err: errors.New("broker down")}}

	err := p.Publish(context.Background(), domain.LedgerEvent{Type: domain.EventEntryAppended})
	assert.ErrorContains(t, err, "broker down")
}

func TestNewPublisher(t *testing.T) {
	p := NewPublisher(config.KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "coin-ledger.entries"})

	w, ok := p.writer.(*kafka.Writer)
	require.True(t, ok)
	assert.Equal(t, "coin-ledger.entries", w.Topic)
	assert.Equal(t, "localhost:9092", w.Addr.String())
	assert.NoError(t, p.Close())
}
