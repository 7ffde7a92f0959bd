package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKafkaPublisher_Publish(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != "jastip.pesanan.created" {
			return errors.New("unexpected topic " + msg.Topic)
		}
		key, _ := msg.Key.Encode()
		if string(key) != "order-1" {
			return errors.New("unexpected key " + string(key))
		}
		value, _ := msg.Value.Encode()
		var ev Event
		if err := json.Unmarshal(value, &ev); err != nil {
			return err
		}
		if ev.Type != EventPesananCreated {
			return errors.New("unexpected event type " + ev.Type)
		}
		return nil
	})

	pub := NewKafkaPublisher(producer, "jastip")
	err := pub.Publish(context.Background(), EventPesananCreated, "order-1", map[string]string{"nama": "Sari"})

	require.NoError(t, err)
	require.NoError(t, pub.Close())
}

func TestKafkaPublisher_PublishFails(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	pub := NewKafkaPublisher(producer, "jastip")
	err := pub.Publish(context.Background(), EventInvoiceSaved, "inv-1", struct{}{})

	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, pub.Close())
}

func TestKafkaPublisher_Topic(t *testing.T) {
	assert.Equal(t, "jastip.invoice.saved", NewKafkaPublisher(nil, "jastip").Topic(EventInvoiceSaved))
	assert.Equal(t, "invoice.saved", NewKafkaPublisher(nil, "").Topic(EventInvoiceSaved))
}
