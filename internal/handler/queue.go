package handler

import (
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"

	"github.com/goodbooks/goodbooks-service/internal/model"
	"github.com/goodbooks/goodbooks-service/pkg/kafka"
)

type Enqueuer interface {
	EnqueueReviewCreated(isbn string, userID, rating int) error
}

func NewEnqueuer(producer sarama.SyncProducer) Enqueuer {
	return &enqueuerImpl{
		producer: producer,
	}
}

type enqueuerImpl struct {
	producer sarama.SyncProducer
}

func (q *enqueuerImpl) EnqueueReviewCreated(isbn string, userID, rating int) error {
	event := model.ReviewCreatedEvent{
		EventID:   uuid.NewString(),
		BookISBN:  isbn,
		UserID:    userID,
		Rating:    rating,
		CreatedAt: time.Now().UTC(),
	}
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{Topic: kafka.ReviewTopic, Value: sarama.StringEncoder(data)}
	if _, _, err = q.producer.SendMessage(msg); err != nil {
		return err
	}
	return nil
}
