package main

import (
	"encoding/json"
	"fmt"
	"os"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-course-marketplace/internal/domain/entity"
)

func decodeEvent(body []byte) (entity.Event, error) {
	var ev entity.Event
	if err := json.Unmarshal(body, &ev); err != nil {
		return entity.Event{}, err
	}
	switch ev.Type {
	case entity.EventCourseCreated, entity.EventPurchaseRecorded:
		return ev, nil
	default:
		return entity.Event{}, fmt.Errorf("unknown event type %q", ev.Type)
	}
}

// logEvent writes the event as an audit entry.
func logEvent(logger *logrus.Logger, ev entity.Event) {
	fields := logrus.Fields{
		"event":       ev.Type,
		"occurred_at": ev.OccurredAt,
	}
	for k, v := range ev.Data {
		fields[k] = v
	}
	logger.WithFields(fields).Info("marketplace event")
}

// consume handles deliveries until msgs is closed, then closes the returned
// channel. Undecodable events are dropped without requeue.
func consume(msgs <-chan amqp.Delivery, logger *logrus.Logger) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for msg := range msgs {
			ev, err := decodeEvent(msg.Body)
			if err != nil {
				logger.WithError(err).Warn("dropping bad event")
				_ = msg.Nack(false, false)
				continue
			}
			logEvent(logger, ev)
			_ = msg.Ack(false)
		}
	}()
	return done
}

// awaitShutdown blocks until a signal arrives or the consumer stops. It
// reports whether the consumer stopped on its own.
func awaitShutdown(stop <-chan os.Signal, done <-chan struct{}, logger *logrus.Logger) bool {
	select {
	case <-stop:
		logger.Info("shutting down...")
		return false
	case <-done:
		logger.Warn("delivery channel closed, exiting")
		return true
	}
}
