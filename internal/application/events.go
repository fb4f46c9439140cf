package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-course-marketplace/internal/domain/entity"
)

const publishTimeout = 3 * time.Second

// publish sends ev when a publisher is configured. Failures are logged and
// never returned: the store write has already succeeded.
func publish(ctx context.Context, pub EventPublisher, logger *logrus.Logger, ev entity.Event) {
	if pub == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := pub.Publish(ctx, ev); err != nil && logger != nil {
		logger.WithError(err).WithField("event", ev.Type).Warn("publish event failed")
	}
}
