package core

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// Publisher 刷新成功后接收实体
type Publisher interface {
	Publish(ctx context.Context, entity *Sensor) error
}

// LogPublisher 把实体状态写到日志
type LogPublisher struct{}

func (LogPublisher) Publish(ctx context.Context, entity *Sensor) error {
	log.WithFields(log.Fields(entity.Attributes())).Infof("%s: %v", entity.Name(), entity.State())
	return nil
}

func publish(ctx context.Context, entity *Sensor, publishers []Publisher) {
	for _, pub := range publishers {
		if err := pub.Publish(ctx, entity); err != nil {
			log.Errorf("Unable to publish %s: %v", entity.Name(), err)
		}
	}
}
