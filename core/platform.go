package core

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"flexpool-info/config"
)

// SetupSensor 解析配置、构建传感器并完成首次刷新
// 任何一步失败都不注册该传感器，也不重试
func SetupSensor(ctx context.Context, raw map[string]interface{}, api Fetcher, opts ...SensorOption) (*Sensor, error) {
	log.Debug("Setup FlexpoolInfo sensor")

	cfg, err := config.ParseSensor(raw)
	if err != nil {
		log.Errorf("Invalid sensor configuration: %v", err)
		return nil, err
	}

	sensor := NewSensor(cfg, api, opts...)
	if _, err := sensor.Update(ctx); err != nil {
		log.Errorf("Setup of %s aborted: %v", sensor.Name(), err)
		return nil, fmt.Errorf("setup %s: %w", sensor.Name(), err)
	}

	log.Infof("Registered sensor %s (interval %v)", sensor.Name(), cfg.Interval())
	return sensor, nil
}
