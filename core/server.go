package core

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"flexpool-info/config"
	"flexpool-info/flexpool"
	"flexpool-info/util"
)

var (
	ErrNoSensors           = errors.New("no sensor could be set up")
	ErrInvalidPollInterval = errors.New("pollInterval must be positive")
)

type Server struct {
	cfg   *config.Config
	api   Fetcher
	redis *Redis

	sensors []*Sensor
	pollers []*Poller
}

func NewServer(cfg *config.Config) *Server {
	return newServer(cfg, flexpool.NewClient(cfg.Api))
}

func newServer(cfg *config.Config, api Fetcher) *Server {
	return &Server{
		cfg: cfg,
		api: api,
	}
}

// Start 注册所有传感器并启动轮询
func (s *Server) Start(ctx context.Context) error {
	interval := util.MustParseDuration(*s.cfg.PollInterval)
	if interval <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidPollInterval, *s.cfg.PollInterval)
	}

	publishers := []Publisher{LogPublisher{}}
	if *s.cfg.Redis.Enabled {
		s.redis = NewRedis(s.cfg.Redis)
		publishers = append(publishers, s.redis)
	}

	for _, raw := range s.cfg.Sensors {
		sensor, err := SetupSensor(ctx, raw, s.api)
		if err != nil {
			continue
		}
		s.sensors = append(s.sensors, sensor)
		publish(ctx, sensor, publishers)
	}
	if len(s.sensors) == 0 {
		return ErrNoSensors
	}

	for _, sensor := range s.sensors {
		s.pollers = append(s.pollers, NewPoller(sensor, interval, publishers...))
	}
	log.Infof("%s started with %d sensor(s)", *s.cfg.Name, len(s.sensors))

	return nil
}

func (s *Server) Sensors() []*Sensor {
	return s.sensors
}

func (s *Server) Close() {
	for _, p := range s.pollers {
		p.Close()
	}
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			log.Errorf("Unable to close redis: %v", err)
		}
	}
}
