package core

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"flexpool-info/config"
	"flexpool-info/flexpool"
	"flexpool-info/model"
	"flexpool-info/util"
)

const (
	Icon              = "mdi:apple-icloud"
	UnitOfMeasurement = "\u200b"
)

// Entity 监控平台读取的实体接口
type Entity interface {
	Name() string
	Icon() string
	State() interface{}
	UnitOfMeasurement() string
	Attributes() map[string]interface{}
}

// Fetcher 矿池接口
type Fetcher interface {
	Stats(ctx context.Context, coin, address string) (*flexpool.Stats, error)
	Balance(ctx context.Context, coin, address string) (*flexpool.Balance, error)
	WorkerCount(ctx context.Context, coin, address string) (*flexpool.WorkerCount, error)
}

type SensorOption func(*Sensor)

// WithClock 替换时钟
func WithClock(now func() time.Time) SensorOption {
	return func(s *Sensor) {
		s.now = now
	}
}

// Sensor 单个矿工地址的传感器
type Sensor struct {
	cfg      *config.Sensor
	api      Fetcher
	throttle *Throttle
	now      func() time.Time

	mu       sync.RWMutex
	state    *int64
	fresh    bool
	snapshot model.Snapshot
}

var _ Entity = (*Sensor)(nil)

// NewSensor 新建传感器，所有字段为空
func NewSensor(cfg *config.Sensor, api Fetcher, opts ...SensorOption) *Sensor {
	s := &Sensor{
		cfg:      cfg,
		api:      api,
		throttle: NewThrottle(cfg.Interval()),
		now:      time.Now,
		snapshot: model.Snapshot{
			Miner: cfg.MinerAddress,
			Token: cfg.Token,
			Name:  cfg.DisplayName(),
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Sensor) Name() string {
	return s.snapshot.Name
}

func (s *Sensor) Icon() string {
	return Icon
}

// State 在线矿机数，未获取或数据为空时为 nil
func (s *Sensor) State() interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state == nil {
		return nil
	}
	return *s.state
}

func (s *Sensor) UnitOfMeasurement() string {
	return UnitOfMeasurement
}

func (s *Sensor) Attributes() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot.Attributes()
}

// Fresh 最近一次刷新是否拿到了完整数据
func (s *Sensor) Fresh() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.fresh
}

func (s *Sensor) Config() *config.Sensor {
	return s.cfg
}

// Update 受限流控制的刷新入口，被限流时返回 false 且不发请求
func (s *Sensor) Update(ctx context.Context) (bool, error) {
	if !s.throttle.Allow(s.now()) {
		return false, nil
	}
	return true, s.refresh(ctx)
}

// refresh 依次请求 stats、balance、workerCount 并更新快照
func (s *Sensor) refresh(ctx context.Context) error {
	coin, address := s.cfg.Token, s.cfg.MinerAddress

	stats, err := s.api.Stats(ctx, coin, address)
	if err != nil {
		return err
	}
	balance, balanceErr := s.api.Balance(ctx, coin, address)
	count, countErr := s.api.WorkerCount(ctx, coin, address)

	lastUpdate := util.FormatLastUpdate(s.now())

	// stats 为空视为数据错误：只清空状态并记录时间
	if stats == nil {
		s.mu.Lock()
		s.state = nil
		s.fresh = false
		s.snapshot.LastUpdate = &lastUpdate
		s.mu.Unlock()

		log.Warnf("Empty stats for %s (%s)", address, coin)
		return nil
	}

	if balanceErr != nil {
		return balanceErr
	}
	if countErr != nil {
		return countErr
	}

	online := count.WorkersOnline
	offline := count.WorkersOffline
	current := stats.CurrentEffectiveHashrate
	average := stats.AverageEffectiveHashrate
	reported := stats.ReportedHashrate
	valid := stats.ValidShares
	stale := stats.StaleShares
	invalid := stats.InvalidShares
	unpaid := balance.Balance

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = &online
	s.fresh = true
	s.snapshot.LastUpdate = &lastUpdate
	s.snapshot.WorkersOnline = &online
	s.snapshot.WorkersOffline = &offline
	s.snapshot.CurrentHashrate = &current
	s.snapshot.AverageHashrate = &average
	s.snapshot.ReportedHashrate = &reported
	s.snapshot.ValidShares = &valid
	s.snapshot.StaleShares = &stale
	s.snapshot.InvalidShares = &invalid
	s.snapshot.UnpaidBalance = &unpaid

	return nil
}
