package core

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// Poller 按固定节拍驱动传感器刷新，实际请求频率由传感器自身限流决定
type Poller struct {
	sensor     *Sensor
	interval   time.Duration
	publishers []Publisher

	ctx    context.Context
	cancel context.CancelFunc

	wg   sync.WaitGroup
	quit chan struct{}

	intervalTimer *time.Timer
}

// NewPoller
func NewPoller(sensor *Sensor, interval time.Duration, publishers ...Publisher) *Poller {
	ctx, cancel := context.WithCancel(context.Background())
	p := &Poller{
		sensor:     sensor,
		interval:   interval,
		publishers: publishers,

		ctx:    ctx,
		cancel: cancel,
		quit:   make(chan struct{}),
	}

	p.wg.Add(1)
	go p.listen()
	return p
}

func (p *Poller) listen() {
	defer p.wg.Done()

	log.Infof("Starting poller for %s", p.sensor.Name())
	p.intervalTimer = time.NewTimer(p.interval)
	defer p.intervalTimer.Stop()

	for {
		select {
		case <-p.quit:
			return

		case <-p.intervalTimer.C:
			p.poll()
			p.intervalTimer.Reset(p.interval)
		}
	}
}

// poll 失败只记录日志，保留旧数据
func (p *Poller) poll() {
	updated, err := p.sensor.Update(p.ctx)
	if err != nil {
		log.Errorf("Unable to update %s: %v", p.sensor.Name(), err)
		return
	}
	if !updated {
		return
	}

	publish(p.ctx, p.sensor, p.publishers)
}

func (p *Poller) Close() {
	p.cancel()
	close(p.quit)

	// 等待轮询退出
	p.wg.Wait()
}
