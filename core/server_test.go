package core

import (
	"context"
	"errors"
	"testing"

	"flexpool-info/config"
)

func TestServerStart(t *testing.T) {
	cfg := &config.Config{
		Sensors: []map[string]interface{}{
			sampleConfig(),
			{"token": "eth"},
		},
	}
	cfg.SetDefaults()

	s := newServer(cfg, sampleFetcher())
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer s.Close()

	if len(s.Sensors()) != 1 {
		t.Fatalf("len(Sensors()) = %d, want 1", len(s.Sensors()))
	}
	if s.Sensors()[0].State() != int64(2) {
		t.Errorf("State() = %v", s.Sensors()[0].State())
	}
}

func TestServerStartNoSensors(t *testing.T) {
	cfg := &config.Config{}
	cfg.SetDefaults()

	api := sampleFetcher()
	api.statsErr = errors.New("down")
	cfg.Sensors = []map[string]interface{}{sampleConfig()}

	s := newServer(cfg, api)
	if err := s.Start(context.Background()); !errors.Is(err, ErrNoSensors) {
		t.Fatalf("Start() error = %v, want %v", err, ErrNoSensors)
	}
	s.Close()
}

func TestServerStartRejectsNonPositivePollInterval(t *testing.T) {
	for _, interval := range []string{"0s", "-5s"} {
		cfg := &config.Config{PollInterval: &interval}
		cfg.SetDefaults()
		cfg.Sensors = []map[string]interface{}{sampleConfig()}

		api := sampleFetcher()
		s := newServer(cfg, api)
		if err := s.Start(context.Background()); !errors.Is(err, ErrInvalidPollInterval) {
			t.Errorf("Start(pollInterval=%s) error = %v, want %v", interval, err, ErrInvalidPollInterval)
		}
		s.Close()

		if len(api.Calls()) != 0 {
			t.Errorf("pollInterval=%s: sensors were set up: %v", interval, api.Calls())
		}
	}
}
