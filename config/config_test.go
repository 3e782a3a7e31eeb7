package config

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	data := `{
		"pollInterval": "10s",
		"logger": {"level": "debug"},
		"redis": {"enabled": true, "prefix": "ha"},
		"sensors": [
			{"platform": "flexpoolinfo", "miner_address": "0xABC", "token": "eth", "update_frequency": 5}
		]
	}`
	if err := ioutil.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *cfg.PollInterval != "10s" {
		t.Errorf("PollInterval = %q", *cfg.PollInterval)
	}
	if *cfg.Logger.Level != "debug" || *cfg.Logger.Mode != "stdout" {
		t.Errorf("Logger = %+v", cfg.Logger)
	}
	if !*cfg.Redis.Enabled || *cfg.Redis.Prefix != "ha" || *cfg.Redis.Url != "127.0.0.1:6379" {
		t.Errorf("Redis = %+v", cfg.Redis)
	}
	if *cfg.Api.Endpoint != DefaultEndpoint || *cfg.Api.Timeout != DefaultTimeout {
		t.Errorf("Api = %+v", cfg.Api)
	}
	if len(cfg.Sensors) != 1 {
		t.Fatalf("len(Sensors) = %d", len(cfg.Sensors))
	}

	s, err := ParseSensor(cfg.Sensors[0])
	if err != nil {
		t.Fatalf("ParseSensor() error = %v", err)
	}
	if s.UpdateFrequency != 5 {
		t.Errorf("UpdateFrequency = %d", s.UpdateFrequency)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "broken.json")
	ioutil.WriteFile(path, []byte("{"), 0644)
	if _, err := Load(path); err == nil {
		t.Error("Load(broken) expected error")
	}
}
