package config

import (
	"encoding/json"
	"fmt"
	"os"
)

const (
	DefaultEndpoint     = "https://api.flexpool.io/v2/miner/"
	DefaultTimeout      = "30s"
	DefaultPollInterval = "30s"
)

type Config struct {
	Name         *string `json:"name"`
	PollInterval *string `json:"pollInterval"`
	Logger       *Logger `json:"logger"`
	Redis        *Redis  `json:"redis"`
	Api          *Api    `json:"api"`

	// Sensors 传感器平台配置，每一项都按主机的键值表解析
	Sensors []map[string]interface{} `json:"sensors"`
}

// Load 读取配置文件并补齐默认值
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open configs file at %q: %w", path, err)
	}
	defer file.Close()

	var cfg Config
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode configs configuration: %w", err)
	}
	cfg.SetDefaults()

	return &cfg, nil
}

// SetDefaults 补齐缺省项
func (c *Config) SetDefaults() {
	if c.Name == nil {
		c.Name = newString("flexpool-info")
	}
	if c.PollInterval == nil {
		c.PollInterval = newString(DefaultPollInterval)
	}
	if c.Logger == nil {
		c.Logger = &Logger{}
	}
	c.Logger.setDefaults()
	if c.Redis == nil {
		c.Redis = &Redis{}
	}
	c.Redis.setDefaults()
	if c.Api == nil {
		c.Api = &Api{}
	}
	c.Api.setDefaults()
}

func newString(s string) *string {
	return &s
}

func newInt(i int) *int {
	return &i
}

func newBool(b bool) *bool {
	return &b
}
