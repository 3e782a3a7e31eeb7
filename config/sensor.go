package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	log "github.com/sirupsen/logrus"

	"flexpool-info/util"
)

// 传感器配置键
const (
	ConfMinerAddress    = "miner_address"
	ConfUpdateFrequency = "update_frequency"
	ConfCurrencyName    = "currency_name"
	ConfToken           = "token"
	ConfId              = "id"
	ConfNameOverride    = "name_override"
)

const SensorPrefix = "Flexpool "

var (
	ErrMissingAddress = errors.New("miner_address is required")
	ErrMissingToken   = errors.New("token is required")
)

// rawSensor 主机传入的原始键值
type rawSensor struct {
	MinerAddress    *string `mapstructure:"miner_address"`
	UpdateFrequency *string `mapstructure:"update_frequency"`
	CurrencyName    *string `mapstructure:"currency_name"`
	Token           *string `mapstructure:"token"`
	Id              *string `mapstructure:"id"`
	NameOverride    *string `mapstructure:"name_override"`
}

// Sensor 校验后的传感器配置
type Sensor struct {
	MinerAddress    string
	UpdateFrequency int
	CurrencyName    string
	Token           string
	Id              string
	NameOverride    string
}

// ParseSensor 校验并规范化一个传感器平台配置
func ParseSensor(raw map[string]interface{}) (*Sensor, error) {
	var rs rawSensor
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &rs,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("invalid sensor configuration: %w", err)
	}

	if rs.MinerAddress == nil || strings.TrimSpace(*rs.MinerAddress) == "" {
		return nil, ErrMissingAddress
	}
	if rs.Token == nil || strings.TrimSpace(*rs.Token) == "" {
		return nil, ErrMissingToken
	}

	frequency := stringOr(rs.UpdateFrequency, "1")
	minutes, err := strconv.Atoi(strings.TrimSpace(frequency))
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", ConfUpdateFrequency, frequency, err)
	}

	s := &Sensor{
		MinerAddress:    strings.TrimSpace(*rs.MinerAddress),
		UpdateFrequency: minutes,
		CurrencyName:    strings.ToLower(strings.TrimSpace(stringOr(rs.CurrencyName, "usd"))),
		Token:           strings.ToLower(strings.TrimSpace(*rs.Token)),
		Id:              stringOr(rs.Id, ""),
		NameOverride:    strings.TrimSpace(stringOr(rs.NameOverride, "")),
	}

	// 仅提示，不拒绝
	if (s.Token == "eth" || s.Token == "etc") && !util.IsValidHexAddress(s.MinerAddress) {
		log.Warnf("Miner address %s does not look like a hex wallet address", s.MinerAddress)
	}

	return s, nil
}

// Interval 节流间隔
func (s *Sensor) Interval() time.Duration {
	return time.Duration(s.UpdateFrequency) * time.Minute
}

// DisplayName 显示名称
func (s *Sensor) DisplayName() string {
	if s.NameOverride != "" {
		return s.NameOverride
	}
	if len(s.Id) > 0 {
		return SensorPrefix + s.Id + " " + s.MinerAddress
	}
	return SensorPrefix + s.MinerAddress
}

func stringOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}
