package core

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	"flexpool-info/config"
	"flexpool-info/util"
)

const Separator = ":"

// Redis 将实体写入哈希表，供监控平台读取；只写不读
type Redis struct {
	Prefix string
	Client *redis.Client

	ttl time.Duration
}

func NewRedis(cfg *config.Redis) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     *cfg.Url,
		Password: *cfg.Password,
		DB:       *cfg.Database,
		PoolSize: *cfg.PoolSize,
	})

	return &Redis{
		Prefix: *cfg.Prefix,
		Client: client,

		ttl: util.MustParseDuration(*cfg.Ttl),
	}
}

// Key 实体的哈希键
func (r *Redis) Key(entity *Sensor) string {
	return strings.Join([]string{r.Prefix, "sensor", entity.Config().Token, entity.Config().MinerAddress}, Separator)
}

func (r *Redis) Publish(ctx context.Context, entity *Sensor) error {
	key := r.Key(entity)

	pipe := r.Client.TxPipeline()
	pipe.HSet(ctx, key, entityFields(entity))
	if r.ttl > 0 {
		pipe.Expire(ctx, key, r.ttl)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (r *Redis) Close() error {
	return r.Client.Close()
}

// entityFields 实体展开为字符串字段，空值写成空串
func entityFields(entity Entity) map[string]interface{} {
	fields := map[string]interface{}{
		"name":                entity.Name(),
		"icon":                entity.Icon(),
		"state":               formatValue(entity.State()),
		"unit_of_measurement": entity.UnitOfMeasurement(),
	}
	for k, v := range entity.Attributes() {
		fields[k] = formatValue(v)
	}
	return fields
}

func formatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case json.Number:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
