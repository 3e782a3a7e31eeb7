package flexpool

import (
	"bytes"
	"encoding/json"

	"github.com/mitchellh/mapstructure"
)

// Response 接口统一的返回结构
type Response struct {
	Error  interface{} `json:"error"`
	Result interface{} `json:"result"`
}

// Stats `stats` 接口结果
type Stats struct {
	CurrentEffectiveHashrate float64 `json:"currentEffectiveHashrate"`
	AverageEffectiveHashrate float64 `json:"averageEffectiveHashrate"`
	ReportedHashrate         float64 `json:"reportedHashrate"`
	ValidShares              int64   `json:"validShares"`
	StaleShares              int64   `json:"staleShares"`
	InvalidShares            int64   `json:"invalidShares"`
}

// Balance `balance` 接口结果，余额按接口原样保留（最小单位，可能超出 float64 精度）
type Balance struct {
	Balance json.Number `json:"balance"`
}

// WorkerCount `workerCount` 接口结果
type WorkerCount struct {
	WorkersOnline  int64 `json:"workersOnline"`
	WorkersOffline int64 `json:"workersOffline"`
}

// UnmarshalResponse 数字保留为 json.Number
func UnmarshalResponse(b []byte) (Response, error) {
	var resp Response
	decoder := json.NewDecoder(bytes.NewReader(b))
	decoder.UseNumber()
	err := decoder.Decode(&resp)
	return resp, err
}

// IsEmpty 结果为空（null、空对象）
func (r *Response) IsEmpty() bool {
	switch v := r.Result.(type) {
	case nil:
		return true
	case map[string]interface{}:
		return len(v) == 0
	case []interface{}:
		return len(v) == 0
	case string:
		return v == ""
	case bool:
		return !v
	case json.Number:
		f, err := v.Float64()
		return err == nil && f == 0
	}
	return false
}

// Decode 将结果解码到具体结构
func (r *Response) Decode(out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  out,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(r.Result)
}
