package model

import "encoding/json"

// 属性名
const (
	AttrWorkersOnline           = "workers_online"
	AttrWorkersOffline          = "workers_offline"
	AttrCurrentHashrate         = "current_hashrate"
	AttrAverageHashrate         = "average_hashrate"
	AttrReportedHashrate        = "reported_hashrate"
	AttrValidShares             = "valid_shares"
	AttrStaleShares             = "stale_shares"
	AttrInvalidShares           = "invalid_shares"
	AttrUnpaidBalance           = "unpaid_balance"
	AttrUnpaidLocalBalance      = "unpaid_local_balance"
	AttrLastUpdate              = "last_update"
	AttrSingleCoinLocalCurrency = "single_coin_local_currency"
)

// Snapshot 矿工地址在矿池中的最近一次状态，未获取前全部为空
type Snapshot struct {
	Miner string
	Token string
	Name  string

	WorkersOnline  *int64
	WorkersOffline *int64

	CurrentHashrate  *float64
	AverageHashrate  *float64
	ReportedHashrate *float64

	ValidShares   *int64
	StaleShares   *int64
	InvalidShares *int64

	UnpaidBalance *json.Number
	// 本地货币折算，当前没有计算路径，始终为空
	UnpaidLocalBalance      *float64
	SingleCoinLocalCurrency *float64

	LastUpdate *string
}

// Attributes 以属性表形式导出，未设置的值为 nil
func (s *Snapshot) Attributes() map[string]interface{} {
	return map[string]interface{}{
		AttrWorkersOnline:           int64Value(s.WorkersOnline),
		AttrWorkersOffline:          int64Value(s.WorkersOffline),
		AttrCurrentHashrate:         float64Value(s.CurrentHashrate),
		AttrAverageHashrate:         float64Value(s.AverageHashrate),
		AttrReportedHashrate:        float64Value(s.ReportedHashrate),
		AttrValidShares:             int64Value(s.ValidShares),
		AttrStaleShares:             int64Value(s.StaleShares),
		AttrInvalidShares:           int64Value(s.InvalidShares),
		AttrLastUpdate:              stringValue(s.LastUpdate),
		AttrUnpaidBalance:           numberValue(s.UnpaidBalance),
		AttrUnpaidLocalBalance:      float64Value(s.UnpaidLocalBalance),
		AttrSingleCoinLocalCurrency: float64Value(s.SingleCoinLocalCurrency),
	}
}

func int64Value(v *int64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func float64Value(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func numberValue(v *json.Number) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func stringValue(v *string) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
