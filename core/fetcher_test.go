package core

import (
	"context"
	"sync"

	"flexpool-info/flexpool"
)

// fakeFetcher 记录调用顺序的假矿池
type fakeFetcher struct {
	mu    sync.Mutex
	calls []string

	stats    *flexpool.Stats
	balance  *flexpool.Balance
	count    *flexpool.WorkerCount
	statsErr error
	err      error
}

func (f *fakeFetcher) record(path string) {
	f.calls = append(f.calls, path)
}

func (f *fakeFetcher) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeFetcher) Stats(ctx context.Context, coin, address string) (*flexpool.Stats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(flexpool.PathStats)
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	return f.stats, nil
}

func (f *fakeFetcher) Balance(ctx context.Context, coin, address string) (*flexpool.Balance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(flexpool.PathBalance)
	if f.err != nil {
		return nil, f.err
	}
	return f.balance, nil
}

func (f *fakeFetcher) WorkerCount(ctx context.Context, coin, address string) (*flexpool.WorkerCount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(flexpool.PathWorkerCount)
	if f.err != nil {
		return nil, f.err
	}
	return f.count, nil
}

func sampleFetcher() *fakeFetcher {
	return &fakeFetcher{
		stats: &flexpool.Stats{
			CurrentEffectiveHashrate: 100,
			AverageEffectiveHashrate: 90,
			ReportedHashrate:         95,
			ValidShares:              10,
			StaleShares:              1,
			InvalidShares:            0,
		},
		balance: &flexpool.Balance{Balance: "0.5"},
		count:   &flexpool.WorkerCount{WorkersOnline: 2, WorkersOffline: 1},
	}
}

func sampleConfig() map[string]interface{} {
	return map[string]interface{}{
		"miner_address":    "0xABC",
		"token":            "eth",
		"update_frequency": "5",
		"currency_name":    "usd",
	}
}
