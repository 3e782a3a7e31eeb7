package flexpool

import (
	"context"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"

	log "github.com/sirupsen/logrus"

	"flexpool-info/config"
	"flexpool-info/util"
)

// 接口路径
const (
	PathStats       = "stats"
	PathBalance     = "balance"
	PathWorkerCount = "workerCount"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected http status")
	ErrApi              = errors.New("pool api error")
	ErrEmptyResult      = errors.New("empty result")
)

// Client Flexpool 矿工接口客户端
type Client struct {
	endpoint string
	client   *http.Client
}

// NewClient
func NewClient(cfg *config.Api) *Client {
	return &Client{
		endpoint: *cfg.Endpoint,
		client: &http.Client{
			Timeout: util.MustParseDuration(*cfg.Timeout),
		},
	}
}

// Stats 查询算力与份额，结果为空时返回 nil, nil
func (c *Client) Stats(ctx context.Context, coin, address string) (*Stats, error) {
	resp, err := c.sendHttpRequest(ctx, PathStats, coin, address)
	if err != nil {
		return nil, err
	}
	if resp.IsEmpty() {
		return nil, nil
	}

	var stats Stats
	if err := resp.Decode(&stats); err != nil {
		return nil, fmt.Errorf("unable to decode %s result: %w", PathStats, err)
	}
	return &stats, nil
}

// Balance 查询未支付余额
func (c *Client) Balance(ctx context.Context, coin, address string) (*Balance, error) {
	resp, err := c.sendHttpRequest(ctx, PathBalance, coin, address)
	if err != nil {
		return nil, err
	}
	if resp.IsEmpty() {
		return nil, fmt.Errorf("%s: %w", PathBalance, ErrEmptyResult)
	}

	var balance Balance
	if err := resp.Decode(&balance); err != nil {
		return nil, fmt.Errorf("unable to decode %s result: %w", PathBalance, err)
	}
	return &balance, nil
}

// WorkerCount 查询在线/离线矿机数
func (c *Client) WorkerCount(ctx context.Context, coin, address string) (*WorkerCount, error) {
	resp, err := c.sendHttpRequest(ctx, PathWorkerCount, coin, address)
	if err != nil {
		return nil, err
	}
	if resp.IsEmpty() {
		return nil, fmt.Errorf("%s: %w", PathWorkerCount, ErrEmptyResult)
	}

	var count WorkerCount
	if err := resp.Decode(&count); err != nil {
		return nil, fmt.Errorf("unable to decode %s result: %w", PathWorkerCount, err)
	}
	return &count, nil
}

// URL 拼接请求地址
func (c *Client) URL(path, coin, address string) string {
	return c.endpoint + path + "?coin=" + url.QueryEscape(coin) + "&address=" + url.QueryEscape(address)
}

// sendHttpRequest 发送请求
func (c *Client) sendHttpRequest(ctx context.Context, path, coin, address string) (*Response, error) {
	u := c.URL(path, coin, address)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	log.Debugf("GET %s", u)
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned %d", ErrUnexpectedStatus, path, resp.StatusCode)
	}

	parsedData, err := UnmarshalResponse(data)
	if err != nil {
		return nil, fmt.Errorf("unable to unmarshal %s resp (%s): %w", path, string(data), err)
	}

	if parsedData.Error != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrApi, path, parsedData.Error)
	}

	return &parsedData, nil
}
