package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// bridgeClient 负责与部署为Web App的Apps Script脚本通信。
// 线上格式由脚本范本决定：导出是POST {action, token, data}，
// 导入是GET ?action=import&token=，两者都以HTTP 200返回。
type bridgeClient struct {
	httpClient *http.Client
}

// newBridgeClient 构造一个带超时的桥接客户端
func newBridgeClient(timeout time.Duration) *bridgeClient {
	return &bridgeClient{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// exportRequest 是导出请求的线上形态
type exportRequest struct {
	Action string    `json:"action"`
	Token  string    `json:"token"`
	Data   *Snapshot `json:"data"`
}

// exportSnapshot 把快照推送到Apps Script端点
func (c *bridgeClient) exportSnapshot(ctx context.Context, endpoint, token string, snap *Snapshot) error {
	body, err := json.Marshal(exportRequest{Action: "export", Token: token, Data: snap})
	if err != nil {
		return fmt.Errorf("无法序列化导出快照: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("无法构造导出请求: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("调用试算表端点失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("试算表端点返回状态 %d", resp.StatusCode)
	}

	// Apps Script对鉴权失败同样返回200，只能靠响应体区分
	var ack struct {
		OK bool `json:"ok"`
	}
	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("无法读取试算表端点响应: %w", err)
	}
	if err := json.Unmarshal(respBody, &ack); err != nil || !ack.OK {
		return fmt.Errorf("试算表端点拒绝了导出请求: %s", truncate(respBody, 200))
	}
	return nil
}

// fetchSnapshot 从Apps Script端点取回最近一次导出的快照
func (c *bridgeClient) fetchSnapshot(ctx context.Context, endpoint, token string) (*Snapshot, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("试算表端点URL不合法: %w", err)
	}
	q := u.Query()
	q.Set("action", "import")
	q.Set("token", token)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("无法构造导入请求: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("调用试算表端点失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("试算表端点返回状态 %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return nil, fmt.Errorf("无法读取试算表端点响应: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(respBody, &snap); err != nil {
		return nil, fmt.Errorf("试算表端点返回的快照无法解析: %s", truncate(respBody, 200))
	}
	return &snap, nil
}

// truncate 截断过长的响应体，避免错误信息爆炸
func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
