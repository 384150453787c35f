package sheets

import (
	"context"
	"errors"
	"time"

	"github.com/SlpAus/frc-scouting-backend/internal/platform/config"
	"github.com/SlpAus/frc-scouting-backend/internal/platform/metrics"
	"github.com/SlpAus/frc-scouting-backend/internal/settings"
)

// ErrNotConfigured 表示试算表端点尚未在设置中填写
var ErrNotConfigured = errors.New("試算表連結尚未設定")

// bridgeTimeout 读取配置中的桥接超时
func bridgeTimeout() time.Duration {
	seconds := 15
	if config.Cfg != nil && config.Cfg.Sheets.TimeoutSeconds > 0 {
		seconds = config.Cfg.Sheets.TimeoutSeconds
	}
	return time.Duration(seconds) * time.Second
}

// loadEndpoint 读取设置中的端点和令牌
func loadEndpoint() (endpoint, token string, err error) {
	s, err := settings.GetSettings()
	if err != nil {
		return "", "", err
	}
	if s == nil || s.SheetsEndpointURL == "" {
		return "", "", ErrNotConfigured
	}
	return s.SheetsEndpointURL, s.APIToken, nil
}

// ExportAll 把当前全部数据作为一份快照推送到试算表
func ExportAll(ctx context.Context) error {
	endpoint, token, err := loadEndpoint()
	if err != nil {
		return err
	}

	snap, err := BuildSnapshot()
	if err != nil {
		return err
	}

	client := newBridgeClient(bridgeTimeout())
	if err := client.exportSnapshot(ctx, endpoint, token, snap); err != nil {
		return err
	}

	metrics.SheetsSyncs.WithLabelValues("export").Inc()
	return nil
}

// ImportAll 从试算表取回快照并以最后写入胜出的方式落库
func ImportAll(ctx context.Context) error {
	endpoint, token, err := loadEndpoint()
	if err != nil {
		return err
	}

	client := newBridgeClient(bridgeTimeout())
	snap, err := client.fetchSnapshot(ctx, endpoint, token)
	if err != nil {
		return err
	}

	if err := ApplySnapshot(snap); err != nil {
		return err
	}

	metrics.SheetsSyncs.WithLabelValues("import").Inc()
	return nil
}
