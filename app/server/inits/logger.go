package inits

import (
	"fmt"
	"go.uber.org/zap"
)

// Logger 开发模式下输出彩色的可读日志，生产模式下输出 JSON
func Logger(debugMode bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if debugMode {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.InitialFields = map[string]interface{}{
		"app": "article-admin",
	}

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	return l, nil
}
