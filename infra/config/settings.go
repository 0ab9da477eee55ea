package config

import (
	"fmt"

	"go-simpler.org/env"
)

// Settings はツール自身の設定です。
type Settings struct {
	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`
}

// LoadSettings は src から Settings を読み込みます。src が nil の場合はプロセスの環境変数を使います。
func LoadSettings(src Source) (*Settings, error) {
	if src == nil {
		src = OSEnv{}
	}

	var s Settings
	if err := env.Load(&s, &env.Options{Source: src}); err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return &s, nil
}
