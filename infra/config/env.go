package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// DefaultEnvFile は既定で読み込む .env ファイルのパスです。
const DefaultEnvFile = ".env"

// Source は環境変数テーブルの読み取り専用ビューです。
type Source interface {
	LookupEnv(key string) (string, bool)
}

// Environment は書き込み可能な環境変数テーブルです。
type Environment interface {
	Source
	Setenv(key, value string) error
}

// OSEnv はプロセスの環境変数を扱う Environment です。
type OSEnv struct{}

func (OSEnv) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (OSEnv) Setenv(key, value string) error {
	return os.Setenv(key, value)
}

// Map はメモリ上の環境変数テーブルです。
type Map map[string]string

func (m Map) LookupEnv(key string) (string, bool) {
	value, exists := m[key]
	return value, exists
}

func (m Map) Setenv(key, value string) error {
	m[key] = value
	return nil
}

// loader は .env ファイルの取り込みを一度だけ実行します。
type loader struct {
	once sync.Once
	env  Environment
}

func (l *loader) load(paths []string) {
	l.once.Do(func() {
		if len(paths) == 0 {
			paths = []string{DefaultEnvFile}
		}
		for _, path := range paths {
			if _, err := MergeFile(l.env, path); err != nil {
				slog.Warn("Failed to load env file, using environment variables", "path", path, "error", err)
			}
		}
	})
}

var defaultLoader = &loader{env: OSEnv{}}

// LoadEnv は .env ファイルから環境変数を読み込みます。
// 既にプロセスに設定されている変数は上書きしません。有効なのは最初の呼び出しだけです。
func LoadEnv(paths ...string) {
	defaultLoader.load(paths)
}

// MergeFile は path の KEY=VALUE 行を dst に取り込み、設定した変数の数を返します。
// dst に既に存在するキーは上書きしません。ファイルが存在しない場合は何もしません。
func MergeFile(dst Environment, path string) (int, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("No .env file found, using environment variables", "path", path)
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read env file %s: %w", path, err)
	}

	vars := parseEnvFile(path, data)

	applied := 0
	for _, key := range slices.Sorted(maps.Keys(vars)) {
		if _, exists := dst.LookupEnv(key); exists {
			continue
		}
		if err := dst.Setenv(key, vars[key]); err != nil {
			return applied, fmt.Errorf("failed to set %s: %w", key, err)
		}
		applied++
	}
	return applied, nil
}

// parseEnvFile はファイル全体をパースし、失敗した場合は行単位でパースし直して不正な行を読み飛ばします。
func parseEnvFile(path string, data []byte) map[string]string {
	vars, err := godotenv.UnmarshalBytes(data)
	if err == nil {
		delete(vars, "")
		return vars
	}
	slog.Warn("Malformed env file, applying valid lines only", "path", path, "error", err)

	vars = make(map[string]string)
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parsed, err := godotenv.Unmarshal(line)
		if err != nil {
			slog.Warn("Skipping malformed env line", "path", path, "line", i+1, "error", err)
			continue
		}
		for key, value := range parsed {
			if key != "" {
				vars[key] = value
			}
		}
	}
	return vars
}

// GetEnv は指定されたキーの環境変数を取得します。
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
