package config

import "apikeys/domain"

// Keys は API キーへの読み取り専用アクセスを提供します。
type Keys struct {
	src Source
}

// NewKeys は src を参照する Keys を生成します。src が nil の場合はプロセスの環境変数を参照します。
func NewKeys(src Source) *Keys {
	if src == nil {
		src = OSEnv{}
	}
	return &Keys{src: src}
}

// OpenAIAPIKey は OPENAI_API_KEY の値を返します。未設定の場合 ok は false です。
func (k *Keys) OpenAIAPIKey() (string, bool) {
	return k.src.LookupEnv(string(domain.OpenAIAPIKey))
}

// SerperAPIKey は SERPER_API_KEY の値を返します。未設定の場合 ok は false です。
func (k *Keys) SerperAPIKey() (string, bool) {
	return k.src.LookupEnv(string(domain.SerperAPIKey))
}

var defaultKeys = NewKeys(OSEnv{})

// Default は .env ファイルを取り込んだ上で、プロセスの環境変数を参照する Keys を返します。
func Default() *Keys {
	LoadEnv()
	return defaultKeys
}

// GetOpenAIAPIKey は OPENAI_API_KEY を取得します。
func GetOpenAIAPIKey() (string, bool) {
	return Default().OpenAIAPIKey()
}

// GetSerperAPIKey は SERPER_API_KEY を取得します。
func GetSerperAPIKey() (string, bool) {
	return Default().SerperAPIKey()
}
