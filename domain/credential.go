package domain

import "strings"

// CredentialName は API キーを保持する環境変数名です。
type CredentialName string

const (
	OpenAIAPIKey CredentialName = "OPENAI_API_KEY"
	SerperAPIKey CredentialName = "SERPER_API_KEY"
)

// Credential は API キーの取得結果を保持するエンティティです。
type Credential struct {
	Name    CredentialName
	Value   string
	Present bool
}

// Usable はキーが設定済みかつ空でないかを返します。
func (c Credential) Usable() bool {
	return c.Present && c.Value != ""
}

// Masked は表示用に伏せ字にした値を返します。
// 12文字未満の値は長さも含めて完全に伏せます。
func (c Credential) Masked() string {
	switch {
	case !c.Present:
		return "<not set>"
	case c.Value == "":
		return "<empty>"
	case len(c.Value) < 12:
		return strings.Repeat("*", 8)
	}
	return c.Value[:3] + "..." + c.Value[len(c.Value)-4:]
}
