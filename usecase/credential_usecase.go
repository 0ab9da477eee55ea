package usecase

import "apikeys/domain"

// KeyProvider は API キーを提供するインターフェースです。
type KeyProvider interface {
	OpenAIAPIKey() (string, bool)
	SerperAPIKey() (string, bool)
}

// CredentialUsecase は API キーの設定状況を報告するユースケースです。
type CredentialUsecase struct {
	keys KeyProvider
}

// NewCredentialUsecase は新しい CredentialUsecase を生成します。
func NewCredentialUsecase(keys KeyProvider) *CredentialUsecase {
	return &CredentialUsecase{
		keys: keys,
	}
}

// Credentials は全ての API キーの取得結果を固定順で返します。
func (uc *CredentialUsecase) Credentials() []domain.Credential {
	openAI, openAIOK := uc.keys.OpenAIAPIKey()
	serper, serperOK := uc.keys.SerperAPIKey()

	return []domain.Credential{
		{Name: domain.OpenAIAPIKey, Value: openAI, Present: openAIOK},
		{Name: domain.SerperAPIKey, Value: serper, Present: serperOK},
	}
}

// Missing は未設定または空の API キー名を返します。
func (uc *CredentialUsecase) Missing() []domain.CredentialName {
	var missing []domain.CredentialName
	for _, c := range uc.Credentials() {
		if !c.Usable() {
			missing = append(missing, c.Name)
		}
	}
	return missing
}
