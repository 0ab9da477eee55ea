package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredential_Masked(t *testing.T) {
	tests := []struct {
		name string
		cred Credential
		want string
	}{
		{"not set", Credential{Name: OpenAIAPIKey}, "<not set>"},
		{"empty", Credential{Name: OpenAIAPIKey, Present: true}, "<empty>"},
		{"short value", Credential{Name: SerperAPIKey, Value: "abc123", Present: true}, "********"},
		{"eleven chars", Credential{Name: SerperAPIKey, Value: "abcdefghijk", Present: true}, "********"},
		{"long value", Credential{Name: OpenAIAPIKey, Value: "sk-proj-1234567890abcd", Present: true}, "sk-...abcd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cred.Masked())
		})
	}
}

func TestCredential_MaskedHidesMiddle(t *testing.T) {
	cred := Credential{Name: OpenAIAPIKey, Value: "sk-SECRETSECRETSECRET-tail", Present: true}

	assert.NotContains(t, cred.Masked(), "SECRET")
}

func TestCredential_Usable(t *testing.T) {
	assert.False(t, Credential{Name: OpenAIAPIKey}.Usable())
	assert.False(t, Credential{Name: OpenAIAPIKey, Present: true}.Usable())
	assert.True(t, Credential{Name: OpenAIAPIKey, Value: "sk-test", Present: true}.Usable())
}
