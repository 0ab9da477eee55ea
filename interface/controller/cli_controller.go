package controller

import (
	"fmt"
	"io"
	"log/slog"

	"apikeys/domain"
)

// CredentialUsecase は API キー報告ユースケースのインターフェースです。
type CredentialUsecase interface {
	Credentials() []domain.Credential
	Missing() []domain.CredentialName
}

// CLIController はCLIからの入力を処理します。
type CLIController struct {
	usecase CredentialUsecase
	out     io.Writer
	strict  bool
}

// NewCLIController は新しいCLIControllerを生成します。
func NewCLIController(usecase CredentialUsecase, out io.Writer, strict bool) *CLIController {
	return &CLIController{
		usecase: usecase,
		out:     out,
		strict:  strict,
	}
}

// RunReport は API キーの設定状況を出力し、終了コードを返します。
func (c *CLIController) RunReport() int {
	for _, cred := range c.usecase.Credentials() {
		fmt.Fprintf(c.out, "%-16s %s\n", cred.Name, cred.Masked())
	}

	missing := c.usecase.Missing()
	for _, name := range missing {
		slog.Warn("API key is not set", "name", name)
	}
	if c.strict && len(missing) > 0 {
		return 1
	}
	return 0
}
