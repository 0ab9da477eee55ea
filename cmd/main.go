package main

import (
	"apikeys/infra/config"
	"apikeys/infra/logging"
	"apikeys/interface/controller"
	"apikeys/usecase"
	"flag"
	"log"
	"os"
	"strings"
)

// envFiles は繰り返し指定できる -env-file フラグです。
type envFiles []string

func (f *envFiles) String() string {
	return strings.Join(*f, ",")
}

func (f *envFiles) Set(path string) error {
	*f = append(*f, path)
	return nil
}

func main() {
	// コマンドラインフラグの定義
	var files envFiles
	flag.Var(&files, "env-file", "Path to a .env file (repeatable, default .env)")
	strict := flag.Bool("strict", false, "Exit with status 1 when an API key is missing or empty")

	flag.Parse()

	// 環境変数の読み込み
	config.LoadEnv(files...)

	settings, err := config.LoadSettings(nil)
	if err != nil {
		log.Fatalf("Error loading settings: %v", err)
	}
	logging.InitLogger(settings.LogLevel, settings.LogFormat)

	// 依存関係の注入 (DI)
	credentialUsecase := usecase.NewCredentialUsecase(config.Default())
	cliController := controller.NewCLIController(credentialUsecase, os.Stdout, *strict)

	os.Exit(cliController.RunReport())
}
