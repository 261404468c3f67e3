package main

import (
	"os"

	"github.com/JaSamMarko/back-office/internal/shared/apperror"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	if err := newRootCmd(runImport).Execute(); err != nil {
		logger.Sync()
		os.Exit(1)
	}
}
