package main

import (
	"github.com/seshasai-1827/File-generation-proj/cmd"
	"go.uber.org/zap"
)

func main() {
	if err := cmd.Execute(); err != nil {
		zap.S().Fatalw("command failed", "error", err)
	}
}
