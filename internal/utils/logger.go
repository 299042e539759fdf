package utils

import (
	"os"

	"go.uber.org/zap"
)

// NewLogger builds the process logger. Production config (JSON, info
// level) when ENV=prod, development config otherwise.
func NewLogger() (*zap.Logger, error) {
	if os.Getenv("ENV") == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
