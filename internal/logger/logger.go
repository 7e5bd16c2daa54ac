package logger

import (
	"os"

	"go.uber.org/zap"
)

var L *zap.Logger = zap.NewNop()

// Init builds the process-wide logger. LOG_MODE=development switches to
// the human-readable console encoder.
func Init() *zap.Logger {
	var err error
	if os.Getenv("LOG_MODE") == "development" {
		L, err = zap.NewDevelopment()
	} else {
		L, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(L)
	return L
}

func Sync() {
	_ = L.Sync()
}
