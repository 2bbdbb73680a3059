package ui

import (
	"os"
	"testing"

	"github.com/cloudpebble/cptui/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)

	code := m.Run()

	logger.Reset()
	os.Exit(code)
}
