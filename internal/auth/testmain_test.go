package auth

import (
	"os"
	"testing"

	"github.com/cloudpebble/cptui/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)
	os.Exit(m.Run())
}
