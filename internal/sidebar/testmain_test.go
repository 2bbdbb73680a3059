package sidebar

import (
	"os"
	"testing"

	"github.com/cloudpebble/cptui/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Reset()
	if err := logger.Init(os.DevNull); err != nil {
		panic(err)
	}
	code := m.Run()
	logger.Reset()
	os.Exit(code)
}
