package suite

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
)

const maxWaitDuration = 30 * time.Second

// Suite bundles what a console session needs in tests: a logger that records
// to memory, default configuration, and a captured output stream.
type Suite struct {
	*testing.T
	Logger *slog.Logger
	Config *config.Config

	Output *bytes.Buffer
	Logs   *bytes.Buffer
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	conf := &config.Config{
		LogLevel: "debug",
		Marks:    config.Marks{A: "X", B: "O"},
	}

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Config: conf,
		Output: &bytes.Buffer{},
		Logs:   logs,
	}
}

// Input joins the given lines into a newline-terminated script.
func (that *Suite) Input(lines ...string) *strings.Reader {
	if len(lines) == 0 {
		return strings.NewReader("")
	}

	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}
