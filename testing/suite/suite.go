package suite

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/rocketscienceinc/gobblet/internal/entity"
	"github.com/rocketscienceinc/gobblet/internal/gobblet"
	"github.com/rocketscienceinc/gobblet/internal/usecase"
)

const maxWaitDuration = 10 * time.Second

const matchID = "test-match"

type Suite struct {
	*testing.T
	Logger *slog.Logger
	// Logs holds every JSON log line written through Logger.
	Logs *bytes.Buffer

	Match   *gobblet.Match
	Manager *usecase.MatchManager
}

// New builds a fresh match where red moves first.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	return NewWithFirst(t, entity.Red)
}

func NewWithFirst(t *testing.T, first entity.Color) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	match := gobblet.NewMatch(matchID, first)

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Logs:    logs,
		Match:   match,
		Manager: usecase.NewMatchManager(logger, match),
	}
}
