package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/gobblet/internal/config"
	"github.com/rocketscienceinc/gobblet/internal/entity"
	"github.com/rocketscienceinc/gobblet/internal/gobblet"
	"github.com/rocketscienceinc/gobblet/internal/usecase"
	"github.com/rocketscienceinc/gobblet/transport/console"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	return Run(context.Background(), logger, conf, os.Stdin, os.Stdout)
}

// Run - plays one match on in/out until it is won, the player leaves or the process is signaled.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	first := conf.FirstColor(randomColor)
	match := gobblet.NewMatch(uuid.New().String(), first)
	manager := usecase.NewMatchManager(logger, match)

	log.Info("match created", "matchID", match.ID(), "first", first)

	// the console may still be blocked reading in; closing it makes the read fail so the goroutine ends
	defer func() {
		if closer, ok := in.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				log.Error("could not close console input", "error", err)
			}
		}
	}()

	// run console
	consoleErrCh := make(chan error, 1)
	go func() {
		server := console.New(logger, manager, console.NewRenderer(out, !conf.NoColors), in, out)
		consoleErrCh <- server.Start(ctx)
	}()

	select {
	case err := <-consoleErrCh:
		if err != nil {
			return fmt.Errorf("console error: %w", err)
		}

		log.Info("match closed", "state", manager.State())
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func randomColor() entity.Color {
	if rand.IntN(2) == 0 { //nolint: gosec // it's ok
		return entity.Red
	}

	return entity.Green
}
