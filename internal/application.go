package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/primality"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-console/transport/console"
)

// RunApp - runs one game on the given input and output.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	cons := newConsole(conf, in, out)

	mode := entity.Mode(conf.Mode)
	if mode == entity.ModeUnset {
		var err error
		if mode, err = cons.ReadMode(ctx); err != nil {
			return endOfInput(log, fmt.Errorf("could not read game mode: %w", err))
		}
	}

	controller := tictactoe.NewGameController()
	bot := service.NewBotService(logger, tictactoe.NewSearcher(), controller)
	gameUseCase := usecase.NewGameUseCase(logger, cons, cons, bot, controller)

	if _, err := gameUseCase.Play(ctx, mode); err != nil {
		return endOfInput(log, fmt.Errorf("game failed: %w", err))
	}

	cons.WaitForEnter(ctx)

	return nil
}

// RunPrimeCheck - asks for one integer and prints whether it is prime.
func RunPrimeCheck(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "prime")

	cons := newConsole(conf, in, out)

	n, err := cons.ReadNumber(ctx, "ENTER THE VALUE OF N: ")
	if err != nil {
		return endOfInput(log, fmt.Errorf("could not read number: %w", err))
	}

	prime := primality.IsPrime(n)
	log.Debug("primality checked", "n", n, "prime", prime)

	cons.ShowPrimeVerdict(n, prime)

	return nil
}

func newConsole(conf *config.Config, in io.Reader, out io.Writer) *console.Console {
	return console.New(in, out, console.Options{
		ClearScreen: conf.ClearScreen,
		SymbolA:     conf.Marks.A,
		SymbolB:     conf.Marks.B,
	})
}

// endOfInput treats a closed input stream as a normal way to quit.
func endOfInput(log *slog.Logger, err error) error {
	if errors.Is(err, io.EOF) {
		log.Info("input closed, exiting")
		return nil
	}

	return err
}
