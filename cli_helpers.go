package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/lifegame/model"
	"github.com/sheikhrachel/lifegame/utils"
)

// run validates the arguments, loads the board and iterates it
func run(c *cli.Context, in io.Reader, out io.Writer) error {
	logger, err := newLogger(out, c.String("log-level"))
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Welcome to LifeGame %s\n", version)

	var (
		input      = c.String("input")
		iterations = c.Int("iterations")
		saveAll    = c.Bool("all")
	)
	if iterations < 0 {
		return errors.New("bad argument: please input a positive number of iterations")
	}
	if input == "" {
		return errors.New("bad argument: please provide an input file")
	}

	config, err := loadConfig(c.String("config"), c.IsSet("config"), logger)
	if err != nil {
		return err
	}

	// generations 0..iterations are all saved
	if files := iterations + 1; saveAll && files > config.ConfirmThreshold && !confirm(in, out, files) {
		fmt.Fprintln(out, "Aborting...")
		return nil
	}

	stats := utils.NewStats()
	opts := []model.Option{
		model.WithOutputDir(config.OutputDir),
		model.WithMaxCells(config.MaxCells),
		model.WithNoLimit(c.Bool("no-limit")),
		model.WithSymbols(model.Symbols{Dead: config.DeadSymbol[0], Alive: config.AliveSymbol[0]}),
		model.WithLogger(logger),
		model.WithStats(stats),
	}
	if config.UseMemoryPool {
		opts = append(opts, model.WithPool(model.NewGridPool()))
	}

	board, err := model.NewBoard(input, opts...)
	if err != nil {
		return err
	}
	level.Info(logger).Log("msg", "board loaded", "input", input,
		"width", board.GetWidth(), "height", board.GetHeight(),
		"living", board.CountLivingCells(), "output_dir", board.OutputDir())

	reason, err := iterateBoard(context.Background(), logger, board, iterations, saveAll)
	level.Info(logger).Log(append([]any{"msg", "run finished", "reason", reason}, stats.Keyvals()...)...)
	return err
}

// iterateBoard runs the board until it stops or the process is interrupted.
// A second group member reports the interrupt while the board finishes its
// current generation.
func iterateBoard(
	parent context.Context,
	logger log.Logger,
	board *model.Board,
	iterations int,
	saveAll bool,
) (model.StopReason, error) {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		eg, egCtx = errgroup.WithContext(ctx)
		done      = make(chan struct{})
		reason    model.StopReason
	)

	eg.Go(func() (err error) {
		defer close(done)
		reason, err = board.Iterate(egCtx, iterations, saveAll)
		return err
	})

	eg.Go(func() error {
		select {
		case <-done:
		case <-ctx.Done():
		}
		if err := ctx.Err(); err != nil {
			level.Warn(logger).Log("msg", "interrupt received, stopping after the current generation", "err", err)
		}
		return nil
	})

	err := eg.Wait()
	return reason, err
}

// loadConfig reads the configuration file, a missing default file means defaults
func loadConfig(path string, explicit bool, logger log.Logger) (utils.Config, error) {
	config, err := utils.LoadConfig(path)
	if err == nil {
		level.Debug(logger).Log("msg", "configuration loaded", "path", path)
		return config, nil
	}
	if !explicit && os.IsNotExist(errors.Cause(err)) {
		level.Debug(logger).Log("msg", "using default configuration", "path", path)
		return utils.DefaultConfig(), nil
	}
	return config, err
}

// newLogger returns a logfmt logger filtered at the named level
func newLogger(w io.Writer, name string) (log.Logger, error) {
	var allow level.Option
	switch strings.ToLower(name) {
	case "debug":
		allow = level.AllowDebug()
	case "info":
		allow = level.AllowInfo()
	case "warn":
		allow = level.AllowWarn()
	case "error":
		allow = level.AllowError()
	default:
		return nil, errors.Errorf("unknown log level: %q", name)
	}

	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, allow)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	return logger, nil
}

// confirm asks before writing that many snapshots and reports whether the user agreed
func confirm(in io.Reader, out io.Writer, files int) bool {
	fmt.Fprintf(out, "You are about to generate %d files, are you sure you want to continue ? (y/n)\n", files)

	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
