// Command lazytake demonstrates bounded views over single-pass and unbounded sources.
//
//	echo 0 1 2 3 | lazytake take -n 2 -rest
//	lazytake naturals -below 11 -n 11
package main

import (
	"context"
	"fmt"
	"os"

	"go.llib.dev/lazytake/adapter/memory"
	"go.llib.dev/lazytake/adapter/textscan"
	"go.llib.dev/lazytake/pkg/cli"
	"go.llib.dev/lazytake/pkg/env"
	"go.llib.dev/lazytake/pkg/errorkit"
	"go.llib.dev/lazytake/pkg/iterkit"
	"go.llib.dev/lazytake/pkg/lazytake"
	"go.llib.dev/lazytake/pkg/logging"
)

const ErrUnbounded errorkit.Error = "ErrUnbounded"

type Config struct {
	LogLevel string `env:"LAZYTAKE_LOG_LEVEL" default:"info" enum:"debug;info;warn;error;fatal;"`
}

func main() {
	ctx := context.Background()

	var c Config
	if err := env.Load(&c); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(cli.ExitCodeBadRequest)
	}

	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(cli.ExitCodeBadRequest)
	}

	logger := &logging.Logger{Out: os.Stderr, Level: level}
	cli.Main(ctx, NewMux(logger))
}

func NewMux(logger *logging.Logger) *cli.Mux {
	var mux cli.Mux
	mux.Handle("take", TakeCommand{logger: logger})
	mux.Handle("naturals", NaturalsCommand{logger: logger})
	return &mux
}

// TakeCommand prints the first N integers of the standard input.
type TakeCommand struct {
	N    int  `flag:"n" env:"LAZYTAKE_N" default:"1" desc:"number of integers to take"`
	Rest bool `flag:"rest" desc:"read one more integer directly from the input after the bounded view"`

	logger *logging.Logger
}

func (cmd TakeCommand) Summary() string {
	return "print the first N integers of the standard input"
}

func (cmd TakeCommand) ServeCLI(w cli.Response, r *cli.Request) {
	if cmd.N < 0 {
		w.ExitCode(cli.ExitCodeBadRequest)
		fmt.Fprintln(w, "n must not be negative")
		return
	}

	in := textscan.Ints(r.Body)
	view := lazytake.New[int, *textscan.Cursor[int]](in, cmd.N, lazytake.WithLogger(cmd.logger))
	for n := range view.All() {
		fmt.Fprintln(w, n)
	}
	if err := in.Err(); err != nil {
		cmd.logger.Error(r.Context(), "reading the input failed", logging.ErrField(err))
		cli.HandleError(w, r, err)
		return
	}
	cmd.logger.Debug(r.Context(), "bounded view consumed",
		logging.Field("n", cmd.N),
		logging.Field("reads", in.Reads()))

	if !cmd.Rest {
		return
	}
	if next, ok := in.Next(); ok {
		fmt.Fprintf(w, "rest: %d\n", next)
	} else {
		fmt.Fprintln(w, "rest: <eof>")
	}
	cli.HandleError(w, r, in.Err())
}

// NaturalsCommand prints the natural numbers below a limit, bounded by a count.
type NaturalsCommand struct {
	Below int `flag:"below" default:"11" desc:"exclusive upper limit of the filtered naturals"`
	N     int `flag:"n" default:"11" desc:"number of naturals to take"`

	logger *logging.Logger
}

func (cmd NaturalsCommand) Summary() string {
	return "print the first N naturals that are below a limit"
}

func (cmd NaturalsCommand) ServeCLI(w cli.Response, r *cli.Request) {
	if cmd.N < 0 {
		w.ExitCode(cli.ExitCodeBadRequest)
		fmt.Fprintln(w, "n must not be negative")
		return
	}
	if max(cmd.Below, 0) < cmd.N {
		// the filter would search the naturals forever for the missing elements
		cli.HandleError(w, r, ErrUnbounded.F("only %d naturals are below %d, but %d were asked for", max(cmd.Below, 0), cmd.Below, cmd.N))
		return
	}

	naturals := iterkit.Filter[int, *memory.IotaCursor](memory.Iota(0), func(n int) bool { return n < cmd.Below })
	view := lazytake.New[int, *iterkit.FilterCursor[int, *memory.IotaCursor]](naturals, cmd.N, lazytake.WithLogger(cmd.logger))
	for n := range view.All() {
		fmt.Fprintln(w, n)
	}
}
