package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

const (
	version = "1.0"

	defaultConfigFile = "config.json"
)

func main() {
	if err := newApp(os.Stdin, os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "An error occurred:\n%v\n", err)
		os.Exit(1)
	}
}

// newApp builds the command line application, prompts are read from in and
// everything else is written to out
func newApp(in io.Reader, out io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "lifegame"
	app.Usage = "run Conway's Game of Life on a board read from a text file"
	app.Version = version
	app.Writer = out
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "input",
			Usage: "`PATH` to the input file. Mandatory",
		},
		cli.IntFlag{
			Name:  "iterations",
			Value: -1,
			Usage: "number of iterations. Mandatory, must be a positive integer",
		},
		cli.BoolFlag{
			Name:  "all",
			Usage: "create one output file for each iteration instead of only the final one",
		},
		cli.BoolFlag{
			Name:  "no-limit",
			Usage: "remove the limit of 256x256 on the board size. Could exhaust memory and disk",
		},
		cli.StringFlag{
			Name:  "config",
			Value: defaultConfigFile,
			Usage: "`PATH` to a JSON configuration file, defaults are used when it is missing",
		},
		cli.StringFlag{
			Name:  "log-level",
			Value: "info",
			Usage: "one of debug, info, warn, error",
		},
	}
	app.Action = func(c *cli.Context) error {
		return run(c, in, out)
	}
	return app
}
