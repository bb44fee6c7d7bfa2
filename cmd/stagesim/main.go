// Command stagesim is a headless debug driver: it loads a world
// configuration, builds an empty world, steps it for a fixed number of
// ticks, and prints a table of model state. It is not the worldfile
// parser or GUI this module's core explicitly excludes.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"go.viam.com/stagesim/config"
	"go.viam.com/stagesim/logging"
	"go.viam.com/stagesim/world"
)

func main() {
	app := &cli.App{
		Name:  "stagesim",
		Usage: "run a headless multi-robot simulation world",
		Commands: []*cli.Command{
			runCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "build a world from a config file and step it",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "path to a world config YAML file"},
			&cli.IntFlag{Name: "ticks", Aliases: []string{"t"}, Value: 100, Usage: "number of ticks to run"},
		},
		Action: func(c *cli.Context) error {
			cfg := config.Default()
			if path := c.String("config"); path != "" {
				loaded, err := config.Load(path)
				if err != nil {
					return err
				}
				cfg = *loaded
			}

			logger := logging.New("stagesim", cfg.Level())
			w := world.New(cfg.PixelsPerMeter, cfg.TickIntervalUS, logger)

			ticks := c.Int("ticks")
			for i := 0; i < ticks; i++ {
				w.Tick()
			}

			printModelTable(w)
			return nil
		},
	}
}
