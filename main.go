package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"

	"github.com/nberkley/docs-mirror/internal/convert"
	"github.com/nberkley/docs-mirror/internal/history"
)

func main() {
	app := &cli.App{
		Name:           "docs-mirror",
		Usage:          "mirror the ShipAny documentation site as local Markdown",
		DefaultCommand: "convert",
		Commands: []*cli.Command{
			{
				Name:   "convert",
				Usage:  "fetch every catalog page, write Markdown files and the index",
				Flags:  append(commonFlags(), convertFlags()...),
				Action: convert.ConvertAction,
			},
			{
				Name:   "index",
				Usage:  "rebuild README.md from the catalog without fetching",
				Flags:  commonFlags(),
				Action: convert.IndexAction,
			},
			{
				Name:  "history",
				Usage: "inspect recorded runs",
				Subcommands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "list recent runs",
						Action: history.ListAction,
						Flags: []cli.Flag{
							&cli.IntFlag{Name: "limit", Value: 20, Usage: "maximum runs to show"},
						},
					},
					{
						Name:      "show",
						Usage:     "show per-page results for a run (latest if omitted)",
						ArgsUsage: "[run-id]",
						Action:    history.ShowAction,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// commonFlags configure where pages come from and where output lands. Every
// default matches the fixed values the tool ships with, so a bare run needs
// no flags at all.
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Value: "config.yaml",
			Usage: "optional YAML config overriding the built-in defaults",
		},
		&cli.StringFlag{
			Name:  "base-url",
			Usage: "documentation site base URL",
		},
		&cli.StringFlag{
			Name:  "output-dir",
			Usage: "output root for the Markdown tree",
		},
	}
}

func convertFlags() []cli.Flag {
	return []cli.Flag{
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "per-request timeout",
		},
		&cli.DurationFlag{
			Name:  "delay",
			Usage: "pause between page requests",
		},
		&cli.BoolFlag{
			Name:  "no-history",
			Usage: "skip recording this run in the history database",
		},
	}
}
