// Copyright 2026 Mundap Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v2"

	"github.com/mundap-io/mundap"
	"github.com/mundap-io/mundap/config"
)

func main() {
	app := &cli.App{
		Name:  "mundap",
		Usage: "Internal Q&A engine over the employee guide documents",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML configuration file",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "index",
				Usage:  "Segment the guide documents and (re)build the vector index",
				Action: indexCommand,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "force",
						Usage: "Rebuild even when the index is up to date",
					},
				},
			},
			{
				Name:      "ask",
				Usage:     "Answer a single question",
				ArgsUsage: "<question>",
				Action:    askCommand,
			},
			{
				Name:   "serve",
				Usage:  "Keep the index fresh, rebuilding on document changes",
				Action: serveCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	if path := c.String("config"); path != "" {
		return config.Load(path)
	}
	return config.Default(), nil
}

func indexCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	var bar *progressbar.ProgressBar
	engine, err := mundap.NewEngine(cfg, mundap.WithBuildProgress(func(done, total int) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionSetDescription("embedding"),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)
		}
		_ = bar.Set(done)
	}))
	if err != nil {
		return err
	}
	defer engine.Close()

	ctx := c.Context
	if c.Bool("force") {
		err = engine.Rebuild(ctx)
	} else {
		err = engine.Ensure(ctx)
	}
	if err != nil {
		return err
	}
	if bar != nil {
		_ = bar.Finish()
	}

	chunks, err := engine.Chunks()
	if err != nil {
		return err
	}
	fmt.Printf("index ready: %d chunks\n", len(chunks))
	return nil
}

func askCommand(c *cli.Context) error {
	question := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if question == "" {
		return fmt.Errorf("usage: mundap ask <question>")
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	engine, err := mundap.NewEngine(cfg)
	if err != nil {
		return err
	}
	defer engine.Close()

	ctx := c.Context
	if err := engine.Ensure(ctx); err != nil {
		return err
	}

	result, err := engine.Ask(ctx, question)
	if err != nil {
		return err
	}

	fmt.Println(result.Text)
	fmt.Printf("\n[%s] 신뢰도 %.2f, %.3f초\n", result.Category, result.Confidence, result.ResponseTime)
	if result.Link != "" {
		fmt.Printf("링크: %s\n", result.Link)
	}
	if len(result.Related) > 0 {
		fmt.Println("\n이런 질문은 어떠세요?")
		for _, q := range result.Related {
			fmt.Printf("  - %s\n", q)
		}
	}
	return nil
}

func serveCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	engine, err := mundap.NewEngine(cfg)
	if err != nil {
		return err
	}
	defer engine.Close()

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := engine.Ensure(ctx); err != nil {
		return err
	}

	slog.Info("watching for document changes", "dir", cfg.Data.DocsDir)
	if err := engine.Watch(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
