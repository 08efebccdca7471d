package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/goccy/go-json"
	"github.com/neox5/yamlinc"
	"github.com/urfave/cli/v3"
	"go.yaml.in/yaml/v4"
)

const version = "0.1.0"

func main() {
	cmd := &cli.Command{
		Name:      "yamlinc",
		Usage:     "Render YAML documents with !include tags resolved",
		Version:   version,
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "base-dir",
				Aliases: []string{"b"},
				Usage:   "base directory for relative include paths",
			},
			&cli.StringFlag{
				Name:    "encoding",
				Aliases: []string{"e"},
				Usage:   "default encoding for included files",
			},
			&cli.StringFlag{
				Name:  "tag",
				Value: yamlinc.DefaultTagName,
				Usage: "tag name bound to the include resolver",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "yaml",
				Usage:   "output format (yaml or json)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Action: render,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func render(ctx context.Context, cmd *cli.Command) error {
	path := cmd.Args().First()
	if path == "" {
		return fmt.Errorf("missing FILE argument")
	}

	// Configure logging level
	logLevel := slog.LevelInfo
	if cmd.Bool("debug") {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	slog.Debug("rendering document", "file", path, "tag", cmd.String("tag"))

	_, err := yamlinc.Register(yamlinc.DefaultClass, cmd.String("tag"),
		yamlinc.WithBaseDir(cmd.String("base-dir")),
		yamlinc.WithEncoding(cmd.String("encoding")),
		yamlinc.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("failed to register include resolver: %w", err)
	}

	loader := yamlinc.NewLoader(yamlinc.DefaultClass)
	value, err := loader.LoadFile(path)
	if err != nil {
		return err
	}

	switch cmd.String("format") {
	case "yaml":
		out, err := yaml.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		_, err = os.Stdout.Write(out)
		return err
	case "json":
		out, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		_, err = fmt.Println(string(out))
		return err
	default:
		return fmt.Errorf("unknown format %q (must be yaml or json)", cmd.String("format"))
	}
}
