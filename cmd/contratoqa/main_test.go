package main

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func generateTestApp() *cli.App {
	return &cli.App{
		Name: "contratoqa",
		Commands: []*cli.Command{
			{
				Name:   "generate",
				Action: generateCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "csv",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Value:   "qa_pairs.jsonl",
					},
					&cli.IntFlag{
						Name:    "n-paraphrases",
						Aliases: []string{"k"},
						Value:   3,
					},
					&cli.IntFlag{
						Name:    "concurrency",
						Aliases: []string{"c"},
						Value:   8,
					},
					&cli.StringFlag{
						Name:    "generator-host",
						Value:   "http://localhost:11434/v1",
						EnvVars: []string{"LLAMA_URL"},
					},
					&cli.StringFlag{
						Name:    "generator-model",
						Value:   "llama4",
						EnvVars: []string{"MODEL_NAME"},
					},
				},
			},
		},
	}
}

func TestGenerateCommandFlags(t *testing.T) {
	app := generateTestApp()

	t.Run("csv is required", func(t *testing.T) {
		err := app.Run([]string{"contratoqa", "generate"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "csv")
	})

	t.Run("n-paraphrases defaults to 3", func(t *testing.T) {
		cmd := app.Commands[0]
		var flag *cli.IntFlag
		for _, f := range cmd.Flags {
			if v, ok := f.(*cli.IntFlag); ok && v.Name == "n-paraphrases" {
				flag = v
				break
			}
		}
		require.NotNil(t, flag)
		assert.Equal(t, 3, flag.Value)
		assert.Contains(t, flag.Aliases, "k")
	})

	t.Run("concurrency defaults to 8", func(t *testing.T) {
		cmd := app.Commands[0]
		var flag *cli.IntFlag
		for _, f := range cmd.Flags {
			if v, ok := f.(*cli.IntFlag); ok && v.Name == "concurrency" {
				flag = v
				break
			}
		}
		require.NotNil(t, flag)
		assert.Equal(t, 8, flag.Value)
		assert.Contains(t, flag.Aliases, "c")
	})

	t.Run("generator-host reads LLAMA_URL", func(t *testing.T) {
		cmd := app.Commands[0]
		var flag *cli.StringFlag
		for _, f := range cmd.Flags {
			if v, ok := f.(*cli.StringFlag); ok && v.Name == "generator-host" {
				flag = v
				break
			}
		}
		require.NotNil(t, flag)
		assert.Contains(t, flag.EnvVars, "LLAMA_URL")
		assert.Equal(t, "http://localhost:11434/v1", flag.Value)
	})

	t.Run("generator-model reads MODEL_NAME", func(t *testing.T) {
		cmd := app.Commands[0]
		var flag *cli.StringFlag
		for _, f := range cmd.Flags {
			if v, ok := f.(*cli.StringFlag); ok && v.Name == "generator-model" {
				flag = v
				break
			}
		}
		require.NotNil(t, flag)
		assert.Contains(t, flag.EnvVars, "MODEL_NAME")
		assert.Equal(t, "llama4", flag.Value)
	})

	t.Run("out defaults to qa_pairs.jsonl", func(t *testing.T) {
		cmd := app.Commands[0]
		var flag *cli.StringFlag
		for _, f := range cmd.Flags {
			if v, ok := f.(*cli.StringFlag); ok && v.Name == "out" {
				flag = v
				break
			}
		}
		require.NotNil(t, flag)
		assert.Equal(t, "qa_pairs.jsonl", flag.Value)
	})
}

func TestSetupLogger(t *testing.T) {
	newApp := func() *cli.App {
		return &cli.App{
			Name: "test",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "log-level",
					Aliases: []string{"l"},
					Value:   "info",
				},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error {
				return nil
			},
		}
	}

	t.Run("valid log levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error"} {
			t.Run(level, func(t *testing.T) {
				err := newApp().Run([]string{"test", "--log-level", level})
				require.NoError(t, err)
			})
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		for _, level := range []string{"DEBUG", "Info", "WaRn", "ERROR"} {
			t.Run(level, func(t *testing.T) {
				err := newApp().Run([]string{"test", "--log-level", level})
				require.NoError(t, err)
			})
		}
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		err := newApp().Run([]string{"test", "--log-level", "loud"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})

	t.Run("alias -l works", func(t *testing.T) {
		err := newApp().Run([]string{"test", "-l", "debug"})
		require.NoError(t, err)
	})
}

func TestSetupLoggerLeavesDefaultUsable(t *testing.T) {
	err := setupLoggerForLevel("info")
	require.NoError(t, err)
	assert.NotNil(t, slog.Default())
}

func setupLoggerForLevel(level string) error {
	app := &cli.App{
		Name: "test",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log-level", Value: level},
		},
		Before: setupLogger,
		Action: func(c *cli.Context) error { return nil },
	}
	return app.Run([]string{"test"})
}

func TestMain(m *testing.M) {
	os.Exit(m.Run())
}
