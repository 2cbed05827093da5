package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"pinboard"
	"pinboard/internal/app"
	"pinboard/internal/config"
	"pinboard/internal/logger"
)

// flagKeys maps persistent flags to the config keys they override.
var flagKeys = map[string]string{
	"token":     "pinboard.token",
	"host":      "pinboard.host",
	"auth-mode": "pinboard.auth_mode",
	"base-url":  "pinboard.base_url",
	"timeout":   "http.timeout",
	"log-level": "log_level",
}

type cli struct {
	configPath string
	app        *app.App
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:          "pinboard",
		Short:        "Query the Pinboard bookmarking API",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "path to a YAML config file")
	flags.String("token", "", "API token (user:TOKEN), overrides PINBOARD_TOKEN")
	flags.String("host", pinboard.DefaultHost, "API host")
	flags.String("auth-mode", "url", "how to send the token: url or header")
	flags.String("base-url", "", "API base URL, replaces https://<host>/")
	flags.Duration("timeout", 0, "HTTP timeout")
	flags.String("log-level", "info", "log level: error, warn, info or debug")

	root.AddCommand(
		newRecentCmd(c),
		newDatesCmd(c),
		newSuggestCmd(c),
		newTagsCmd(c),
		newUpdateCmd(c),
		newAddCmd(c),
		newDeleteCmd(c),
	)
	return root
}

// setup loads the configuration and builds the API client.
func (c *cli) setup(cmd *cobra.Command) error {
	overrides := map[string]any{}
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			overrides[key] = f.Value.String()
		}
	})

	cfg, err := config.Load(c.configPath, overrides)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log := logger.New(level)
	log.SetOutput(cmd.ErrOrStderr())

	mode, ok := pinboard.ParseAuthMode(cfg.Pinboard.AuthMode)
	if !ok {
		return fmt.Errorf("invalid auth mode: %s", cfg.Pinboard.AuthMode)
	}

	httpClient := &http.Client{Timeout: cfg.HTTP.Timeout}
	opts := []pinboard.Option{
		pinboard.WithHTTPClient(httpClient),
		pinboard.WithLogger(log),
		pinboard.WithAuthMode(mode),
	}
	if cfg.Pinboard.BaseURL != "" {
		opts = append(opts, pinboard.WithBaseURL(cfg.Pinboard.BaseURL))
	}
	client, err := pinboard.NewClient(cfg.Pinboard.Host, cfg.Pinboard.Token, opts...)
	if err != nil {
		return fmt.Errorf("error creating Pinboard client: %w", err)
	}
	log.Debugf("Using %s", client)

	c.app = app.NewApp(
		app.WithConfig(cfg),
		app.WithClient(client),
		app.WithHTTPClient(httpClient),
		app.WithLogger(log),
	)
	return nil
}
