// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the websearch CLI.
package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/websearch/internal/config"
	"github.com/pdiddy/websearch/internal/logging"
	"github.com/pdiddy/websearch/internal/secrets"
	"github.com/pdiddy/websearch/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// endpoint overrides the Custom Search API base URL. Empty uses the
// library default. Tests point it at an httptest server.
var endpoint = ""

// dotEnvFiles are loaded at startup; set variables are never overridden.
var dotEnvFiles = []string{".env", ".env.local"}

// app carries state shared between the root command's hooks.
type app struct {
	v      *viper.Viper
	log    *zap.Logger
	cfg    config.Config
	stderr io.Writer
}

func newRootCmd(stdout, stderr io.Writer) (*cobra.Command, *app) {
	a := &app{v: config.NewViper(), log: defaultLogger(stderr), stderr: stderr}

	cmd := &cobra.Command{
		Use:   "websearch [query]",
		Short: "Search the web with Google Custom Search",
		Long: `websearch sends a query to the Google Custom Search JSON API and prints
each result's URL, title, and snippet to stdout.

Results are fetched in pages of 10. When the API reports an error the whole
search is retried from the first page after a fixed delay. Progress and
errors are logged to stderr.

Credentials come from GOOGLE_API_KEY and GOOGLE_SEARCH_CX (a .env file is
honored), the config file, or .secrets/google-api-key and
.secrets/google-search-cx.`,
		Args:              cobra.MinimumNArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runSearch,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	pf := cmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./websearch.yaml or ~/.config/websearch/websearch.yaml)")
	pf.String("secrets-dir", ".secrets/", "directory of credential files")
	pf.String("log-level", "info", "diagnostic log level: debug, info, warn, or error")
	pf.String("log-format", logging.FormatConsole, "diagnostic log format: console or json")

	f := cmd.Flags()
	f.Int("max-results", types.DefaultMaxResults, "maximum number of results")
	f.Int("max-retries", types.DefaultMaxRetries, "maximum number of attempts")
	f.Duration("retry-delay", types.DefaultRetryDelay, "fixed wait between attempts")
	f.Duration("timeout", types.DefaultTimeout, "HTTP request timeout (0 disables)")
	f.StringP("format", "o", "text", "output format: text, json, or yaml")

	bind := map[string]string{
		config.KeyMaxResults: "max-results",
		config.KeyMaxRetries: "max-retries",
		config.KeyRetryDelay: "retry-delay",
		config.KeyTimeout:    "timeout",
		config.KeyOutput:     "format",
		config.KeyLogLevel:   "log-level",
		config.KeyLogFormat:  "log-format",
	}
	for key, name := range bind {
		flag := f.Lookup(name)
		if flag == nil {
			flag = pf.Lookup(name)
		}
		_ = a.v.BindPFlag(key, flag)
	}

	cmd.AddCommand(newVersionCmd())
	return cmd, a
}

// defaultLogger is used until setup replaces it with the configured logger.
func defaultLogger(w io.Writer) *zap.Logger {
	log, err := logging.New(w, "info", logging.FormatConsole)
	if err != nil {
		return zap.NewNop()
	}
	return log
}

// setup loads .env files, the config file, the logger, and secrets, in
// that order, then resolves the configuration.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(dotEnvFiles...); err != nil {
		return err
	}

	cfgFile, _ := cmd.Flags().GetString("config")
	used, err := config.ReadFile(a.v, cfgFile)
	if err != nil {
		return err
	}

	log, err := logging.New(a.stderr, a.v.GetString(config.KeyLogLevel), a.v.GetString(config.KeyLogFormat))
	if err != nil {
		return err
	}
	a.log = log
	if used != "" {
		a.log.Debug("using config file", zap.String("path", used))
	}

	secretsDir, _ := cmd.Flags().GetString("secrets-dir")
	sec, err := secrets.Load(secretsDir, a.log)
	if err != nil {
		return err
	}
	if len(sec) > 0 {
		a.log.Debug("loaded secrets", zap.Strings("keys", sec.Keys()))
	}

	a.cfg, err = config.Load(a.v, sec)
	return err
}

// execute runs the CLI with args and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	cmd, a := newRootCmd(stdout, stderr)
	if args == nil {
		// cobra falls back to os.Args when given nil.
		args = []string{}
	}
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		a.log.Error("search failed", zap.Error(err))
		_ = a.log.Sync()
		return 1
	}
	_ = a.log.Sync()
	return 0
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
