// Package cli implements the dirq command line tool.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tinywasm/dirorm"
	"github.com/tinywasm/dirorm/internal/config"
	"github.com/tinywasm/dirorm/sqlitestore"
)

var (
	version = "dev"
	commit  = "none"
)

// Execute runs the CLI.
func Execute() int {
	return execute(os.Args[1:], os.Stdout, os.Stderr)
}

// execute runs the command tree with args and reports a failure on stdout
// (json output) or stderr, returning the exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	a := &app{}
	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	if err := rootCmd.Execute(); err != nil {
		if a.output == "json" {
			_ = printJSON(stdout, errorObject(err))
		} else {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func errorObject(err error) map[string]any {
	obj := map[string]any{"error": err.Error()}
	var nf *dirorm.NotFoundError
	var mr *dirorm.MultipleResultsError
	switch {
	case errors.As(err, &nf):
		obj["kind"] = "not_found"
	case errors.As(err, &mr):
		obj["kind"] = "multiple_results"
		obj["count"] = mr.Count
	}
	return obj
}

// app carries resolved settings from the root command to subcommands.
type app struct {
	configPath string
	dbPath     string
	baseDN     string
	output     string
	verbose    bool

	log *slog.Logger
}

// newRootCmd builds the command tree. Flag values and the settings resolved
// before each command land in a.
func newRootCmd(a *app) *cobra.Command {

	rootCmd := &cobra.Command{
		Use:           "dirq",
		Short:         "Query a directory database",
		Long:          "Command-line interface for querying users, groups, computers and OUs in a directory database.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.resolve(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default ~/.dirq/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.dbPath, "db", config.DefaultDatabase, "SQLite directory database")
	rootCmd.PersistentFlags().StringVar(&a.baseDN, "base-dn", config.DefaultBaseDN, "Search base DN")
	rootCmd.PersistentFlags().StringVarP(&a.output, "output", "o", config.DefaultOutput, "Output format (table, json)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log debug output to stderr")

	rootCmd.AddCommand(
		newUserCmd(a),
		newGroupCmd(a),
		newComputerCmd(a),
		newOUCmd(a),
		newSeedCmd(a),
		newGenCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// resolve applies precedence flag > env > config file > default.
func (a *app) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configFile())
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	pick := func(flag, env, fromFile string, dst *string) {
		if flags.Changed(flag) {
			return
		}
		if v := os.Getenv(env); v != "" {
			*dst = v
		} else if fromFile != "" {
			*dst = fromFile
		}
	}
	pick("db", "DIRQ_DB", cfg.Database, &a.dbPath)
	pick("base-dn", "DIRQ_BASE_DN", cfg.BaseDN, &a.baseDN)
	pick("output", "DIRQ_OUTPUT", cfg.Output, &a.output)

	if err := validateOutputFormat(a.output); err != nil {
		return err
	}

	level := slog.LevelWarn
	if a.verbose || cfg.LogLevel == "debug" {
		level = slog.LevelDebug
	} else if cfg.LogLevel != "" {
		_ = level.UnmarshalText([]byte(cfg.LogLevel))
	}
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return nil
}

// configFile returns --config when given, else the default location.
func (a *app) configFile() string {
	if a.configPath != "" {
		return a.configPath
	}
	return config.Path()
}

// withDB opens the configured database for the duration of fn.
func (a *app) withDB(ctx context.Context, fn func(ctx context.Context, db *dirorm.DB, store *sqlitestore.Store) error) error {
	store, err := sqlitestore.Open(a.dbPath, sqlitestore.WithLogger(a.log))
	if err != nil {
		return err
	}
	db := dirorm.New(store, a.baseDN)
	defer func() {
		if cerr := db.Close(); cerr != nil {
			a.log.Warn("close database", "path", a.dbPath, "error", cerr)
		}
	}()
	return fn(ctx, db, store)
}

func validateOutputFormat(output string) error {
	if output != "table" && output != "json" {
		return fmt.Errorf("unsupported output format %q: use 'table' or 'json'", output)
	}
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "dirq %s (%s)\n", version, commit)
			return err
		},
	}
}
