package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tinywasm/dirorm/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Read and write the dirq config file",
	}

	cmd.AddCommand(&cobra.Command{
		Use:       "set <key> <value>",
		Short:     "Set a config value (database, base-dn, output, log-level)",
		Args:      cobra.ExactArgs(2),
		ValidArgs: config.Keys,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.configFile()
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			if err := cfg.Set(args[0], args[1]); err != nil {
				return err
			}
			if err := config.Save(path, cfg); err != nil {
				return err
			}
			a.log.Debug("config saved", "path", path, "key", args[0])
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s in %s\n", args[0], args[1], path)
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), a.configFile())
			return err
		},
	})

	return cmd
}
