package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tinywasm/dirorm"
	"github.com/tinywasm/dirorm/fixture"
	"github.com/tinywasm/dirorm/sqlitestore"
)

func newSeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed <fixture.yaml>",
		Short: "Load a YAML fixture into the directory database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := fixture.LoadFile(args[0])
			if err != nil {
				return err
			}
			if f.BaseDN != "" && !strings.EqualFold(f.BaseDN, a.baseDN) {
				a.log.Warn("fixture base DN differs from the search base", "fixture", f.BaseDN, "base-dn", a.baseDN)
			}
			for _, dn := range f.Outside() {
				a.log.Warn("entry outside the fixture base DN", "dn", dn, "base", f.BaseDN)
			}
			return a.withDB(cmd.Context(), func(ctx context.Context, _ *dirorm.DB, store *sqlitestore.Store) error {
				recs := f.Records()
				if err := store.Add(ctx, recs...); err != nil {
					return err
				}
				a.log.Info("seeded", "fixture", args[0], "entries", len(recs))
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Added %d entries to %s\n", len(recs), a.dbPath)
				return err
			})
		},
	}
}
