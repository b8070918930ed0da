package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tinywasm/dirorm"
	"github.com/tinywasm/dirorm/models"
	"github.com/tinywasm/dirorm/sqlitestore"
)

// entityView describes how one model type is listed and shown.
type entityView[T any] struct {
	use     string
	aliases []string
	short   string
	model   dirorm.Model[T]
	keyAttr string // attribute matched by "show <name>"
	headers []string
	row     func(T) []string
}

func newEntityCmd[T any](a *app, v entityView[T], extra ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:     v.use,
		Aliases: v.aliases,
		Short:   v.short,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all " + v.use + " objects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withDB(cmd.Context(), func(ctx context.Context, db *dirorm.DB, _ *sqlitestore.Store) error {
				res, err := dirorm.Query(ctx, db, v.model)
				if err != nil {
					return err
				}
				if a.output == "json" {
					items, err := res.Collect()
					if err != nil {
						return err
					}
					return printJSON(cmd.OutOrStdout(), items)
				}
				tw := newTable(cmd.OutOrStdout(), v.headers)
				for item, err := range res.All() {
					if err != nil {
						return err
					}
					writeRow(tw, v.row(item))
				}
				return tw.Flush()
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show <name>",
		Short: "Show one " + v.use + " by " + v.keyAttr,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withDB(cmd.Context(), func(ctx context.Context, db *dirorm.DB, _ *sqlitestore.Store) error {
				item, err := findOne(ctx, db, v.model, v.keyAttr, args[0])
				if err != nil {
					return err
				}
				if a.output == "json" {
					return printJSON(cmd.OutOrStdout(), item)
				}
				tw := newTable(cmd.OutOrStdout(), nil)
				cells := v.row(item)
				for i, h := range v.headers {
					writeRow(tw, []string{h + ":", cells[i]})
				}
				return tw.Flush()
			})
		},
	})

	cmd.AddCommand(extra...)
	return cmd
}

func findOne[T any](ctx context.Context, db *dirorm.DB, m dirorm.Model[T], attr, value string) (T, error) {
	res, err := dirorm.Query(ctx, db, m, dirorm.Eq(attr, value))
	if err != nil {
		var zero T
		return zero, err
	}
	return res.One()
}

func newTable(w io.Writer, headers []string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if len(headers) > 0 {
		writeRow(tw, headers)
	}
	return tw
}

func writeRow(tw *tabwriter.Writer, cells []string) {
	fmt.Fprintln(tw, strings.Join(cells, "\t"))
}

func newUserCmd(a *app) *cobra.Command {
	return newEntityCmd(a, entityView[*models.User]{
		use:     "user",
		short:   "Query user accounts",
		model:   models.UserEntity,
		keyAttr: models.UserMeta.Username,
		headers: []string{"USERNAME", "NAME", "MAIL", "ENABLED", "DN"},
		row: func(u *models.User) []string {
			return []string{u.Username, u.Name, u.Mail, strconv.FormatBool(u.Enabled()), u.DN}
		},
	})
}

func newGroupCmd(a *app) *cobra.Command {
	return newEntityCmd(a, entityView[*models.Group]{
		use:     "group",
		short:   "Query groups",
		model:   models.GroupEntity,
		keyAttr: models.GroupMeta.Name,
		headers: []string{"NAME", "MEMBERS", "DESCRIPTION", "DN"},
		row: func(g *models.Group) []string {
			return []string{g.Name, strconv.Itoa(len(g.Member)), g.Description, g.DN}
		},
	}, newGroupMembersCmd(a))
}

func newGroupMembersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "members <name>",
		Short: "List the member DNs of a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withDB(cmd.Context(), func(ctx context.Context, db *dirorm.DB, _ *sqlitestore.Store) error {
				g, err := findOne(ctx, db, models.GroupEntity, models.GroupMeta.Name, args[0])
				if err != nil {
					return err
				}
				if a.output == "json" {
					members := g.Member
					if members == nil {
						members = []string{}
					}
					return printJSON(cmd.OutOrStdout(), members)
				}
				for _, dn := range g.Member {
					if _, err := fmt.Fprintln(cmd.OutOrStdout(), dn); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func newComputerCmd(a *app) *cobra.Command {
	return newEntityCmd(a, entityView[*models.Computer]{
		use:     "computer",
		short:   "Query computer accounts",
		model:   models.ComputerEntity,
		keyAttr: models.ComputerMeta.Name,
		headers: []string{"NAME", "DNS HOST NAME", "OS", "DN"},
		row: func(c *models.Computer) []string {
			return []string{c.Name, c.DNSHostName, c.OperatingSystem, c.DN}
		},
	})
}

func newOUCmd(a *app) *cobra.Command {
	return newEntityCmd(a, entityView[*models.OrganizationalUnit]{
		use:     "ou",
		aliases: []string{"organizationalunit"},
		short:   "Query organizational units",
		model:   models.OrganizationalUnitEntity,
		keyAttr: models.OrganizationalUnitMeta.Name,
		headers: []string{"NAME", "DESCRIPTION", "DN"},
		row: func(o *models.OrganizationalUnit) []string {
			return []string{o.Name, o.Description, o.DN}
		},
	})
}
