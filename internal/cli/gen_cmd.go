package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tinywasm/dirorm"
)

func newGenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "gen [dir]",
		Short: "Generate descriptors for the models in dir",
		Long:  "Scans model.go and models.go files below dir (default \".\") and writes a *_dirorm.go descriptor file next to each.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g := dirorm.NewCodegen()
			if len(args) == 1 {
				g.SetRootDir(args[0])
			}
			g.SetLog(func(messages ...any) {
				a.log.Warn(fmt.Sprint(messages...))
			})
			return g.Run()
		},
	}
}
