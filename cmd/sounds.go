package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"AmbientFM/core/catalog"

	"github.com/spf13/cobra"
)

var watchFlag bool

var soundsCmd = &cobra.Command{
	Use:   "sounds",
	Short: "List the available ambient sounds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := catalog.Scan(cfg.SoundDir)
		if err != nil {
			return err
		}
		printCatalog(cmd.OutOrStdout(), c)
		if !watchFlag {
			return nil
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return catalog.Watch(ctx, cfg.SoundDir, func(c *catalog.Catalog) {
			fmt.Fprintln(cmd.OutOrStdout(), "--- sound directory changed")
			printCatalog(cmd.OutOrStdout(), c)
		})
	},
}

func printCatalog(w io.Writer, c *catalog.Catalog) {
	if c.Len() == 0 {
		fmt.Fprintf(w, "No sound found in %s\n", c.Dir())
		return
	}
	for _, a := range c.Assets() {
		fmt.Fprintf(w, "%-24s %s\n", a.Name, c.Path(a))
	}
}

func init() {
	rootCmd.AddCommand(soundsCmd)
	soundsCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "keep running and print the list again when the directory changes")
}
