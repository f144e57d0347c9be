package cmd

import (
	"AmbientFM/server"

	"github.com/spf13/cobra"
)

var addrFlag string

var serverCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the ambient sound API over HTTP",
	Long: `Run a long-lived HTTP host. POST /api/ambient takes the same parameters as
the on/off commands as JSON; auto-stop timers run inside the server process.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("addr") {
			cfg.ServerAddr = addrFlag
		}
		a, err := newApp(cfg)
		if err != nil {
			return err
		}
		defer a.close()

		return server.Start(cfg.ServerAddr, server.NewAmbientHandler(a.orchestrator, a.timer.Pending))
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
	serverCmd.Flags().StringVar(&addrFlag, "addr", "", "listen address (SERVER_ADDR)")
}
