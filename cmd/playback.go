package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"AmbientFM/model"

	"github.com/spf13/cobra"
)

var (
	soundNameFlag string
	autoStopFlag  string
	jsonFlag      bool
)

var onCmd = &cobra.Command{
	Use:   "on",
	Short: "Start an ambient sound, stopping the previous one",
	Long: `Start looping an ambient sound from the sound directory. Without --sound a
random one is picked. With --auto-stop the command stays in the foreground
until the sound is stopped after the given number of minutes.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := model.Request{
			State:           model.CommandOn,
			AutoStopMinutes: model.Minutes(autoStopFlag),
		}
		if cmd.Flags().Changed("sound") {
			req.SoundName = &soundNameFlag
		}
		return runPlayback(cmd, req)
	},
}

var offCmd = &cobra.Command{
	Use:   "off",
	Short: "Stop the ambient sound",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlayback(cmd, model.Request{State: model.CommandOff})
	},
}

func runPlayback(cmd *cobra.Command, req model.Request) error {
	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	resp, err := a.orchestrator.Run(ctx, req)
	if err != nil {
		return err
	}
	if err := printResponse(cmd.OutOrStdout(), resp, jsonFlag); err != nil {
		return err
	}

	// the auto-stop timer only lives as long as this process
	if a.timer.Pending() > 0 {
		if err := a.timer.Wait(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	}
	return nil
}

func printResponse(w io.Writer, resp *model.Response, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	switch resp.State {
	case model.StatePlaying:
		fmt.Fprintf(w, "Playing %s\n", resp.PlayingSound)
		if resp.AutoStopMinutes > 0 {
			fmt.Fprintf(w, "Stopping in %d minute(s)\n", resp.AutoStopMinutes)
		}
	case model.StateStopped:
		fmt.Fprintln(w, "Ambient sound stopped")
	}
	if len(resp.AvailableSounds) > 0 {
		fmt.Fprintf(w, "Available sounds: %s\n", strings.Join(resp.AvailableSounds, ", "))
	}
	return nil
}

func init() {
	rootCmd.AddCommand(onCmd, offCmd)

	onCmd.Flags().StringVarP(&soundNameFlag, "sound", "s", "", "name of the sound to play (file name without extension)")
	onCmd.Flags().StringVarP(&autoStopFlag, "auto-stop", "a", "", "stop playback after this many minutes")
	for _, c := range []*cobra.Command{onCmd, offCmd} {
		c.Flags().BoolVar(&jsonFlag, "json", false, "print the response as JSON")
	}

	onCmd.Example = `  # play a random sound
  ambientfm on

  # play sounds/rain.mp3 and stop after 30 minutes
  ambientfm on -s rain -a 30

  # stop
  ambientfm off`
}
