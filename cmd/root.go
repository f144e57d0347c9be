package cmd

import (
	"fmt"
	"os"

	"AmbientFM/config"
	"AmbientFM/logger"

	"github.com/spf13/cobra"
)

var (
	cfg *config.Config

	soundDirFlag   string
	pidFileFlag    string
	playerPathFlag string
	backendFlag    string
	logLevelFlag   string
)

var rootCmd = &cobra.Command{
	Use:           "ambientfm",
	Short:         "AmbientFM plays a looping background sound through an external player.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		applyFlags(cmd, cfg)

		return logger.InitLogger(logger.Config{
			Level:      logger.LogLevel(cfg.LogLevel),
			OutputPath: cfg.LogFile,
			MaxSize:    cfg.LogMaxSize,
			MaxBackups: cfg.LogMaxBackups,
			MaxAge:     cfg.LogMaxAge,
		})
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

// applyFlags lets explicitly set flags win over the environment.
func applyFlags(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("sound-dir") {
		c.SoundDir = soundDirFlag
	}
	if flags.Changed("pid-file") {
		c.PIDFile = pidFileFlag
	}
	if flags.Changed("player") {
		c.PlayerPath = playerPathFlag
	}
	if flags.Changed("backend") {
		c.HandleBackend = backendFlag
	}
	if flags.Changed("log-level") {
		c.LogLevel = logLevelFlag
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&soundDirFlag, "sound-dir", "", "directory holding the ambient sounds (SOUND_DIR)")
	pf.StringVar(&pidFileFlag, "pid-file", "", "file storing the player pid (PID_FILE)")
	pf.StringVar(&playerPathFlag, "player", "", "mplayer compatible binary (PLAYER_PATH)")
	pf.StringVar(&backendFlag, "backend", "", "pid handle backend: file, redis or mysql (HANDLE_BACKEND)")
	pf.StringVar(&logLevelFlag, "log-level", "", "debug, info, warn or error (LOG_LEVEL)")
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
