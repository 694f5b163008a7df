package cli

import (
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go-picview/internal/core/config"
	"go-picview/internal/core/utils"
	"go-picview/internal/gui"
)

var (
	cfgFile   string
	logger    *utils.Logger
	logCloser io.Closer
	assets    fs.FS
)

var rootCmd = &cobra.Command{
	Use:   "go-picview [image]",
	Short: "Borderless desktop image viewer",
	Long: `A borderless desktop image viewer.

Pass an image path to open it at launch. Any argument that does not start
with "-", has a jpg, jpeg, png, gif, webp, bmp or svg extension and exists
on disk is a candidate; the first one wins.

Shortcuts:
  F12 / Ctrl+Shift+I  toggle developer tools`,
	Args: cobra.ArbitraryArgs,
	// webview runtimes pass their own flags through; they are not ours to reject
	FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
	SilenceUsage:       true,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		closeLog()
	},
}

// Execute runs the CLI. frontend holds the renderer's built assets.
func Execute(frontend fs.FS) {
	assets = frontend
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// assigned here rather than in the literal to avoid an initialization cycle through IsDebugMode
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return initializeConfig()
	}
	rootCmd.RunE = runGUI

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.go-picview/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text, json)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug mode with verbose logging")
	rootCmd.PersistentFlags().String("log-file", "", "Also write logs to this file, rotated by size")

	rootCmd.Flags().Bool("devtools", false, "Enable the webview inspector and default context menu")
	rootCmd.Flags().Bool("single-instance", false, "Forward launches to an already running viewer")
	rootCmd.Flags().Int("width", config.DefaultWidth, "Initial window width")
	rootCmd.Flags().Int("height", config.DefaultHeight, "Initial window height")

	viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("logging.file", rootCmd.PersistentFlags().Lookup("log-file"))
	viper.BindPFlag("devtools.enabled", rootCmd.Flags().Lookup("devtools"))
	viper.BindPFlag("instance.single", rootCmd.Flags().Lookup("single-instance"))
	viper.BindPFlag("window.width", rootCmd.Flags().Lookup("width"))
	viper.BindPFlag("window.height", rootCmd.Flags().Lookup("height"))
}

func initConfig() {
	config.SetDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home + "/.go-picview")
		}
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("PICVIEW")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if IsDebugMode() {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func initializeConfig() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	level := cfg.Logging.Level
	if IsDebugMode() {
		level = "debug"
	}

	out, closer, err := utils.OpenLogOutput(cfg.Logging.File, utils.RotationOptions{
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
	})
	if err != nil {
		return err
	}
	logCloser = closer
	logger = utils.NewLoggerWithWriter(out, level, cfg.Logging.Format)
	return nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return utils.NewConfigError("failed to load configuration", err)
	}
	if err := cfg.Validate(); err != nil {
		return utils.NewConfigError("configuration validation failed", err)
	}
	if IsDebugMode() {
		cfg.Logging.Level = "debug"
	}

	// the launch scan works on the raw process arguments, flags included
	app := gui.NewApp(cfg, GetLogger(), os.Args)
	return app.Run(assets)
}

func closeLog() {
	if logCloser != nil {
		logCloser.Close()
		logCloser = nil
	}
}

func GetLogger() *utils.Logger {
	if logger == nil {
		logger = utils.NewLogger("info", "text")
	}
	return logger
}

func IsDebugMode() bool {
	debugFlag, _ := rootCmd.PersistentFlags().GetBool("debug")
	logLevel, _ := rootCmd.PersistentFlags().GetString("log-level")
	return debugFlag || logLevel == "debug"
}
