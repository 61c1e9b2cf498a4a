// Package config wires viper configuration for the kiosk binary.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mhorak/kiosek/pkg/prefs"
)

var (
	cfgFile string
	verbose bool
)

// InitConfig loads the config file and environment. A missing config file
// is fine; defaults cover a standalone kiosk.
func InitConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		configDir := filepath.Join(home, ".config", "kiosek")
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("KIOSEK")

	viper.SetDefault("port", 3100)
	viper.SetDefault("content_dir", "./content")
	viper.SetDefault("password", "historicka-expozice-2024")
	viper.SetDefault("session_ttl", "720h")
	viper.SetDefault("data_dir", filepath.Join(os.Getenv("HOME"), ".local", "share", "kiosek"))

	_ = viper.ReadInConfig()
}

// AddGlobalFlags registers the persistent flags shared by all subcommands.
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/kiosek/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Logger returns the process logger, quiet unless --verbose.
func Logger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
	return log
}

func ContentDir() string { return viper.GetString("content_dir") }
func Port() int          { return viper.GetInt("port") }
func Password() string   { return viper.GetString("password") }
func DataDir() string    { return viper.GetString("data_dir") }

// SessionTTL parses the configured session lifetime; kiosk machines stay
// logged in between exhibitions, so the default is 30 days.
func SessionTTL() time.Duration {
	ttl, err := time.ParseDuration(viper.GetString("session_ttl"))
	if err != nil || ttl <= 0 {
		return 30 * 24 * time.Hour
	}
	return ttl
}

// OpenPrefs opens the preference store under the data directory.
func OpenPrefs() (*prefs.Store, error) {
	if err := os.MkdirAll(DataDir(), 0755); err != nil {
		return nil, err
	}
	return prefs.Open(filepath.Join(DataDir(), "prefs.db"))
}
