// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the bookworm CLI, a personal utility
// for turning photographed book pages into a single markdown file.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/bookworm/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// secretsDir is where per-key secret files live, relative to the working
// directory.
const secretsDir = ".secrets/"

// rootCmd is the base command for the bookworm CLI.
var rootCmd = &cobra.Command{
	Use:   "bookworm",
	Short: "Extract the text of photographed book pages into markdown",
	Long: `bookworm processes directories of book-page photos. The extract-book
command sends each page image to a vision-language model, collects the
returned markdown, and writes one concatenated file next to the input
directory. The runs command lists past extractions.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./bookworm.yaml or ~/.config/bookworm/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("bookworm")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "bookworm"))
		}
	}

	viper.SetDefault("model", "gpt-4o")
	viper.SetDefault("max_tokens", 4096)
	viper.SetDefault("call_interval", time.Second)
	viper.SetDefault("ledger_max_results", 20)

	viper.SetEnvPrefix("BOOKWORM")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// ledgerConfig resolves the run-ledger location from config, defaulting to
// ~/.local/share/bookworm.
func ledgerConfig() types.LedgerConfig {
	dir := viper.GetString("ledger_dir")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		dir = filepath.Join(home, ".local", "share", "bookworm")
	}
	return types.LedgerConfig{
		Dir:        dir,
		MaxResults: viper.GetInt("ledger_max_results"),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
