// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the flashdeck CLI, which turns
// user-supplied lists into printable flash card PDFs. Each pipeline step is
// a subcommand: parse, ocr, build, deck, and serve.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/flashdeck/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// ocrKeyFile is the secrets-directory filename holding the OCR.space key.
const ocrKeyFile = "ocr-space-api-key"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the flashdeck CLI.
var rootCmd = &cobra.Command{
	Use:   "flashdeck",
	Short: "Turn any list into printable flash cards",
	Long: `flashdeck converts lists — free text, CSV/XLSX files, pasted spreadsheet
tables, or screenshots (via OCR) — into a duplex-print-ready PDF of flash
cards, eight per US Letter page.

The typical flow is three steps: "flashdeck parse" turns input into an
editable deck YAML file, you fix the cards in any editor, and
"flashdeck build" renders the PDF. "flashdeck serve" exposes the same
pipeline over HTTP.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./flashdeck.yaml or ~/.config/flashdeck/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("flashdeck")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "flashdeck"))
		}
	}

	viper.SetEnvPrefix("FLASHDECK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
