// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pocketmod CLI: it rearranges the
// pages of input PDFs into the PocketMod fold order so that printing the
// output single-sided and folding it yields a correctly ordered
// mini-booklet.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the pocketmod CLI.
var rootCmd = &cobra.Command{
	Use:   "pocketmod",
	Short: "Convert PDFs into foldable PocketMod booklets",
	Long: `pocketmod rearranges the pages of one or more input PDFs onto 8-panel
output sheets in the PocketMod fold order. Print the output single-sided,
fold each sheet per the PocketMod method, and the panels read in page order.

Point convert at a single PDF or at a directory; a directory's PDFs are
concatenated in listing order and laid out as one sequence. Use plan to
preview placements without rendering, and inspect to see what a conversion
would produce.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pocketmod.yaml or ~/.config/pocketmod/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pocketmod")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pocketmod"))
		}
	}

	viper.SetEnvPrefix("POCKETMOD")
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
