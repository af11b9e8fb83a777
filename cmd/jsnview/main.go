// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command jsnview renders Jeti transmitter model files as text reports.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "jsnview",
		Short: "Report tool for Jeti transmitter model files",
		Long: "jsnview reads .jsn model files exported by Jeti transmitters and writes a " +
			"';'-delimited report of the model's settings, with every switch and control reference resolved.",
		SilenceUsage: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().String("output", "same", "Report placement: same, subfolder or a directory")
	rootCmd.PersistentFlags().Bool("quiet", false, "Only report models with unknown data")

	// Bind flags to viper.
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))

	// Env vars: JSNVIEW_OUTPUT, JSNVIEW_QUIET.
	viper.SetEnvPrefix("JSNVIEW")
	viper.AutomaticEnv()

	// Config file; the switches map is only read from here.
	viper.SetConfigName(".jsnview")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.ReadInConfig() // Ignore error; config file is optional.

	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newTablesCmd())
	rootCmd.AddCommand(newDiffCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newSectionsCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print jsnview version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("jsnview %s\n", version)
		},
	}
}
