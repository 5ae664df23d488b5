package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"aoc2020/internal/config"
)

var initForce bool

// initCmd writes a default config and creates the input directory
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file and create the input directory",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if _, err := os.Stat(configPath); err == nil && !initForce {
		fmt.Fprintf(out, "%s already exists (use --force to overwrite)\n", configPath)
	} else {
		// Environment overrides in effect now are not baked into the file.
		if err := config.DefaultConfig().Save(configPath); err != nil {
			return err
		}
		fmt.Fprintf(out, "wrote %s\n", configPath)
	}

	if err := os.MkdirAll(cfg.Input.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create input dir: %w", err)
	}
	fmt.Fprintf(out, "inputs go in %s\n", cfg.Input.Dir)
	return nil
}
