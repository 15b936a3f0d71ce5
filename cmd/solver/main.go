// Command solver is the interactive contest entrypoint: it speaks the §6
// stdin/stdout protocol directly, with no flags, subcommands, or config
// files (§6 "CLI surface: none").
package main

import (
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hatsuyuki/daymatch/internal/app/dispatch"
	"github.com/hatsuyuki/daymatch/internal/config"
)

var rootCmd = &cobra.Command{
	Use:           "daymatch",
	Short:         "Interactive task/worker dispatch solver",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func run(cmd *cobra.Command, args []string) error {
	runID := uuid.NewString()
	cfg := config.DefaultConfig()

	lp, err := dispatch.New(os.Stdin, os.Stdout, cfg, runID)
	if err != nil {
		return err
	}
	return lp.Run()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("[dispatch] %v", err)
	}
}
