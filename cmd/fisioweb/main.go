package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/joanpuche05/fisioterapiavilassar/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fisioweb",
		Short: "Bilingual website for the Vilassar de Mar physiotherapy practice",
		Long:  `Serves the Catalan/Spanish marketing site and handles contact-form submissions via Turnstile verification and SMTP delivery.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
