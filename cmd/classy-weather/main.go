package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"classy-weather/configs"
	"classy-weather/pkg/log"
	"classy-weather/pkg/resource"
)

func main() {
	defer log.Sync()

	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath, envFile string

	rootCmd := &cobra.Command{
		Use:           configs.Env.ApplicationName,
		Short:         "Location search with a seven-day weather forecast",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := configs.LoadEnvFile(envFile); err != nil {
				return err
			}
			if configPath == "" {
				return nil
			}
			return resource.Init(configPath)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "application settings file replacing the embedded application.yml")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file exported before the settings are read")

	rootCmd.AddCommand(newServeCommand(), newSearchCommand(), newLookupCommand())
	return rootCmd
}
