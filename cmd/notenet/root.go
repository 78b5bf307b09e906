package main

import (
	"fmt"
	"path"

	"github.com/spf13/cobra"

	"github.com/bobinette/notenet/log"
)

var (
	// flags
	env        string
	configFile string

	config Configuration

	// logger
	logger log.Logger
)

func init() {
	RootCmd.PersistentFlags().StringVar(&env, "env", "dev", "environment")
	RootCmd.PersistentFlags().StringVar(&configFile, "config", "", "configuration file")
}

var RootCmd = cobra.Command{
	Use:           "notenet",
	Short:         "Take notes with your team",
	Long:          "Take notes with your team, from the command line",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = log.New(env)

		if configFile == "" {
			configFile = path.Join("configuration", fmt.Sprintf("config.%s.toml", env))
		}

		cfg, err := loadConfiguration(configFile)
		if err != nil {
			return err
		}
		config = cfg

		if config.Log.Env != "" && config.Log.Env != env {
			logger = log.New(config.Log.Env)
		}
		return nil
	},
}
