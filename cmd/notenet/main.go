package main

import (
	"os"

	"github.com/bobinette/notenet/errors"
	"github.com/bobinette/notenet/log"
)

func main() {
	if err := RootCmd.Execute(); err != nil {
		if logger == nil {
			logger = log.New(env)
		}
		logger.Error(errors.MessageOf(err))
		os.Exit(1)
	}
}
