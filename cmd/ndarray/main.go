// Package main provides the ndarray inspection CLI.
package main

import (
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/born-ml/ndarray/internal/inspect"
)

const version = "v0.1.0-dev"

func main() {
	args, err := inspect.ParseArguments(os.Args, version)
	if err != nil {
		if err == inspect.ErrMissingCommand || err == flag.ErrHelp {
			os.Exit(0)
		}
		logrus.Error(err.Error())
		os.Exit(1)
	}

	if args.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	logrus.Debugf("Running %s", version)

	if err := inspect.Run(os.Stdout, args); err != nil {
		logrus.WithError(err).Error("Command failed")
		os.Exit(3)
	}
}
