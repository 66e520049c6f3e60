package main

import (
	"envois3/internal/cli"
	"envois3/internal/command"
	"envois3/internal/config"
	"envois3/internal/dispatcher"
	"envois3/internal/logger"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

const (
	exitExecution = 1
	exitUsage     = 2
)

func main() {
	initLogger()
	cfg := initConfig()

	res, err := cli.Parse(os.Args[1:])
	if err != nil {
		var helpErr *cli.HelpError
		if errors.As(err, &helpErr) {
			fmt.Fprintln(os.Stdout, helpErr.Usage)
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "envoi-s3: %s\n", err)
		fmt.Fprintln(os.Stderr, "usage: envoi-s3 {ls [path] | put <source> <target>} [--client {s4cmd|s5cmd}]")
		os.Exit(exitUsage)
	}

	argv := command.Translate(res.Command, res.Client)
	argv = command.Augment(argv, res.Client, cfg.Endpoint(), cfg.Region)

	code, err := dispatcher.New().Run(argv)
	if err != nil {
		log.Error().Err(err).Str("client", res.Client.Binary()).Msg("Error delegating to backend client")
		os.Exit(exitExecution)
	}

	os.Exit(code)
}

func initLogger() {
	err := logger.InitialiseLogger()
	checkError(err, "Error initialising logger")
}

func initConfig() *config.Config {
	cfg, err := config.NewConfig()
	checkError(err, "Error parsing configuration")
	return cfg
}

func checkError(err error, message string) {
	if err != nil {
		log.Fatal().Err(err).Msg(message)
	}
}
