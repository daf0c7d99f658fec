package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/codeword/internal/config"
	"github.com/vancomm/codeword/internal/database"
	"github.com/vancomm/codeword/internal/logging"
)

var log = logrus.New()

func main() {
	err := logging.Setup(log, logging.Options{
		Development: config.Development(),
		File:        config.LogFile(),
	})
	if err != nil {
		log.Fatal(err)
	}

	url, err := config.DbURL()
	if err != nil {
		log.Fatal(err)
	}

	migrator, err := database.Migrate(url)
	if err != nil {
		log.WithError(err).Error("failed to migrate database")
		os.Exit(1)
	}
	version, dirty, err := migrator.Version()
	if err != nil {
		log.WithError(err).Error("failed to check migration version")
		os.Exit(1)
	}
	log.WithFields(logrus.Fields{
		"version": version,
		"dirty":   dirty,
	}).Info("migration successful")
}
