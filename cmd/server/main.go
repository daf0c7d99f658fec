package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/codeword/internal/app"
	"github.com/vancomm/codeword/internal/codeword"
	"github.com/vancomm/codeword/internal/config"
	"github.com/vancomm/codeword/internal/database"
	"github.com/vancomm/codeword/internal/logging"
	"github.com/vancomm/codeword/internal/qxw"
	"github.com/vancomm/codeword/internal/repository"
)

var log = logrus.New()

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	err := logging.Setup(log, logging.Options{
		Development: config.Development(),
		File:        config.LogFile(),
	}, qxw.Log, codeword.Log)
	if err != nil {
		log.Fatal(err)
	}

	hideChance, err := config.HideChance()
	if err != nil {
		log.Fatal(err)
	}

	pool, migrator, err := database.ConnectAndMigrate(mainCtx)
	if err != nil {
		log.Fatal("unable to connect to db: ", err)
	}
	defer pool.Close()
	if version, dirty, err := migrator.Version(); err == nil {
		log.WithFields(logrus.Fields{
			"version": version,
			"dirty":   dirty,
		}).Debug("database schema")
	}

	a := app.New(log, repository.New(pool), hideChance, config.BasePath())
	if err := a.Serve(mainCtx, config.Port()); err != nil {
		log.Printf("exit reason: %s\n", err)
	}
}
