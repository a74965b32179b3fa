package main

import (
	"fyne.io/fyne/v2/app"
	"github.com/sirupsen/logrus"

	"github.com/sirinethikonda/saas-core-project/internal/config"
	"github.com/sirinethikonda/saas-core-project/internal/logging"
	"github.com/sirinethikonda/saas-core-project/internal/session"
	"github.com/sirinethikonda/saas-core-project/services"
	"github.com/sirinethikonda/saas-core-project/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("loading configuration")
	}
	logging.Init(cfg.Log.Level)

	store, err := session.Open(cfg.Data.Dir)
	if err != nil {
		logrus.WithError(err).Fatal("opening session store")
	}
	defer store.Close()

	api := services.NewClient(cfg.API.BaseURL, cfg.API.Timeout, store)

	logrus.WithField("base_url", cfg.API.BaseURL).Info("starting client")
	ui.New(app.New(), store, api).Run()
}
