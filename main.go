package main

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/harborview-labs/finance-server/api"
	"github.com/harborview-labs/finance-server/internal/config"
	"github.com/harborview-labs/finance-server/internal/logging"
	"github.com/harborview-labs/finance-server/internal/operator"
	"github.com/harborview-labs/finance-server/internal/service"
	"github.com/harborview-labs/finance-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("finance-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers)
	delegator.Start()

	svc := service.NewService(dbStorage, delegator, envConfig)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:  logger,
			Port:    envConfig.ServerPort,
			Service: svc,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
