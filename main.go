package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/quibble-tools/quibble/backend"
	"github.com/quibble-tools/quibble/common"
	"github.com/quibble-tools/quibble/common/logger"
)

const eventBusQueueSize = 100

func main() {
	params := common.ParseParams()
	logger.Initialize(logger.StringToLogLevel(params.LogLevel()))

	stores := backend.InitializeStores(params)
	defer stores.Close()

	brokers := backend.InitializeEventBrokers(eventBusQueueSize)
	services := backend.InitializeServices(params, stores, brokers)
	defer services.Close()

	backend.ConnectServices(brokers, services)
	services.RelayServer.Start(params.HttpPort())

	// Panels may connect before any page has reported a width
	services.RelayServer.RequestScreenWidth()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info.Print("Shutting down")
}
