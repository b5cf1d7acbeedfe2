package main

import (
	"trade-journal/src/analysis"
	"trade-journal/src/config"
	"trade-journal/src/helpers"
	"trade-journal/src/interfaces"
	"trade-journal/src/logger"
	"trade-journal/src/push"
	"trade-journal/src/server"
	"trade-journal/src/utils"
)

// -----------------------------------------------------------------------------

// startServers brings up the REST/WebSocket surface and attaches the hub to
// the push fan-out so pushed entries reach connected clients.
func startServers(
	j interfaces.IJournal,
	history *utils.HistoryManager,
	conf *config.Config,
	appLogger *logger.Logger,
	multi *push.MultiSender,
) *server.APIServer {

	analyzer := analysis.NewAnalysisFacade(conf.MConfig, logger.NewLogger(conf.MConfig, "Analysis"))

	srv := server.NewAPIServer(conf.MConfig, appLogger, j, history, analyzer, &helpers.SystemClock{})
	if err := multi.AddSender(srv); err != nil {
		appLogger.Warning("Failed to attach hub transport: %v", err)
	}

	go func() {
		if err := srv.Start(); err != nil {
			appLogger.Error("Server failed: %v", err)
		}
	}()

	return srv
}
