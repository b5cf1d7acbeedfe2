package main

import (
	"trade-journal/src/helpers"
	"trade-journal/src/interfaces"
	"trade-journal/src/journal"
	"trade-journal/src/logger"
	"trade-journal/src/models"
	"trade-journal/src/network"
	"trade-journal/src/push"
	"trade-journal/src/storage"
	"trade-journal/src/utils"
)

// -----------------------------------------------------------------------------

// setupStore initializes the flat-file log store
func setupStore(config *models.MConfig, appLogger *logger.Logger) (interfaces.ILogStore, error) {
	storeLogger := logger.NewLogger(config, "FileStore")
	store, err := storage.NewFileStore(config, storeLogger)
	if err != nil {
		appLogger.Critical("Failed to init log store: %v", err)
		return nil, err
	}
	if err := store.Initialize(); err != nil {
		appLogger.Critical("Failed to prepare log directory: %v", err)
		return nil, err
	}
	return store, nil
}

// -----------------------------------------------------------------------------

// setupPush builds the push fan-out from the configured webhook endpoints
func setupPush(config *models.MConfig, appLogger *logger.Logger) *push.MultiSender {
	networkLogger := logger.NewLogger(config, "NetworkManager")
	networkManage := network.NewNetworkManager(config, networkLogger)

	senders := make([]interfaces.IPushSender, 0, len(config.Push.Webhooks))
	for _, hook := range config.Push.Webhooks {
		senders = append(senders, push.NewWebhookSender(hook.Name, hook.URL, networkManage, appLogger))
		appLogger.Info("Added push endpoint: %s", hook.Name)
	}

	return push.NewMultiSender(senders, appLogger)
}

// -----------------------------------------------------------------------------

// setupJournal wires the aggregator with its sinks and the in-memory history
func setupJournal(
	config *models.MConfig,
	appLogger *logger.Logger,
	multi *push.MultiSender,
	store interfaces.ILogStore,
) (interfaces.IJournal, *utils.HistoryManager) {
	memLimit := 512
	history := utils.NewHistoryManager(memLimit, config.Journal.HistoryCapacity, appLogger)

	j := journal.New(
		config,
		logger.NewLogger(config, "Journal"),
		logger.NewTerminalConsole(),
		multi,
		&helpers.SystemClock{},
		&helpers.PlatformErrorState{},
		store,
	)
	j.RegisterHook(history)

	return j, history
}
