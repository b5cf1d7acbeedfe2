package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"trade-journal/src/analysis"
	"trade-journal/src/config"
	"trade-journal/src/helpers"
	"trade-journal/src/interfaces"
	"trade-journal/src/journal"
	"trade-journal/src/logger"
	"trade-journal/src/models"
	"trade-journal/src/network"
	"trade-journal/src/push"
	"trade-journal/src/server"
	"trade-journal/src/storage"
	"trade-journal/src/utils"
)

// -----------------------------------------------------------------------------

func main() {

	// Parse command line flags
	configPath := flag.String("config", "../../config/default.yaml", "path to config file")
	flag.Parse()

	// Load config from YAML file
	config, err := config.NewConfig(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Setup logger
	appLogger := logger.NewLogger(config.MConfig, config.Name)

	// 2. Setup Components
	var clock interfaces.IClock = &helpers.SystemClock{}
	var platform interfaces.IPlatformError = &helpers.PlatformErrorState{}

	store, err := storage.NewFileStore(config.MConfig, appLogger)
	if err != nil {
		appLogger.Critical("Failed to init log store: %v", err)
	}
	if err := store.Initialize(); err != nil {
		appLogger.Critical("Failed to prepare log directory: %v", err)
	}

	// 3. Push Transports
	var networkManage interfaces.INetworkManager = network.NewNetworkManager(config.MConfig, appLogger)

	var analyzer *analysis.AnalysisFacade = analysis.NewAnalysisFacade(config.MConfig, appLogger)
	history := utils.NewHistoryManager(512, config.Journal.HistoryCapacity, appLogger) // Hardcoded 512MB as config removed it

	senders := make([]interfaces.IPushSender, 0, len(config.Push.Webhooks)+1)
	for _, hook := range config.Push.Webhooks {
		senders = append(senders, push.NewWebhookSender(hook.Name, hook.URL, networkManage, appLogger))
	}

	multi := push.NewMultiSender(senders, appLogger)

	// 4. Journal
	j := journal.New(
		config.MConfig,
		appLogger,
		logger.NewTerminalConsole(),
		multi,
		clock,
		platform,
		store,
	)
	j.RegisterHook(history)

	// 5. Server (REST + WebSocket hub); the hub is itself a push transport
	srv := server.NewAPIServer(config.MConfig, appLogger, j, history, analyzer, clock)
	if err := multi.AddSender(srv); err != nil {
		appLogger.Warning("Failed to attach hub transport: %v", err)
	}

	go func() {
		if err := srv.Start(); err != nil {
			appLogger.Error("Server failed: %v", err)
		}
	}()

	// 6. Scheduler (periodic flush + off-hours retention)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	wrapWg := &sync.WaitGroup{}

	scheduler := utils.NewJournalScheduler(j, config.MConfig, appLogger)
	scheduler.Start(ctx, wrapWg)

	j.AddMessage(j.NewMessage(models.KindInfo, config.Name, "journal started"))

	// 7. Wait for shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down...")
	cancel()      // Signal scheduler to stop and flush
	wrapWg.Wait() // Wait for final flush
	srv.Stop()
}
