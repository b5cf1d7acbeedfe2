package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"
	"time"

	"trade-journal/src/config"
	"trade-journal/src/logger"
	"trade-journal/src/utils"
)

func main() {
	// 1. Parse command line flags
	configPath := flag.String("config", "../../config/default.yaml", "path to config file")
	flag.Parse()

	// 2. Load config
	conf, err := config.NewConfig(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// 3. Setup Logger
	appLogger := logger.NewLogger(conf.MConfig, conf.Name)

	// 4. Setup Components
	store, err := setupStore(conf.MConfig, appLogger)
	if err != nil {
		os.Exit(1)
	}

	multi := setupPush(conf.MConfig, appLogger)
	j, history := setupJournal(conf.MConfig, appLogger, multi, store)

	// 5. Start Server
	srv := startServers(j, history, conf, appLogger, multi)

	// 6. Scheduler
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	scheduler := utils.NewJournalScheduler(j, conf.MConfig, appLogger)
	scheduler.Start(ctx, &wg)

	// Wait for cleanup on exit
	defer func() {
		appLogger.Info("Waiting for scheduler to stop...")
		cancel()  // Signal stop
		wg.Wait() // Wait for final flush
		srv.Stop()
		appLogger.Info("Shutdown complete.")
	}()

	// 7. Run Scenario (Blocking)
	appLogger.Info("Starting journal scenario...")
	runScenario(j, appLogger)

	// Give the scheduler one interval to flush before shutdown
	time.Sleep(2 * time.Second)
}
