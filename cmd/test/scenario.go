package main

import (
	"fmt"

	"trade-journal/src/interfaces"
	"trade-journal/src/logger"
	"trade-journal/src/models"
)

// -----------------------------------------------------------------------------

// runScenario pushes a representative mix of entries through the aggregator:
// every severity, a burst from a single source, and a malformed entry that
// should grow the buffer by three.
func runScenario(j interfaces.IJournal, appLogger *logger.Logger) {

	// One entry per severity
	for _, kind := range models.AllKinds() {
		msg := j.NewMessage(kind, "ScenarioRunner", fmt.Sprintf("sample %s entry", kind.ShortName()))
		j.AddMessage(msg)
	}

	// Burst from one source to exercise the per-source history streams
	for i := 0; i < 25; i++ {
		msg := j.NewMessage(models.KindOrderInfo, "OrderRouter", fmt.Sprintf("order %d routed", i))
		j.AddMessage(msg)
	}

	// Malformed entry: empty source and text each produce a notice
	before := j.Total()
	j.AddMessage(j.NewMessage(models.KindWarning, "", ""))
	after := j.Total()
	if after-before != 3 {
		appLogger.Error("Malformed entry grew buffer by %d, expected 3", after-before)
	}

	// Force a persist cycle and report
	if j.PersistToFile() {
		appLogger.Info("Persisted %d buffered entries", j.Total())
		j.Clear()
	} else {
		appLogger.Error("Persist cycle failed")
	}

	deleted := j.PruneOldLogs(0)
	appLogger.Info("Retention pass removed %d files", deleted)

	metrics := j.Metrics()
	appLogger.Info("Scenario complete: %d entries processed, %d persist cycles",
		metrics.MessagesTotal, metrics.PersistCount)
}
