// Package jobs provides scheduled background tasks for the delivery backend.
//
// Jobs are cron-based (github.com/robfig/cron/v3, seconds precision) and log
// through a named zap child logger.
//
// # Available Jobs
//
// OutboxRelayJob runs every second, publishes pending order events from the
// outbox to Kafka and marks them published. A tick is skipped while the
// previous one is still running.
//
// # Usage
//
//	relay := jobs.NewOutboxRelayJob(relayHandler, cfg.OutboxBatchSize, logger)
//	jobManager := jobs.NewJobManager(relay)
//
//	if err := jobManager.StartAll(); err != nil {
//		logger.Fatal("failed to start jobs", zap.Error(err))
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Relay failures are logged and the batch stays in the outbox, so the next
// tick retries it. Delivery is at least once.
package jobs
