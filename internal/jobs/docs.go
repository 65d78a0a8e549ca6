// Package jobs provides scheduled background tasks for the order delivery service.
//
// Jobs run on github.com/robfig/cron/v3 schedulers with second precision.
//
// # Available Jobs
//
// OutboxRelayJob runs every second and publishes pending outbox messages
// (order.placed, delivery.registered, delivery.status_changed) to Kafka.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(publishOutboxHandler, batchSize, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// A run that is still publishing when the next tick fires is not overlapped;
// the tick is skipped.
package jobs
