// Package jobs provides scheduled background tasks for the order service.
//
// Jobs are built on github.com/robfig/cron/v3 with second-level schedules.
//
// # Available Jobs
//
// OutboxRelayJob reads order events that the unit of work wrote to the outbox
// table and hands them to the configured broker (Kafka, RabbitMQ or the log).
//
// # Usage
//
//	jobManager := jobs.NewJobManager(relayHandler, metrics, jobs.OutboxRelayConfig{
//		Schedule:  "* * * * * *",
//		BatchSize: 100,
//		Timeout:   5 * time.Second,
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed relay is logged and counted; the unsent messages stay pending and
// are retried by the next run.
package jobs
