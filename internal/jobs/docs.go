// Package jobs provides scheduled background tasks for the fulfillment system.
//
// Jobs are cron-based, built on github.com/robfig/cron/v3, and managed through
// JobManager which provides a unified interface to start and stop them:
//
//	jobManager := jobs.NewJobManager(releaseBackordersHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// BackorderReleaseJob sweeps backordered orders every 30 seconds and returns
// to the pick queue those whose demand is coverable again. The sweep is purely
// opportunistic; claiming re-verifies availability under row locks, so a stale
// release is harmless.
package jobs
