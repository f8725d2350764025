// Package jobs implements background tasks for the portal API.
//
// Jobs run independently of HTTP request handling and follow a
// common Start/Stop lifecycle:
//
//	sweeper := jobs.NewDraftSweeper(formService, 10*time.Minute)
//	sweeper.Start()
//	defer sweeper.Stop()
//
// Jobs log errors but never crash the application.
package jobs
