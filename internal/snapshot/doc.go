/*
Package snapshot records point-in-time container listings into an
append-only text log.

Each run appends one block to <base>/logs/docker_monitor.log:

	======================================================================
	Timestamp: 2026-10-14T08:15:00Z
	abc123	web	Up 3 days

A failed runtime query is recorded in the log and is not an error of
[Logger.Run]; only failures to write the log itself are.
*/
package snapshot
