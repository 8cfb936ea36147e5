package snapshot

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/rusenback/dockersnap/internal/docker"
)

// Logger takes one snapshot per Run and appends it to the log below BaseDir.
type Logger struct {
	BaseDir string
	Querier docker.Querier
	Log     *slog.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

// Run resolves the log path, queries the runtime, and appends the entry.
// Query failures end up in the log; the returned error is always a
// *PersistenceError.
func (l *Logger) Run(ctx context.Context) error {
	log := l.Log
	if log == nil {
		log = slog.Default()
	}
	now := l.Now
	if now == nil {
		now = time.Now
	}

	path, err := ResolveLogPath(l.BaseDir)
	if err != nil {
		return err
	}

	output, err := l.Querier.QueryContainers(ctx)
	ok := err == nil
	if !ok {
		var qerr *docker.QueryError
		if errors.As(err, &qerr) {
			output = qerr.Message
		} else {
			output = err.Error()
		}
		log.Info("docker query failed", "err", output)
	}

	entry := FormatEntry(now(), ok, output)
	if err := AppendEntry(path, entry); err != nil {
		return err
	}
	log.Debug("snapshot appended", "path", path, "ok", ok, "bytes", len(entry))
	return nil
}
