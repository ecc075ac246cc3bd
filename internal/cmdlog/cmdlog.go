package cmdlog

import (
	"time"

	"postpace/internal/logging"
	"postpace/internal/metrics"
)

// Run executes one subcommand body, recording the outcome in metrics and
// logs. The error comes back unchanged; presentation stays with the caller.
func Run(cmd string, f func() error) error {
	metrics.IncCommandRun(cmd)
	start := time.Now()
	err := f()
	if err != nil {
		metrics.IncCommandError(cmd)
		logging.Error("command failed", map[string]any{"command": cmd, "error": err.Error(), "elapsed": time.Since(start).String()})
		return err
	}
	logging.Debug("command ok", map[string]any{"command": cmd, "elapsed": time.Since(start).String()})
	return nil
}
