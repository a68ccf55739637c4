// Package reporting forwards failures of the show directory to Sentry.
// Every function is a no-op until Init has been called with a DSN.
package reporting

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/Belphemur/ShowBrowser/internal/config"
)

// Init configures the Sentry client from cfg. It reports whether reporting is enabled.
func Init(cfg *config.Config) (bool, error) {
	if cfg.Sentry.DSN == "" {
		return false, nil
	}
	return initWithOptions(sentry.ClientOptions{
		Dsn:         cfg.Sentry.DSN,
		Environment: cfg.Sentry.Environment,
		Release:     "showbrowser",
	})
}

func initWithOptions(opts sentry.ClientOptions) (bool, error) {
	if err := sentry.Init(opts); err != nil {
		return false, fmt.Errorf("init sentry: %w", err)
	}
	return true, nil
}

// CaptureError reports err with the given tags
func CaptureError(err error, tags map[string]string) {
	if err == nil {
		return
	}
	sentry.WithScope(func(scope *sentry.Scope) {
		for key, value := range tags {
			scope.SetTag(key, value)
		}
		sentry.CaptureException(err)
	})
}

// Flush waits up to timeout for buffered events to be sent
func Flush(timeout time.Duration) bool {
	return sentry.Flush(timeout)
}
