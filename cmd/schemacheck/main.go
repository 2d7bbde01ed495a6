// Command schemacheck validates YAML and JSON record files against a
// built-in catalog of schemas.
//
//	schemacheck --kind event events.json more-events.yaml
//	schemacheck kinds
//
// Defaults come from SCHEMACHECK_ENV, SCHEMACHECK_LOG_LEVEL,
// SCHEMACHECK_KIND, SCHEMACHECK_FAIL_FAST and SCHEMACHECK_WORKERS, the
// number of files decoded concurrently; flags override them. The exit status
// is 0 when every record is valid, 1 when a record is invalid or a file
// cannot be decoded, and 2 on configuration errors.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/schemakit/pkg/validator"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(exitConfig)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = newRootCommand(cfg, newCatalog(validator.SystemClock)).ExecuteContext(ctx)
	stop()

	var code exitCode
	switch {
	case err == nil:
	case errors.As(err, &code):
		os.Exit(int(code))
	default:
		// flag and argument errors
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitConfig)
	}
}
