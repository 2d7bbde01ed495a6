package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/schemakit/pkg/document"
	"github.com/dmitrymomot/schemakit/pkg/environment"
	"github.com/dmitrymomot/schemakit/pkg/logger"
	"github.com/dmitrymomot/schemakit/pkg/validator"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitConfig  = 2
)

const serviceName = "schemacheck"

var errNoInput = errors.New("no input files")

type summary struct {
	files   int
	records int
	invalid int
	failed  int
}

func (s summary) attrs() []any {
	return []any{
		slog.Int("files", s.files),
		slog.Int("records", s.records),
		slog.Int("invalid", s.invalid),
		slog.Int("failed", s.failed),
	}
}

// run checks every file in paths against the schema selected by cfg.Kind and
// returns the process exit code. Logs go to out.
func run(ctx context.Context, cfg Config, cat catalog, paths []string, out io.Writer) int {
	if err := cfg.validate(cat.kinds()); err != nil {
		fmt.Fprintf(out, "invalid configuration: %v\n", err)
		return exitConfig
	}

	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, serviceName),
		logger.WithOutput(out),
		logger.WithContextExtractors(environment.LogExtractor),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevelName(cfg.LogLevel))
	}
	log := logger.New(opts...)
	ctx = environment.WithContext(ctx, environment.Parse(cfg.Env))

	schema, err := cat.lookup(cfg.Kind)
	if err != nil {
		log.ErrorContext(ctx, "select schema", logger.Error(err))
		return exitConfig
	}
	if len(paths) == 0 {
		log.ErrorContext(ctx, "nothing to check", logger.Error(errNoInput))
		return exitConfig
	}

	var sum summary
	for file := range document.DecodeFiles(ctx, cfg.Workers, paths...) {
		if err := ctx.Err(); err != nil {
			log.WarnContext(ctx, "check interrupted", logger.Error(err))
			sum.failed++
			break
		}

		sum.files++
		if file.Err != nil {
			sum.failed++
			log.ErrorContext(ctx, "decode failed", logger.File(file.Path), logger.Error(file.Err))
			continue
		}

		sum.records += len(file.Records)
		sum.invalid += checkRecords(ctx, log.With(logger.Kind(cfg.Kind), logger.File(file.Path)), schema, file.Records, cfg.FailFast)

		if cfg.FailFast && sum.invalid > 0 {
			break
		}
	}

	log.InfoContext(ctx, "check finished", sum.attrs()...)

	if sum.invalid > 0 || sum.failed > 0 {
		return exitInvalid
	}
	return exitOK
}

// checkRecords validates records in order and returns how many failed.
func checkRecords(ctx context.Context, log *slog.Logger, schema validator.Validator[any], records []document.Record, failFast bool) int {
	invalid := 0
	for i, rec := range records {
		res := schema.Validate(rec)
		if res.IsValid() {
			log.DebugContext(ctx, "record valid", logger.Record(i))
			continue
		}

		invalid++
		log.WarnContext(ctx, "record invalid", logger.Record(i), logger.Violations(res.Errors()))
		if failFast {
			break
		}
	}
	return invalid
}
