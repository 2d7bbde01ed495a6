// Package logger builds *slog.Logger instances from functional options and
// supplies attribute helpers with consistent key names.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler according to the
// configured Format, applies static attributes, and wraps the result in a
// LogHandlerDecorator that runs ContextExtractor callbacks on every record.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "schemacheck"),
//	    logger.WithLevelName(cfg.LogLevel),
//	    logger.WithContextExtractors(environment.LogExtractor),
//	)
//	logger.SetAsDefault(log)
//
//	log.WarnContext(ctx, "record invalid",
//	    logger.File(path),
//	    logger.Record(i),
//	    logger.Violations(res.Errors()),
//	)
//
// # Options
//
//   - WithDevelopment, WithStaging, WithProduction and WithEnvironment apply
//     per-environment presets and add a "service" attribute. The environment
//     is logged from the context through environment.LogExtractor.
//   - WithFormat, WithTextFormatter and WithJSONFormatter select the output.
//   - WithLevel and WithLevelName set the minimum level.
//   - WithOutput redirects records, for example to a buffer in tests.
//   - WithAttr and WithContextExtractors add attributes.
//
// Invalid formats and level names panic during construction.
package logger
