// Package logger builds *slog.Logger instances with functional options.
//
// New returns a JSON logger at info level on stdout. WithEnvironment switches
// to text output at debug level for development. Attributes pulled from the
// request context (request ID, environment) are added at log time unless the
// record or logger already carries the same key:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, cfg.AppName),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "form validated", logger.Form("login"), logger.Outcome(res.IsValid))
//
// The attribute helpers keep key names consistent across packages.
package logger
