// Package tracing provides OpenTelemetry tracing integration.
//
// Tracers are resolved through the global provider, so spans started before
// InitProvider runs are no-ops and spans started after it are exported.
//
// Example usage:
//
//	shutdown, err := tracing.InitProvider(ctx, "magazine-catalog", os.Stderr)
//	if err != nil { ... }
//	defer shutdown(context.Background())
//
//	ctx, span := tracing.GetTracer().Start(ctx, "catalog.PublishArticle")
//	defer span.End()
package tracing
