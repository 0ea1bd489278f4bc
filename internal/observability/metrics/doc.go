// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes the catalog's business metrics:
//   - Articles published
//   - Validation failures by entity and field
//   - Current entity counts
//   - Use-case operation latency
//
// All metrics are registered with the Prometheus default registry
// and exposed via the /metrics endpoint.
//
// Example usage:
//
//	import "magazine-catalog/internal/observability/metrics"
//
//	func publish(ctx context.Context) error {
//	    start := time.Now()
//	    defer func() { metrics.RecordOperation("publish_article", time.Since(start)) }()
//	    // ...
//	    metrics.RecordArticlePublished()
//	    return nil
//	}
package metrics
