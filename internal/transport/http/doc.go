// Package http exposes column coercion over HTTP: a JSON endpoint for
// in-memory tables, a CSV upload endpoint, health and metrics. The
// handlers translate between wire shapes and the coercion core; all
// numeric logic stays in internal/numeric and internal/table.
package http
