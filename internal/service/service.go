// Package service implements the per-screen operations of the operator
// dashboard: live data through the upstream API client, with an explicit
// dev-mode/degraded path served from the local demo store.
package service

import (
	"errors"

	logger "github.com/omniful/go_commons/log"

	"github.com/omniful/wms-dashboard/internal/auth"
)

// Data sources reported alongside every listing so callers can surface when
// demo data was substituted for live data.
const (
	SourceLive = "live"
	SourceDemo = "demo"
)

// Options control the demo-data routing. DevMode serves demo data
// unconditionally; FallbackOnError substitutes demo data only when the
// upstream call fails, and only because an operator opted in.
type Options struct {
	DevMode         bool
	FallbackOnError bool
}

// Listing is a collection result tagged with its data source.
type Listing[T any] struct {
	Items  []T
	Total  int64
	Source string
}

func liveListing[T any](items []T, total int64) Listing[T] {
	return Listing[T]{Items: items, Total: total, Source: SourceLive}
}

func demoListing[T any](items []T) Listing[T] {
	return Listing[T]{Items: items, Total: int64(len(items)), Source: SourceDemo}
}

// shouldFallBack decides whether a failed live call may be served from the
// demo store. Never on a missing session: that is an operator problem the
// banner has to show.
func (o Options) shouldFallBack(err error) bool {
	if !o.FallbackOnError {
		return false
	}
	return !errors.Is(err, auth.ErrNoSession)
}

// logFallback records every demo substitution; silent substitution hides
// outages from operators.
func logFallback(entity string, err error) {
	logger.Error("serving demo data for " + entity + " after upstream failure: " + err.Error())
}
