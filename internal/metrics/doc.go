// Package metrics instruments solve requests with Prometheus counters and
// latency histograms.
package metrics
