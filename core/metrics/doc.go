// Package metrics counts merge and clean outcomes with Prometheus collectors.
//
// Commands are short-lived, so counters are not scraped; they are written to
// a node-exporter textfile when Config.Textfile is set.
package metrics
