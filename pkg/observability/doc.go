/*
Package observability records what the audit tasks did.

Metrics plugs into the registry and the process runner through
domain.LifecycleHooks and exports Prometheus counters and histograms. CI jobs
usually have no scrape endpoint, so WriteTextfile dumps them in the
node_exporter textfile format instead.
*/
package observability
