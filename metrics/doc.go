// SPDX-License-Identifier: MIT

// Package metrics holds the Prometheus collectors graphmat reports: how many
// matroid operations ran, how long they took, and the size and rank of the
// last model loaded.
//
// A Registry owns its own prometheus.Registry, so tests and the CLI never
// touch the global default registerer. The CLI dumps it in the node-exporter
// textfile format with WriteTextfile.
package metrics
