// SPDX-License-Identifier: MIT

// Package config loads graphmat workload files.
//
// A workload names one graph, either a builder family with a size or an
// explicit list of labelled edges, plus logging and metrics settings:
//
//	name: k5
//	graph:
//	  family: complete
//	  n: 5
//	logging: {level: info, format: text}
//	metrics: {textfile: ""}
//
// Files are YAML (gopkg.in/yaml.v3); struct tags are checked with
// go-playground/validator and the graph source rules by Validate.
package config
