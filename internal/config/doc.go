// Package config provides configuration loading, merging, and validation
// facilities for settings2markdown.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  0. Built-in defaults
//  1. Environment variables (S2MD_ prefix)
//  2. Command-line flags and the positional settings path
//  3. JSON config file (-c / -config / S2MD_CONFIG)
//
// The main entry point is [GetStructuredConfig].
package config
