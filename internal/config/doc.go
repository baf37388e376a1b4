// Package config provides configuration loading, merging, and validation
// facilities for the confmerge tool.
//
// Configuration is assembled from multiple sources; earlier sources win for
// the fields they set, later sources fill the remaining gaps:
//  1. Environment variables (CONFMERGE_ prefix)
//  2. Command-line flags
//  3. JSON config file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// The main entry point is [GetConfig], which receives the flag-derived
// layer from the command wiring.
package config
