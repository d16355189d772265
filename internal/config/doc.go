// Package config provides configuration loading, merging, and validation
// facilities for the NeuroX2 client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetClientConfig], which also applies defaults for
// any field left unset by every source.
package config
