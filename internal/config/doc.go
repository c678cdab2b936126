// Package config provides configuration loading, merging, and validation
// facilities shared by the relay daemon and the client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// Fields left empty by every source are filled from [Defaults].
package config
