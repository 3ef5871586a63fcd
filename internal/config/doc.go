// Package config assembles the runtime configuration of the identity
// provider and its terminal client.
//
// Values come from environment variables, command-line flags and an optional
// JSON file, merged in that order. Merging fills only fields that are still
// zero, so the environment has the highest priority and the JSON file the
// lowest.
//
// [GetStructuredConfig] serves the server binary, [GetClientConfig] the
// client binary.
package config
