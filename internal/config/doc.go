// Package config loads, normalizes, and validates the TOML configuration that
// drives device transfers and dictionary provisioning.
package config
