// Package config loads process configuration from the environment and
// persists user settings as JSON.
package config
