// Package config defines the countdown settings and helpers to load,
// validate and save them in YAML format.
//
// A missing settings file is not an error: Load returns Default().
package config
