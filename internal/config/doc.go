// Package config provides configuration structures and utilities for czwords.
// It defines the scan options (root directory, extension and name filters,
// exclusions, decoding), the vocabulary and report settings, and loads the
// optional YAML configuration file.
package config
