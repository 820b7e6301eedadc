// Package config loads, normalizes, and validates subber configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files from ~/.config/subber/config.toml or a
// subber.toml in the working directory. The Config type centralizes every
// knob the CLI needs: matching threshold and date boost, audio extraction
// settings, log routing, and run-history storage.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
