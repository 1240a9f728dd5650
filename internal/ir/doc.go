// Package ir provides the canonical wire representation of periods and
// collections.
//
// Records are the only shape in which periods leave the process: the CLI's
// JSON output, harness traces and schedule fingerprints are all built from
// them. ir imports only the period package; nothing in period imports ir.
//
// Key design constraints:
//   - NO float types anywhere - use int64 for numbers
//   - Instants are RFC 3339 strings carrying their offset
//   - All JSON tags use snake_case
//   - Identity is a domain-separated SHA-256 of canonical JSON
package ir
