// Package auth defines the identity boundary for the portfolio site.
//
// It is the single place that owns credential handling, the admin bootstrap
// path, and session lifecycle, so route handlers depend on resolved
// identities and never see passwords or stored hashes.
//
// Subpackages:
//   - identity: identity domain model and its sanitized public projection
//   - password: bcrypt credential hashing and verification
//   - bootstrap: startup guard for the reserved admin account
//   - session: server-side session creation, resolution, and teardown
package auth
