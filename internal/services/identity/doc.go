// Package identity composes seed resolution, derivation and the identity store
// into the operations exposed by the CLI.
//
// Generate writes a new record and returns it with key material stripped.
// Read returns the stored peer id after checking it still matches the stored
// key digest. Seed material is wiped as soon as it has been hashed.
package identity
