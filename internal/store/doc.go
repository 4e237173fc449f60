// Package store provides file-based persistence for the node identity.
//
// The identity record is a versioned JSON document at
// <data dir>/peer_identity.json (mode 0600, directory 0700). Writes go
// through a synced temporary file that is renamed over the target, so a crash
// leaves either the previous record or the complete new one. A missing file
// reads as domain.ErrNotFound; undecodable content, an unknown
// format_version or inconsistent key fields read as domain.ErrCorruptRecord.
//
// Methods are safe for concurrent use within a process. Cross-process writers
// are last-writer-wins unless they hold IdentityFileStore.Lock.
package store
