// Package crypto exposes the primitives behind node identities.
//
// Contents
//
//   - Versioned seed derivation and peer id encoding (DeriverFor, V1)
//   - The libp2p network identity derived from a key digest (NetworkIdentity,
//     AnnounceAddrs)
//   - Passphrase sealing of retained key material (Seal, Open)
//
// # Notes
//
// The hash function, the multihash code and the "cc1" prefix together form
// format version 1. Changing any of them changes every peer id ever derived,
// so a new behaviour must be registered under a new version instead.
package crypto
