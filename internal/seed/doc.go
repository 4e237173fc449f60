// Package seed resolves the seed material an identity is derived from.
//
// A supplied phrase is used byte for byte so the same phrase always yields the
// same identity. Without a phrase, 256 bits are drawn from the configured
// random source and the resulting identity cannot be reproduced.
package seed
