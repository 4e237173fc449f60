package crypto

import (
	"crypto/rand"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"chaincraft/internal/domain"
	"chaincraft/internal/util/memzero"
)

const (
	// The current supported version of the sealed key digest format.
	envelopeFormatVersion = 1
	saltBytes             = 16
)

// blob is the JSON structure holding the ciphertext and KDF parameters.
type blob struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

// Tunables for scrypt key derivation.
var scryptParams = func() (N, r, p int) { return 1 << 15, 8, 1 }

// Seal encrypts d under a key derived from passphrase.
func Seal(passphrase string, d domain.KeyDigest) ([]byte, error) {
	var salt [saltBytes]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, fmt.Errorf("%w: salt: %v", domain.ErrDerivation, err)
	}
	N, r, p := scryptParams()
	key, err := scrypt.Key([]byte(passphrase), salt[:], N, r, p, chacha20poly1305.KeySize)
	if err != nil {
		return nil, fmt.Errorf("%w: scrypt: %v", domain.ErrDerivation, err)
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDerivation, err)
	}
	var nonce [chacha20poly1305.NonceSize]byte // zero nonce; salt-bound key is single use
	ct := aead.Seal(nil, nonce[:], d[:], salt[:])

	return json.Marshal(blob{
		V:      envelopeFormatVersion,
		Salt:   salt[:],
		N:      N,
		R:      r,
		P:      p,
		Cipher: ct,
	})
}

// Open reverses Seal.
func Open(passphrase string, b []byte) (domain.KeyDigest, error) {
	var bl blob
	if err := json.Unmarshal(b, &bl); err != nil {
		return domain.KeyDigest{}, fmt.Errorf("%w: sealed key digest: %v", domain.ErrCorruptRecord, err)
	}
	if bl.V != envelopeFormatVersion {
		return domain.KeyDigest{}, fmt.Errorf("%w: unsupported envelope version %d", domain.ErrCorruptRecord, bl.V)
	}

	key, err := scrypt.Key([]byte(passphrase), bl.Salt, bl.N, bl.R, bl.P, chacha20poly1305.KeySize)
	if err != nil {
		return domain.KeyDigest{}, fmt.Errorf("%w: scrypt parameters: %v", domain.ErrCorruptRecord, err)
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return domain.KeyDigest{}, fmt.Errorf("%w: %v", domain.ErrDerivation, err)
	}
	var nonce [chacha20poly1305.NonceSize]byte
	pt, err := aead.Open(nil, nonce[:], bl.Cipher, bl.Salt)
	if err != nil {
		return domain.KeyDigest{}, domain.ErrWrongPassphrase
	}
	defer memzero.Zero(pt)

	d, err := domain.KeyDigestFromBytes(pt)
	if err != nil {
		return domain.KeyDigest{}, fmt.Errorf("%w: %v", domain.ErrCorruptRecord, err)
	}
	return d, nil
}
