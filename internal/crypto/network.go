package crypto

import (
	"crypto/ed25519"
	"fmt"

	p2pcrypto "github.com/libp2p/go-libp2p/core/crypto"
	"github.com/libp2p/go-libp2p/core/peer"
	ma "github.com/multiformats/go-multiaddr"

	"chaincraft/internal/domain"
)

// NetworkIdentity returns the libp2p key pair whose ed25519 seed is d, and its
// libp2p peer id.
func NetworkIdentity(d domain.KeyDigest) (p2pcrypto.PrivKey, domain.NetworkID, error) {
	sk := ed25519.NewKeyFromSeed(d[:])
	priv, err := p2pcrypto.UnmarshalEd25519PrivateKey(sk)
	if err != nil {
		return nil, "", fmt.Errorf("%w: ed25519 key: %v", domain.ErrDerivation, err)
	}
	pid, err := peer.IDFromPrivateKey(priv)
	if err != nil {
		return nil, "", fmt.Errorf("%w: libp2p peer id: %v", domain.ErrDerivation, err)
	}
	return priv, domain.NetworkID(pid.String()), nil
}

// AnnounceAddrs appends /p2p/<id> to each listen multiaddr so peers can dial
// the node directly.
func AnnounceAddrs(id domain.NetworkID, listen []string) ([]string, error) {
	pid, err := peer.Decode(id.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptRecord, err)
	}
	info := peer.AddrInfo{ID: pid}
	for _, s := range listen {
		addr, err := ma.NewMultiaddr(s)
		if err != nil {
			return nil, fmt.Errorf("listen address %q: %w", s, err)
		}
		info.Addrs = append(info.Addrs, addr)
	}
	addrs, err := peer.AddrInfoToP2pAddrs(&info)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(addrs))
	for _, a := range addrs {
		out = append(out, a.String())
	}
	return out, nil
}
