package commands

import (
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"chaincraft/internal/crypto"
	"chaincraft/internal/domain"
)

// identityView is the YAML shape printed by show. It never carries key
// material.
type identityView struct {
	FormatVersion int       `yaml:"format_version"`
	PeerID        string    `yaml:"peer_id"`
	NetworkID     string    `yaml:"network_id,omitempty"`
	CreatedAt     time.Time `yaml:"created_at"`
	SeedSource    string    `yaml:"seed_source,omitempty"`
	Sealed        bool      `yaml:"sealed"`
	Verified      bool      `yaml:"verified,omitempty"`
	Announce      []string  `yaml:"announce,omitempty"`
}

func showCmd(opts *rootOptions) *cobra.Command {
	var (
		verify   bool
		announce []string
	)
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the stored identity record (without key material)",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				id  domain.PersistedIdentity
				err error
			)
			if verify {
				id, err = opts.app.Identity.Verify(opts.passphrase)
			} else {
				id, err = opts.app.Identity.Inspect()
			}
			if err != nil {
				return err
			}

			view := identityView{
				FormatVersion: id.FormatVersion,
				PeerID:        id.PeerID.String(),
				NetworkID:     id.NetworkID.String(),
				CreatedAt:     id.CreatedAt,
				SeedSource:    id.SeedSource.String(),
				Sealed:        id.Sealed(),
				Verified:      verify,
			}
			if len(announce) > 0 {
				if id.NetworkID == "" {
					return usageErrorf("record has no network_id; regenerate it to announce addresses")
				}
				addrs, err := crypto.AnnounceAddrs(id.NetworkID, announce)
				if err != nil {
					return &usageError{err: err}
				}
				view.Announce = addrs
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(view); err != nil {
				return err
			}
			return enc.Close()
		},
	}
	cmd.Flags().BoolVar(&verify, "verify", false, "re-derive both ids from the stored key material (needs --passphrase when sealed)")
	cmd.Flags().StringSliceVar(&announce, "announce", nil, "listen multiaddr to print with a /p2p/ suffix (repeatable)")
	return cmd
}
