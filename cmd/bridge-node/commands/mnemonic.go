package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tyler-smith/go-bip39"
)

// entropyBits gives a 24-word phrase.
const entropyBits = 256

func mnemonicCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mnemonic",
		Short: "Print a fresh BIP-39 phrase for use with --seed-phrase",
		Long: "Print a fresh BIP-39 phrase. The phrase is hashed as given when passed to " +
			"--seed-phrase, so keep it byte-for-byte (same spacing) to restore the identity.",
		Args: noArgs,
		// Needs no config or stored state.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			entropy, err := bip39.NewEntropy(entropyBits)
			if err != nil {
				return err
			}
			phrase, err := bip39.NewMnemonic(entropy)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), phrase)
			return nil
		},
	}
}
