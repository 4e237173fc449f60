package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"chaincraft/internal/app"
	"chaincraft/internal/domain"
	"chaincraft/internal/util/logging"
)

// Version is stamped at build time with -ldflags "-X ...commands.Version=...".
var Version = "dev"

type rootOptions struct {
	seedPhrase string
	newPeerID  bool
	readPeerID bool
	passphrase string

	dataDir   string
	logLevel  string
	logFormat string

	app *app.App
}

func Execute() error {
	root := NewRootCmd(os.Stdout, os.Stderr)
	err := root.Execute()
	if err != nil {
		reportError(root.ErrOrStderr(), err)
	}
	return err
}

// NewRootCmd builds the command tree writing results to stdout and
// diagnostics to stderr.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "bridge-node",
		Short:         "Derive, store and read the node's peer identity",
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          noArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	f := root.Flags()
	f.StringVarP(&opts.seedPhrase, "seed-phrase", "s", "", "seed phrase to derive the identity from (random when omitted)")
	f.BoolVarP(&opts.newPeerID, "new-peer-id", "n", false, "generate and store a new identity")
	f.BoolVarP(&opts.readPeerID, "read-peer-id", "r", false, "print the stored peer id")

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.passphrase, "passphrase", "p", "", "passphrase sealing the stored key material")
	pf.StringVar(&opts.dataDir, "data-dir", "", "identity directory (default ~/.chaincraft, env CHAINCRAFT_DATA_DIR)")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (env CHAINCRAFT_LOG_LEVEL)")
	pf.StringVar(&opts.logFormat, "log-format", "", "log format: text or json (env CHAINCRAFT_LOG_FORMAT)")

	root.AddCommand(showCmd(opts), mnemonicCmd())
	return root
}

// setup loads configuration and builds the app shared by every command.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	overrides := map[string]any{}
	for flag, key := range map[string]string{
		"data-dir":   "data_dir",
		"log-level":  "log_level",
		"log-format": "log_format",
	} {
		if f := cmd.Flag(flag); f != nil && f.Changed {
			overrides[key] = f.Value.String()
		}
	}

	cfg, err := app.Load(overrides)
	if err != nil {
		return &usageError{err: err}
	}
	log, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return &usageError{err: err}
	}
	a, err := app.New(*cfg, log)
	if err != nil {
		return err
	}
	o.app = a
	log.Debug("config loaded", "data_dir", cfg.DataDir, "format_version", cfg.FormatVersion)
	return nil
}

func (o *rootOptions) run(cmd *cobra.Command) error {
	if o.newPeerID == o.readPeerID {
		return usageErrorf("exactly one of --new-peer-id or --read-peer-id is required")
	}
	out := cmd.OutOrStdout()

	if o.readPeerID {
		if cmd.Flags().Changed("seed-phrase") {
			return usageErrorf("--seed-phrase only applies with --new-peer-id")
		}
		id, err := o.app.Identity.Read()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Peer ID : %s\n", id)
		return nil
	}

	req := domain.GenerateRequest{Passphrase: o.passphrase}
	if cmd.Flags().Changed("seed-phrase") {
		phrase := o.seedPhrase
		req.SeedPhrase = &phrase
	}
	id, err := o.app.Generate(req)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Peer ID : %s\n", id.PeerID)
	fmt.Fprintf(out, "Network ID : %s\n", id.NetworkID)
	return nil
}

func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return &usageError{err: err}
	}
	return nil
}

func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	if h := hint(err); h != "" {
		fmt.Fprintf(w, "Hint: %s\n", h)
	}
}
