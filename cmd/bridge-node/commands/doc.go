// Package commands defines the bridge-node CLI.
//
// Usage
//
//	bridge-node --new-peer-id [--seed-phrase PHRASE] [--passphrase PASS]
//	bridge-node --read-peer-id
//	bridge-node show [--verify] [--announce MULTIADDR]...
//	bridge-node mnemonic
//
// Exactly one of --new-peer-id and --read-peer-id must be given to the root
// command. Without --seed-phrase a random identity is generated.
//
// # Implementation
//
// The root command loads configuration (defaults, CHAINCRAFT_* environment,
// flags) and builds the app before any command runs. Errors are printed once
// on stderr and mapped to a process exit code by ExitCode.
package commands
