// Package app wires application dependencies for the CLI.
//
// Load builds a Config from defaults, CHAINCRAFT_* environment variables and
// flag overrides. NewWire turns a Config into the concrete store, deriver,
// seed provider and identity service; New wraps them in an App for commands.
package app
