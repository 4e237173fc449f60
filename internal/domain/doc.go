// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (seed material, digests, identifiers, the persisted
// record) and contracts (interfaces) only.
package domain
