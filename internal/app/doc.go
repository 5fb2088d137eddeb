// Package app wires configuration, logging, scanning, and serving into
// the PakSeek application lifecycle.
package app
