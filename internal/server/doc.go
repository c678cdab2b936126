// Package server runs the relay's HTTP listener.
//
// It owns startup, signal handling and graceful shutdown. After the listener
// stops accepting requests the server waits for detached sanitize passes to
// finish so that no decoy write is cut short by process exit.
package server
