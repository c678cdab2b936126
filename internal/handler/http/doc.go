// Package http implements the relay's loopback HTTP surface.
//
// A browser extension (or any local caller) posts triggers here instead of
// talking to the backend directly. Decrypt requests are answered with a
// DecryptResult, sanitize requests are scheduled in the background. Request
// tracing, access logging and optional bearer authentication are handled in
// middleware before requests reach the service layer.
package http
