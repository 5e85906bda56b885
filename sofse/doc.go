// Package sofse implements the client for the SOFSE (Trenes Argentinos) API,
// which provides real-time train data for the Buenos Aires metropolitan area.
//
// The API requires a bespoke authentication handshake: credentials are
// derived from the current date with a fixed two-stage substitution cipher
// (see auth.go), exchanged for a JWT-like token that is attached verbatim to
// every request. The cipher was reverse engineered by ariedro
// (https://github.com/ariedro/api-trenes) and must be reproduced bit-exactly.
package sofse
