// Package sessiongate is the client-side session-verification core of a
// token-based authentication layer.
//
// For every incoming access token it decides locally, using a cached
// signing key, whether the request is authentic, and escalates to the
// remote session authority when local information is insufficient or
// stale. It also runs the refresh-token rotation protocol and surfaces
// the authority's theft-detection signal as a typed error.
//
// The remote session authority is consumed through the Authority
// interface; the transport behind it is supplied by the host.
package sessiongate
