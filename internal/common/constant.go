// Package common contains shared constants and sentinel errors used across
// the console components.
package common

// AuthorizationHeaderName is the HTTP header used to carry the bearer token
// on outbound requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the access token in the authorization header.
const BearerPrefix = "Bearer "

// RequestIDHeaderName carries the per-request correlation id.
const RequestIDHeaderName = "X-Request-ID"
