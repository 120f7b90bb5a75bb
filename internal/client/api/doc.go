// Package api is the console's single HTTP client for the asset backend.
//
// # Overview
//
// Every resource service issues its calls through Client.Do (or the JSON,
// download and upload helpers built on it). The client:
//  1. Joins the configured base URL, API version prefix and a relative
//     resource path, and encodes query parameters.
//  2. Attaches the bearer token read at call time: a token placed on the
//     context with WithToken wins, otherwise the TokenSource is asked.
//     Without a token the request is still sent.
//  3. Tags each request with an X-Request-ID and logs it at debug level.
//  4. Surfaces transport failures and non-2xx statuses as *Error.
//
// # Error Handling
//
// *Error matches these sentinels with errors.Is: ErrRequest (always),
// ErrUnavailable (transport failure or gateway status), ErrUnauthorized
// (401/403) and ErrNotFound (404).
//
// The client never retries, queues or backs off.
package api
