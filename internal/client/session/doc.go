// Package session holds the console's login state.
//
// A Session is either logged out (the zero value) or logged in with a user
// profile and a bearer token; the two are built only through Login and
// Logout, so "authenticated" can never disagree with the user and token
// being present.
//
// Store wraps the current Session, persists a JSON snapshot of it into a
// single Storage slot on every transition and rehydrates from that slot once
// in Open. A missing, corrupt or inconsistent snapshot rehydrates to the
// logged-out session; Open never fails.
//
// Snapshot layout:
//
//	{"isAuthenticated": true, "user": {"username": "alice"}, "token": "tok-123"}
package session
