// Package services maps console operations onto backend REST calls.
//
// Each resource has a small service interface with an unexported
// implementation built on *api.Client. Services carry no state of their
// own; the bearer token is attached by the client. AccountService is the
// exception: it ties the auth endpoints to the session store.
package services
