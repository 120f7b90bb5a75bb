// Package cli provides the interactive asset console.
//
// It wires configuration, the local session store, the backend API client
// and the resource services, then runs a REPL. The console keeps a current
// path (like a browser location); before every prompt the path is resolved
// through the route guard, so a logout anywhere sends the next prompt to
// the login view.
//
// Commands:
//   - login / logout / whoami / refresh
//   - open <path>: navigate, e.g. open /assets or open /assets/edit/3
//   - list [key=value ...], show <id>, add, edit <id>, delete <id>
//   - export, import <file>, upload <id> <type> <file>
//   - restore <module> <id>, purge <module> <id>
//   - confirm <token>, cancel <id>
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
