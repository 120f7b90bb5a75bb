package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Render(ctx context.Context)
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Refresh(ctx context.Context) error
	Open(ctx context.Context, path string) error
	List(ctx context.Context, args []string) error
	Show(ctx context.Context, id string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Export(ctx context.Context) error
	Import(ctx context.Context, file string) error
	Upload(ctx context.Context, id, fileType, file string) error
	Restore(ctx context.Context, module, id string) error
	Purge(ctx context.Context, module, id string) error
	Confirm(ctx context.Context, token string) error
	Cancel(ctx context.Context, id string) error
}

const (
	helpLoggedOut = "Available commands: login, exit"
	helpLoggedIn  = "Available commands: open <path>, (l)ist [key=value...], show <id>, add, edit <id>, delete <id>, " +
		"export, import <file>, upload <id> <type> <file>, restore <module> <id>, purge <module> <id>, " +
		"confirm <token>, cancel <id>, whoami, refresh, logout, exit\n" +
		"Paths: / /assets /assets/add /assets/edit/<id> /asset-types /users /maintenance /transfer /trash /inventory/docs"
)

// runREPL starts a read-eval-print loop for the console.
//
// Before each prompt the current view is re-resolved through a.Render, so
// session changes made by the previous command take effect immediately.
// A command's error is printed and the loop continues; the loop exits on
// EOF or when the user types "exit" or "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader) {
	for {
		a.Render(ctx)
		printlnFn(fmt.Sprintf("ak %s> ", statusFn()))

		line, err := in.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || strings.TrimSpace(line) == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}
		report(dispatch(ctx, a, cmd, args))
	}
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string) error {
	need := func(n int, usage string) error {
		if len(args) < n {
			return usageError(usage)
		}
		return nil
	}

	switch cmd {
	case "help":
		if a.isLoggedIn() {
			printlnFn(helpLoggedIn)
		} else {
			printlnFn(helpLoggedOut)
		}
		return nil
	case "login":
		return a.Login(ctx)
	case "logout":
		return a.Logout(ctx)
	case "whoami":
		return a.Whoami(ctx)
	case "refresh":
		return a.Refresh(ctx)
	case "open", "cd":
		if err := need(1, "open <path>"); err != nil {
			return err
		}
		return a.Open(ctx, args[0])
	case "l", "list":
		return a.List(ctx, args)
	case "show":
		if err := need(1, "show <id>"); err != nil {
			return err
		}
		return a.Show(ctx, args[0])
	case "add":
		return a.Add(ctx)
	case "edit":
		if err := need(1, "edit <id>"); err != nil {
			return err
		}
		return a.Edit(ctx, args[0])
	case "delete", "rm":
		if err := need(1, "delete <id>"); err != nil {
			return err
		}
		return a.Delete(ctx, args[0])
	case "export":
		return a.Export(ctx)
	case "import":
		if err := need(1, "import <file>"); err != nil {
			return err
		}
		return a.Import(ctx, args[0])
	case "upload":
		if err := need(3, "upload <id> <invoice|acceptance|before|after> <file>"); err != nil {
			return err
		}
		return a.Upload(ctx, args[0], args[1], args[2])
	case "restore":
		if err := need(2, "restore <asset|asset_type|user|maintenance> <id>"); err != nil {
			return err
		}
		return a.Restore(ctx, args[0], args[1])
	case "purge":
		if err := need(2, "purge <asset|asset_type|user|maintenance> <id>"); err != nil {
			return err
		}
		return a.Purge(ctx, args[0], args[1])
	case "confirm":
		if err := need(1, "confirm <token>"); err != nil {
			return err
		}
		return a.Confirm(ctx, args[0])
	case "cancel":
		if err := need(1, "cancel <id>"); err != nil {
			return err
		}
		return a.Cancel(ctx, args[0])
	}

	printlnFn("Unknown command:", cmd)
	return nil
}

type usageError string

func (u usageError) Error() string { return "usage: " + string(u) }

// report prints a failed command. Every command reports its own success.
func report(err error) {
	if err == nil {
		return
	}
	var u usageError
	if errors.As(err, &u) {
		printlnFn(u.Error())
		return
	}
	printlnFn("Error:", err.Error())
}
