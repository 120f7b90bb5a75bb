package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	renders  int
	calls    []string
	failOn   string
}

func (f *fakeExec) record(call string) error {
	f.calls = append(f.calls, call)
	if call == f.failOn {
		return errors.New("backend says no")
	}
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Render(context.Context) { f.renders++ }
func (f *fakeExec) Whoami(context.Context) error { return f.record("whoami") }
func (f *fakeExec) Refresh(context.Context) error { return f.record("refresh") }
func (f *fakeExec) Add(context.Context) error { return f.record("add") }
func (f *fakeExec) Export(context.Context) error { return f.record("export") }

func (f *fakeExec) Login(context.Context) error {
	f.loggedIn = true
	return f.record("login")
}

func (f *fakeExec) Logout(context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}

func (f *fakeExec) Open(_ context.Context, path string) error { return f.record("open " + path) }
func (f *fakeExec) List(_ context.Context, args []string) error {
	return f.record(strings.TrimSpace("list " + strings.Join(args, " ")))
}
func (f *fakeExec) Show(_ context.Context, id string) error { return f.record("show " + id) }
func (f *fakeExec) Edit(_ context.Context, id string) error { return f.record("edit " + id) }
func (f *fakeExec) Delete(_ context.Context, id string) error { return f.record("delete " + id) }
func (f *fakeExec) Import(_ context.Context, file string) error {
	return f.record("import " + file)
}
func (f *fakeExec) Upload(_ context.Context, id, kind, file string) error {
	return f.record(fmt.Sprintf("upload %s %s %s", id, kind, file))
}
func (f *fakeExec) Restore(_ context.Context, module, id string) error {
	return f.record("restore " + module + " " + id)
}
func (f *fakeExec) Purge(_ context.Context, module, id string) error {
	return f.record("purge " + module + " " + id)
}
func (f *fakeExec) Confirm(_ context.Context, token string) error { return f.record("confirm " + token) }
func (f *fakeExec) Cancel(_ context.Context, id string) error { return f.record("cancel " + id) }

func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	capturePrintln(t)

	input := strings.Join([]string{
		"login",
		"open /assets",
		"list page=2 status=active",
		"l",
		"show 7",
		"add",
		"edit 7",
		"delete 7",
		"export",
		"import assets.xlsx",
		"upload 3 invoice inv.pdf",
		"restore assets 9",
		"purge users 4",
		"confirm tok-1",
		"cancel 5",
		"whoami",
		"refresh",
		"logout",
		"exit",
		"login",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "(status)" }, rdr(input))

	assert.Equal(t, []string{
		"login",
		"open /assets",
		"list page=2 status=active",
		"list",
		"show 7",
		"add",
		"edit 7",
		"delete 7",
		"export",
		"import assets.xlsx",
		"upload 3 invoice inv.pdf",
		"restore assets 9",
		"purge users 4",
		"confirm tok-1",
		"cancel 5",
		"whoami",
		"refresh",
		"logout",
	}, exec.calls)
	assert.Equal(t, 19, exec.renders)
}

func TestRunREPL_RendersBeforeEveryPrompt(t *testing.T) {
	lines := capturePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "(/login)" }, rdr("\n\nquit\n"))

	assert.Equal(t, 3, exec.renders)
	assert.Equal(t, "ak (/login)> ", (*lines)[0])
	assert.Equal(t, "Bye!", (*lines)[len(*lines)-1])
}

func TestRunREPL_UsageUnknownAndErrors(t *testing.T) {
	lines := capturePrintln(t)

	exec := &fakeExec{loggedIn: true, failOn: "export"}
	runREPL(context.Background(), exec, func() string { return "s" }, rdr("show\nupload 1 invoice\nfoobar\nexport\nhelp"))

	assert.Equal(t, []string{"export"}, exec.calls)
	out := strings.Join(*lines, "\n")
	assert.Contains(t, out, "usage: show <id>")
	assert.Contains(t, out, "usage: upload <id> <invoice|acceptance|before|after> <file>")
	assert.Contains(t, out, "Unknown command: foobar")
	assert.Contains(t, out, "Error: backend says no")
	assert.Contains(t, out, helpLoggedIn)
}

func TestRunREPL_HelpWhenLoggedOut(t *testing.T) {
	lines := capturePrintln(t)

	runREPL(context.Background(), &fakeExec{}, func() string { return "" }, rdr("help\n"))
	assert.Contains(t, *lines, helpLoggedOut)
}
