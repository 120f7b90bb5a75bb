package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	s := ""
	if u := a.account.Current().User(); u != nil {
		s = u.Username() + " "
	}
	return fmt.Sprintf("(%s%s)", s, a.path)
}

// Root greets the user, draws the starting view and runs the REPL on the
// app's reader until exit or EOF.
func (a *App) Root(ctx context.Context) {
	printlnFn("Asset console (type 'help' for commands)")

	a.Render(ctx)
	report(a.draw(ctx))

	runREPL(ctx, a, a.getStatus, a.reader)
}
