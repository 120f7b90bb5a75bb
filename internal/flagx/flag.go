// Package flagx lets several loaders share os.Args, each parsing only the
// flags it owns.
package flagx

import (
	"flag"
	"io"
	"os"
	"strings"
)

func flagName(arg string) (name string, inline bool) {
	if len(arg) < 2 || arg[0] != '-' {
		return "", false
	}
	name = strings.TrimLeft(arg, "-")
	if i := strings.IndexByte(name, '='); i >= 0 {
		return name[:i], true
	}
	return name, false
}

// FilterArgs keeps the arguments that belong to allowedFlags, together with
// their values. A flag may be written with one or two dashes and its value
// may follow as the next argument or after '='. Names in allowedFlags are
// compared without their dashes, so "-c" also admits "--c".
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]bool, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[strings.TrimLeft(f, "-")] = true
	}

	out := []string{}
	for i := 0; i < len(args); i++ {
		name, inline := flagName(args[i])
		if !allowed[name] {
			continue
		}
		out = append(out, args[i])
		if !inline && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			i++
			out = append(out, args[i])
		}
	}
	return out
}

// ConfigFile returns the config file path given by -c or -config in args,
// or "" when there is none.
func ConfigFile(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"c", "config"}))

	return path
}

// ConfigFileFlags is ConfigFile over the process arguments.
func ConfigFileFlags() string {
	return ConfigFile(os.Args[1:])
}
