package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"tripweaver-cli/internal/cli"
)

func isDayID(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, "day-") && len(s) > len("day-")
}

func rewriteDirectDayLookupArgs(argv []string) []string {
	// Convenience: `tripweaver <day-id>` works like `tripweaver activities list <day-id>`.
	//
	// Cobra treats the first non-flag token as a subcommand, so argv is rewritten
	// before parsing. Persistent flags may come first (`tripweaver --dir x day-1`),
	// so look for the first positional token, not argv[1].
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--dir":        true,
		"--backend":    true,
		"--format":     true,
		"--notify":     true,
		"--log-level":  true,
		"--log-format": true,
	}

	rewrite := func(i int) []string {
		out := make([]string, 0, len(argv)+2)
		out = append(out, argv[:i]...)
		out = append(out, "activities", "list")
		return append(out, argv[i:]...)
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			// Cobra stops resolving subcommands after "--", so the subcommand
			// goes in front of it.
			if i+1 < len(argv) && isDayID(argv[i+1]) {
				return rewrite(i)
			}
			return argv
		}
		if strings.HasPrefix(a, "-") {
			if !strings.Contains(a, "=") && valueFlags[a] {
				i++
			}
			continue
		}
		if isDayID(a) {
			return rewrite(i)
		}
		return argv
	}
	return argv
}

func main() {
	os.Args = rewriteDirectDayLookupArgs(os.Args)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := cli.NewRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
