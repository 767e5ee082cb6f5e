package main

import (
	"flag"
	"fmt"
	"net/url"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dm/sysdash/internal/client"
	"github.com/dm/sysdash/internal/state"
	"github.com/dm/sysdash/internal/tui"
)

// fallbackStatsURL is used when neither --url nor $SYS_STATS_API_URL is set.
const fallbackStatsURL = "http://localhost:5000/stats"

// defaultStatsURL returns the default stats endpoint: $SYS_STATS_API_URL
// when set, otherwise the localhost fallback.
func defaultStatsURL() string {
	if v := os.Getenv("SYS_STATS_API_URL"); v != "" {
		return v
	}
	return fallbackStatsURL
}

// validateStatsURL checks that raw parses as an http(s) URL with a host.
func validateStatsURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q (must be http or https)", u.Scheme)
	}
	if u.Hostname() == "" {
		return fmt.Errorf("invalid URL %q: host is required", raw)
	}
	return nil
}

func main() {
	var (
		statsURL = flag.String("url", defaultStatsURL(), "stats endpoint URL (default from $SYS_STATS_API_URL)")
		interval = flag.Int("interval", 5, "refresh interval in seconds (adjustable at runtime with + and -)")
		oneline  = flag.Bool("oneline", false, "display stats as a single compact line")
		insecure = flag.Bool("insecure", false, "skip TLS certificate verification")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: sysdash [--url http://host:5000/stats] [--interval 5] [--oneline] [--insecure]\n\n")
		fmt.Fprintf(os.Stderr, "examples:\n")
		fmt.Fprintf(os.Stderr, "  sysdash\n")
		fmt.Fprintf(os.Stderr, "  sysdash --url http://192.168.1.10:5000/stats --interval 10\n")
		fmt.Fprintf(os.Stderr, "  sysdash --oneline\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *interval < 1 {
		fmt.Fprintln(os.Stderr, "error: --interval must be at least 1 second")
		os.Exit(1)
	}

	if args := flag.Args(); len(args) > 0 {
		fmt.Fprintf(os.Stderr, "error: unexpected argument %q\n", args[0])
		flag.Usage()
		os.Exit(1)
	}

	if err := validateStatsURL(*statsURL); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	c, err := client.NewDefaultClient(client.ClientConfig{
		URL:                *statsURL,
		InsecureSkipVerify: *insecure,
		RequestTimeout:     10 * time.Second,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	// state.New clamps intervals above 60s into range.
	st := state.New(*interval)
	app := tui.NewApp(c, st, *oneline)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
