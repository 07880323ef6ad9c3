// Command transitionsim replays transition scenarios on a simulated clock
// and prints the resulting timeline.
package main

import (
	"github.com/go-drift/transition/cmd/transitionsim/internal/cli"
)

// Version info set via ldflags at build time:
//
//	go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersionInfo(version, commit, date)
	cli.Execute()
}
