// Package env holds process configuration: defaults for the transport and
// sender, and helpers for environment variables and termination.
package env

import (
	"bufio"
	"os"
	"os/signal"
	"strings"
	"syscall"
)

// Load environment variables from the given file. Blank lines, '#' comments
// and lines without '=' are ignored. Whitespace around names and values is
// trimmed.
func Load(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	scanner := bufio.NewScanner(file)
	scanner.Split(bufio.ScanLines)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		b, a, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		os.Setenv(strings.TrimSpace(b), strings.TrimSpace(a))
	}
	return scanner.Err()
}

// MustHave returns the named environment variable. If not set, it writes to
// [os.Stderr] and terminates the program.
func MustHave(name string) string {
	x := os.Getenv(name)
	if x == "" {
		os.Stderr.WriteString("missing " + name + "\n")
		os.Exit(1)
	}
	return x
}

// Signal returns a channel signalling termination.
func Signal() <-chan os.Signal {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	return quit
}
