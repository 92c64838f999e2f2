package ui

import (
	"fmt"
	"strings"
	"time"
)

// Printlns prints lines as one block and pauses once.
func (c *Console) Printlns(lines []string) {
	c.Println(strings.Join(lines, "\n"))
}

// Println writes a line, then waits for the configured delay so that a fast
// opponent's moves stay readable.
func (c *Console) Println(args ...interface{}) {
	fmt.Fprintln(c.out, args...)
	if c.delay <= 0 {
		return
	}
	time.Sleep(c.delay)
}
