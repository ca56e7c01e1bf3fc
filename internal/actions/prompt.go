package actions

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// confirm writes message with a y/N hint to out and reads one line from in.
// Only "y" or "Y" (surrounding whitespace ignored) counts as yes; read errors
// including EOF count as no.
func confirm(in io.Reader, out io.Writer, message string) bool {
	fmt.Fprintf(out, "%s (y/N): ", message)
	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && response == "" {
		fmt.Fprintln(out)
		return false
	}
	return strings.EqualFold(strings.TrimSpace(response), "y")
}
