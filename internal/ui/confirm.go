package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm prints a yes/no question and reads the answer from in. Only "y"
// and "yes" (any case) confirm; EOF or anything else declines.
func Confirm(out io.Writer, in io.Reader, question string) bool {
	_, _ = fmt.Fprint(out, WarningTitleStyle.Render(question+" [y/N]: "))

	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		_, _ = fmt.Fprintln(out)
		return false
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		_, _ = fmt.Fprintln(out, HintItemStyle.Render("  Cancelled."))
		return false
	}
}
