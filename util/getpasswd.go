package util

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// GetSecret reads a line from the terminal without echoing it, so the
// message to hide doesn't end up on screen or in the scrollback.
func GetSecret(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	secret, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	return secret, err
}

// IsTerminal tells whether stdin is an interactive terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
