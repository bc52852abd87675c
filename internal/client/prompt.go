package client

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// PasswordReader prints prompt and returns the password typed by the user.
type PasswordReader func(prompt string) (string, error)

// NewTerminalPasswordReader reads passwords from in without echo when in is a
// terminal. Piped input is read line by line so scripts can feed passwords.
func NewTerminalPasswordReader(in *os.File, out io.Writer) PasswordReader {
	lines := bufio.NewReader(in)

	return func(prompt string) (string, error) {
		fmt.Fprint(out, prompt)

		fd := int(in.Fd())
		if term.IsTerminal(fd) {
			password, err := term.ReadPassword(fd)
			fmt.Fprintln(out)
			if err != nil {
				return "", fmt.Errorf("error reading password: %w", err)
			}
			return string(password), nil
		}

		line, err := lines.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return "", fmt.Errorf("error reading password: %w", err)
		}
		return strings.TrimRight(line, "\r\n"), nil
	}
}
