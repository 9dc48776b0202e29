package util

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// just a wrapper for term...
func GetPasswd(prompt string) ([]byte, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("cannot read passphrase: stdin is not a terminal")
	}
	fmt.Fprint(os.Stderr, prompt)
	bytepw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	return bytepw, err
}
