package inbound

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shandysiswandi/pwstore/internal/pkg/goerror"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type prompter struct {
	isTerminal   func(fd int) bool
	readPassword func(fd int) ([]byte, error)
}

func newPrompter() *prompter {
	return &prompter{
		isTerminal:   term.IsTerminal,
		readPassword: term.ReadPassword,
	}
}

// password reads a password with a hidden prompt when stdin is a terminal and
// --password-stdin is not set. Otherwise it takes the first line of stdin.
func (p *prompter) password(cmd *cobra.Command, confirm bool) ([]byte, error) {
	forceStdin, _ := cmd.Flags().GetBool(flagPasswordStdin)

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && !forceStdin && p.isTerminal(int(f.Fd())) {
		return p.fromTerminal(cmd, int(f.Fd()), confirm)
	}

	return readLine(in)
}

func (p *prompter) fromTerminal(cmd *cobra.Command, fd int, confirm bool) ([]byte, error) {
	fmt.Fprint(cmd.ErrOrStderr(), "Password (input hidden): ")
	pw, err := p.readPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return nil, goerror.NewServer(fmt.Errorf("failed to read password: %w", err))
	}

	if !confirm {
		return pw, nil
	}

	fmt.Fprint(cmd.ErrOrStderr(), "Confirm password: ")
	again, err := p.readPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return nil, goerror.NewServer(fmt.Errorf("failed to read password: %w", err))
	}

	if string(pw) != string(again) {
		return nil, goerror.NewInvalidInput(nil, "password", "confirmation does not match")
	}

	return pw, nil
}

func readLine(r io.Reader) ([]byte, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, goerror.NewServer(fmt.Errorf("failed to read password: %w", err))
	}

	return []byte(strings.TrimRight(line, "\r\n")), nil
}
