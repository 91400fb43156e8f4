package inbound

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shandysiswandi/pwstore/internal/credential/usecase"
	"github.com/shandysiswandi/pwstore/internal/pkg/goerror"
	"github.com/spf13/cobra"
)

// CLIEndpoint exposes the credential usecases as cobra commands.
type CLIEndpoint struct {
	uc     uc
	prompt *prompter
}

// Create prints a new encoded hash for the password read from the user.
func (h *CLIEndpoint) Create(cmd *cobra.Command, _ []string) error {
	pw, err := h.prompt.password(cmd, true)
	if err != nil {
		return err
	}

	resp, err := h.uc.CreateHash(cmd.Context(), usecase.CreateHashInput{Password: pw})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), resp.Hash)
	return nil
}

// Verify checks a password against args[0]. A mismatch is returned as an
// error so the process exits non-zero.
func (h *CLIEndpoint) Verify(cmd *cobra.Command, args []string) error {
	pw, err := h.prompt.password(cmd, false)
	if err != nil {
		return err
	}

	resp, err := h.uc.VerifyPassword(cmd.Context(), usecase.VerifyPasswordInput{
		Password:   pw,
		StoredHash: strings.TrimSpace(args[0]),
	})
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool(flagJSON); asJSON {
		if err := writeJSON(cmd.OutOrStdout(), VerifyResponse{Match: resp.Match, NeedsRehash: resp.NeedsRehash}); err != nil {
			return goerror.NewServer(err)
		}
	} else if resp.Match {
		msg := "match"
		if resp.NeedsRehash {
			msg = "match (rehash recommended)"
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
	}

	if !resp.Match {
		return goerror.NewMismatch("password does not match")
	}

	return nil
}

func (h *CLIEndpoint) Inspect(cmd *cobra.Command, args []string) error {
	resp, err := h.uc.Inspect(cmd.Context(), usecase.InspectInput{StoredHash: strings.TrimSpace(args[0])})
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool(flagJSON); asJSON {
		err = writeJSON(cmd.OutOrStdout(), resp)
	} else {
		err = writeInspect(cmd.OutOrStdout(), resp)
	}
	if err != nil {
		return goerror.NewServer(err)
	}

	return nil
}

// Audit reads one hash per line from args[0] or stdin. Blank lines are
// skipped but still counted so reported line numbers match the input.
func (h *CLIEndpoint) Audit(cmd *cobra.Command, args []string) error {
	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return goerror.NewInvalidInput(nil, "file", err.Error())
		}
		defer f.Close()
		in = f
	}

	var (
		hashes []string
		lines  []int
	)
	sc := bufio.NewScanner(in)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		hashes = append(hashes, line)
		lines = append(lines, n)
	}
	if err := sc.Err(); err != nil {
		return goerror.NewServer(fmt.Errorf("failed to read hashes: %w", err))
	}

	workers, _ := cmd.Flags().GetInt(flagWorkers)
	resp, err := h.uc.Audit(cmd.Context(), usecase.AuditInput{Hashes: hashes, Workers: workers})
	if err != nil {
		return err
	}

	out := AuditResponse{
		Entries: make([]AuditEntry, 0, len(resp.Results)),
		Summary: resp.Summary,
	}
	for _, r := range resp.Results {
		out.Entries = append(out.Entries, AuditEntry{
			Line:       lines[r.Index],
			Status:     r.Status,
			Reason:     r.Reason,
			Iterations: r.Iterations,
		})
	}

	if asJSON, _ := cmd.Flags().GetBool(flagJSON); asJSON {
		err = writeJSON(cmd.OutOrStdout(), out)
	} else {
		err = writeAudit(cmd.OutOrStdout(), out)
	}
	if err != nil {
		return goerror.NewServer(err)
	}

	return nil
}

// SelfTest prints every check. The report is written even when a check fails.
func (h *CLIEndpoint) SelfTest(cmd *cobra.Command, _ []string) error {
	iterations, _ := cmd.Flags().GetInt(flagIterations)

	resp, err := h.uc.SelfTest(cmd.Context(), usecase.SelfTestInput{Iterations: iterations})
	if resp != nil {
		if asJSON, _ := cmd.Flags().GetBool(flagJSON); asJSON {
			if jerr := writeJSON(cmd.OutOrStdout(), resp); jerr != nil {
				return goerror.NewServer(jerr)
			}
		} else {
			writeSelfTest(cmd.OutOrStdout(), resp)
		}
	}

	return err
}
