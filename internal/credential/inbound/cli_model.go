package inbound

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shandysiswandi/pwstore/internal/credential/usecase"
)

const (
	flagPasswordStdin = "password-stdin"
	flagJSON          = "json"
	flagWorkers       = "workers"
	flagIterations    = "iterations"
)

type VerifyResponse struct {
	Match       bool `json:"match"`
	NeedsRehash bool `json:"needs_rehash,omitempty"`
}

type AuditEntry struct {
	Line       int    `json:"line"`
	Status     string `json:"status"`
	Reason     string `json:"reason,omitempty"`
	Iterations int    `json:"iterations,omitempty"`
}

type AuditResponse struct {
	Entries []AuditEntry   `json:"entries"`
	Summary map[string]int `json:"summary"`
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeInspect(w io.Writer, out *usecase.InspectOutput) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "algorithm:\t%s\n", out.Algorithm)
	fmt.Fprintf(tw, "iterations:\t%d\n", out.Iterations)
	fmt.Fprintf(tw, "hash size:\t%d\n", out.HashSize)
	fmt.Fprintf(tw, "salt size:\t%d\n", out.SaltSize)
	fmt.Fprintf(tw, "needs rehash:\t%t\n", out.NeedsRehash)
	return tw.Flush()
}

// writeAudit prints only entries that need attention, followed by the summary.
func writeAudit(w io.Writer, resp AuditResponse) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, e := range resp.Entries {
		if e.Status == usecase.OutcomeOK {
			continue
		}
		fmt.Fprintf(tw, "line %d\t%s\t%s\n", e.Line, e.Status, e.Reason)
	}
	fmt.Fprintf(tw, "total %d\tok %d\tneeds_rehash %d\tinvalid %d\tunsupported %d\n",
		len(resp.Entries),
		resp.Summary[usecase.OutcomeOK],
		resp.Summary[usecase.OutcomeNeedsRehash],
		resp.Summary[usecase.OutcomeInvalid],
		resp.Summary[usecase.OutcomeUnsupported],
	)
	return tw.Flush()
}

func writeSelfTest(w io.Writer, out *usecase.SelfTestOutput) {
	for _, c := range out.Checks {
		if c.Passed {
			fmt.Fprintf(w, "PASS %s\n", c.Name)
			continue
		}
		fmt.Fprintf(w, "FAIL %s: %s\n", c.Name, c.Detail)
	}
}
