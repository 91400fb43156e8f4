package inbound

import (
	"context"

	"github.com/shandysiswandi/pwstore/internal/credential/usecase"
	"github.com/spf13/cobra"
)

type uc interface {
	CreateHash(ctx context.Context, in usecase.CreateHashInput) (*usecase.CreateHashOutput, error)
	VerifyPassword(ctx context.Context, in usecase.VerifyPasswordInput) (*usecase.VerifyPasswordOutput, error)
	Inspect(ctx context.Context, in usecase.InspectInput) (*usecase.InspectOutput, error)
	Audit(ctx context.Context, in usecase.AuditInput) (*usecase.AuditOutput, error)
	SelfTest(ctx context.Context, in usecase.SelfTestInput) (*usecase.SelfTestOutput, error)
}

func RegisterCLIEndpoint(root *cobra.Command, uc uc) {
	end := &CLIEndpoint{uc: uc, prompt: newPrompter()}

	create := &cobra.Command{
		Use:   "create",
		Short: "Hash a password and print the encoded hash",
		Long: `Hash a password with a fresh random salt and print the encoded hash.

The password is read from a hidden prompt when stdin is a terminal, or from
the first line of stdin otherwise. It is never accepted as an argument.`,
		Args: cobra.NoArgs,
		RunE: end.Create,
	}
	create.Flags().Bool(flagPasswordStdin, false, "read the password from the first line of stdin without prompting")

	verify := &cobra.Command{
		Use:   "verify <stored-hash>",
		Short: "Check a password against an encoded hash",
		Long: `Check a password against an encoded hash.

Exit status is 0 on match, 2 on mismatch, 3 when the hash is malformed and
4 when it cannot be evaluated by this build.`,
		Args: cobra.ExactArgs(1),
		RunE: end.Verify,
	}
	verify.Flags().Bool(flagPasswordStdin, false, "read the password from the first line of stdin without prompting")
	verify.Flags().Bool(flagJSON, false, "print the result as JSON")

	inspect := &cobra.Command{
		Use:   "inspect <stored-hash>",
		Short: "Show the parameters of an encoded hash",
		Args:  cobra.ExactArgs(1),
		RunE:  end.Inspect,
	}
	inspect.Flags().Bool(flagJSON, false, "print the result as JSON")

	audit := &cobra.Command{
		Use:   "audit [file]",
		Short: "Classify stored hashes, one per line",
		Long: `Classify stored hashes read from file, or stdin when no file is given.

Each non-blank line is reported as ok, needs_rehash, invalid or unsupported.
No passwords are needed and no keys are derived.`,
		Args: cobra.MaximumNArgs(1),
		RunE: end.Audit,
	}
	audit.Flags().Int(flagWorkers, 0, "concurrent workers, 0 uses the configured limit")
	audit.Flags().Bool(flagJSON, false, "print the result as JSON")

	selftest := &cobra.Command{
		Use:   "selftest",
		Short: "Run the built-in hasher checks",
		Args:  cobra.NoArgs,
		RunE:  end.SelfTest,
	}
	selftest.Flags().Int(flagIterations, 0, "iterations to use, 0 uses the configured value")
	selftest.Flags().Bool(flagJSON, false, "print the result as JSON")

	root.AddCommand(create, verify, inspect, audit, selftest)
}
