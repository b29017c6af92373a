package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hasbyte1/go-secure-hash/hashing"
)

func newVerifyCommand(a *app) *cobra.Command {
	var (
		stored string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "verify --hash HASH [candidate]",
		Short: "Check a candidate against a stored digest or credential",
		Long: `Check a candidate against a stored digest.

HASH is either a bare 64-character lowercase hex digest or a credential
string printed by "securehash digest --salt". When no candidate is given
it is read from standard input.

Exits 0 on a match and 1 on a mismatch.`,
		Example: `  securehash verify --hash ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad abc
  securehash verify --hash 'sha256$9f86d081884c7d65$...'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cred, err := hashing.ParseCredential(stored)
			if err != nil {
				return err
			}

			var candidate string
			if len(args) == 1 {
				candidate = args[0]
			} else {
				p := newPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
				if candidate, err = p.ReadSecret("Enter password: "); err != nil {
					return err
				}
			}

			ok := cred.Verify(candidate)
			a.log.Debug("candidate checked", zap.Bool("salted", cred.Salted()), zap.Bool("match", ok))
			return reportMatch(cmd, "", ok, asJSON)
		},
	}

	cmd.Flags().StringVar(&stored, "hash", "", "stored digest or credential string")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	_ = cmd.MarkFlagRequired("hash")
	return cmd
}

// reportMatch prints the outcome of a verification and turns a mismatch into
// [ErrVerificationFailed].
func reportMatch(cmd *cobra.Command, id string, ok, asJSON bool) error {
	if asJSON {
		if err := writeJSON(cmd.OutOrStdout(), verifyResult{ID: id, Match: ok}); err != nil {
			return err
		}
	} else if ok {
		fmt.Fprintln(cmd.OutOrStdout(), "Password verified successfully!")
	}
	if !ok {
		return ErrVerificationFailed
	}
	return nil
}
