package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-secure-hash/credential"
)

func newPasswdCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passwd",
		Short: "Manage stored password credentials",
		Long: `Set, verify, inspect and delete password credentials held in the
configured store (see --store-driver).

Passwords are prompted for. When standard input is not a terminal one
password is read per line.`,
	}
	cmd.AddCommand(
		newPasswdSetCommand(a),
		newPasswdVerifyCommand(a),
		newPasswdShowCommand(a),
		newPasswdDeleteCommand(a),
	)
	return cmd
}

// withService opens the configured store, runs fn against a service backed
// by it and closes the store again.
func (a *app) withService(ctx context.Context, fn func(*credential.Service) error) (err error) {
	store, closeStore, err := a.opts.OpenStore(ctx, a.cfg.Store)
	if err != nil {
		return fmt.Errorf("open %s store: %w", a.cfg.Store.Driver, err)
	}
	defer func() {
		if cerr := closeStore(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s store: %w", a.cfg.Store.Driver, cerr)
		}
	}()

	opts := []credential.Option{credential.WithLogger(a.log)}
	if a.cfg.Salt.Bytes == 0 {
		opts = append(opts, credential.WithoutSalt())
	} else {
		opts = append(opts, credential.WithSaltBytes(a.cfg.Salt.Bytes))
	}
	return fn(credential.NewService(store, opts...))
}

func newPasswdSetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <id>",
		Short: "Set the password for id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
			password, err := p.ReadSecret("Enter new password: ")
			if err != nil {
				return err
			}
			confirm, err := p.ReadSecret("Confirm password: ")
			if err != nil {
				return err
			}

			return a.withService(cmd.Context(), func(s *credential.Service) error {
				if _, err := s.SetPassword(cmd.Context(), args[0], password, confirm); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Password set for %s.\n", args[0])
				return nil
			})
		},
	}
}

func newPasswdVerifyCommand(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "verify <id>",
		Short: "Check a password against the one stored for id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
			candidate, err := p.ReadSecret("Enter password: ")
			if err != nil {
				return err
			}

			return a.withService(cmd.Context(), func(s *credential.Service) error {
				ok, err := s.Verify(cmd.Context(), args[0], candidate)
				if errors.Is(err, credential.ErrNoStoredHash) {
					return fmt.Errorf("%s: %w", args[0], err)
				}
				if err != nil {
					return err
				}
				return reportMatch(cmd, args[0], ok, asJSON)
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

func newPasswdShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print the stored credential for id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(cmd.Context(), func(s *credential.Service) error {
				rec, err := s.Lookup(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				fmt.Fprintf(w, "id: %s\n", rec.ID)
				fmt.Fprintf(w, "salted: %t\n", rec.Credential().Salted())
				fmt.Fprintf(w, "credential: %s\n", rec.Credential())
				fmt.Fprintf(w, "updated: %s\n", rec.UpdatedAt.Format(time.RFC3339))
				return nil
			})
		},
	}
}

func newPasswdDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete the credential stored for id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(cmd.Context(), func(s *credential.Service) error {
				if err := s.Delete(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s.\n", args[0])
				return nil
			})
		},
	}
}
