// Package cli implements the securehash command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hasbyte1/go-secure-hash/internal/config"
	"github.com/hasbyte1/go-secure-hash/internal/logger"
)

// ErrVerificationFailed is returned by the verify commands when the
// candidate does not match. [Execute] maps it to exit status 1.
var ErrVerificationFailed = errors.New("password verification failed")

// Exit statuses returned by [Execute].
const (
	ExitOK       = 0
	ExitMismatch = 1
	ExitError    = 2
)

// Options wires the command tree to its environment.
type Options struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer

	// OpenStore opens the credential store. Nil selects [OpenStore].
	OpenStore StoreOpener
}

func (o *Options) setDefaults() {
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Err == nil {
		o.Err = os.Stderr
	}
	if o.OpenStore == nil {
		o.OpenStore = OpenStore
	}
}

// app is the state shared by all subcommands of one invocation.
type app struct {
	opts       Options
	configPath string
	cfg        config.Config
	log        *zap.Logger
}

// NewRootCommand builds the securehash command tree.
func NewRootCommand(opts Options) *cobra.Command {
	opts.setDefaults()
	a := &app{opts: opts, log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "securehash",
		Short: "SHA-256 hashing and password verification",
		Long: `securehash computes SHA-256 digests of text, optionally salted, and
stores and verifies password credentials.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}
	root.SetIn(opts.In)
	root.SetOut(opts.Out)
	root.SetErr(opts.Err)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "path to a config file (yaml, json or toml)")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("log-format", "", "log format: console or json")
	pf.Int("salt-bytes", 0, "random salt bytes per hash (0 with passwd disables salting)")
	pf.String("store-driver", "", "credential store: memory, leveldb, redis, postgres")
	pf.String("store-path", "", "leveldb store directory")
	pf.String("redis-url", "", "redis store URL")
	pf.String("postgres-url", "", "postgres store URL")

	root.AddCommand(
		newDigestCommand(a),
		newVerifyCommand(a),
		newPasswdCommand(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath, cmd.Flags())
	if err != nil {
		return err
	}
	l, err := logger.New(cfg.Log, a.opts.Err)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = l
	return nil
}

// Execute runs the command tree with args and returns the process exit status.
func Execute(ctx context.Context, args []string, opts Options) int {
	opts.setDefaults()
	root := NewRootCommand(opts)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrVerificationFailed):
		fmt.Fprintln(opts.Err, "Password verification failed!")
		return ExitMismatch
	default:
		fmt.Fprintln(opts.Err, "Error:", err)
		return ExitError
	}
}
