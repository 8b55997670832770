// Package cmd holds the scenegen command tree.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/scenegen/internal/config"
	"github.com/Faultbox/scenegen/internal/edit"
	"github.com/Faultbox/scenegen/internal/logger"
	"github.com/Faultbox/scenegen/pkg/scene"
)

// app carries state shared by every subcommand of one invocation.
type app struct {
	store  *scene.Store
	fs     afero.Fs
	flags  config.Flags
	dryRun bool
	seed   uint64

	cfg *config.Config
}

// NewRootCmd builds the command tree over store. Config files are read and
// written on the same filesystem as the scene.
func NewRootCmd(store *scene.Store) *cobra.Command {
	a := &app{store: store, fs: store.Fs(), flags: config.Flags{Count: -1}}

	root := &cobra.Command{
		Use:   "scenegen",
		Short: "Bulk-edit tool for scene files",
		Long: `scenegen rewrites a line-oriented scene file in place.

Each command reads the whole scene, applies one edit and writes it back.
Nothing is written when the scene file does not exist.

Examples:
  scenegen add-dummies --count 500
  scenegen add-rigidbodies --scene scenes/level2.scene
  scenegen randomize --seed 42
  scenegen remove-rigidbodies --dry-run
  scenegen info`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.OutOrStdout())
		},
	}

	pf := root.PersistentFlags()
	a.flags.Register(pf)
	pf.BoolVar(&a.dryRun, "dry-run", false, "Report what would change without writing")
	pf.Uint64Var(&a.seed, "seed", 0, "Random seed (0 = time based)")

	root.AddCommand(
		newAddDummiesCmd(a),
		newAddRigidbodiesCmd(a),
		newRandomizeCmd(a),
		newRemoveRigidbodiesCmd(a),
		newInfoCmd(a),
		newConfigCmd(a),
	)
	return root
}

// Execute runs the CLI against the host filesystem and returns the exit code.
func Execute() int {
	return run(NewRootCmd(scene.NewOSStore()))
}

// run executes root and flushes the logger whether or not the command failed.
func run(root *cobra.Command) int {
	defer logger.Sync()

	if err := root.Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		reportError(root.ErrOrStderr(), err)
		return 1
	}
	return 0
}

func reportError(w io.Writer, err error) {
	var nf *scene.NotFoundError
	if errors.As(err, &nf) {
		fmt.Fprintf(w, "Scene file not found: %s\n", nf.Path)
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

// setup loads config and installs the logger.
func (a *app) setup(out io.Writer) error {
	cfg, err := config.Load(a.fs, &a.flags)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile, out); err != nil {
		return err
	}
	logger.Debug("config loaded", zap.String("scene", cfg.Scene.Path), zap.Bool("dry_run", a.dryRun))
	if a.dryRun {
		logger.Warn("dry run, no files will be written")
	}
	return nil
}

func (a *app) runner() *edit.Runner {
	seed := a.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Debug("random seed", zap.Uint64("seed", seed))

	r := edit.NewRunner(a.store, a.cfg, rand.New(rand.NewPCG(seed, seed>>1|1)), logger.Log)
	r.DryRun = a.dryRun
	return r
}
