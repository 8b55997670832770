package edit

import (
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/Faultbox/scenegen/internal/config"
	"github.com/Faultbox/scenegen/pkg/scene"
)

// Result reports what a single pass did.
type Result struct {
	Path     string
	Count    int // entities appended, rigidbodies inserted/removed, or dummies renamed
	MaxIndex int // highest existing Dummy index (Append only)
	Start    int // first appended index (Append only)
	DryRun   bool
}

// Runner performs one read-modify-write pass per call against Config.Scene.Path.
// Nothing is written when the scene file is missing.
type Runner struct {
	Store  *scene.Store
	Config *config.Config
	Rand   *rand.Rand
	Log    *zap.Logger
	DryRun bool
}

// NewRunner creates a Runner. A nil logger discards output.
func NewRunner(store *scene.Store, cfg *config.Config, rng *rand.Rand, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{Store: store, Config: cfg, Rand: rng, Log: log}
}

func (r *Runner) path() string {
	return r.Config.Scene.Path
}

func (r *Runner) read() ([]string, error) {
	r.Log.Info("processing scene", zap.String("path", r.path()))
	lines, err := r.Store.ReadLines(r.path())
	if err != nil {
		return nil, err
	}
	r.Log.Debug("scene loaded", zap.Int("lines", len(lines)))
	return lines, nil
}

func (r *Runner) write(lines []string) error {
	if r.DryRun {
		r.Log.Info("dry run, scene left unchanged", zap.String("path", r.path()))
		return nil
	}
	r.Log.Info("writing scene", zap.String("path", r.path()), zap.Int("lines", len(lines)))
	return r.Store.WriteLines(r.path(), lines)
}

// Append adds Config.Dummies.Count new Dummy blocks after the highest existing index.
// The blocks are appended to the file rather than rewriting it.
func (r *Runner) Append() (Result, error) {
	lines, err := r.read()
	if err != nil {
		return Result{}, err
	}

	opts := AppendOptionsFromConfig(r.Config)
	opts.LineEnding = scene.DetectLineEnding(lines)
	maxIndex := MaxDummyIndex(lines)
	res := Result{
		Path:     r.path(),
		Count:    opts.Count,
		MaxIndex: maxIndex,
		Start:    maxIndex + 1,
		DryRun:   r.DryRun,
	}
	r.Log.Info("appending dummies",
		zap.Int("max_index", maxIndex),
		zap.Int("start", res.Start),
		zap.Int("count", opts.Count),
	)

	blocks := DummyBlocks(res.Start, opts, r.Rand)
	if r.DryRun || len(blocks) == 0 {
		return res, nil
	}
	if err := r.Store.AppendLines(r.path(), blocks); err != nil {
		return Result{}, err
	}
	return res, nil
}

// Insert adds the configured rigidbody to Dummy blocks that lack one.
func (r *Runner) Insert() (Result, error) {
	lines, err := r.read()
	if err != nil {
		return Result{}, err
	}

	out, n := InsertRigidbodies(lines, r.Config.Entity.Rigidbody)
	r.Log.Debug("rigidbodies inserted", zap.Int("count", n))
	if err := r.write(out); err != nil {
		return Result{}, err
	}
	return Result{Path: r.path(), Count: n, DryRun: r.DryRun}, nil
}

// Randomize renumbers Dummy entities and re-samples their transforms.
func (r *Runner) Randomize() (Result, error) {
	lines, err := r.read()
	if err != nil {
		return Result{}, err
	}

	out, n := Randomize(lines, RandomizeOptionsFromConfig(r.Config), r.Rand)
	r.Log.Debug("dummies randomized", zap.Int("count", n))
	if err := r.write(out); err != nil {
		return Result{}, err
	}
	return Result{Path: r.path(), Count: n, DryRun: r.DryRun}, nil
}

// Remove strips every line carrying the configured rigidbody.
func (r *Runner) Remove() (Result, error) {
	lines, err := r.read()
	if err != nil {
		return Result{}, err
	}

	out, n := RemoveRigidbodies(lines, r.Config.Entity.Rigidbody)
	r.Log.Debug("rigidbodies removed", zap.Int("count", n))
	if err := r.write(out); err != nil {
		return Result{}, err
	}
	return Result{Path: r.path(), Count: n, DryRun: r.DryRun}, nil
}

// Inspect reports scene statistics without writing.
func (r *Runner) Inspect() (Summary, error) {
	lines, err := r.read()
	if err != nil {
		return Summary{}, err
	}
	return Stats(lines, r.Config.Entity.Rigidbody), nil
}
