// Package edit implements the bulk edits applied to scene files: appending
// Dummy entities, inserting and removing capsule rigidbodies, and re-placing
// existing Dummies. Each edit is a pure function over terminator-preserving
// lines; Runner wraps them in a single read-modify-write pass.
package edit

import (
	"github.com/Faultbox/scenegen/internal/config"
	"github.com/Faultbox/scenegen/pkg/math"
	"github.com/Faultbox/scenegen/pkg/scene"
)

// Template holds the fixed lines and sampling ranges shared by every managed entity.
type Template struct {
	Rotation  math.Range
	Scale     float64
	Renderer  string // full RENDERER line
	Material  string // full MATERIAL line
	Rigidbody string // full RIGIDBODY line
}

// AppendOptions configures AppendDummies.
type AppendOptions struct {
	Count      int
	Position   math.Box
	Template   Template
	LineEnding string // terminator for appended lines; empty means Newline
}

// RandomizeOptions configures Randomize.
type RandomizeOptions struct {
	Position math.Box
	Rotation math.Range
	Scale    float64
}

// TemplateFromConfig builds the entity template from cfg.
func TemplateFromConfig(cfg *config.Config) Template {
	return Template{
		Rotation:  cfg.Entity.Rotation,
		Scale:     cfg.Entity.Scale,
		Renderer:  scene.RendererLine(cfg.Entity.Renderer.Model, cfg.Entity.Renderer.Shader),
		Material:  scene.MaterialLine(cfg.Entity.Material),
		Rigidbody: cfg.Entity.Rigidbody,
	}
}

// AppendOptionsFromConfig builds appender options from cfg.
func AppendOptionsFromConfig(cfg *config.Config) AppendOptions {
	return AppendOptions{
		Count:    cfg.Dummies.Count,
		Position: cfg.Dummies.Position,
		Template: TemplateFromConfig(cfg),
	}
}

// RandomizeOptionsFromConfig builds randomizer options from cfg.
func RandomizeOptionsFromConfig(cfg *config.Config) RandomizeOptions {
	return RandomizeOptions{
		Position: cfg.Randomize.Position,
		Rotation: cfg.Entity.Rotation,
		Scale:    cfg.Entity.Scale,
	}
}

// DefaultAppendOptions returns the appender options of the default config.
func DefaultAppendOptions() AppendOptions {
	return AppendOptionsFromConfig(config.Default())
}

// DefaultRandomizeOptions returns the randomizer options of the default config.
func DefaultRandomizeOptions() RandomizeOptions {
	return RandomizeOptionsFromConfig(config.Default())
}
