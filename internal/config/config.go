// Package config handles scenegen configuration loading and management.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/Faultbox/scenegen/pkg/math"
	"github.com/Faultbox/scenegen/pkg/scene"
)

// Config holds all tool settings.
type Config struct {
	Scene     SceneConfig     `yaml:"scene"`
	Dummies   DummiesConfig   `yaml:"dummies"`
	Randomize RandomizeConfig `yaml:"randomize"`
	Entity    EntityConfig    `yaml:"entity"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// SceneConfig holds the target scene file.
type SceneConfig struct {
	Path string `yaml:"path" validate:"required"`
}

// DummiesConfig holds settings for appending new Dummy entities.
type DummiesConfig struct {
	Count    int      `yaml:"count" validate:"gte=0"`
	Position math.Box `yaml:"position"`
}

// RandomizeConfig holds settings for re-placing existing Dummy entities.
type RandomizeConfig struct {
	Position math.Box `yaml:"position"`
}

// EntityConfig holds the fixed lines written into every managed entity.
type EntityConfig struct {
	Rotation  math.Range     `yaml:"rotation"`
	Scale     float64        `yaml:"scale" validate:"gt=0"`
	Renderer  RendererConfig `yaml:"renderer"`
	Material  string         `yaml:"material" validate:"required"`  // body after MATERIAL
	Rigidbody string         `yaml:"rigidbody" validate:"required"` // full RIGIDBODY line
}

// RendererConfig names the model and shader of the RENDERER line.
type RendererConfig struct {
	Model  string `yaml:"model" validate:"required"`
	Shader string `yaml:"shader" validate:"required"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" validate:"oneof=debug info warn error"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the values the tools have always used.
func Default() *Config {
	return &Config{
		Scene: SceneConfig{
			Path: "scenes/game.scene",
		},
		Dummies: DummiesConfig{
			Count: 1000,
			Position: math.Box{
				X: math.NewRange(-100, 100),
				Y: math.NewRange(10, 150),
				Z: math.NewRange(-100, 100),
			},
		},
		Randomize: RandomizeConfig{
			Position: math.Box{
				X: math.NewRange(-10, 10),
				Y: math.NewRange(10, 50),
				Z: math.NewRange(-10, 10),
			},
		},
		Entity: EntityConfig{
			Rotation: math.NewHalfOpenRange(0, 360),
			Scale:    0.01,
			Renderer: RendererConfig{
				Model:  "dummyModel",
				Shader: "phongLitNoShadowShader",
			},
			Material:  "PHONG 32 0.5 0.5 0.5",
			Rigidbody: scene.DefaultRigidbodyLine,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(validateRange, math.Range{})
	return v
}

// validateRange rejects ranges with nothing to sample, such as [5,5).
func validateRange(sl validator.StructLevel) {
	r := sl.Current().Interface().(math.Range)
	if r.Empty() {
		sl.ReportError(r.Max, "Max", "Max", "nonempty", r.String())
	}
}

// Validate checks field constraints such as non-empty paths and ordered ranges.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
