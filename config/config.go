// Package config holds the settings of a meshseg command-line run.
//
// A Config is read from a JSON or YAML file (chosen by extension), then
// Resolve applies command-line overrides and fills the remaining defaults.
// Precedence is defaults < file < flags. The typed accessors translate the
// string settings into the option lists of the library packages.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/meshseg/builder"
	"github.com/katalvlaran/meshseg/curvature"
	"github.com/katalvlaran/meshseg/flow"
	"github.com/katalvlaran/meshseg/meshio"
	"github.com/katalvlaran/meshseg/render"
	"github.com/katalvlaran/meshseg/segment"
)

var (
	// ErrUnknownFormat is returned by Load for an extension other than
	// .json, .yaml or .yml.
	ErrUnknownFormat = errors.New("config: unknown file format")

	// ErrInvalid is returned by Validate and the accessors for a setting
	// that cannot be used.
	ErrInvalid = errors.New("config: invalid setting")
)

// Defaults applied by Resolve.
const (
	DefaultShape      = "box"
	DefaultResolution = 8
	DefaultFoldAngle  = 90.0
	DefaultCurvature  = "gaussian"
	DefaultIslands    = "single"
	DefaultAlgorithm  = "edmonds-karp"
	DefaultColor      = "region"
	DefaultLogLevel   = "warn"
	DefaultAzimuth    = 30.0
	DefaultElevation  = 25.0
)

// Config holds all settings of one run.
type Config struct {
	// Input: a mesh file, or a procedural shape when Mesh is empty.
	Mesh          string  `json:"mesh" yaml:"mesh"`
	Shape         string  `json:"shape" yaml:"shape"`
	Resolution    int     `json:"resolution" yaml:"resolution"`
	FoldAngle     float64 `json:"fold_angle" yaml:"fold_angle"` // degrees
	WeldTolerance float64 `json:"weld_tolerance" yaml:"weld_tolerance"`
	Center        *bool   `json:"center,omitempty" yaml:"center,omitempty"`

	// Terminals: vertex indices, or "x,y,z" points snapped to the nearest
	// vertex. A point wins over an index.
	Source     *int   `json:"source,omitempty" yaml:"source,omitempty"`
	Sink       *int   `json:"sink,omitempty" yaml:"sink,omitempty"`
	PickSource string `json:"pick_source" yaml:"pick_source"`
	PickSink   string `json:"pick_sink" yaml:"pick_sink"`

	// Segmentation
	Percentile    float64 `json:"percentile" yaml:"percentile"`
	Curvature     string  `json:"curvature" yaml:"curvature"`
	Islands       string  `json:"islands" yaml:"islands"`
	Algorithm     string  `json:"algorithm" yaml:"algorithm"`
	CapacityScale float64 `json:"capacity_scale" yaml:"capacity_scale"`
	InfiniteCost  float64 `json:"infinite_cost" yaml:"infinite_cost"`

	// Output: preview image (empty disables rendering) and optional mesh
	// export of the input after centring.
	Output      string  `json:"output" yaml:"output"`
	Export      string  `json:"export" yaml:"export"`
	Width       int     `json:"width" yaml:"width"`
	Height      int     `json:"height" yaml:"height"`
	Supersample int     `json:"supersample" yaml:"supersample"`
	Azimuth     float64 `json:"azimuth" yaml:"azimuth"`     // degrees
	Elevation   float64 `json:"elevation" yaml:"elevation"` // degrees
	Color       string  `json:"color" yaml:"color"`         // "region" or "energy"

	LogLevel string `json:"log_level" yaml:"log_level"`
}

// Flags holds CLI flag values that override config file settings. Zero
// values, empty strings and negative terminals mean "not given".
type Flags struct {
	Mesh       string
	Shape      string
	Resolution int
	Source     int
	Sink       int
	PickSource string
	PickSink   string
	Percentile float64
	Curvature  string
	Islands    string
	Algorithm  string
	Output     string
	Export     string
	Width      int
	Height     int
	Color      string
	LogLevel   string
}

// Load reads a JSON or YAML config file. Unknown keys are rejected so typos
// do not pass silently. Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&cfg)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&cfg)
		if errors.Is(err, io.EOF) {
			err = nil // empty document
		}
	default:
		return Config{}, fmt.Errorf("config: %s: %w", path, ErrUnknownFormat)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve applies CLI overrides, then fills every empty field with its
// default.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	override(&c.Mesh, flags.Mesh)
	override(&c.Shape, flags.Shape)
	override(&c.PickSource, flags.PickSource)
	override(&c.PickSink, flags.PickSink)
	override(&c.Curvature, flags.Curvature)
	override(&c.Islands, flags.Islands)
	override(&c.Algorithm, flags.Algorithm)
	override(&c.Output, flags.Output)
	override(&c.Export, flags.Export)
	override(&c.Color, flags.Color)
	override(&c.LogLevel, flags.LogLevel)
	if flags.Resolution > 0 {
		c.Resolution = flags.Resolution
	}
	if flags.Source >= 0 {
		v := flags.Source
		c.Source = &v
	}
	if flags.Sink >= 0 {
		v := flags.Sink
		c.Sink = &v
	}
	if flags.Percentile > 0 {
		c.Percentile = flags.Percentile
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}

	// Defaults
	fill(&c.Shape, DefaultShape)
	fill(&c.Curvature, DefaultCurvature)
	fill(&c.Islands, DefaultIslands)
	fill(&c.Algorithm, DefaultAlgorithm)
	fill(&c.Color, DefaultColor)
	fill(&c.LogLevel, DefaultLogLevel)
	if c.Resolution <= 0 {
		c.Resolution = DefaultResolution
	}
	if c.FoldAngle == 0 {
		c.FoldAngle = DefaultFoldAngle
	}
	if c.WeldTolerance <= 0 {
		c.WeldTolerance = meshio.DefaultWeldTolerance
	}
	if c.Center == nil {
		on := true
		c.Center = &on
	}
	if c.Percentile <= 0 {
		c.Percentile = segment.DefaultFraction
	}
	if c.CapacityScale <= 0 {
		c.CapacityScale = segment.DefaultOptions().CapacityScale
	}
	if c.InfiniteCost <= 0 {
		c.InfiniteCost = segment.DefaultOptions().InfiniteCost
	}
	if c.Width <= 0 {
		c.Width = render.DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = render.DefaultHeight
	}
	if c.Supersample <= 0 {
		c.Supersample = render.DefaultSupersample
	}
	if c.Azimuth == 0 {
		c.Azimuth = DefaultAzimuth
	}
	if c.Elevation == 0 {
		c.Elevation = DefaultElevation
	}
}

// override stores v in *dst unless v is empty.
func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// fill stores def in *dst when *dst is empty.
func fill(dst *string, def string) {
	if *dst == "" {
		*dst = def
	}
}

// Validate checks every enumerated and ranged setting.
func (c *Config) Validate() error {
	if c.Mesh == "" {
		if _, err := builder.ParseShape(c.Shape); err != nil {
			return fmt.Errorf("%w: shape: %w", ErrInvalid, err)
		}
	}
	if _, err := c.SegmentOptions(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.Color {
	case "region", "energy":
	default:
		return fmt.Errorf("%w: color %q (want region or energy)", ErrInvalid, c.Color)
	}
	for _, p := range []string{c.PickSource, c.PickSink} {
		if p == "" {
			continue
		}
		if _, err := ParsePoint(p); err != nil {
			return err
		}
	}
	return nil
}

// SegmentOptions translates the segmentation settings.
func (c *Config) SegmentOptions() ([]segment.Option, error) {
	kind, err := curvature.ParseKind(c.Curvature)
	if err != nil {
		return nil, fmt.Errorf("%w: curvature: %w", ErrInvalid, err)
	}
	islands, err := segment.ParseIslandMode(c.Islands)
	if err != nil {
		return nil, fmt.Errorf("%w: islands: %w", ErrInvalid, err)
	}
	algo, err := flow.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("%w: algorithm: %w", ErrInvalid, err)
	}
	if !(c.Percentile > 0 && c.Percentile <= 1) {
		return nil, fmt.Errorf("%w: percentile %v outside (0,1]", ErrInvalid, c.Percentile)
	}
	return []segment.Option{
		segment.WithFraction(c.Percentile),
		segment.WithKind(kind),
		segment.WithIslands(islands),
		segment.WithAlgorithm(algo),
		segment.WithCapacityScale(c.CapacityScale),
		segment.WithInfiniteCost(c.InfiniteCost),
	}, nil
}

// MeshOptions translates the import settings.
func (c *Config) MeshOptions() []meshio.Option {
	center := c.Center == nil || *c.Center
	return []meshio.Option{
		meshio.WithWeldTolerance(c.WeldTolerance),
		meshio.WithCenter(center),
	}
}

// ShapeConstructor returns the procedural mesh selected by Shape.
func (c *Config) ShapeConstructor() (builder.Constructor, error) {
	name, err := builder.ParseShape(c.Shape)
	if err != nil {
		return nil, fmt.Errorf("%w: shape: %w", ErrInvalid, err)
	}
	return builder.Shape(name, c.Resolution, c.FoldAngle*math.Pi/180)
}

// RenderOptions translates the preview settings.
func (c *Config) RenderOptions() []render.Option {
	return []render.Option{
		render.WithSize(c.Width, c.Height),
		render.WithSupersample(c.Supersample),
		render.WithView(c.Azimuth*math.Pi/180, c.Elevation*math.Pi/180),
	}
}

// Level returns the slog level of LogLevel. "off" maps to a level above
// Error, so nothing is logged.
func (c *Config) Level() (level slog.Level, err error) {
	switch strings.ToLower(c.LogLevel) {
	case "off", "none":
		return slog.LevelError + 4, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
	}
	return level, nil
}

// ParsePoint parses "x,y,z" into a vector.
func ParsePoint(s string) (r3.Vec, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return r3.Vec{}, fmt.Errorf("%w: point %q (want x,y,z)", ErrInvalid, s)
	}
	var c [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return r3.Vec{}, fmt.Errorf("%w: point %q", ErrInvalid, s)
		}
		c[i] = v
	}
	return r3.Vec{X: c[0], Y: c[1], Z: c[2]}, nil
}
