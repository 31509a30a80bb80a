package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/meshseg/config"
	"github.com/katalvlaran/meshseg/meshio"
	"github.com/katalvlaran/meshseg/render"
	"github.com/katalvlaran/meshseg/segment"
)

// noFlags is a Flags value that overrides nothing.
var noFlags = config.Flags{Source: -1, Sink: -1}

func write(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_JSONAndYAML(t *testing.T) {
	jsonPath := write(t, "run.json", `{
		"mesh": "part.stl",
		"percentile": 0.8,
		"curvature": "mean",
		"source": 3,
		"center": false
	}`)
	yamlPath := write(t, "run.yaml", `
mesh: part.stl
percentile: 0.8
curvature: mean
source: 3
center: false
`)
	for _, path := range []string{jsonPath, yamlPath} {
		cfg, err := config.Load(path)
		require.NoError(t, err, path)
		require.Equal(t, "part.stl", cfg.Mesh)
		require.Equal(t, 0.8, cfg.Percentile)
		require.Equal(t, "mean", cfg.Curvature)
		require.NotNil(t, cfg.Source)
		require.Equal(t, 3, *cfg.Source)
		require.Nil(t, cfg.Sink)
		require.NotNil(t, cfg.Center)
		require.False(t, *cfg.Center)
	}
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(write(t, "run.toml", "mesh = 'x'"))
	require.ErrorIs(t, err, config.ErrUnknownFormat)

	_, err = config.Load(write(t, "typo.json", `{"percentil": 0.5}`))
	require.Error(t, err)
	_, err = config.Load(write(t, "typo.yml", "percentil: 0.5\n"))
	require.Error(t, err)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	cfg, err := config.Load(write(t, "empty.yaml", ""))
	require.NoError(t, err)
	require.Empty(t, cfg.Mesh)
}

func TestResolve_Defaults(t *testing.T) {
	var cfg config.Config
	cfg.Resolve(noFlags)
	require.NoError(t, cfg.Validate())

	require.Equal(t, config.DefaultShape, cfg.Shape)
	require.Equal(t, config.DefaultCurvature, cfg.Curvature)
	require.Equal(t, segment.DefaultFraction, cfg.Percentile)
	require.Equal(t, render.DefaultWidth, cfg.Width)
	require.Equal(t, meshio.DefaultWeldTolerance, cfg.WeldTolerance)
	require.True(t, *cfg.Center)
	require.Nil(t, cfg.Source)
}

// TestResolve_Precedence checks defaults < file < flags.
func TestResolve_Precedence(t *testing.T) {
	cfg, err := config.Load(write(t, "run.yaml", "curvature: mean\nislands: enclosed\nwidth: 100\n"))
	require.NoError(t, err)

	flags := noFlags
	flags.Curvature = "gaussian"
	flags.Sink = 7
	cfg.Resolve(flags)

	require.Equal(t, "gaussian", cfg.Curvature, "flag beats file")
	require.Equal(t, "enclosed", cfg.Islands, "file beats default")
	require.Equal(t, 100, cfg.Width)
	require.Equal(t, config.DefaultAlgorithm, cfg.Algorithm, "default fills the gap")
	require.Equal(t, 7, *cfg.Sink)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *config.Config){
		"shape":      func(c *config.Config) { c.Shape = "torus" },
		"curvature":  func(c *config.Config) { c.Curvature = "ricci" },
		"islands":    func(c *config.Config) { c.Islands = "twice" },
		"algorithm":  func(c *config.Config) { c.Algorithm = "push-relabel" },
		"percentile": func(c *config.Config) { c.Percentile = 1.5 },
		"color":      func(c *config.Config) { c.Color = "rainbow" },
		"log level":  func(c *config.Config) { c.LogLevel = "loud" },
		"pick":       func(c *config.Config) { c.PickSource = "1,2" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			var cfg config.Config
			cfg.Resolve(noFlags)
			mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}

	// An unknown shape does not matter once a mesh file is given.
	cfg := config.Config{Mesh: "part.obj", Shape: "torus"}
	cfg.Resolve(noFlags)
	require.NoError(t, cfg.Validate())
}

func TestAccessors(t *testing.T) {
	cfg := config.Config{Shape: "fold", Resolution: 5, LogLevel: "debug"}
	cfg.Resolve(noFlags)

	opts, err := cfg.SegmentOptions()
	require.NoError(t, err)
	require.Len(t, opts, 6)

	ctor, err := cfg.ShapeConstructor()
	require.NoError(t, err)
	require.NotNil(t, ctor)

	require.Len(t, cfg.MeshOptions(), 2)
	require.Len(t, cfg.RenderOptions(), 3)

	level, err := cfg.Level()
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, level)

	cfg.LogLevel = "off"
	level, err = cfg.Level()
	require.NoError(t, err)
	require.Greater(t, level, slog.LevelError)
}

func TestParsePoint(t *testing.T) {
	p, err := config.ParsePoint(" 1, -2.5 ,3e1")
	require.NoError(t, err)
	require.Equal(t, r3.Vec{X: 1, Y: -2.5, Z: 30}, p)

	for _, bad := range []string{"", "1,2", "1,2,x", "1,2,NaN", "1,2,3,4"} {
		_, err := config.ParsePoint(bad)
		require.ErrorIs(t, err, config.ErrInvalid, bad)
	}
}
