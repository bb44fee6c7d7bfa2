package config

import (
	"os"
	"path/filepath"
	"testing"

	"go.viam.com/test"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	test.That(t, cfg.Validate(), test.ShouldBeNil)
}

func TestValidateAggregatesFailures(t *testing.T) {
	cfg := World{
		PixelsPerMeter: -1,
		TickIntervalUS: 0,
		Bounds:         Bounds{MinX: 5, MaxX: 1, MinY: 0, MaxY: 0},
		LogLevel:       "nonsense",
	}
	err := cfg.Validate()
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "pixels_per_meter")
	test.That(t, err.Error(), test.ShouldContainSubstring, "tick_interval_us")
	test.That(t, err.Error(), test.ShouldContainSubstring, "max_x")
}

func TestLoadParsesYAMLAndAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world.yaml")
	contents := "pixels_per_meter: 50\nlog_level: debug\n"
	test.That(t, os.WriteFile(path, []byte(contents), 0o600), test.ShouldBeNil)

	cfg, err := Load(path)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cfg.PixelsPerMeter, test.ShouldEqual, 50.0)
	test.That(t, cfg.TickIntervalUS, test.ShouldEqual, int64(10_000))
	test.That(t, cfg.Level(), test.ShouldEqual, 0)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	test.That(t, err, test.ShouldNotBeNil)
}
