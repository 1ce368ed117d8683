package batch

import (
	"os"
	"path/filepath"
	"testing"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	return Config{
		Width:        32,
		Height:       24,
		Frames:       3,
		TimeStep:     16,
		FrameDelayMS: 33,
		Supersample:  1,
		Workers:      2,
		OutputDir:    t.TempDir(),
		Format:       "tga",
	}
}

func TestRunWritesEveryFrame(t *testing.T) {
	cfg := testConfig(t)

	results, err := Run(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != cfg.Frames {
		t.Fatalf("got %d results, want %d", len(results), cfg.Frames)
	}

	for _, r := range results {
		if !r.Success {
			t.Fatalf("frame %d failed: %s", r.Frame, r.Error)
		}
		info, err := os.Stat(r.Path)
		if err != nil {
			t.Fatalf("frame %d output missing: %v", r.Frame, err)
		}
		if info.Size() == 0 {
			t.Fatalf("frame %d output empty", r.Frame)
		}
	}

	if filepath.Base(results[1].Path) != "frame_0001.tga" {
		t.Errorf("frame 1 named %s", filepath.Base(results[1].Path))
	}
}

func TestRunSupersampled(t *testing.T) {
	cfg := testConfig(t)
	cfg.Frames = 1
	cfg.Supersample = 2
	cfg.Workers = 1

	results, err := Run(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !results[0].Success {
		t.Fatalf("supersampled frame failed: %s", results[0].Error)
	}
}

func TestRunAnimation(t *testing.T) {
	cfg := testConfig(t)
	out := filepath.Join(cfg.OutputDir, "animation.webp")

	if err := RunAnimation(cfg, out); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(out)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("animation file empty")
	}
}
