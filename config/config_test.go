package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.SRTMDir != "srtmdata" {
		t.Errorf("SRTMDir = %q, want srtmdata", cfg.SRTMDir)
	}
	if cfg.GMTEDDir != "gmteddata" {
		t.Errorf("GMTEDDir = %q, want gmteddata", cfg.GMTEDDir)
	}
	if cfg.SRTMBaseURL == "" || cfg.GMTEDBaseURL == "" {
		t.Error("default base URLs must not be empty")
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demget.yml")
	body := `
srtm_dir: /data/srtm
timeout: 90s
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}

	if cfg.SRTMDir != "/data/srtm" {
		t.Errorf("SRTMDir = %q, want /data/srtm", cfg.SRTMDir)
	}
	if cfg.Timeout != 90*time.Second {
		t.Errorf("Timeout = %v, want 90s", cfg.Timeout)
	}
	// Unset fields keep their defaults.
	if cfg.GMTEDDir != "gmteddata" {
		t.Errorf("GMTEDDir = %q, want default gmteddata", cfg.GMTEDDir)
	}
}

func TestLoadFromFileRejectsBadTimeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demget.yml")
	if err := os.WriteFile(path, []byte("timeout: soon\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFromFile(path); err == nil {
		t.Error("LoadFromFile succeeded, want timeout parse error")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DEMGET_GMTED_DIR", "/data/gmted")
	t.Setenv("DEMGET_TIMEOUT", "2m")

	cfg := Default()
	if err := cfg.LoadFromEnv(); err != nil {
		t.Fatalf("LoadFromEnv: %v", err)
	}

	if cfg.GMTEDDir != "/data/gmted" {
		t.Errorf("GMTEDDir = %q, want /data/gmted", cfg.GMTEDDir)
	}
	if cfg.Timeout != 2*time.Minute {
		t.Errorf("Timeout = %v, want 2m", cfg.Timeout)
	}
}

func TestLoadExplicitPathMustExist(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("Load succeeded, want error for missing explicit config file")
	}
}

func TestLoadWithoutFileFallsBackToDefaults(t *testing.T) {
	// Run from an empty directory so no demget.yml is picked up.
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}
}
