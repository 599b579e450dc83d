package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"ivaPrime/pkg/primer"
	"ivaPrime/pkg/tm"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(New(), "")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Settings != primer.DefaultSettings() {
		t.Errorf("settings %+v, want defaults %+v", cfg.Settings, primer.DefaultSettings())
	}
	if !cfg.Circular {
		t.Error("circular should default to true")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ivaPrime.yaml")
	data := []byte(`symmetric-primers: false
hr-tm: 52.5
organism: Saccharomyces cerevisiae
circular: false
scale-codon-frequencies: false
tm:
  algorithm: nnSantaLucia
  primer-concentration-nm: 250
  salt-concentration-m: 0.05
  salt-correction: Owczarzy
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(New(), path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Symmetric || cfg.HRTm != 52.5 || cfg.Organism != "Saccharomyces cerevisiae" || cfg.Circular {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.ScaleCodons {
		t.Error("scale-codon-frequencies: false not applied")
	}
	if cfg.HRMinLength != 18 || cfg.TBRTm != 60 {
		t.Errorf("defaults lost: %+v", cfg)
	}
	want := tm.Config{
		Algorithm:             tm.NNSantaLucia,
		PrimerConcentrationNM: 250,
		SaltConcentrationM:    0.05,
		SaltCorrection:        tm.Owczarzy,
		Symmetry:              tm.ReverseComplementSymmetry,
	}
	if cfg.Tm != want {
		t.Errorf("tm %+v, want %+v", cfg.Tm, want)
	}
}

func TestLoadOverride(t *testing.T) {
	v := New()
	v.Set("tbr-tm", 58)
	t.Setenv("IVAPRIME_HR_MIN_LENGTH", "20")
	cfg, err := Load(v, "")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TBRTm != 58 || cfg.HRMinLength != 20 {
		t.Errorf("overrides not applied: tbr-tm %v hr-min-length %v", cfg.TBRTm, cfg.HRMinLength)
	}
}

func TestLoadInvalid(t *testing.T) {
	v := New()
	v.Set("tm.algorithm", "primer3")
	if _, err := Load(v, ""); !errors.Is(err, tm.ErrUnknownAlgorithm) {
		t.Errorf("want ErrUnknownAlgorithm, got %v", err)
	}
	if _, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing config file should fail")
	}
}
