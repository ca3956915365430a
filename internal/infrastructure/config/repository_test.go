package config_test

import (
	"path/filepath"
	"testing"

	"pdfshrink/internal/domain/entities"
	"pdfshrink/internal/infrastructure/config"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	repo := config.NewRepository()

	cfg, err := repo.Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Mode != "web" {
		t.Errorf("Expected default mode %q, got %q", "web", cfg.Mode)
	}
	if cfg.Compression.Algorithm != entities.AlgorithmStructural {
		t.Errorf("Expected default algorithm %q, got %q", entities.AlgorithmStructural, cfg.Compression.Algorithm)
	}
	if cfg.Compression.RasterScale != 0.7 {
		t.Errorf("Expected default raster scale 0.7, got %f", cfg.Compression.RasterScale)
	}
	if cfg.Compression.RasterQuality != 80 {
		t.Errorf("Expected default raster quality 80, got %d", cfg.Compression.RasterQuality)
	}
	if err := cfg.Compression.Validate(); err != nil {
		t.Errorf("Default config must be valid, got %v", err)
	}
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	repo := config.NewRepository()
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	original := &entities.Config{
		Mode: "tui",
		Compression: entities.CompressionConfig{
			Algorithm:     entities.AlgorithmRaster,
			RasterScale:   0.5,
			RasterQuality: 60,
		},
		Output: entities.OutputConfig{
			LogLevel:    "debug",
			LogToFile:   true,
			LogFileName: "test.log",
		},
	}

	if err := repo.Save(configPath, original); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}

	loaded, err := repo.Load(configPath)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if loaded.Mode != original.Mode {
		t.Errorf("Mode = %q, want %q", loaded.Mode, original.Mode)
	}
	if loaded.Compression.Algorithm != original.Compression.Algorithm {
		t.Errorf("Algorithm = %q, want %q", loaded.Compression.Algorithm, original.Compression.Algorithm)
	}
	if loaded.Compression.RasterScale != original.Compression.RasterScale {
		t.Errorf("RasterScale = %f, want %f", loaded.Compression.RasterScale, original.Compression.RasterScale)
	}
	if loaded.Output.LogLevel != original.Output.LogLevel {
		t.Errorf("LogLevel = %q, want %q", loaded.Output.LogLevel, original.Output.LogLevel)
	}
}
