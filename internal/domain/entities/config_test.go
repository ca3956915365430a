package entities_test

import (
	"testing"

	"pdfshrink/internal/domain/entities"
)

func TestCompressionConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  entities.CompressionConfig
		wantErr error
	}{
		{
			name:    "Structural algorithm",
			config:  entities.CompressionConfig{Algorithm: entities.AlgorithmStructural},
			wantErr: nil,
		},
		{
			name: "Raster with valid settings",
			config: entities.CompressionConfig{
				Algorithm:     entities.AlgorithmRaster,
				RasterScale:   0.7,
				RasterQuality: 80,
			},
			wantErr: nil,
		},
		{
			name:    "Unknown algorithm",
			config:  entities.CompressionConfig{Algorithm: "ghostscript"},
			wantErr: entities.ErrUnknownAlgorithm,
		},
		{
			name: "Raster scale out of range",
			config: entities.CompressionConfig{
				Algorithm:     entities.AlgorithmRaster,
				RasterScale:   1.5,
				RasterQuality: 80,
			},
			wantErr: entities.ErrInvalidRasterScale,
		},
		{
			name: "Raster scale zero",
			config: entities.CompressionConfig{
				Algorithm:     entities.AlgorithmRaster,
				RasterScale:   0,
				RasterQuality: 80,
			},
			wantErr: entities.ErrInvalidRasterScale,
		},
		{
			name: "Raster quality too low",
			config: entities.CompressionConfig{
				Algorithm:     entities.AlgorithmRaster,
				RasterScale:   0.7,
				RasterQuality: 5,
			},
			wantErr: entities.ErrInvalidRasterQuality,
		},
		{
			name: "Scale ignored for structural",
			config: entities.CompressionConfig{
				Algorithm:   entities.AlgorithmStructural,
				RasterScale: 99,
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.config.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
