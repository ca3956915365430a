package entities

// Config представляет конфигурацию приложения
type Config struct {
	Mode        string            `yaml:"mode"` // web или tui
	Server      ServerConfig      `yaml:"server"`
	Compression CompressionConfig `yaml:"compression"`
	Output      OutputConfig      `yaml:"output"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	ListenAddr             string `yaml:"listen_addr"`
	ReadTimeoutSeconds     int    `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds    int    `yaml:"write_timeout_seconds"`
	IdleTimeoutSeconds     int    `yaml:"idle_timeout_seconds"`
	ShutdownTimeoutSeconds int    `yaml:"shutdown_timeout_seconds"`
}

// CompressionConfig настройки сжатия
type CompressionConfig struct {
	// Алгоритм: structural (переупаковка объектов, по умолчанию)
	// или raster (растеризация страниц, экспериментальный)
	Algorithm string `yaml:"algorithm"`

	// Настройки растровой стратегии
	RasterScale   float64 `yaml:"raster_scale"`   // линейный масштаб рендера
	RasterQuality int     `yaml:"raster_quality"` // качество JPEG (10-100)

	// Лицензионный ключ для UniPDF (нужен только растровой стратегии)
	UniPDFLicenseKey string `yaml:"unipdf_license_key"`
}

// OutputConfig настройки вывода
type OutputConfig struct {
	LogLevel     string `yaml:"log_level"`
	LogToFile    bool   `yaml:"log_to_file"`
	LogFileName  string `yaml:"log_file_name"`
	LogMaxSizeMB int    `yaml:"log_max_size_mb"`
}

// Поддерживаемые алгоритмы сжатия
const (
	AlgorithmStructural = "structural"
	AlgorithmRaster     = "raster"
)

// Validate проверяет корректность настроек сжатия
func (c *CompressionConfig) Validate() error {
	switch c.Algorithm {
	case AlgorithmStructural, AlgorithmRaster:
	default:
		return ErrUnknownAlgorithm
	}

	if c.Algorithm == AlgorithmRaster {
		if c.RasterScale <= 0 || c.RasterScale > 1 {
			return ErrInvalidRasterScale
		}
		if c.RasterQuality < 10 || c.RasterQuality > 100 {
			return ErrInvalidRasterQuality
		}
	}

	return nil
}
