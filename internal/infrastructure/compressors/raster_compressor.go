package compressors

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"os"

	"github.com/nfnt/resize"
	"github.com/unidoc/unipdf/v3/common"
	"github.com/unidoc/unipdf/v3/creator"
	"github.com/unidoc/unipdf/v3/model"
	"github.com/unidoc/unipdf/v3/render"

	"pdfshrink/internal/domain/entities"
)

// RasterCompressor альтернативная стратегия "растеризация и перекодирование"
//
// ⚠️ ЭКСПЕРИМЕНТАЛЬНАЯ СТРАТЕГИЯ ⚠️
//
// В основной поток не включена: выбирается только явно через
// compression.algorithm: raster. Каждая страница рендерится в битмап
// с линейным масштабом, перекодируется в JPEG с потерями и кладется
// на отдельную страницу нового документа. Текст и векторная графика
// теряются; это обмен качества на размер, в отличие от structural.
//
// Внутреннего fallback нет: ошибка на любой странице прерывает
// всю операцию и уходит вызывающему.
type RasterCompressor struct {
	scale      float64
	quality    int
	licenseKey string
}

// NewRasterCompressor создает растровый компрессор по настройкам сжатия
func NewRasterCompressor(config *entities.CompressionConfig) *RasterCompressor {
	return &RasterCompressor{
		scale:      config.RasterScale,
		quality:    config.RasterQuality,
		licenseKey: config.UniPDFLicenseKey,
	}
}

// Name возвращает имя стратегии
func (r *RasterCompressor) Name() string {
	return "raster"
}

// Optimize растеризует все страницы и собирает новый документ
func (r *RasterCompressor) Optimize(data []byte) ([]byte, error) {
	common.SetLogger(common.NewConsoleLogger(common.LogLevelError))

	// Проверяем лицензионный ключ из конфигурации или переменной окружения
	licenseKey := r.licenseKey
	if licenseKey == "" {
		licenseKey = os.Getenv("UNIDOC_LICENSE_API_KEY")
	}
	if licenseKey == "" {
		return nil, fmt.Errorf("UniPDF требует лицензионный ключ. Установите его в конфигурации или в переменной UNIDOC_LICENSE_API_KEY, либо используйте алгоритм 'structural'")
	}
	os.Setenv("UNIDOC_LICENSE_API_KEY", licenseKey)

	pdfReader, err := model.NewPdfReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия документа: %w", err)
	}

	numPages, err := pdfReader.GetNumPages()
	if err != nil {
		return nil, fmt.Errorf("ошибка получения количества страниц: %w", err)
	}

	device := render.NewImageDevice()
	c := creator.New()

	for i := 1; i <= numPages; i++ {
		page, err := pdfReader.GetPage(i)
		if err != nil {
			return nil, fmt.Errorf("ошибка получения страницы %d: %w", i, err)
		}

		rendered, err := device.Render(page)
		if err != nil {
			return nil, fmt.Errorf("ошибка рендеринга страницы %d: %w", i, err)
		}

		// Уменьшаем рендер с качественным ресемплингом
		bounds := rendered.Bounds()
		newWidth := uint(float64(bounds.Dx()) * r.scale)
		scaled := resize.Resize(newWidth, 0, rendered, resize.Lanczos3)

		// Перекодируем в JPEG с потерями
		var jpegBuf bytes.Buffer
		if err := jpeg.Encode(&jpegBuf, scaled, &jpeg.Options{Quality: r.quality}); err != nil {
			return nil, fmt.Errorf("ошибка кодирования JPEG страницы %d: %w", i, err)
		}

		img, err := c.NewImageFromData(jpegBuf.Bytes())
		if err != nil {
			return nil, fmt.Errorf("ошибка вставки изображения страницы %d: %w", i, err)
		}

		// Страница нового документа повторяет пиксельные размеры битмапа
		width := float64(scaled.Bounds().Dx())
		height := float64(scaled.Bounds().Dy())
		c.SetPageSize(creator.PageSize{width, height})
		c.NewPage()

		img.SetPos(0, 0)
		img.SetWidth(width)
		img.SetHeight(height)
		if err := c.Draw(img); err != nil {
			return nil, fmt.Errorf("ошибка отрисовки страницы %d: %w", i, err)
		}
	}

	var out bytes.Buffer
	if err := c.Write(&out); err != nil {
		return nil, fmt.Errorf("ошибка записи документа: %w", err)
	}

	// Собранный документ переупаковывается с теми же флагами,
	// что и у структурной стратегии
	packed, err := NewPDFCPUOptimizer().Optimize(out.Bytes())
	if err != nil {
		return nil, fmt.Errorf("ошибка переупаковки документа: %w", err)
	}

	return packed, nil
}
