package compressors

import (
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PDFCPUOptimizer структурная оптимизация через PDFCPU:
// документ разбирается и пишется заново с упаковкой косвенных
// объектов в object streams. Содержимое страниц не меняется.
type PDFCPUOptimizer struct{}

// NewPDFCPUOptimizer создает новый PDFCPU оптимизатор
func NewPDFCPUOptimizer() *PDFCPUOptimizer {
	return &PDFCPUOptimizer{}
}

// Name возвращает имя стратегии
func (p *PDFCPUOptimizer) Name() string {
	return "structural"
}

// Optimize переупаковывает документ в памяти.
// Relaxed-валидация позволяет принимать документы с маркерами
// шифрования и мелкими отступлениями от стандарта без пароля.
func (p *PDFCPUOptimizer) Optimize(data []byte) ([]byte, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	conf.WriteObjectStream = true
	conf.WriteXRefStream = true

	var out bytes.Buffer
	if err := api.Optimize(bytes.NewReader(data), &out, conf); err != nil {
		return nil, fmt.Errorf("ошибка оптимизации PDFCPU: %w", err)
	}

	return out.Bytes(), nil
}
