package entities

import (
	"path/filepath"
	"strings"
	"time"
)

// MaxDocumentSize максимальный размер принимаемого файла (100 MiB)
const MaxDocumentSize int64 = 104857600

// Document представляет один принятый PDF документ.
// Байты исходника после приема не изменяются; все состояние
// живет только в рамках одного цикла обработки.
type Document struct {
	Name     string
	Data     []byte
	LoadedAt time.Time
}

// ValidateIntake проверяет имя и размер кандидата до чтения содержимого
func ValidateIntake(name string, size int64) error {
	if !strings.EqualFold(filepath.Ext(name), ".pdf") {
		return ErrInvalidExtension
	}
	if size > MaxDocumentSize {
		return ErrFileTooLarge
	}
	return nil
}

// NewDocument создает документ после приемочной валидации.
// При ошибке валидации данные не сохраняются.
func NewDocument(name string, data []byte) (*Document, error) {
	if err := ValidateIntake(name, int64(len(data))); err != nil {
		return nil, err
	}

	return &Document{
		Name:     name,
		Data:     data,
		LoadedAt: time.Now(),
	}, nil
}

// Size возвращает размер документа в байтах
func (d *Document) Size() int64 {
	return int64(len(d.Data))
}

// CompressedName возвращает имя результата: суффикс .pdf
// заменяется на _compressed.pdf
func (d *Document) CompressedName() string {
	base := d.Name[:len(d.Name)-len(".pdf")]
	return base + "_compressed.pdf"
}
