package entities

import "fmt"

// OutcomeKind исход попытки сжатия
type OutcomeKind int

const (
	// OutcomeOptimized оптимизатор вернул строго меньший результат
	OutcomeOptimized OutcomeKind = iota
	// OutcomeNoImprovement оптимизатор отработал, но выигрыша нет
	OutcomeNoImprovement
	// OutcomeFallback оптимизатор упал, возвращен оригинал
	OutcomeFallback
)

// String возвращает машиночитаемый код исхода
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeOptimized:
		return "optimized"
	case OutcomeNoImprovement:
		return "no_improvement"
	case OutcomeFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Describe возвращает текст исхода для пользователя
func (k OutcomeKind) Describe() string {
	switch k {
	case OutcomeOptimized:
		return "Документ сжат"
	case OutcomeNoImprovement:
		return "Сжатие не дало выигрыша, возвращен оригинал"
	case OutcomeFallback:
		return "Сжатие пропущено, возвращен оригинал"
	default:
		return "Неизвестный исход"
	}
}

// CompressionOutcome результат попытки сжатия одного документа.
// Data всегда заполнен и никогда не длиннее исходника:
// при любом сбое или отсутствии выигрыша это байты оригинала.
type CompressionOutcome struct {
	Document *Document
	Data     []byte
	Kind     OutcomeKind
	Reason   error // причина fallback, nil для остальных исходов
}

// Stats возвращает статистику размеров для выбранного результата
func (o *CompressionOutcome) Stats() SizeStats {
	return NewSizeStats(o.Document.Size(), int64(len(o.Data)))
}

// SizeStats производная статистика размеров; нигде не хранится,
// пересчитывается по запросу
type SizeStats struct {
	OriginalSize   int64
	CompressedSize int64
	SavedSpace     int64
}

// NewSizeStats создает статистику по паре размеров
func NewSizeStats(originalSize, compressedSize int64) SizeStats {
	return SizeStats{
		OriginalSize:   originalSize,
		CompressedSize: compressedSize,
		SavedSpace:     originalSize - compressedSize,
	}
}

// OriginalMB исходный размер в мегабайтах
func (s SizeStats) OriginalMB() float64 {
	return float64(s.OriginalSize) / 1024 / 1024
}

// CompressedMB размер результата в мегабайтах
func (s SizeStats) CompressedMB() float64 {
	return float64(s.CompressedSize) / 1024 / 1024
}

// ReductionPercent процент уменьшения размера
func (s SizeStats) ReductionPercent() float64 {
	if s.OriginalSize <= 0 {
		return 0
	}
	return (float64(s.OriginalSize) - float64(s.CompressedSize)) / float64(s.OriginalSize) * 100
}

// Ratio коэффициент сжатия. Знаменатель не опускается ниже 0.01 MB —
// защита форматирования от деления на ноль, не бизнес-правило.
func (s SizeStats) Ratio() float64 {
	compressedMB := s.CompressedMB()
	if compressedMB < 0.01 {
		compressedMB = 0.01
	}
	return s.OriginalMB() / compressedMB
}

// FormatOriginalMB исходный размер с двумя знаками
func (s SizeStats) FormatOriginalMB() string {
	return fmt.Sprintf("%.2f", s.OriginalMB())
}

// FormatCompressedMB размер результата с двумя знаками
func (s SizeStats) FormatCompressedMB() string {
	return fmt.Sprintf("%.2f", s.CompressedMB())
}

// FormatReduction процент уменьшения; "0" когда выигрыша нет
func (s SizeStats) FormatReduction() string {
	if s.CompressedSize >= s.OriginalSize {
		return "0"
	}
	return fmt.Sprintf("%.2f", s.ReductionPercent())
}

// FormatRatio коэффициент сжатия с двумя знаками
func (s SizeStats) FormatRatio() string {
	return fmt.Sprintf("%.2f", s.Ratio())
}
