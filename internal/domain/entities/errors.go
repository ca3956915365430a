package entities

import "errors"

// Доменные ошибки
var (
	ErrInvalidExtension     = errors.New("файл должен иметь расширение .pdf")
	ErrFileTooLarge         = errors.New("размер файла превышает лимит 100 MB")
	ErrUnknownAlgorithm     = errors.New("неизвестный алгоритм сжатия")
	ErrInvalidRasterScale   = errors.New("масштаб растеризации должен быть в диапазоне (0, 1]")
	ErrInvalidRasterQuality = errors.New("качество JPEG должно быть от 10 до 100")
)
