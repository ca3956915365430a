package repositories

// Optimizer интерфейс стратегии сжатия PDF.
// Получает байты документа, возвращает байты кандидата.
// Решение о принятии кандидата (правило "строго меньше")
// принимает вызывающий сценарий, не стратегия.
type Optimizer interface {
	// Name возвращает имя стратегии для логов и конфигурации
	Name() string

	// Optimize переупаковывает документ. Ошибка означает, что
	// кандидата нет; стратегия не делает fallback сама.
	Optimize(data []byte) ([]byte, error)
}
