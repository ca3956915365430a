package entities

import "time"

// PipelinePhase фаза конвейера обработки одного документа
type PipelinePhase int

const (
	PhaseLoading PipelinePhase = iota
	PhaseCompressing
	PhaseComparing
	PhasePresenting
)

// Percent возвращает прогресс фазы для индикатора
func (p PipelinePhase) Percent() int {
	switch p {
	case PhaseLoading:
		return 25
	case PhaseCompressing:
		return 50
	case PhaseComparing:
		return 75
	case PhasePresenting:
		return 100
	default:
		return 0
	}
}

// String возвращает название фазы
func (p PipelinePhase) String() string {
	switch p {
	case PhaseLoading:
		return "Загрузка файла"
	case PhaseCompressing:
		return "Сжатие документа"
	case PhaseComparing:
		return "Сравнение размеров"
	case PhasePresenting:
		return "Готово к скачиванию"
	default:
		return "Неизвестно"
	}
}

// PipelineStatus статус обработки текущего документа
type PipelineStatus struct {
	Phase    PipelinePhase
	FileName string
	Message  string

	// Итог, заполняется на последней фазе
	Outcome *CompressionOutcome

	// Время выполнения
	StartTime   time.Time
	ElapsedTime time.Duration

	IsComplete bool
}

// NewPipelineStatus создает статус для нового документа
func NewPipelineStatus(fileName string) *PipelineStatus {
	return &PipelineStatus{
		Phase:     PhaseLoading,
		FileName:  fileName,
		Message:   PhaseLoading.String(),
		StartTime: time.Now(),
	}
}

// SetPhase переводит конвейер в следующую фазу
func (ps *PipelineStatus) SetPhase(phase PipelinePhase, message string) {
	ps.Phase = phase
	ps.Message = message
	ps.ElapsedTime = time.Since(ps.StartTime)
}

// Complete завершает обработку с итоговым результатом
func (ps *PipelineStatus) Complete(outcome *CompressionOutcome) {
	ps.Phase = PhasePresenting
	ps.Message = outcome.Kind.Describe()
	ps.Outcome = outcome
	ps.ElapsedTime = time.Since(ps.StartTime)
	ps.IsComplete = true
}
