package usecases

import (
	"fmt"

	"pdfshrink/internal/domain/entities"
	"pdfshrink/internal/domain/repositories"
)

// CompressDocumentUseCase сценарий обработки одного документа:
// загрузка → сжатие → сравнение → выдача.
//
// Сценарий тотален: для любых входных байт он возвращает результат
// не длиннее исходника и никогда не отдает ошибку наружу. Сбой
// стратегии превращается в возврат оригинала с причиной в исходе.
type CompressDocumentUseCase struct {
	optimizer        repositories.Optimizer
	logger           repositories.Logger
	progressReporter func(entities.PipelineStatus)
}

// NewCompressDocumentUseCase создает новый сценарий сжатия документа
func NewCompressDocumentUseCase(
	optimizer repositories.Optimizer,
	logger repositories.Logger,
) *CompressDocumentUseCase {
	return &CompressDocumentUseCase{
		optimizer: optimizer,
		logger:    logger,
	}
}

// SetProgressReporter устанавливает функцию для отчета о прогрессе
func (uc *CompressDocumentUseCase) SetProgressReporter(reporter func(entities.PipelineStatus)) {
	uc.progressReporter = reporter
}

// reportProgress отправляет обновление прогресса
func (uc *CompressDocumentUseCase) reportProgress(status *entities.PipelineStatus) {
	if uc.progressReporter != nil {
		uc.progressReporter(*status)
	}
}

// Execute прогоняет документ через конвейер и возвращает исход
func (uc *CompressDocumentUseCase) Execute(doc *entities.Document) *entities.CompressionOutcome {
	// Фаза 1: документ принят и загружен в память
	status := entities.NewPipelineStatus(doc.Name)
	uc.reportProgress(status)

	uc.logInfo("Документ принят: %s (%.2f MB)", doc.Name, float64(doc.Size())/1024/1024)

	// Фаза 2: попытка сжатия выбранной стратегией
	status.SetPhase(entities.PhaseCompressing, entities.PhaseCompressing.String())
	uc.reportProgress(status)

	outcome := &entities.CompressionOutcome{Document: doc}

	candidate, err := uc.safeOptimize(doc.Data)

	// Фаза 3: сравнение кандидата с оригиналом
	status.SetPhase(entities.PhaseComparing, entities.PhaseComparing.String())
	uc.reportProgress(status)

	switch {
	case err != nil:
		// Сбой стратегии не фатален: молча возвращаем оригинал,
		// пользователю сообщается, что сжатие пропущено
		outcome.Kind = entities.OutcomeFallback
		outcome.Reason = err
		outcome.Data = doc.Data
		uc.logWarning("Сжатие пропущено (%s): %v", uc.optimizer.Name(), err)

	case len(candidate) < len(doc.Data):
		outcome.Kind = entities.OutcomeOptimized
		outcome.Data = candidate

	default:
		// Кандидат не строго меньше оригинала — выигрыша нет
		outcome.Kind = entities.OutcomeNoImprovement
		outcome.Data = doc.Data
	}

	// Фаза 4: результат готов к выдаче
	status.Complete(outcome)
	uc.reportProgress(status)

	stats := outcome.Stats()
	if outcome.Kind == entities.OutcomeOptimized {
		uc.logSuccess("✓ %s: %.2f MB → %.2f MB (сжатие %s%%, коэффициент %s)",
			doc.Name, stats.OriginalMB(), stats.CompressedMB(),
			stats.FormatReduction(), stats.FormatRatio())
	} else {
		uc.logInfo("%s: %s", doc.Name, outcome.Kind.Describe())
	}

	return outcome
}

// safeOptimize вызывает стратегию, превращая панику парсера
// на битом входе в обычную ошибку
func (uc *CompressDocumentUseCase) safeOptimize(data []byte) (candidate []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			candidate = nil
			err = fmt.Errorf("паника стратегии сжатия: %v", r)
		}
	}()

	return uc.optimizer.Optimize(data)
}

// Методы для логирования
func (uc *CompressDocumentUseCase) logInfo(format string, args ...interface{}) {
	if uc.logger != nil {
		uc.logger.Info(format, args...)
	}
}

func (uc *CompressDocumentUseCase) logSuccess(format string, args ...interface{}) {
	if uc.logger != nil {
		uc.logger.Success(format, args...)
	}
}

func (uc *CompressDocumentUseCase) logWarning(format string, args ...interface{}) {
	if uc.logger != nil {
		uc.logger.Warning(format, args...)
	}
}
