package main

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"pdfshrink/internal/domain/entities"
	"pdfshrink/internal/domain/repositories"
	"pdfshrink/internal/presentation/tui"
	usecases "pdfshrink/internal/usecase"
)

// ApplicationProcessor обрабатывает команды TUI режима
type ApplicationProcessor struct {
	config     *entities.Config
	tuiManager *tui.Manager
	logger     repositories.Logger

	// Graceful shutdown
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewApplicationProcessor создает новый процессор приложения
func NewApplicationProcessor(
	config *entities.Config,
	tuiManager *tui.Manager,
	logger repositories.Logger,
) *ApplicationProcessor {
	ctx, cancel := context.WithCancel(context.Background())

	return &ApplicationProcessor{
		config:     config,
		tuiManager: tuiManager,
		logger:     logger,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// CompressFile прогоняет один файл через конвейер и сохраняет
// результат рядом с исходником как <имя>_compressed.pdf
func (p *ApplicationProcessor) CompressFile(path string) {
	p.wg.Add(1)
	defer p.wg.Done()

	if p.ctx.Err() != nil {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		p.logError("Ошибка чтения файла %s: %v", path, err)
		return
	}

	// Приемочная валидация: при отказе буфер отбрасывается
	doc, err := entities.NewDocument(filepath.Base(path), data)
	if err != nil {
		p.logError("Файл отклонен: %v", err)
		return
	}

	// Стратегия пересобирается на каждый запуск: конфигурация
	// могла измениться в форме TUI
	optimizer := buildOptimizer(p.config)
	useCase := usecases.NewCompressDocumentUseCase(optimizer, p.logger)
	useCase.SetProgressReporter(func(status entities.PipelineStatus) {
		p.tuiManager.SendStatusUpdate(status)
	})

	outcome := useCase.Execute(doc)

	outputPath := filepath.Join(filepath.Dir(path), doc.CompressedName())
	if err := os.WriteFile(outputPath, outcome.Data, 0644); err != nil {
		p.logError("Ошибка сохранения результата %s: %v", outputPath, err)
		return
	}

	p.logSuccess("Результат сохранен: %s", outputPath)
}

// Shutdown корректно завершает работу процессора
func (p *ApplicationProcessor) Shutdown() {
	p.cancel()
	p.wg.Wait()
}

func (p *ApplicationProcessor) logError(format string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Error(format, args...)
	}
}

func (p *ApplicationProcessor) logSuccess(format string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Success(format, args...)
	}
}
