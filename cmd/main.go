package main

import (
	"log"

	"pdfshrink/internal/domain/entities"
	"pdfshrink/internal/domain/repositories"
	"pdfshrink/internal/infrastructure/compressors"
	"pdfshrink/internal/infrastructure/config"
	"pdfshrink/internal/infrastructure/logging"
	"pdfshrink/internal/presentation/tui"
	"pdfshrink/internal/presentation/web"
	usecases "pdfshrink/internal/usecase"
)

func main() {
	// Загрузка конфигурации
	configRepo := config.NewRepository()
	appConfig, err := configRepo.Load("config.yaml")
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	if err := appConfig.Compression.Validate(); err != nil {
		log.Fatalf("Ошибка конфигурации сжатия: %v", err)
	}

	// Инициализация базового логгера (в файл).
	// В интерфейс кладем только ненулевой указатель: typed nil
	// внутри интерфейса обходит проверки logger != nil
	var logger repositories.Logger
	fileLogger, err := logging.NewFileLogger(
		appConfig.Output.LogFileName,
		appConfig.Output.LogLevel,
		appConfig.Output.LogMaxSizeMB,
		appConfig.Output.LogToFile,
	)
	if err != nil {
		log.Printf("Предупреждение: не удалось инициализировать логгер: %v", err)
	} else {
		logger = fileLogger
		defer fileLogger.Close()
	}

	switch appConfig.Mode {
	case "tui":
		runTUI(appConfig, logger)
	default:
		runWeb(appConfig, logger)
	}
}

// buildOptimizer выбирает стратегию сжатия на основе конфигурации
func buildOptimizer(appConfig *entities.Config) repositories.Optimizer {
	switch appConfig.Compression.Algorithm {
	case entities.AlgorithmRaster:
		return compressors.NewRasterCompressor(&appConfig.Compression)
	default:
		return compressors.NewPDFCPUOptimizer()
	}
}

// runWeb запускает HTTP сервер
func runWeb(appConfig *entities.Config, baseLogger repositories.Logger) {
	optimizer := buildOptimizer(appConfig)
	useCase := usecases.NewCompressDocumentUseCase(optimizer, baseLogger)

	server := web.NewServer(appConfig, useCase, baseLogger)
	if err := server.Run(); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}

// runTUI запускает локальный TUI режим
func runTUI(appConfig *entities.Config, baseLogger repositories.Logger) {
	tuiManager := tui.NewManager(appConfig)
	tuiManager.Initialize()

	// Оборачиваем логгер адаптером, чтобы видеть логи в TUI
	var logger repositories.Logger = tui.NewUILogger(baseLogger, tuiManager)

	processor := NewApplicationProcessor(appConfig, tuiManager, logger)
	defer processor.Shutdown()

	// Привязываем запуск сжатия к TUI
	tuiManager.SetOnCompressFile(func(path string) {
		// Берем актуальную конфигурацию из формы TUI
		processor.config = tuiManager.GetConfig()
		processor.CompressFile(path)
	})

	if err := tuiManager.Run(); err != nil {
		log.Fatalf("Ошибка запуска TUI: %v", err)
	}

	tuiManager.Cleanup()
}
