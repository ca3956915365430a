package tui

import (
	"fmt"

	"pdfshrink/internal/domain/repositories"
)

// UILogger адаптер логгера для отображения в UI
type UILogger struct {
	fileLogger repositories.Logger
	tuiManager *Manager
}

// NewUILogger создает новый UI логгер
func NewUILogger(fileLogger repositories.Logger, tuiManager *Manager) *UILogger {
	return &UILogger{
		fileLogger: fileLogger,
		tuiManager: tuiManager,
	}
}

// Debug логирует отладочное сообщение
func (l *UILogger) Debug(format string, args ...interface{}) {
	l.emit("DEBUG", format, args...)
	if l.fileLogger != nil {
		l.fileLogger.Debug(format, args...)
	}
}

// Info логирует информационное сообщение
func (l *UILogger) Info(format string, args ...interface{}) {
	l.emit("INFO", format, args...)
	if l.fileLogger != nil {
		l.fileLogger.Info(format, args...)
	}
}

// Warning логирует предупреждение
func (l *UILogger) Warning(format string, args ...interface{}) {
	l.emit("WARNING", format, args...)
	if l.fileLogger != nil {
		l.fileLogger.Warning(format, args...)
	}
}

// Error логирует ошибку
func (l *UILogger) Error(format string, args ...interface{}) {
	l.emit("ERROR", format, args...)
	if l.fileLogger != nil {
		l.fileLogger.Error(format, args...)
	}
}

// Success логирует успешное выполнение
func (l *UILogger) Success(format string, args ...interface{}) {
	l.emit("SUCCESS", format, args...)
	if l.fileLogger != nil {
		l.fileLogger.Success(format, args...)
	}
}

// Close закрывает логгер
func (l *UILogger) Close() error {
	if l.fileLogger != nil {
		return l.fileLogger.Close()
	}
	return nil
}

// emit отправляет сообщение в журнал TUI
func (l *UILogger) emit(level, format string, args ...interface{}) {
	if l.tuiManager != nil {
		l.tuiManager.AddLog(level, fmt.Sprintf(format, args...))
	}
}
