package tui

import (
	"fmt"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"pdfshrink/internal/domain/entities"
)

// UI Configuration constants
const (
	MaxLogBufferSize   = 1000
	LogFlushInterval   = 50 * time.Millisecond
	ProgressBarWidth   = 40
	ProgressViewHeight = 13
)

// UIScreen типы экранов UI
type UIScreen int

const (
	UIScreenMenu UIScreen = iota
	UIScreenConfig
	UIScreenProcessing
)

// Manager управляет TUI интерфейсом локального режима:
// выбор файла, экран обработки с прогрессом по четырем фазам,
// статистика результата и сброс к начальному состоянию
type Manager struct {
	app           *tview.Application
	pages         *tview.Pages
	currentScreen UIScreen

	// UI компоненты
	mainMenu     *tview.List
	configForm   *tview.Form
	inputForm    *tview.Form
	progressView *tview.TextView
	logView      *tview.TextView

	// Callbacks
	onCompressFile func(path string)

	// Состояние
	config       *entities.Config
	inputPath    string
	isProcessing bool
	statusMutex  sync.RWMutex

	// Батчинг логов через канал
	logChan chan string
	logDone chan struct{}
}

// NewManager создает новый менеджер TUI
func NewManager(config *entities.Config) *Manager {
	m := &Manager{
		app:     tview.NewApplication(),
		pages:   tview.NewPages(),
		config:  config,
		logChan: make(chan string, 100),
		logDone: make(chan struct{}),
	}
	go m.logProcessor()
	return m
}

// Initialize инициализирует TUI
func (m *Manager) Initialize() {
	m.createUI()
	m.setupKeyBindings()
}

// Run запускает TUI
func (m *Manager) Run() error {
	return m.app.SetRoot(m.pages, true).EnableMouse(true).Run()
}

// Cleanup останавливает обработку логов. Идемпотентен: вызывается
// и из пункта меню «Выход», и после завершения Run
func (m *Manager) Cleanup() {
	select {
	case <-m.logDone:
		// уже остановлен
	default:
		close(m.logDone)
	}
}

// SetOnCompressFile устанавливает callback запуска сжатия файла
func (m *Manager) SetOnCompressFile(callback func(path string)) {
	m.onCompressFile = callback
}

// GetConfig возвращает актуальную конфигурацию из формы
func (m *Manager) GetConfig() *entities.Config {
	return m.config
}

// createUI создает пользовательский интерфейс
func (m *Manager) createUI() {
	m.createMainMenu()
	m.createInputForm()
	m.createConfigScreen()
	m.createProcessingScreen()

	m.pages.AddPage("menu", m.mainMenu, true, true)
	m.pages.AddPage("input", m.inputForm, true, false)
	m.pages.AddPage("config", m.configForm, true, false)
	m.pages.AddPage("processing", m.createProcessingLayout(), true, false)

	m.currentScreen = UIScreenMenu
}

// createMainMenu создает главное меню
func (m *Manager) createMainMenu() {
	m.mainMenu = tview.NewList().
		AddItem("🚀 Сжать PDF файл", "Выбрать файл и запустить конвейер сжатия", '1', func() {
			m.pages.SwitchToPage("input")
			m.app.SetFocus(m.inputForm)
		}).
		AddItem("⚙️ Конфигурация", "Настроить алгоритм и параметры сжатия", '2', func() {
			m.switchToScreen(UIScreenConfig)
		}).
		AddItem("❌ Выход", "Закрыть приложение", 'q', func() {
			m.Cleanup()
			m.app.Stop()
		})

	m.mainMenu.SetBorder(true).
		SetTitle("🔥 pdfshrink - Главное меню").
		SetTitleAlign(tview.AlignCenter)

	m.mainMenu.SetSelectedBackgroundColor(tcell.ColorDarkBlue).
		SetSelectedTextColor(tcell.ColorWhite).
		SetMainTextColor(tcell.ColorWhite).
		SetSecondaryTextColor(tcell.ColorGray)
}

// createInputForm создает форму выбора входного файла
func (m *Manager) createInputForm() {
	m.inputForm = tview.NewForm().
		AddInputField("Путь к PDF файлу", "", 60, nil, func(text string) {
			m.inputPath = text
		}).
		AddButton("Сжать", func() {
			if m.inputPath == "" {
				return
			}
			m.startProcessing(m.inputPath)
		}).
		AddButton("Отмена", func() {
			m.switchToScreen(UIScreenMenu)
		})

	m.inputForm.SetBorder(true).
		SetTitle("🔥 pdfshrink - Выбор файла (ESC - назад)").
		SetTitleAlign(tview.AlignCenter)

	m.inputForm.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape {
			m.switchToScreen(UIScreenMenu)
			return nil
		}
		return event
	})
}

// createConfigScreen создает экран конфигурации
func (m *Manager) createConfigScreen() {
	algorithmIndex := 0
	if m.config.Compression.Algorithm == entities.AlgorithmRaster {
		algorithmIndex = 1
	}

	m.configForm = tview.NewForm().
		AddDropDown("Алгоритм", []string{entities.AlgorithmStructural, entities.AlgorithmRaster}, algorithmIndex, func(option string, optionIndex int) {
			m.config.Compression.Algorithm = option
		}).
		AddInputField("Масштаб растра (0-1]", fmt.Sprintf("%.2f", m.config.Compression.RasterScale), 10, nil, func(text string) {
			if scale, err := strconv.ParseFloat(text, 64); err == nil && scale > 0 && scale <= 1 {
				m.config.Compression.RasterScale = scale
			}
		}).
		AddInputField("Качество JPEG (10-100)", strconv.Itoa(m.config.Compression.RasterQuality), 10, nil, func(text string) {
			if quality, err := strconv.Atoi(text); err == nil && quality >= 10 && quality <= 100 {
				m.config.Compression.RasterQuality = quality
			}
		}).
		AddInputField("Лицензия UniPDF (UNIDOC_LICENSE_API_KEY)", m.config.Compression.UniPDFLicenseKey, 60, nil, func(text string) {
			m.config.Compression.UniPDFLicenseKey = text
		}).
		AddButton("Сохранить", func() {
			m.switchToScreen(UIScreenMenu)
			m.mainMenu.SetCurrentItem(1)
		})

	m.configForm.SetBorder(true).
		SetTitle("🔥 pdfshrink - Конфигурация (ESC - назад)").
		SetTitleAlign(tview.AlignCenter)

	m.configForm.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape {
			m.switchToScreen(UIScreenMenu)
			return nil
		}
		return event
	})
}

// createProcessingScreen создает экран обработки
func (m *Manager) createProcessingScreen() {
	m.progressView = tview.NewTextView().
		SetDynamicColors(true).
		SetRegions(true).
		SetScrollable(true)

	m.progressView.SetBorder(true).
		SetTitle("📊 Прогресс обработки").
		SetTitleAlign(tview.AlignCenter)

	m.logView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetMaxLines(MaxLogBufferSize)

	m.logView.SetBorder(true).
		SetTitle("📋 Журнал событий").
		SetTitleAlign(tview.AlignCenter)
}

// createProcessingLayout создает layout для экрана обработки
func (m *Manager) createProcessingLayout() *tview.Flex {
	return tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(m.logView, 0, 1, false).
		AddItem(m.progressView, ProgressViewHeight, 0, false)
}

// setupKeyBindings настраивает горячие клавиши
func (m *Manager) setupKeyBindings() {
	m.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyF1:
			m.switchToScreen(UIScreenMenu)
			return nil
		case tcell.KeyEscape:
			// В формах ESC обрабатывается локально
			if m.currentScreen == UIScreenProcessing {
				m.resetToMenu()
				return nil
			}
		}
		return event
	})
}

// switchToScreen переключает на указанный экран
func (m *Manager) switchToScreen(screen UIScreen) {
	m.statusMutex.Lock()
	defer m.statusMutex.Unlock()

	m.currentScreen = screen

	switch screen {
	case UIScreenMenu:
		m.pages.SwitchToPage("menu")
	case UIScreenConfig:
		m.pages.SwitchToPage("config")
	case UIScreenProcessing:
		m.pages.SwitchToPage("processing")
	}
}

// resetToMenu сбрасывает состояние к начальному: буферы текущего
// файла отбрасываются, конвейер готов к следующему документу
func (m *Manager) resetToMenu() {
	m.statusMutex.Lock()
	m.inputPath = ""
	m.isProcessing = false
	m.statusMutex.Unlock()

	m.progressView.SetText("")
	m.switchToScreen(UIScreenMenu)
}

// startProcessing запускает конвейер для выбранного файла
func (m *Manager) startProcessing(path string) {
	m.statusMutex.Lock()
	if m.isProcessing {
		m.statusMutex.Unlock()
		return
	}
	m.isProcessing = true
	m.statusMutex.Unlock()

	m.switchToScreen(UIScreenProcessing)

	if m.onCompressFile != nil {
		go m.onCompressFile(path)
	}
}

// SendStatusUpdate отправляет обновление статуса конвейера
func (m *Manager) SendStatusUpdate(status entities.PipelineStatus) {
	m.updateProgress(status)
}

// updateProgress обновляет экран обработки
func (m *Manager) updateProgress(status entities.PipelineStatus) {
	if m.progressView == nil {
		return
	}

	percent := float64(status.Phase.Percent())
	progressBar := m.createProgressBar(percent, ProgressBarWidth)

	progressText := fmt.Sprintf(
		"[yellow]⚙️  Фаза:[white] %s\n\n"+
			"[yellow]📁 Файл:[white] %s\n\n"+
			"[cyan]📊 Прогресс:[white] %s [cyan]%d%%[white]\n",
		status.Message,
		status.FileName,
		progressBar,
		status.Phase.Percent(),
	)

	// Итоговая статистика
	if status.Outcome != nil {
		stats := status.Outcome.Stats()
		progressText += fmt.Sprintf(
			"\n[green]💾 Результат:[white]\n"+
				"  • Исходный размер: [cyan]%s MB[white]\n"+
				"  • Итоговый размер: [cyan]%s MB[white]\n"+
				"  • Уменьшение: [green]%s%%[white]\n"+
				"  • Коэффициент: [green]%s[white]\n",
			stats.FormatOriginalMB(),
			stats.FormatCompressedMB(),
			stats.FormatReduction(),
			stats.FormatRatio(),
		)

		if status.Outcome.Kind != entities.OutcomeOptimized {
			progressText += fmt.Sprintf("\n[yellow]⚠️ %s[white]\n", status.Outcome.Kind.Describe())
		}
	}

	progressText += fmt.Sprintf("\n[yellow]⏱️  Прошло:[white] %s\n", status.ElapsedTime.Round(time.Millisecond))

	if status.IsComplete {
		progressText += "\n[green]✅ Обработка завершена![white]\n"
		m.statusMutex.Lock()
		m.isProcessing = false
		m.statusMutex.Unlock()
	}

	progressText += "\n[yellow]ESC[white] - Сброс и возврат в меню\n"

	// Обновляем UI потокобезопасно через QueueUpdateDraw
	m.app.QueueUpdateDraw(func() {
		m.progressView.SetText(progressText)
	})
}

// createProgressBar создает цветной прогресс-бар
func (m *Manager) createProgressBar(progress float64, width int) string {
	if progress < 0 {
		progress = 0
	} else if progress > 100 {
		progress = 100
	}

	filled := int(math.Round(progress * float64(width) / 100))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := "[green]"
	for i := 0; i < filled; i++ {
		bar += "█"
	}
	bar += "[gray]"
	for i := filled; i < width; i++ {
		bar += "░"
	}
	bar += "[white]"

	return bar
}

// AddLog добавляет запись в журнал событий
func (m *Manager) AddLog(level, message string) {
	var color string
	switch level {
	case "ERROR":
		color = "red"
	case "WARNING":
		color = "yellow"
	case "SUCCESS":
		color = "green"
	case "DEBUG":
		color = "gray"
	default:
		color = "white"
	}

	line := fmt.Sprintf("[%s][%s][white] %s", color, level, tview.Escape(message))

	select {
	case m.logChan <- line:
	default:
		// Канал переполнен, запись теряется, UI важнее
	}
}

// logProcessor батчит записи журнала, чтобы не дергать отрисовку
// на каждое сообщение
func (m *Manager) logProcessor() {
	ticker := time.NewTicker(LogFlushInterval)
	defer ticker.Stop()

	var pending []string

	flush := func() {
		if len(pending) == 0 {
			return
		}
		batch := pending
		pending = nil
		m.app.QueueUpdateDraw(func() {
			for _, line := range batch {
				fmt.Fprintln(m.logView, line)
			}
			m.logView.ScrollToEnd()
		})
	}

	for {
		select {
		case line := <-m.logChan:
			pending = append(pending, line)
		case <-ticker.C:
			flush()
		case <-m.logDone:
			flush()
			return
		}
	}
}
