package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-utils/internal/document"
	"github.com/MKhiriev/go-utils/internal/logger"
	"github.com/MKhiriev/go-utils/merge"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const maxVisiblePaths = 14

type reviewModel struct {
	base       map[string]any
	override   map[string]any
	strategies merge.StrategyTable
	write      WriteFunc
	logger     *logger.Logger

	paths []document.PathInfo
	idx   int

	// showMerged switches the preview pane between the merge result
	// and the raw override value at the selected path.
	showMerged bool
	merged     map[string]any

	saving  bool
	spinner spinner.Model

	status string
	errMsg string

	quitByUser bool
}

func newReviewModel(base, override map[string]any, strategies merge.StrategyTable, write WriteFunc, logger *logger.Logger) reviewModel {
	if strategies == nil {
		strategies = merge.StrategyTable{}
	}

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return reviewModel{
		base:       base,
		override:   override,
		strategies: strategies,
		write:      write,
		logger:     logger,
		paths:      document.Paths(override),
		showMerged: true,
		merged:     merge.MergeWith(base, override, strategies),
		spinner:    s,
	}
}

func (m reviewModel) Init() tea.Cmd {
	return nil
}

func (m reviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case writeDoneMsg:
		m.saving = false
		if msg.err != nil {
			m.errMsg = "не удалось записать результат: " + msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = "Результат записан"
		m.logger.Debug().Msg("merged document written from review screen")
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if m.saving {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m reviewModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.abort):
		m.quitByUser = true
		return m, tea.Quit
	case key.Matches(msg, keys.quit):
		if m.saving {
			return m, nil
		}
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.paths)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.merge):
		m.setStrategy(merge.StrategyMerge)
	case key.Matches(msg, keys.replace):
		m.setStrategy(merge.StrategyReplace)
	case key.Matches(msg, keys.safe):
		m.setStrategy(merge.StrategySafe)
	case key.Matches(msg, keys.unset):
		m.unsetStrategy()
	case key.Matches(msg, keys.tab):
		m.showMerged = !m.showMerged
	case key.Matches(msg, keys.copy):
		return m.copyMerged()
	case key.Matches(msg, keys.write):
		if m.saving {
			return m, nil
		}
		if m.write == nil {
			m.status = "Файл вывода не задан, результат уйдёт в stdout"
			return m, cmdClearStatus()
		}
		m.saving = true
		m.status = "Запись..."
		return m, tea.Batch(m.spinner.Tick, m.cmdWrite())
	}

	return m, nil
}

func (m *reviewModel) setStrategy(tag merge.Strategy) {
	path, ok := m.currentPath()
	if !ok {
		m.status = "Нет путей для назначения стратегии"
		return
	}
	m.strategies[path] = tag
	m.recompute()
}

func (m *reviewModel) unsetStrategy() {
	path, ok := m.currentPath()
	if !ok {
		return
	}
	delete(m.strategies, path)
	m.recompute()
}

func (m *reviewModel) recompute() {
	m.merged = merge.MergeWith(m.base, m.override, m.strategies)
}

func (m reviewModel) currentPath() (string, bool) {
	if len(m.paths) == 0 || m.idx < 0 || m.idx >= len(m.paths) {
		return "", false
	}
	return m.paths[m.idx].Path, true
}

func (m reviewModel) copyMerged() (tea.Model, tea.Cmd) {
	text, err := mergedJSON(m.merged)
	if err != nil {
		m.errMsg = "не удалось закодировать результат: " + err.Error()
		return m, nil
	}
	if err := clipboard.WriteAll(text); err != nil {
		m.errMsg = "Ошибка копирования: " + err.Error()
		return m, nil
	}
	m.errMsg = ""
	m.status = "Скопировано в буфер обмена"
	m.logger.Debug().Msg("merged document copied to clipboard")
	return m, cmdClearStatus()
}

func (m reviewModel) cmdWrite() tea.Cmd {
	write := m.write
	doc := m.merged

	return func() tea.Msg {
		return writeDoneMsg{err: write(doc)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m reviewModel) View() string {
	var b strings.Builder

	title := "ОБЗОР СТРАТЕГИЙ СЛИЯНИЯ"
	if m.saving {
		title += "  " + m.spinner.View()
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	b.WriteString(m.viewPaths())
	b.WriteString("\n")
	b.WriteString(m.viewPreview())

	if m.status != "" {
		b.WriteString("\nСтатус: " + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Ошибка: "+m.errMsg) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("m/r/s: стратегия │ u: сбросить │ tab: панель │ c: копировать │ w: записать │ q: готово"))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓: навигация │ ctrl+c: прервать без результата"))

	return appStyle.Render(b.String())
}

func (m reviewModel) viewPaths() string {
	if len(m.paths) == 0 {
		return "Override пуст: результат совпадает с базовым документом\n"
	}

	start := 0
	if m.idx >= maxVisiblePaths {
		start = m.idx - maxVisiblePaths + 1
	}
	end := start + maxVisiblePaths
	if end > len(m.paths) {
		end = len(m.paths)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		info := m.paths[i]
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s%s %-36s %s\n", cursor, pathIcon(info.Kind), fitText(info.Path, 36), m.tagLabel(info.Path)))
	}
	if end < len(m.paths) {
		b.WriteString(fmt.Sprintf("  … ещё %d\n", len(m.paths)-end))
	}

	return b.String()
}

func (m reviewModel) tagLabel(path string) string {
	tag, ok := m.strategies[path]
	if !ok {
		return "-"
	}
	return tagStyle.Render(string(tag))
}

func pathIcon(kind document.PathKind) string {
	switch kind {
	case document.KindComposite:
		return "[O]"
	case document.KindSequence:
		return "[A]"
	default:
		return "[V]"
	}
}

func (m reviewModel) viewPreview() string {
	paneTitle := "[ РЕЗУЛЬТАТ ]"
	doc := m.merged
	if !m.showMerged {
		paneTitle = "[ OVERRIDE ]"
		doc = m.override
	}

	var b strings.Builder
	b.WriteString(paneTitle)
	b.WriteString("\n")

	value, ok := m.previewValue(doc)
	if !ok {
		b.WriteString("(путь отсутствует в результате)\n")
		return b.String()
	}

	text, err := previewText(value)
	if err != nil {
		b.WriteString("(не удалось показать значение)\n")
		return b.String()
	}
	b.WriteString(text)

	return b.String()
}

func (m reviewModel) previewValue(doc map[string]any) (any, bool) {
	if len(m.paths) == 0 {
		return doc, true
	}
	return document.Lookup(doc, m.paths[m.idx].Path)
}
