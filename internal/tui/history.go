package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/pomo/internal/store"
)

type historyModel struct {
	store  *store.Store
	width  int
	height int

	summaries []store.DailySummary
	today     int64
	offset    int // 7-day blocks back from today (0 = current)

	chart barchart.Model
}

func newHistoryModel(s *store.Store) historyModel {
	return historyModel{
		store: s,
		chart: barchart.New(60, 12),
	}
}

func (h *historyModel) setSize(w, height int) {
	h.width = w
	h.height = height
}

type historyDataMsg struct {
	summaries []store.DailySummary
	today     int64
}

func (h historyModel) refresh() tea.Cmd {
	return func() tea.Msg {
		from, to := h.dateRange()
		summaries, err := h.store.GetDailySummary(from, to)
		if err != nil {
			return statusMsg{text: fmt.Sprintf("History error: %v", err), isError: true}
		}
		today, _ := h.store.GetTodayTotal()
		return historyDataMsg{summaries: summaries, today: today}
	}
}

// dateRange is the 7-day window ending today, shifted back by offset weeks.
func (h historyModel) dateRange() (time.Time, time.Time) {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	end := today.AddDate(0, 0, 1-7*h.offset)
	return end.AddDate(0, 0, -7), end
}

func (h historyModel) update(msg tea.Msg) (historyModel, tea.Cmd) {
	switch msg := msg.(type) {
	case historyDataMsg:
		h.summaries = msg.summaries
		h.today = msg.today
		h.buildChart()
		return h, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			h.offset++
			return h, h.refresh()
		case key.Matches(msg, keys.Right):
			if h.offset > 0 {
				h.offset--
			}
			return h, h.refresh()
		}
	}
	return h, nil
}

func (h *historyModel) modeStyle(mode string) lipgloss.Style {
	if mode == "break" {
		return lipgloss.NewStyle().Foreground(colorSuccess)
	}
	return lipgloss.NewStyle().Foreground(colorAccent)
}

func (h *historyModel) buildChart() {
	chartWidth := h.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 12
	if h.height > 30 {
		chartHeight = 16
	}

	h.chart = barchart.New(chartWidth, chartHeight)

	from, to := h.dateRange()

	// One stacked bar per day: work on the bottom, break above.
	var bars []barchart.BarData
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		dateStr := d.Format("2006-01-02")

		var values []barchart.BarValue
		for _, s := range h.summaries {
			if s.Date == dateStr {
				values = append(values, barchart.BarValue{
					Name:  s.Mode,
					Value: float64(s.TotalSeconds) / 60.0,
					Style: h.modeStyle(s.Mode),
				})
			}
		}

		if len(values) == 0 {
			values = []barchart.BarValue{{Name: "", Value: 0, Style: lipgloss.NewStyle().Foreground(colorSubtle)}}
		}

		bars = append(bars, barchart.BarData{
			Label:  d.Format("Mon 02"),
			Values: values,
		})
	}

	h.chart.PushAll(bars)
	h.chart.Draw()
}

func (h historyModel) view() string {
	w := h.width - 4

	from, to := h.dateRange()
	dateLabel := mutedStyle.Render(fmt.Sprintf("%s - %s", from.Format("Jan 02"), to.Add(-24*time.Hour).Format("Jan 02, 2006")))

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("History"), "  ", dateLabel,
	)
	today := highlightStyle.Render("Focused today: " + formatSeconds(h.today))

	legend := "  " + h.modeStyle("work").Render("● work") + "  " + h.modeStyle("break").Render("● break")
	nav := mutedStyle.Render("  ←/→: navigate")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, today, "", h.chart.View(), "", legend, "", h.renderSummaryTable(w), "", nav,
		),
	)
}

func (h historyModel) renderSummaryTable(w int) string {
	if len(h.summaries) == 0 {
		return mutedStyle.Render("  No completed intervals for this period")
	}

	var rows []string
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-12s %-8s %10s %8s", "Date", "Mode", "Duration", "Count")))
	rows = append(rows, mutedStyle.Render("  "+strings.Repeat("─", max(1, min(w-6, 42)))))

	for _, s := range h.summaries {
		rows = append(rows, fmt.Sprintf("  %-12s %s %10s %8d",
			s.Date, h.modeStyle(s.Mode).Render(fmt.Sprintf("%-8s", s.Mode)), formatSeconds(s.TotalSeconds), s.Count,
		))
	}

	return strings.Join(rows, "\n")
}
