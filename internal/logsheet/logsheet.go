// Package logsheet draws ELD daily logs as the paper log grid: one row per duty
// status, 24 hours across, a quarter hour per cell.
package logsheet

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"spotterapi/internal/model"
)

const (
	SlotsPerHour = 4
	SlotsPerDay  = 24 * SlotsPerHour

	slot = time.Hour / SlotsPerHour
)

// Rows is the row order of the grid, top to bottom.
var Rows = [4]model.DutyStatus{
	model.StatusOffDuty,
	model.StatusSleeper,
	model.StatusDriving,
	model.StatusOnDuty,
}

var rowLabels = map[model.DutyStatus]string{
	model.StatusOffDuty: "Off Duty",
	model.StatusSleeper: "Sleeper",
	model.StatusDriving: "Driving",
	model.StatusOnDuty:  "On Duty",
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Width(9)
	mutedStyle = lipgloss.NewStyle().Faint(true)
	totalStyle = lipgloss.NewStyle().Bold(true)

	cellStyles = map[model.DutyStatus]lipgloss.Style{
		model.StatusOffDuty: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		model.StatusSleeper: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		model.StatusDriving: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		model.StatusOnDuty:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}

	border = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
)

const (
	filled = "█"
	empty  = "·"
)

// Slots marks, for each grid row, the quarter hours spent in that status. A
// quarter hour belongs to the entry covering its midpoint.
func Slots(log model.DailyLog) [len(Rows)][SlotsPerDay]bool {
	var grid [len(Rows)][SlotsPerDay]bool
	if len(log.Entries) == 0 {
		return grid
	}

	loc := log.Entries[0].StartTime.Location()
	dayStart, err := time.ParseInLocation(time.DateOnly, log.Date, loc)
	if err != nil {
		s := log.Entries[0].StartTime
		dayStart = time.Date(s.Year(), s.Month(), s.Day(), 0, 0, 0, 0, loc)
	}

	row := make(map[model.DutyStatus]int, len(Rows))
	for i, st := range Rows {
		row[st] = i
	}

	for q := 0; q < SlotsPerDay; q++ {
		mid := dayStart.Add(time.Duration(q)*slot + slot/2)
		for _, e := range log.Entries {
			if !mid.Before(e.StartTime) && mid.Before(e.EndTime) {
				if r, ok := row[e.Status]; ok {
					grid[r][q] = true
				}
				break
			}
		}
	}
	return grid
}

// Render draws one daily log.
func Render(log model.DailyLog) string {
	grid := Slots(log)
	totals := map[model.DutyStatus]float64{
		model.StatusOffDuty: log.TotalOffDutyTime,
		model.StatusSleeper: log.TotalSleeperTime,
		model.StatusDriving: log.TotalDriveTime,
		model.StatusOnDuty:  log.TotalDutyTime - log.TotalDriveTime,
	}

	lines := []string{
		titleStyle.Render(fmt.Sprintf("%s  %.1f mi", log.Date, log.TotalMiles)),
		labelStyle.Render("") + " " + mutedStyle.Render(hourScale()),
	}
	for i, st := range Rows {
		var cells strings.Builder
		for q := 0; q < SlotsPerDay; q++ {
			if grid[i][q] {
				cells.WriteString(filled)
			} else {
				cells.WriteString(empty)
			}
		}
		lines = append(lines, fmt.Sprintf("%s %s %s",
			labelStyle.Render(rowLabels[st]),
			cellStyles[st].Render(cells.String()),
			totalStyle.Render(fmt.Sprintf("%5.2f", totals[st])),
		))
	}
	return border.Render(strings.Join(lines, "\n"))
}

// RenderAll draws the logs one below the other.
func RenderAll(logs []model.DailyLog) string {
	parts := make([]string, 0, len(logs))
	for _, l := range logs {
		parts = append(parts, Render(l))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// hourScale labels every hour column: M for midnight, N for noon.
func hourScale() string {
	var b strings.Builder
	for h := 0; h < 24; h++ {
		label := fmt.Sprint(h % 12)
		switch h {
		case 0:
			label = "M"
		case 12:
			label = "N"
		}
		fmt.Fprintf(&b, "%-*s", SlotsPerHour, label)
	}
	return b.String()
}
