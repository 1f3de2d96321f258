// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"daylist/internal/engine"
	"daylist/internal/service"
)

// DueLayout is the display and input layout for due dates.
const DueLayout = "2006-01-02"

// barWidth is the progress bar width in characters.
const barWidth = 20

// FormatTask formats one task line.
// Format: "{N:>4}  [x|' '] {TEXT}{markers}\n". Markers, in order:
// priority when not medium, due date with an overdue/today annotation.
func FormatTask(w io.Writer, num int, task service.Task, now time.Time) {
	box := ' '
	if task.Completed {
		box = 'x'
	}

	var markers strings.Builder
	if task.Priority != "" && task.Priority != service.PriorityMedium {
		fmt.Fprintf(&markers, "  !%s", task.Priority)
	}
	if task.DueDate != nil {
		fmt.Fprintf(&markers, "  due %s", task.DueDate.Format(DueLayout))
		switch {
		case engine.IsOverdue(task.DueDate, task.Completed, now):
			markers.WriteString(" (overdue)")
		case engine.IsToday(task.DueDate, now):
			markers.WriteString(" (today)")
		}
	}

	fmt.Fprintf(w, "%4d  [%c] %s%s\n", num, box, normalizeText(task.Text), markers.String())
}

// FormatNotes prints a task's notes indented under its line.
func FormatNotes(w io.Writer, notes string) {
	if strings.TrimSpace(notes) == "" {
		return
	}
	for _, line := range strings.Split(notes, "\n") {
		fmt.Fprintf(w, "          %s\n", line)
	}
}

// FormatProgress formats the completion summary with a bar.
// Example: "[##########----------] 3/6 done (50%)".
func FormatProgress(w io.Writer, s engine.Summary) {
	filled := s.Percent * barWidth / 100
	bar := strings.Repeat("#", filled) + strings.Repeat("-", barWidth-filled)
	fmt.Fprintf(w, "[%s] %d/%d done (%d%%)\n", bar, s.Completed, s.Total, s.Percent)
}

// normalizeText normalizes task text for single-line display.
// Empty or whitespace-only text becomes "(untitled)", newlines become
// spaces.
func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r", " ")
	text = strings.ReplaceAll(text, "\n", " ")
	if strings.TrimSpace(text) == "" {
		return "(untitled)"
	}
	return text
}
