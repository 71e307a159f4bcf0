package tui

import (
	"fmt"
	"strings"
)

// View renders the dashboard.
func (m *Model) View() string {
	if m.Quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("TANA") + "  ")
	s.WriteString(statStyle.Render(m.Root) + "\n\n")
	s.WriteString(m.statsLine() + "\n\n")
	s.WriteString(m.activityPane())
	s.WriteString("\n")
	s.WriteString(m.feedPane())
	s.WriteString("\n" + helpStyle.Render("q quit"))

	return s.String()
}

func (m *Model) statsLine() string {
	return fmt.Sprintf("%s %s   %s %s   %s %s",
		statValueStyle.Render(fmt.Sprintf("%d", m.Collections)),
		statStyle.Render("collections"),
		statValueStyle.Render(fmt.Sprintf("%d", m.Chapters)),
		statStyle.Render("chapters"),
		statValueStyle.Render(fmt.Sprintf("%d", m.Events)),
		statStyle.Render("updates"),
	)
}

func (m *Model) activityPane() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("ACTIVITY") + "\n")

	ops := m.Ops
	if visible := m.visibleRows(); len(ops) > visible {
		ops = ops[len(ops)-visible:]
	}

	if len(ops) == 0 {
		s.WriteString(statStyle.Render("waiting for changes") + "\n")
		return s.String()
	}

	for _, op := range ops {
		s.WriteString(fmt.Sprintf("%s %s", op.statusIcon(), op.Name))
		switch op.Status {
		case opDone:
			s.WriteString(statStyle.Render(fmt.Sprintf(" %v", op.Duration)))
		case opFailed:
			s.WriteString(opErrorStyle.Render(fmt.Sprintf(" %v", op.Err)))
		}
		s.WriteString("\n")
	}

	return s.String()
}

func (m *Model) feedPane() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("CHANGES") + "\n")

	feed := m.Feed
	if visible := m.visibleRows(); len(feed) > visible {
		feed = feed[len(feed)-visible:]
	}

	if len(feed) == 0 {
		s.WriteString(statStyle.Render("no changes yet") + "\n")
		return s.String()
	}

	for _, e := range feed {
		sign := removedStyle.Render("- ")
		if e.Added {
			sign = addedStyle.Render("+ ")
		}
		s.WriteString(timestampStyle.Render(e.At.Format("15:04:05")) + " ")
		s.WriteString(sign + e.Subject + "\n")
	}

	return s.String()
}

// visibleRows bounds each pane to roughly a third of the terminal.
func (m *Model) visibleRows() int {
	if m.Height <= 0 {
		return 10
	}
	rows := (m.Height - 8) / 2
	if rows < 3 {
		rows = 3
	}
	return rows
}
