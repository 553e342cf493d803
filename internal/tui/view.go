package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/existflow/spacetask/internal/markdown"
	"github.com/existflow/spacetask/internal/view"
)

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	// Build the layout
	sidebar := m.renderSidebar()
	taskList := m.renderTaskList()
	statusBar := m.renderStatusBar()

	// Combine sidebar and task list
	mainContent := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, taskList)

	switch m.mode {
	case ModeAddTask, ModeAddList, ModeEditTask:
		mainContent = m.place(m.renderModal())
	case ModeConfirmDelete:
		mainContent = m.place(m.renderConfirmModal())
	case ModeStats:
		mainContent = m.place(m.renderStats())
	case ModeHelp:
		mainContent = m.place(m.renderHelp())
	}

	// Combine with status bar
	return lipgloss.JoinVertical(lipgloss.Left, mainContent, statusBar)
}

func (m Model) place(modal string) string {
	return lipgloss.Place(
		m.width, m.height-2,
		lipgloss.Center, lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceChars(" "),
	)
}

func (m Model) renderSidebar() string {
	sidebarWidth := 24
	var s string

	// Header with time and streak
	stats := m.store.Today()
	s += HeaderStyle.Render("SpaceTask") + "\n"
	s += HelpStyle.Render(m.store.Now().Format("15:04:05"))
	if stats.Streak > 0 {
		s += "  " + TimerStyle.Render(fmt.Sprintf("🔥 %d", stats.Streak))
	}
	s += "\n" + lipgloss.NewStyle().Foreground(Border).Render(strings.Repeat("─", sidebarWidth-5)) + "\n\n"

	todos := m.store.Todos()
	for i, l := range m.lists {
		counts := view.ListCounts(todos, l.ID)

		cursor := "  "
		style := ListItemStyle
		if i == m.listCursor {
			cursor = "❯ "
			if m.pane == PaneSidebar {
				style = ListItemSelectedStyle
			}
		}

		star := " "
		if l.IsFavorite {
			star = FavoriteStyle.Render("★")
		}
		line := fmt.Sprintf("%s%s %-12s %d/%d", cursor, star, truncateText(l.Label(), 12), counts.Pending, counts.Total)
		s += style.Render(line) + "\n"
	}

	s += "\n" + lipgloss.NewStyle().Foreground(Border).Render(strings.Repeat("─", sidebarWidth-5)) + "\n"
	s += HelpStyle.Render("p new space  f favorite")

	return SidebarStyle.Width(sidebarWidth).Height(m.height - 2).Render(s)
}

func (m Model) renderTaskList() string {
	width := m.width - 26
	var s string

	l := m.currentList()
	if l == nil {
		return TaskListStyle.Width(width).Height(m.height - 2).Render("No space selected")
	}

	// Header
	counts := view.ListCounts(m.store.Todos(), l.ID)
	header := fmt.Sprintf("%s (%d pending)", l.Label(), counts.Pending)
	if m.filterText != "" {
		scope := "this space"
		if m.searchAll {
			scope = "all spaces"
		}
		header += HelpStyle.Render(fmt.Sprintf("  /%s in %s", m.filterText, scope))
	}
	s += HeaderStyle.Render(header) + "\n"
	s += lipgloss.NewStyle().Foreground(Border).Render(strings.Repeat("─", max(width-4, 1))) + "\n\n"

	if len(m.tasks) == 0 {
		if m.filterText != "" {
			s += HelpStyle.Render("  No matches.")
		} else {
			s += HelpStyle.Render("  No tasks. Press 'a' to add one.")
		}
	}

	now := m.store.Now()
	textWidth := max(width-36, 10)
	for i, t := range m.tasks {
		cursor := "  "
		style := TaskItemStyle
		if i == m.taskCursor && m.pane == PaneTaskList {
			cursor = "❯ "
			style = TaskItemSelectedStyle
		}

		icon := "[ ]"
		if t.Completed {
			icon = "[x]"
			style = TaskDoneStyle
		}

		content := truncateText(t.Text, textWidth)
		check := style.Render(cursor + icon)
		desc := style.Render(fmt.Sprintf(" %-*s ", textWidth, content))

		// Due date, tracked time and a running timer
		extra := ""
		if t.DueDate != nil {
			due := t.DueDate.Format("Jan 2")
			if !t.Completed && t.IsOverdue(now) {
				due = OverdueStyle.Render("!" + due)
			}
			extra += " " + due
		}
		spent := t.TimeSpent
		if t.ID == m.timerID {
			extra += " " + TimerStyle.Render("⏱ "+clock(m.elapsed()))
		} else if spent > 0 {
			extra += " " + HelpStyle.Render(view.FormatShort(spent))
		}

		s += check + desc + FormatPriority(t.Priority) + extra + "\n"
	}

	return TaskListStyle.Width(width).Height(m.height - 2).Render(s)
}

func (m Model) renderStatusBar() string {
	// When in filter mode, show inline search input (like vim)
	if m.mode == ModeFilter {
		matches := fmt.Sprintf(" [%d]", len(m.tasks))
		if m.filterText != "" && len(m.tasks) == 0 {
			matches = " [no match]"
		}
		return StatusBarStyle.Width(m.width).Render("/" + m.input.View() + matches + HelpStyle.Render("  tab:scope  enter:keep  esc:clear"))
	}

	help := "a:add  e:edit  x:done  d:del  u/r:undo/redo  t:timer  /:search  s:stats  ?:help  q:quit"
	if m.message != "" {
		help = m.message
	}

	if m.timerID != 0 {
		timer := TimerStyle.Render("⏱ " + clock(m.elapsed()))
		avail := m.width - lipgloss.Width(help) - lipgloss.Width(timer) - 2
		if avail > 0 {
			help += strings.Repeat(" ", avail) + timer
		} else {
			help += " " + timer
		}
	}

	return StatusBarStyle.Width(m.width).Render(help)
}

func (m Model) renderModal() string {
	title := "Add Task"
	switch m.mode {
	case ModeAddList:
		title = "New Space"
	case ModeEditTask:
		title = "Edit Task"
	}

	if l := m.currentList(); l != nil && m.mode == ModeAddTask {
		title = fmt.Sprintf("Add Task to: %s", l.Label())
	}

	content := lipgloss.NewStyle().Bold(true).Render(title) + "\n\n"
	content += m.input.View() + "\n\n"
	content += HelpStyle.Render("Enter:save  Esc:cancel")

	return ModalStyle.Render(content)
}

func (m Model) renderConfirmModal() string {
	text := ""
	if t := m.currentTask(); t != nil {
		text = t.Text
	}
	content := lipgloss.NewStyle().Bold(true).Render("Delete task?") + "\n\n"
	content += truncateText(text, 48) + "\n\n"
	content += HelpStyle.Render("y:delete  any other key:cancel")
	return ModalStyle.Render(content)
}

func (m Model) renderStats() string {
	today := m.store.Today()
	sum := view.Summarize(m.store.Todos(), m.store.Now())

	row := func(label, value string) string {
		return fmt.Sprintf("%-18s %s\n", label, value)
	}

	content := HeaderStyle.Render("📊 Statistics") + "\n\n"
	content += row("🔥 Streak", fmt.Sprintf("%d days", today.Streak))
	content += row("✓  Done today", fmt.Sprint(today.CompletedToday))
	content += row("📈 Completion", fmt.Sprintf("%d%% (%d/%d)", sum.CompletionRate, sum.Completed, sum.Total))
	content += row("⏱  Time invested", view.FormatDuration(sum.TimeSpent))
	if sum.Overdue > 0 {
		content += row("⚠  Overdue", OverdueStyle.Render(fmt.Sprint(sum.Overdue)))
	}
	content += "\n" + HelpStyle.Render("Press any key to close")
	return ModalStyle.Render(content)
}

func (m Model) renderHelp() string {
	theme := markdown.ThemeDark
	if m.store.Settings().Theme == markdown.ThemeLight {
		theme = markdown.ThemeLight
	}
	help := markdown.Render(min(m.width-8, 64), markdown.Keys, theme)
	help += "\n\n" + HelpStyle.Render("     Press any key to close")
	return ModalStyle.Render(help)
}
