package counter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"bump/internal/timeutil"
)

var (
	baseStyle = lipgloss.NewStyle().Padding(1, padding)

	countStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	elapsedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	celebrationStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("48"))
)

// formatElapsed renders the elapsed session time as "MM:SS".
func (c *Counter) formatElapsed() string {
	m, s := timeutil.SecsToMinsAndSecs(c.elapsed.Seconds())

	return fmt.Sprintf("%02d:%02d", m, s)
}

func (c *Counter) savedView() string {
	var s strings.Builder

	sess := c.saved

	s.WriteString(celebrationStyle.Render("Saved!"))
	s.WriteString("\n\n")
	s.WriteString(fmt.Sprintf(
		"%d kick(s) in %d minute(s)\n",
		sess.Count,
		sess.Duration,
	))

	return s.String()
}

func (c *Counter) countingView() string {
	sess := c.tracker.Current()
	if sess == nil {
		return ""
	}

	target := c.tracker.Target()

	var s strings.Builder

	s.WriteString(elapsedStyle.Render(c.formatElapsed()))
	s.WriteString(hintStyle.Render("  elapsed"))
	s.WriteString("\n\n")

	s.WriteString(countStyle.Render(
		fmt.Sprintf("%d / %d kicks", sess.Count, target),
	))
	s.WriteString("\n\n")

	s.WriteString(c.progress.ViewAs(float64(sess.Count) / float64(target)))
	s.WriteString("\n")

	if sess.Completed {
		s.WriteString("\n")
		s.WriteString(celebrationStyle.Render(
			"Baby is active today! Saving shortly...",
		))
		s.WriteString("\n")
	} else {
		s.WriteString("\n")
		s.WriteString(hintStyle.Render("Press space each time you feel a kick"))
		s.WriteString("\n")
	}

	s.WriteString("\n" + c.help.ShortHelpView([]key.Binding{
		defaultKeymap.record,
		defaultKeymap.save,
		defaultKeymap.cancel,
	}))

	return s.String()
}

func (c *Counter) View() string {
	if c.err != nil {
		return baseStyle.Render(
			fmt.Sprintf("Failed to save the session: %v\n", c.err),
		)
	}

	if c.saved != nil {
		return baseStyle.Render(c.savedView())
	}

	return baseStyle.Render(c.countingView())
}
