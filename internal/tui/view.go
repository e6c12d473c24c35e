package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/cuoral/internal/session"
)

// View implements tea.Model
func (m AppModel) View() string {
	stage := m.renderStage()
	return lipgloss.JoinVertical(lipgloss.Left, stage, m.renderFooter())
}

func (m AppModel) renderStage() string {
	height := stageHeight(m.Height)
	st := m.Overlay.State()

	if !st.Visible {
		return lipgloss.NewStyle().Width(m.Width).Height(height).Render("")
	}

	if st.ModalOpen {
		return RenderModal(m.renderModal(), m.Width, height)
	}

	fab := m.theme.renderFAB(st.Icon)

	hpos := lipgloss.Right
	if st.Position.IsLeft() {
		hpos = lipgloss.Left
	}
	vpos := lipgloss.Bottom
	if st.Position.IsTop() {
		vpos = lipgloss.Top
	}

	placed := lipgloss.Place(m.Width-2*marginCols, height-2*marginRows, hpos, vpos, fab)
	return lipgloss.NewStyle().Margin(marginRows, marginCols).Render(placed)
}

func (m AppModel) renderFooter() string {
	if m.Editing {
		return m.KeyInput.View() + "  " + m.Help.View(m.EditKeys)
	}
	if !m.Overlay.State().Visible {
		return HelpStyle.Render(AppName + " launcher hidden • q quit")
	}
	if m.Overlay.State().ModalOpen {
		return m.Help.View(m.ModalKeys)
	}
	return m.Help.View(m.ClosedKeys)
}

func (m AppModel) renderModal() string {
	box := modalRect(m.Width, m.Height)
	innerW := max(box.w-4, 1)
	innerH := max(box.h-2, 1)

	title := m.theme.title.Render(ModalTitle)
	gap := max(innerW-widthOf(title)-widthOf(CloseGlyph), 1)
	header := title + strings.Repeat(" ", gap) + m.theme.closeBtn.Render(CloseGlyph)
	divider := MutedStyle.Render(strings.Repeat("─", innerW))

	body := m.renderBody(innerW, innerH-2)
	content := strings.Join(append([]string{header, divider}, body...), "\n")

	return m.theme.modal.
		Width(box.w - 2).
		Height(innerH).
		Render(content)
}

// renderBody returns at most rows lines for the modal body
func (m AppModel) renderBody(width, rows int) []string {
	s := m.Overlay.Session()
	if s == nil {
		return nil
	}

	var lines []string
	st := s.State()

	switch st.Phase {
	case session.PhaseLoading:
		lines = append(lines, m.Spinner.View()+" Loading chat…")
		if m.CurrentURL != "" {
			lines = append(lines, wrap(MutedStyle, m.CurrentURL, width)...)
		}

	case session.PhaseError:
		lines = append(lines, wrap(ErrorTextStyle, st.Reason, width)...)
		lines = append(lines, "")
		lines = append(lines, wrap(MutedStyle, "Press r to reload or e to change the public key.", width)...)

	case session.PhaseLoaded:
		lines = m.renderPage(width, rows)
	}

	if m.Notice != "" {
		lines = append(lines, "")
		lines = append(lines, wrap(NoticeStyle, m.Notice, width)...)
	}

	if len(lines) > rows {
		lines = lines[:rows]
	}
	return lines
}

func (m AppModel) renderPage(width, rows int) []string {
	if m.Page == nil {
		return []string{MutedStyle.Render("(empty page)")}
	}

	var lines []string
	lines = append(lines, wrap(PageTitleStyle, m.Page.Title, width)...)
	if m.Page.Summary != "" {
		lines = append(lines, wrap(MutedStyle, m.Page.Summary, width)...)
	}
	if len(m.Page.Links) == 0 {
		return lines
	}

	lines = append(lines, "", MutedStyle.Render(fmt.Sprintf("Links (%d)", len(m.Page.Links))))

	// Scroll so the cursor stays visible below the page header
	avail := max(rows-len(lines)-2, 1)
	start := 0
	if m.Cursor >= avail {
		start = m.Cursor - avail + 1
	}
	end := min(start+avail, len(m.Page.Links))

	for i := start; i < end; i++ {
		text := truncateText(m.Page.Links[i].Text, width-2)
		if i == m.Cursor {
			lines = append(lines, SelectedLinkStyle.Render("› "+text))
		} else {
			lines = append(lines, LinkStyle.Render(text))
		}
	}
	return lines
}

func wrap(style lipgloss.Style, text string, width int) []string {
	return strings.Split(style.Width(width).Render(text), "\n")
}

func widthOf(s string) int {
	return lipgloss.Width(s)
}

func heightOf(s string) int {
	return lipgloss.Height(s)
}

func truncateText(s string, limit int) string {
	if limit <= 1 {
		return "…"
	}
	if lipgloss.Width(s) <= limit {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r)) > limit-1 {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}
