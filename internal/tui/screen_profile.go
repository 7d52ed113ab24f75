package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-writenest/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type profileModel struct {
	articles []models.Article
	idx      int
	loading  bool
	err      error
}

func (m profileModel) totalViews() int64 {
	var total int64
	for _, a := range m.articles {
		total += a.Views
	}
	return total
}

func (m profileModel) View(session models.SessionResult) string {
	identity := session.Identity

	var b strings.Builder
	b.WriteString(titleStyle.Render(valueOrDash(identity.DisplayName())))
	b.WriteString("\n")
	b.WriteString("Email:        " + valueOrDash(identity.Email) + "\n")
	role := "Author"
	if identity.IsAdmin() {
		role = "Admin"
	}
	b.WriteString("Role:         " + role + "\n")
	if identity.Year != "" {
		b.WriteString("Member since: " + identity.Year + "\n")
	}
	if exp := session.Token.Expiry(); !exp.IsZero() {
		b.WriteString("Session ends: " + exp.Local().Format("Jan 2, 2006 15:04") + "\n")
	}
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString("Loading your articles...")
	case m.err != nil:
		b.WriteString(errorStyle.Render("Failed to load your articles: " + errorText(m.err)))
		b.WriteString("\nPress r to try again.")
	default:
		b.WriteString(fmt.Sprintf("Posts %s │ Views %s\n\n",
			badgeStyle.Render(formatNumber(int64(len(m.articles)))),
			badgeStyle.Render(formatNumber(m.totalViews())),
		))
		if len(m.articles) == 0 {
			b.WriteString("You haven't written any articles yet. Press n to start.")
		}
		for i, a := range m.articles {
			cursor := "  "
			if i == m.idx {
				cursor = selectedStyle.Render(">") + " "
			}
			b.WriteString(fmt.Sprintf("%s%s %-40s %-13s %s views\n",
				cursor, a.DisplayIcon(), fitText(a.Title, 40), formatDay(a.Date), formatNumber(a.Views)))
		}
	}

	return renderPage("MY PROFILE", strings.TrimRight(b.String(), "\n"), "esc: back │ enter: read │ e: edit │ r: reload")
}

func (m appModel) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.profile.idx > 0 {
			m.profile.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.profile.idx < len(m.profile.articles)-1 {
			m.profile.idx++
		}
	case key.Matches(keyMsg, keys.esc):
		return m.enter(screenCatalog, 0)
	case key.Matches(keyMsg, keys.refresh):
		if m.profile.loading {
			return m, nil
		}
		return m.navigate(screenProfile, 0)
	case key.Matches(keyMsg, keys.enter):
		if m.profile.idx < len(m.profile.articles) {
			return m.navigate(screenDetail, m.profile.articles[m.profile.idx].ID)
		}
	case key.Matches(keyMsg, keys.edit):
		if m.profile.idx < len(m.profile.articles) {
			return m, m.cmdHandOff(m.profile.articles[m.profile.idx])
		}
	}

	return m, nil
}

func (m appModel) cmdLoadProfile() tea.Cmd {
	ctx := m.ctx
	articles := m.services.ArticleService
	return func() tea.Msg {
		list, err := articles.ListMine(ctx)
		return profileLoadedMsg{articles: list, err: err}
	}
}

func (m appModel) onProfileLoaded(msg profileLoadedMsg) (tea.Model, tea.Cmd) {
	m.profile.loading = false
	m.profile.err = msg.err
	if msg.err == nil {
		m.profile.articles = msg.articles
	}
	if m.profile.idx >= len(m.profile.articles) {
		m.profile.idx = max(0, len(m.profile.articles)-1)
	}
	return m, nil
}
