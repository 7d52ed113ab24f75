package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-writenest/internal/app"
	"github.com/MKhiriev/go-writenest/internal/catalog"
	"github.com/MKhiriev/go-writenest/internal/logger"
	"github.com/MKhiriev/go-writenest/internal/service"
	"github.com/MKhiriev/go-writenest/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const catalogPageSize = 6

type catalogModel struct {
	catalog   *catalog.Catalog
	idx       int
	search    textinput.Model
	searching bool
	loading   bool
}

func newCatalogModel(articles service.ArticleService, log *logger.Logger) catalogModel {
	return catalogModel{
		catalog: catalog.New(articles.ListPublic, articles, log),
		search:  newInput("Search articles...", 100),
		loading: true,
	}
}

func (m *catalogModel) clamp() {
	n := len(m.catalog.Filtered())
	if m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m catalogModel) current() (models.Article, bool) {
	articles := m.catalog.Filtered()
	if m.idx < 0 || m.idx >= len(articles) {
		return models.Article{}, false
	}
	return articles[m.idx], true
}

// cycleCategory moves the category filter through "all" followed by the
// loaded categories.
func (m *catalogModel) cycleCategory(delta int) {
	options := append([]string{""}, m.catalog.Categories()...)
	active, _ := m.catalog.Filters()

	pos := 0
	for i, option := range options {
		if option == active {
			pos = i
			break
		}
	}
	pos = (pos + delta + len(options)) % len(options)

	m.catalog.SetCategoryFilter(options[pos])
	m.idx = 0
}

func (m catalogModel) View(spin string) string {
	var b strings.Builder

	category, _ := m.catalog.Filters()
	b.WriteString("Search:   ")
	b.WriteString(m.search.View())
	b.WriteString("\nCategory: ")
	b.WriteString(categoryBar(m.catalog.Categories(), category))
	b.WriteString("\n\n")

	state, lastErr := m.catalog.State()
	articles := m.catalog.Filtered()

	switch {
	case m.loading:
		b.WriteString(spin + " Loading articles...")
	case state == catalog.StateLoadFailed:
		b.WriteString(errorStyle.Render("Failed to load articles: " + errorText(lastErr)))
		b.WriteString("\nPress r to try again.")
	case len(articles) == 0:
		b.WriteString(app.MsgNoArticlesFound)
		b.WriteString("\n")
		if m.catalog.HasFilters() {
			b.WriteString(helpStyle.Render("Try adjusting your search or filter"))
		} else {
			b.WriteString(helpStyle.Render("Be the first to write an article!"))
		}
	default:
		start := max(0, m.idx-catalogPageSize/2)
		end := min(len(articles), start+catalogPageSize)
		for i := start; i < end; i++ {
			b.WriteString(articleCard(articles[i], i == m.idx))
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render(fmt.Sprintf("%d of %d articles", m.idx+1, len(articles))))
	}

	return renderPage("ARTICLES", b.String(), "/: search │ ←/→: category │ enter: read │ r: reload │ d: delete")
}

func categoryBar(categories []string, active string) string {
	options := append([]string{""}, categories...)
	parts := make([]string, 0, len(options))
	for _, option := range options {
		label := option
		if label == "" {
			label = "All"
		}
		if option == active {
			label = selectedStyle.Render("[" + label + "]")
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, " ")
}

func articleCard(a models.Article, selected bool) string {
	var b strings.Builder

	b.WriteString(a.DisplayIcon())
	b.WriteString(" ")
	b.WriteString(titleStyle.Render(fitText(a.Title, 60)))
	if a.Category != "" {
		b.WriteString("  ")
		b.WriteString(badgeStyle.Render(a.Category))
	}
	if a.Excerpt != "" {
		b.WriteString("\n")
		b.WriteString(fitText(a.Excerpt, 90))
	}

	meta := []string{"by " + valueOrDash(a.Author), formatDay(a.Date)}
	if a.Views > 0 {
		meta = append(meta, formatNumber(a.Views)+" views")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(strings.Join(meta, " · ")))

	if selected {
		return activeCardStyle.Render(b.String())
	}
	return cardStyle.Render(b.String())
}

func (m appModel) updateCatalog(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.catalog.searching {
		switch {
		case key.Matches(keyMsg, keys.enter):
			m.catalog.searching = false
			m.catalog.search.Blur()
			return m, nil
		case key.Matches(keyMsg, keys.esc):
			m.catalog.searching = false
			m.catalog.search.Blur()
			m.catalog.search.SetValue("")
			m.catalog.catalog.SetSearchFilter("")
			m.catalog.clamp()
			return m, nil
		}

		var cmd tea.Cmd
		m.catalog.search, cmd = m.catalog.search.Update(msg)
		m.catalog.catalog.SetSearchFilter(m.catalog.search.Value())
		m.catalog.idx = 0
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.catalog.idx > 0 {
			m.catalog.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.catalog.idx < len(m.catalog.catalog.Filtered())-1 {
			m.catalog.idx++
		}
	case key.Matches(keyMsg, keys.left):
		m.catalog.cycleCategory(-1)
	case key.Matches(keyMsg, keys.right):
		m.catalog.cycleCategory(1)
	case key.Matches(keyMsg, keys.search):
		m.catalog.searching = true
		return m, m.catalog.search.Focus()
	case key.Matches(keyMsg, keys.refresh):
		if m.catalog.loading {
			return m, nil
		}
		m.catalog.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadCatalog())
	case key.Matches(keyMsg, keys.enter):
		article, ok := m.catalog.current()
		if !ok {
			return m, nil
		}
		return m.navigate(screenDetail, article.ID)
	case key.Matches(keyMsg, keys.delete):
		article, ok := m.catalog.current()
		if !ok || !service.CanEdit(m.session.Identity, article) {
			return m, nil
		}
		m.ask(confirmModel{message: app.MsgConfirmDelete, action: confirmDelete, articleID: article.ID, origin: screenCatalog})
	}

	return m, nil
}

func (m appModel) cmdLoadCatalog() tea.Cmd {
	ctx := m.ctx
	c := m.catalog.catalog
	return func() tea.Msg {
		err := c.LoadArticles(ctx)
		c.LoadCategories(ctx)
		return catalogLoadedMsg{err: err}
	}
}

// onCatalogLoaded ends the loading state. A failure is shown inline by
// the catalog view, not as an overlay.
func (m appModel) onCatalogLoaded(_ catalogLoadedMsg) (tea.Model, tea.Cmd) {
	m.catalog.loading = false
	m.catalog.clamp()
	return m, nil
}
