// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-writenest/internal/app"
	"github.com/MKhiriev/go-writenest/internal/catalog"
	"github.com/MKhiriev/go-writenest/internal/logger"
	"github.com/MKhiriev/go-writenest/internal/service"
	"github.com/MKhiriev/go-writenest/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const adminPageSize = 12

// statsCache holds the last dashboard stats fetched by a load or after a
// delete. It is filled from command goroutines and read by the model.
type statsCache struct {
	admin service.AdminService

	mu    sync.Mutex
	stats models.Stats
	err   error
}

// refresh fetches the stats. A failure keeps the previous numbers and is
// stored for get to report.
func (s *statsCache) refresh(ctx context.Context) {
	stats, err := s.admin.Stats(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		s.stats = stats
	}
	s.err = err
}

func (s *statsCache) get() (models.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats, s.err
}

type adminModel struct {
	catalog    *catalog.Catalog
	stats      *statsCache
	current    models.Stats
	statsErr   error
	idx        int
	search     textinput.Model
	searching  bool
	loading    bool
	refreshing bool
	lastExport string
	// done is closed when the dashboard is left, ending the wait for
	// periodic stats.
	done chan struct{}
}

func newAdminModel(articles service.ArticleService, admin service.AdminService, log *logger.Logger) adminModel {
	stats := &statsCache{admin: admin}
	c := catalog.New(articles.ListAdmin, articles, log)
	c.AfterMutation = stats.refresh

	return adminModel{
		catalog: c,
		stats:   stats,
		search:  newInput("Search articles...", 100),
	}
}

func (m *adminModel) clamp() {
	n := len(m.catalog.Filtered())
	if m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m adminModel) selected() (models.Article, bool) {
	articles := m.catalog.Filtered()
	if m.idx < 0 || m.idx >= len(articles) {
		return models.Article{}, false
	}
	return articles[m.idx], true
}

func (m adminModel) View() string {
	var b strings.Builder

	if m.statsErr != nil {
		b.WriteString(errorStyle.Render(app.MsgStatsFailed))
	} else {
		b.WriteString(fmt.Sprintf("Articles %s │ Authors %s │ Views %s │ Today %s",
			badgeStyle.Render(formatNumber(m.current.TotalArticles)),
			badgeStyle.Render(formatNumber(m.current.TotalAuthors)),
			badgeStyle.Render(formatNumber(m.current.TotalViews)),
			badgeStyle.Render(formatNumber(m.current.PublishedToday)),
		))
	}
	b.WriteString("\n\nSearch: ")
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	state, lastErr := m.catalog.State()
	articles := m.catalog.Filtered()

	switch {
	case m.loading && state != catalog.StateLoaded:
		b.WriteString("Loading articles...")
	case state == catalog.StateLoadFailed:
		b.WriteString(errorStyle.Render("Failed to load articles: " + errorText(lastErr)))
	case len(articles) == 0:
		b.WriteString(app.MsgNoArticlesFound)
	default:
		b.WriteString(fmt.Sprintf("   %-36s %-16s %-13s %s\n", "Title", "Author", "Date", "Status"))
		start := max(0, m.idx-adminPageSize/2)
		end := min(len(articles), start+adminPageSize)
		for i := start; i < end; i++ {
			a := articles[i]
			cursor := "  "
			if i == m.idx {
				cursor = selectedStyle.Render(">") + " "
			}
			b.WriteString(fmt.Sprintf("%s%s %-34s %-16s %-13s %s\n",
				cursor,
				a.DisplayIcon(),
				fitText(a.Title, 34),
				fitText(valueOrDash(a.Author), 16),
				fitText(formatDay(a.Date), 13),
				badgeStyle.Render(a.StatusLabel()),
			))
		}
	}

	if m.lastExport != "" {
		b.WriteString("\n\nLast export: " + m.lastExport)
	}

	return renderPage("ADMIN DASHBOARD", strings.TrimRight(b.String(), "\n"), "/: search │ enter: view │ e: edit │ d: delete │ x: export CSV │ c: copy export path │ r: refresh")
}

// startAdmin loads posts then stats and starts the periodic stats refresh.
func (m appModel) startAdmin() (appModel, tea.Cmd) {
	m.admin.loading = true
	m.admin.done = make(chan struct{})
	m.services.StatsRefreshJob.Start(m.ctx)

	return m, tea.Batch(m.spinner.Tick, m.cmdLoadAdmin(), m.cmdWaitStats(m.admin.done))
}

func (m appModel) stopAdmin() appModel {
	if m.admin.done == nil {
		return m
	}
	m.services.StatsRefreshJob.Stop()
	close(m.admin.done)
	m.admin.done = nil
	return m
}

func (m appModel) updateAdmin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.admin.searching {
		switch {
		case key.Matches(keyMsg, keys.enter):
			m.admin.searching = false
			m.admin.search.Blur()
			return m, nil
		case key.Matches(keyMsg, keys.esc):
			m.admin.searching = false
			m.admin.search.Blur()
			m.admin.search.SetValue("")
			m.admin.catalog.SetSearchFilter("")
			m.admin.clamp()
			return m, nil
		}

		var cmd tea.Cmd
		m.admin.search, cmd = m.admin.search.Update(msg)
		m.admin.catalog.SetSearchFilter(m.admin.search.Value())
		m.admin.idx = 0
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.admin.idx > 0 {
			m.admin.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.admin.idx < len(m.admin.catalog.Filtered())-1 {
			m.admin.idx++
		}
	case key.Matches(keyMsg, keys.search):
		m.admin.searching = true
		return m, m.admin.search.Focus()
	case key.Matches(keyMsg, keys.esc):
		return m.enter(screenCatalog, 0)
	case key.Matches(keyMsg, keys.refresh):
		if m.admin.loading {
			return m, nil
		}
		m.admin.loading = true
		m.admin.refreshing = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadAdmin())
	case key.Matches(keyMsg, keys.enter):
		if a, ok := m.admin.selected(); ok {
			return m.navigate(screenDetail, a.ID)
		}
	case key.Matches(keyMsg, keys.edit):
		if a, ok := m.admin.selected(); ok {
			return m, m.cmdHandOff(a)
		}
	case key.Matches(keyMsg, keys.delete):
		if a, ok := m.admin.selected(); ok {
			m.ask(confirmModel{message: app.MsgConfirmDelete, action: confirmDelete, articleID: a.ID, origin: screenAdmin})
		}
	case key.Matches(keyMsg, keys.export):
		return m, m.cmdExport(m.admin.catalog.All())
	case key.Matches(keyMsg, keys.copy):
		if m.admin.lastExport != "" {
			return m, cmdCopyToClipboard(m.admin.lastExport)
		}
	}

	return m, nil
}

// cmdLoadAdmin reloads posts and then stats, in that order.
func (m appModel) cmdLoadAdmin() tea.Cmd {
	ctx := m.ctx
	c := m.admin.catalog
	stats := m.admin.stats
	return func() tea.Msg {
		err := c.LoadArticles(ctx)
		stats.refresh(ctx)
		current, statsErr := stats.get()
		return adminLoadedMsg{stats: current, statsErr: statsErr, err: err}
	}
}

// cmdWaitStats delivers the next periodic refresh, or nothing once done
// is closed.
func (m appModel) cmdWaitStats(done <-chan struct{}) tea.Cmd {
	updates := m.services.StatsRefreshJob.Updates()
	return func() tea.Msg {
		select {
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			return statsTickMsg{update: update}
		case <-done:
			return nil
		}
	}
}

func (m appModel) cmdExport(articles []models.Article) tea.Cmd {
	ctx := m.ctx
	admin := m.services.AdminService
	now := m.now()
	return func() tea.Msg {
		path, err := admin.ExportCSV(ctx, articles, now)
		return exportedMsg{path: path, err: err}
	}
}

func (m appModel) onAdminLoaded(msg adminLoadedMsg) (tea.Model, tea.Cmd) {
	refreshed := m.admin.refreshing
	m.admin.loading = false
	m.admin.refreshing = false
	m.admin.current = msg.stats
	m.admin.statsErr = msg.statsErr
	m.admin.clamp()

	if msg.err != nil {
		return m.fail(msg.err)
	}
	if refreshed && msg.statsErr == nil {
		return m.flash(app.MsgDataRefreshed, nil)
	}
	return m, nil
}

// onStatsTick applies a periodic refresh and waits for the next one while
// the dashboard is open.
func (m appModel) onStatsTick(msg statsTickMsg) (tea.Model, tea.Cmd) {
	if m.currentScreen != screenAdmin || m.admin.done == nil {
		return m, nil
	}
	if msg.update.Err == nil {
		m.admin.current = msg.update.Stats
	}
	m.admin.statsErr = msg.update.Err
	return m, m.cmdWaitStats(m.admin.done)
}

func (m appModel) onExported(msg exportedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m.fail(msg.err)
	}
	m.admin.lastExport = msg.path
	return m.flash(app.MsgArticlesExported+" "+msg.path, nil)
}
