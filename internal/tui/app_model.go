package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-writenest/internal/app"
	"github.com/MKhiriev/go-writenest/internal/logger"
	"github.com/MKhiriev/go-writenest/internal/service"
	"github.com/MKhiriev/go-writenest/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 3 * time.Second

type screen int

const (
	screenCatalog screen = iota
	screenDetail
	screenLogin
	screenRegister
	screenEditor
	screenAdmin
	screenProfile
)

// access is the guard level of s.
func (s screen) access() service.Access {
	switch s {
	case screenEditor, screenProfile:
		return service.AccessGuarded
	case screenAdmin:
		return service.AccessAdmin
	default:
		return service.AccessPublic
	}
}

type appModel struct {
	ctx       context.Context
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
	now       func() time.Time

	session       models.SessionResult
	currentScreen screen

	catalog  catalogModel
	detail   detailModel
	login    loginModel
	register registerModel
	editor   editorModel
	admin    adminModel
	profile  profileModel
	spinner  spinner.Model

	status        string
	statusSeq     int
	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	showBuildInfo bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo, session models.SessionResult, log *logger.Logger) appModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return appModel{
		ctx:       ctx,
		services:  services,
		buildInfo: buildInfo,
		logger:    log,
		now:       time.Now,
		session:   session,
		catalog:   newCatalogModel(services.ArticleService, log),
		login:     newLoginModel(),
		register:  newRegisterModel(),
		admin:     newAdminModel(services.ArticleService, services.AdminService, log),
		spinner:   s,
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadCatalog())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.about) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
		if !m.typing() {
			if model, cmd, ok := m.globalKeys(msg); ok {
				return model, cmd
			}
		}
	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case authorizedMsg:
		return m.onAuthorized(msg)
	case loginDoneMsg:
		return m.onLoginDone(msg)
	case registerDoneMsg:
		return m.onRegisterDone(msg)
	case loggedOutMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Str("func", "appModel.Update").Msg("clear stored session")
		}
		m.session = m.services.SessionService.Current()
		next, cmd := m.enter(screenCatalog, 0)
		return next.flash("Logged out", cmd)
	case catalogLoadedMsg:
		return m.onCatalogLoaded(msg)
	case articleLoadedMsg:
		return m.onArticleLoaded(msg)
	case commentsLoadedMsg:
		return m.onCommentsLoaded(msg)
	case commentPostedMsg:
		return m.onCommentPosted(msg)
	case articleDeletedMsg:
		return m.onArticleDeleted(msg)
	case handedOffMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Str("func", "appModel.Update").Msg("hand over article to editor")
		}
		return m.navigate(screenEditor, msg.id)
	case draftLoadedMsg:
		return m.onDraftLoaded(msg)
	case editLoadedMsg:
		return m.onEditLoaded(msg)
	case postSavedMsg:
		return m.onPostSaved(msg)
	case draftSavedMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		return m.flash(app.MsgDraftSaved, nil)
	case adminLoadedMsg:
		return m.onAdminLoaded(msg)
	case statsTickMsg:
		return m.onStatsTick(msg)
	case exportedMsg:
		return m.onExported(msg)
	case profileLoadedMsg:
		return m.onProfileLoaded(msg)
	case copiedMsg:
		return m.flash(app.MsgCopied, nil)
	case flashErrMsg:
		return m.fail(msg.err)
	case clearStatusMsg:
		if m.statusSeq == int(msg) {
			m.status = ""
		}
		return m, nil
	}

	switch m.currentScreen {
	case screenCatalog:
		return m.updateCatalog(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenEditor:
		return m.updateEditor(msg)
	case screenAdmin:
		return m.updateAdmin(msg)
	case screenProfile:
		return m.updateProfile(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body string
	switch m.currentScreen {
	case screenCatalog:
		body = m.catalog.View(m.spinner.View())
	case screenDetail:
		body = m.detail.View(m.now(), m.session)
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.register.View()
	case screenEditor:
		body = m.editor.View()
	case screenAdmin:
		body = m.admin.View()
	case screenProfile:
		body = m.profile.View(m.session)
	}

	out := m.navBar() + "\n\n" + body
	if m.status != "" {
		out += "\n\n" + statusStyle.Render(m.status)
	}
	if m.showConfirm {
		out += "\n\n" + m.confirm.View()
	}
	if m.showError {
		out += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(out)
}

// navBar shows the account affordances only for a verified session.
func (m appModel) navBar() string {
	items := []string{"b articles"}
	if m.session.Verified() {
		items = append(items, "n new post", "p profile")
		if service.IsAdmin(m.session.Identity) {
			items = append(items, "a admin")
		}
		items = append(items, "o logout")
	} else {
		items = append(items, "L login", "R register")
	}

	bar := titleStyle.Render("WriteNest") + "  " + helpStyle.Render(strings.Join(items, "  "))
	if m.session.Verified() {
		bar += "  " + badgeStyle.Render(m.session.Identity.DisplayName())
	}
	return bar
}

// typing reports whether keys go to a text field.
func (m appModel) typing() bool {
	switch m.currentScreen {
	case screenLogin, screenRegister, screenEditor:
		return true
	case screenCatalog:
		return m.catalog.searching
	case screenAdmin:
		return m.admin.searching
	case screenDetail:
		return m.detail.writing
	}
	return false
}

func (m appModel) busy() bool {
	return m.catalog.loading || m.detail.loading || m.admin.loading || m.profile.loading || m.editor.loading
}

func (m appModel) globalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	var (
		model tea.Model
		cmd   tea.Cmd
	)

	switch {
	case key.Matches(msg, keys.quit):
		model, cmd = m.quit()
	case key.Matches(msg, keys.about):
		m.showBuildInfo = true
		model = m
	case key.Matches(msg, keys.browse):
		model, cmd = m.navigate(screenCatalog, 0)
	case key.Matches(msg, keys.profile):
		model, cmd = m.navigate(screenProfile, 0)
	case key.Matches(msg, keys.admin):
		model, cmd = m.navigate(screenAdmin, 0)
	case key.Matches(msg, keys.newPost):
		model, cmd = m.navigate(screenEditor, 0)
	case key.Matches(msg, keys.login):
		model, cmd = m.navigate(screenLogin, 0)
	case key.Matches(msg, keys.register):
		model, cmd = m.navigate(screenRegister, 0)
	case key.Matches(msg, keys.logout):
		if !m.session.Verified() {
			return m, nil, false
		}
		m.ask(confirmModel{message: app.MsgConfirmLogout, action: confirmLogout})
		model = m
	default:
		return m, nil, false
	}

	return model, cmd, true
}

// navigate opens target. Guarded and admin screens re-check the session
// first; the result arrives as an authorizedMsg.
func (m appModel) navigate(target screen, payload int64) (tea.Model, tea.Cmd) {
	access := target.access()
	if access == service.AccessPublic {
		return m.enter(target, payload)
	}
	return m, m.cmdAuthorize(target, payload, access)
}

func (m appModel) cmdAuthorize(target screen, payload int64, access service.Access) tea.Cmd {
	ctx := m.ctx
	sessions := m.services.SessionService
	return func() tea.Msg {
		result, err := sessions.Authorize(ctx, access)
		return authorizedMsg{target: target, payload: payload, result: result, err: err}
	}
}

func (m appModel) onAuthorized(msg authorizedMsg) (tea.Model, tea.Cmd) {
	wasVerified := m.session.Verified()
	m.session = msg.result

	switch {
	case errors.Is(msg.err, service.ErrAdminRequired):
		next, cmd := m.enter(screenCatalog, 0)
		return next.flash(app.MsgAdminRequired, cmd)
	case msg.err != nil:
		m.login.notice = app.MsgLoginRequired
		if wasVerified {
			m.login.notice = app.MsgSessionExpired
		}
		return m.enter(screenLogin, 0)
	}

	return m.enter(msg.target, msg.payload)
}

// enter switches to target without a guard check and starts its loading.
func (m appModel) enter(target screen, payload int64) (appModel, tea.Cmd) {
	if m.currentScreen == screenAdmin {
		m = m.stopAdmin()
	}
	m.currentScreen = target

	switch target {
	case screenCatalog:
		m.catalog.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadCatalog())
	case screenDetail:
		m.detail = newDetailModel(payload)
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadArticle(payload))
	case screenLogin:
		m.login.errMsg = ""
		m.login.submitting = false
		return m, textinput.Blink
	case screenRegister:
		m.register = newRegisterModel()
		return m, textinput.Blink
	case screenEditor:
		m.editor = newEditorModel(payload, m.now())
		if payload == 0 {
			return m, m.cmdLoadDraft()
		}
		m.editor.loading = true
		return m, m.cmdOpenForEdit(payload)
	case screenAdmin:
		return m.startAdmin()
	case screenProfile:
		m.profile = profileModel{loading: true}
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadProfile())
	}

	return m, nil
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.showConfirm = false
		c := m.confirm
		m.confirm = confirmModel{}

		switch c.action {
		case confirmLogout:
			return m, m.cmdLogout()
		case confirmDelete:
			return m, m.cmdDelete(c.origin, c.articleID)
		case confirmLoadDraft:
			m.editor.setForm(m.editor.pendingDraft)
			m.editor.pendingDraft = models.PostForm{}
			return m, nil
		case confirmCancelEdit:
			if m.editor.editingID > 0 {
				return m.enter(screenDetail, m.editor.editingID)
			}
			return m.enter(screenCatalog, 0)
		}
		return m, nil
	case key.Matches(msg, keys.no) || key.Matches(msg, keys.esc):
		m.showConfirm = false
		m.confirm = confirmModel{}
		m.editor.pendingDraft = models.PostForm{}
	}
	return m, nil
}

func (m *appModel) ask(c confirmModel) {
	m.showConfirm = true
	m.confirm = c
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// fail shows err in the error overlay.
func (m appModel) fail(err error) (appModel, tea.Cmd) {
	m.showErrorf(errorText(err))
	return m, nil
}

// flash shows text in the status line for a few seconds, alongside cmd.
func (m appModel) flash(text string, cmd tea.Cmd) (appModel, tea.Cmd) {
	m.status = text
	m.statusSeq++
	return m, tea.Batch(cmd, cmdClearStatus(m.statusSeq))
}

func (m appModel) quit() (tea.Model, tea.Cmd) {
	m = m.stopAdmin()
	return m, tea.Quit
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	sessions := m.services.SessionService
	return func() tea.Msg {
		return loggedOutMsg{err: sessions.Logout(ctx)}
	}
}

// cmdDelete deletes an article from the screen the user confirmed on.
// The catalog and admin screens delete through their catalogs, which
// reload afterwards.
func (m appModel) cmdDelete(origin screen, id int64) tea.Cmd {
	ctx := m.ctx
	switch origin {
	case screenCatalog:
		c := m.catalog.catalog
		return func() tea.Msg {
			return articleDeletedMsg{origin: origin, err: c.DeleteArticle(ctx, id)}
		}
	case screenAdmin:
		c := m.admin.catalog
		return func() tea.Msg {
			return articleDeletedMsg{origin: origin, err: c.DeleteArticle(ctx, id)}
		}
	}

	articles := m.services.ArticleService
	return func() tea.Msg {
		return articleDeletedMsg{origin: origin, err: articles.Delete(ctx, id)}
	}
}

func (m appModel) onArticleDeleted(msg articleDeletedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m.fail(msg.err)
	}

	switch msg.origin {
	case screenCatalog:
		m.catalog.clamp()
		return m.flash(app.MsgArticleDeleted, nil)
	case screenAdmin:
		m.admin.clamp()
		m.admin.current, m.admin.statsErr = m.admin.stats.get()
		return m.flash(app.MsgArticleDeleted, nil)
	}

	next, cmd := m.enter(screenCatalog, 0)
	return next.flash(app.MsgArticleDeleted, cmd)
}

func (m appModel) cmdHandOff(article models.Article) tea.Cmd {
	ctx := m.ctx
	posts := m.services.PostService
	return func() tea.Msg {
		return handedOffMsg{id: article.ID, err: posts.HandOff(ctx, article)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return flashErrMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

type clearStatusMsg int

func cmdClearStatus(seq int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg(seq)
	})
}
