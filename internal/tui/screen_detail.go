package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-writenest/internal/app"
	"github.com/MKhiriev/go-writenest/internal/service"
	"github.com/MKhiriev/go-writenest/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var paragraphStyle = lipgloss.NewStyle().Width(80)

type detailModel struct {
	articleID  int64
	article    models.Article
	comments   []models.Comment
	commentErr error
	loading    bool
	loadErr    error
	comment    textinput.Model
	writing    bool
	submitting bool
}

func newDetailModel(id int64) detailModel {
	return detailModel{
		articleID: id,
		loading:   true,
		comment:   newInput("Write a comment...", 0),
	}
}

func (m detailModel) View(now time.Time, session models.SessionResult) string {
	if m.loading {
		return renderPage("ARTICLE", "Loading article...", "esc: back")
	}
	if m.loadErr != nil {
		return renderPage("ARTICLE", errorStyle.Render(errorText(m.loadErr))+"\nPress r to try again.", "esc: back │ r: retry")
	}

	a := m.article
	var b strings.Builder

	b.WriteString(a.DisplayIcon() + " " + titleStyle.Render(a.Title))
	b.WriteString("\n")
	meta := []string{"by " + valueOrDash(a.Author), formatDay(a.Date), formatNumber(a.Views) + " views"}
	if a.Category != "" {
		meta = append([]string{badgeStyle.Render(a.Category)}, meta...)
	}
	b.WriteString(helpStyle.Render(strings.Join(meta, " · ")))
	if len(a.Tags) > 0 {
		b.WriteString("\nTags: " + strings.Join(a.Tags, ", "))
	}
	if a.ImageURL != "" {
		b.WriteString("\nImage: " + a.ImageURL)
	}
	b.WriteString("\n\n")

	for _, p := range a.Paragraphs() {
		b.WriteString(paragraphStyle.Render(p))
		b.WriteString("\n\n")
	}

	b.WriteString(titleStyle.Render(fmt.Sprintf("Comments (%d)", len(m.comments))))
	b.WriteString("\n")
	switch {
	case m.commentErr != nil:
		b.WriteString(errorStyle.Render("Failed to load comments: " + errorText(m.commentErr)))
		b.WriteString("\n")
	case len(m.comments) == 0:
		b.WriteString(helpStyle.Render("No comments yet. Be the first to comment!"))
		b.WriteString("\n")
	}
	for _, c := range m.comments {
		b.WriteString(badgeStyle.Render(valueOrDash(c.UserName)))
		b.WriteString(" ")
		b.WriteString(helpStyle.Render(formatDate(c.DateTime, now)))
		b.WriteString("\n")
		b.WriteString(paragraphStyle.Render(c.Body))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case !session.Verified():
		b.WriteString(helpStyle.Render("Login to leave a comment."))
	case m.submitting:
		b.WriteString("Posting...")
	default:
		b.WriteString("Comment: ")
		b.WriteString(m.comment.View())
		b.WriteString("  " + helpStyle.Render(counter(m.comment.Value(), 1000)))
	}

	hotKeys := "esc: back │ tab: comment │ c: copy │ r: reload"
	if service.CanEdit(session.Identity, a) {
		hotKeys += " │ e: edit │ d: delete"
	}
	if m.writing {
		hotKeys = "enter: post comment │ esc: stop typing"
	}

	return renderPage("ARTICLE", b.String(), hotKeys)
}

// clipboardText is what "copy" puts on the clipboard.
func (m detailModel) clipboardText() string {
	return m.article.Title + "\n\n" + strings.Join(m.article.Paragraphs(), "\n\n")
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.detail.writing {
		if m.detail.submitting && !key.Matches(keyMsg, keys.esc) {
			return m, nil
		}
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.detail.writing = false
			m.detail.comment.Blur()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			m.detail.submitting = true
			return m, m.cmdSubmitComment(m.detail.articleID, m.detail.comment.Value())
		}

		var cmd tea.Cmd
		m.detail.comment, cmd = m.detail.comment.Update(msg)
		return m, cmd
	}

	if m.detail.loading {
		return m, nil
	}

	article := m.detail.article
	switch {
	case key.Matches(keyMsg, keys.esc):
		return m.enter(screenCatalog, 0)
	case key.Matches(keyMsg, keys.refresh):
		return m.enter(screenDetail, m.detail.articleID)
	case key.Matches(keyMsg, keys.tab):
		if m.detail.loadErr != nil {
			return m, nil
		}
		if !m.session.Verified() {
			return m.flash(app.MsgLoginRequired, nil)
		}
		m.detail.writing = true
		return m, m.detail.comment.Focus()
	case key.Matches(keyMsg, keys.copy):
		if m.detail.loadErr != nil {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.detail.clipboardText())
	case key.Matches(keyMsg, keys.edit):
		if !service.CanEdit(m.session.Identity, article) {
			return m.flash(app.MsgNotAuthorized, nil)
		}
		return m, m.cmdHandOff(article)
	case key.Matches(keyMsg, keys.delete):
		if !service.CanEdit(m.session.Identity, article) {
			return m, nil
		}
		m.ask(confirmModel{message: app.MsgConfirmDelete, action: confirmDelete, articleID: article.ID, origin: screenDetail})
	}

	return m, nil
}

func (m appModel) cmdLoadArticle(id int64) tea.Cmd {
	ctx := m.ctx
	articles := m.services.ArticleService
	comments := m.services.CommentService
	return func() tea.Msg {
		article, err := articles.Get(ctx, id)
		if err != nil {
			return articleLoadedMsg{err: err}
		}
		list, err := comments.List(ctx, id)
		return articleLoadedMsg{article: article, comments: list, commentsErr: err}
	}
}

func (m appModel) cmdRegisterView(id int64) tea.Cmd {
	ctx := m.ctx
	articles := m.services.ArticleService
	return func() tea.Msg {
		articles.RegisterView(ctx, id)
		return nil
	}
}

func (m appModel) cmdLoadComments(id int64) tea.Cmd {
	ctx := m.ctx
	comments := m.services.CommentService
	return func() tea.Msg {
		list, err := comments.List(ctx, id)
		return commentsLoadedMsg{comments: list, err: err}
	}
}

func (m appModel) cmdSubmitComment(id int64, body string) tea.Cmd {
	ctx := m.ctx
	comments := m.services.CommentService
	return func() tea.Msg {
		return commentPostedMsg{err: comments.Submit(ctx, id, body)}
	}
}

// onArticleLoaded shows the article, then records the view.
func (m appModel) onArticleLoaded(msg articleLoadedMsg) (tea.Model, tea.Cmd) {
	m.detail.loading = false
	if msg.err != nil {
		m.detail.loadErr = msg.err
		return m, nil
	}

	m.detail.loadErr = nil
	m.detail.article = msg.article
	m.detail.comments = msg.comments
	m.detail.commentErr = msg.commentsErr
	return m, m.cmdRegisterView(msg.article.ID)
}

func (m appModel) onCommentsLoaded(msg commentsLoadedMsg) (tea.Model, tea.Cmd) {
	m.detail.commentErr = msg.err
	if msg.err == nil {
		m.detail.comments = msg.comments
	}
	return m, nil
}

// onCommentPosted re-enables the comment form on every outcome.
func (m appModel) onCommentPosted(msg commentPostedMsg) (tea.Model, tea.Cmd) {
	m.detail.submitting = false
	if msg.err != nil {
		return m.fail(msg.err)
	}

	m.detail.comment.SetValue("")
	m.detail.comment.Blur()
	m.detail.writing = false
	return m.flash(app.MsgCommentPosted, m.cmdLoadComments(m.detail.articleID))
}
