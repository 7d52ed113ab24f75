package tui

import (
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/go-writenest/internal/app"
	"github.com/MKhiriev/go-writenest/internal/service"
	"github.com/MKhiriev/go-writenest/internal/validators"
	"github.com/MKhiriev/go-writenest/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	editorTitle = iota
	editorCategory
	editorTags
	editorExcerpt
	editorImageURL
	editorPublishDate
	// editorContent is the textarea that follows the inputs.
	editorContent
)

type editorModel struct {
	// editingID is the article being edited; 0 for a new post.
	editingID     int64
	inputs        []textinput.Model
	content       textarea.Model
	focus         int
	allowComments bool
	featured      bool
	loading       bool
	submitting    bool
	errMsg        string
	pendingDraft  models.PostForm
}

func newEditorModel(editingID int64, now time.Time) editorModel {
	title := newInput("Post title", validators.MaxTitleLength)
	title.Focus()

	publishDate := newInput("YYYY-MM-DD", 10)
	publishDate.SetValue(now.Format(time.DateOnly))

	content := textarea.New()
	content.Placeholder = "Write your story..."
	content.SetWidth(72)
	content.SetHeight(8)
	content.CharLimit = 0

	return editorModel{
		editingID: editingID,
		inputs: []textinput.Model{
			title,
			newInput("Category", 100),
			newInput("tag1, tag2", 200),
			newInput("Short summary", validators.MaxExcerptLength),
			newInput("https://...", 2048),
			publishDate,
		},
		content:       content,
		allowComments: true,
	}
}

func (m editorModel) form() models.PostForm {
	return models.PostForm{
		Title:         m.inputs[editorTitle].Value(),
		Category:      m.inputs[editorCategory].Value(),
		Tags:          m.inputs[editorTags].Value(),
		Excerpt:       m.inputs[editorExcerpt].Value(),
		Content:       m.content.Value(),
		ImageURL:      m.inputs[editorImageURL].Value(),
		PublishDate:   m.inputs[editorPublishDate].Value(),
		AllowComments: m.allowComments,
		IsFeatured:    m.featured,
	}
}

func (m *editorModel) setForm(form models.PostForm) {
	m.inputs[editorTitle].SetValue(form.Title)
	m.inputs[editorCategory].SetValue(form.Category)
	m.inputs[editorTags].SetValue(form.Tags)
	m.inputs[editorExcerpt].SetValue(form.Excerpt)
	m.inputs[editorImageURL].SetValue(form.ImageURL)
	if form.PublishDate != "" {
		m.inputs[editorPublishDate].SetValue(form.PublishDate)
	}
	m.content.SetValue(form.Content)
	m.allowComments = form.AllowComments
	m.featured = form.IsFeatured
}

// moveFocus cycles over the inputs and the content area.
func (m *editorModel) moveFocus(delta int) tea.Cmd {
	total := len(m.inputs) + 1

	if m.focus == editorContent {
		m.content.Blur()
	} else {
		m.inputs[m.focus].Blur()
	}

	m.focus = (m.focus + delta + total) % total

	if m.focus == editorContent {
		return m.content.Focus()
	}
	return m.inputs[m.focus].Focus()
}

func (m editorModel) View() string {
	title := "NEW POST"
	if m.editingID > 0 {
		title = "EDIT POST"
	}
	if m.loading {
		return renderPage(title, "Loading article...", "esc: cancel")
	}

	var b strings.Builder
	b.WriteString("Title      │ [" + m.inputs[editorTitle].View() + "] " + helpStyle.Render(counter(m.inputs[editorTitle].Value(), validators.MaxTitleLength)) + "\n")
	b.WriteString("Category   │ [" + m.inputs[editorCategory].View() + "]\n")
	b.WriteString("Tags       │ [" + m.inputs[editorTags].View() + "]\n")
	b.WriteString("Excerpt    │ [" + m.inputs[editorExcerpt].View() + "] " + helpStyle.Render(counter(m.inputs[editorExcerpt].Value(), validators.MaxExcerptLength)) + "\n")
	b.WriteString("Image URL  │ [" + m.inputs[editorImageURL].View() + "]\n")
	b.WriteString("Publish on │ [" + m.inputs[editorPublishDate].View() + "]\n")
	b.WriteString("           │ " + checkbox("Allow comments", m.allowComments) + "  " + checkbox("Featured", m.featured) + "\n")
	b.WriteString("Content\n")
	b.WriteString(m.content.View())
	b.WriteString("\n")

	switch {
	case m.submitting && m.editingID > 0:
		b.WriteString("\n[Updating...]\n")
	case m.submitting:
		b.WriteString("\n[Publishing...]\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg) + "\n")
	}

	hotKeys := "esc: cancel │ tab: next field │ ctrl+s: publish │ ctrl+d: save draft │ ctrl+t: comments │ ctrl+f: featured"
	if m.editingID > 0 {
		hotKeys = "esc: cancel │ tab: next field │ ctrl+s: update │ ctrl+t: comments │ ctrl+f: featured"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m appModel) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.editor.loading {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.ask(confirmModel{message: app.MsgCancelEditing, action: confirmCancelEdit})
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			return m, m.editor.moveFocus(1)
		case key.Matches(keyMsg, keys.backtab):
			return m, m.editor.moveFocus(-1)
		case key.Matches(keyMsg, keys.toggle):
			m.editor.allowComments = !m.editor.allowComments
			return m, nil
		case key.Matches(keyMsg, keys.featured):
			m.editor.featured = !m.editor.featured
			return m, nil
		case key.Matches(keyMsg, keys.saveDraft):
			if m.editor.editingID > 0 {
				return m, nil
			}
			return m, m.cmdSaveDraft(m.editor.form())
		case key.Matches(keyMsg, keys.submit):
			if m.editor.submitting {
				return m, nil
			}
			m.editor.errMsg = ""
			m.editor.submitting = true
			return m, m.cmdSavePost(m.editor.editingID, m.editor.form())
		}
	}

	var cmd tea.Cmd
	if m.editor.focus == editorContent {
		m.editor.content, cmd = m.editor.content.Update(msg)
	} else {
		m.editor.inputs[m.editor.focus], cmd = m.editor.inputs[m.editor.focus].Update(msg)
	}
	return m, cmd
}

func (m appModel) cmdLoadDraft() tea.Cmd {
	ctx := m.ctx
	posts := m.services.PostService
	return func() tea.Msg {
		form, err := posts.LoadDraft(ctx)
		return draftLoadedMsg{form: form, found: err == nil}
	}
}

func (m appModel) cmdOpenForEdit(id int64) tea.Cmd {
	ctx := m.ctx
	posts := m.services.PostService
	identity := m.session.Identity
	return func() tea.Msg {
		article, err := posts.OpenForEdit(ctx, identity, id)
		return editLoadedMsg{article: article, err: err}
	}
}

func (m appModel) cmdSaveDraft(form models.PostForm) tea.Cmd {
	ctx := m.ctx
	posts := m.services.PostService
	return func() tea.Msg {
		return draftSavedMsg{err: posts.SaveDraft(ctx, form)}
	}
}

// cmdSavePost publishes a new post or updates an existing one. A published
// post's draft is discarded.
func (m appModel) cmdSavePost(id int64, form models.PostForm) tea.Cmd {
	ctx := m.ctx
	posts := m.services.PostService
	log := m.logger
	return func() tea.Msg {
		if id > 0 {
			article, err := posts.Update(ctx, id, form)
			return postSavedMsg{article: article, updated: true, err: err}
		}

		article, err := posts.Create(ctx, form)
		if err == nil {
			if clearErr := posts.ClearDraft(ctx); clearErr != nil {
				log.Warn().Err(clearErr).Str("func", "appModel.cmdSavePost").Msg("discard published draft")
			}
		}
		return postSavedMsg{article: article, err: err}
	}
}

// onDraftLoaded offers a saved draft; declining keeps it stored.
func (m appModel) onDraftLoaded(msg draftLoadedMsg) (tea.Model, tea.Cmd) {
	if !msg.found || m.currentScreen != screenEditor || m.editor.editingID > 0 {
		return m, nil
	}
	m.editor.pendingDraft = msg.form
	m.ask(confirmModel{message: app.MsgDraftFound, action: confirmLoadDraft})
	return m, nil
}

func (m appModel) onEditLoaded(msg editLoadedMsg) (tea.Model, tea.Cmd) {
	m.editor.loading = false
	switch {
	case errors.Is(msg.err, service.ErrNotAuthor):
		next, cmd := m.navigate(screenProfile, 0)
		return next.(appModel).flash(app.MsgNotAuthorized, cmd)
	case msg.err != nil:
		next, cmd := m.enter(screenCatalog, 0)
		next.showErrorf(errorText(msg.err))
		return next, cmd
	}

	m.editor.setForm(models.FormFromArticle(msg.article))
	return m, textinput.Blink
}

// onPostSaved re-enables the form on every outcome. Form problems are
// listed together; other failures show the server's message.
func (m appModel) onPostSaved(msg postSavedMsg) (tea.Model, tea.Cmd) {
	m.editor.submitting = false
	switch {
	case errors.Is(msg.err, service.ErrInvalidPostForm):
		m.editor.errMsg = formErrorsText(msg.err)
		return m, nil
	case msg.err != nil:
		m.editor.errMsg = errorText(msg.err)
		return m, nil
	}

	if msg.updated {
		next, cmd := m.enter(screenDetail, m.editor.editingID)
		return next.flash(app.MsgPostUpdated, cmd)
	}
	next, cmd := m.enter(screenCatalog, 0)
	return next.flash(app.MsgPostPublished, cmd)
}
