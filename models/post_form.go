package models

import "strings"

// PostForm is the data entered in the post editor. It doubles as the
// locally saved draft.
type PostForm struct {
	Title         string `json:"title"`
	Category      string `json:"category"`
	Tags          string `json:"tags"`
	Excerpt       string `json:"excerpt"`
	Content       string `json:"content"`
	ImageURL      string `json:"imageUrl"`
	PublishDate   string `json:"publishDate"`
	AllowComments bool   `json:"allowComments"`
	IsFeatured    bool   `json:"isFeatured"`
	// SavedAt is set when the form is stored as a draft.
	SavedAt string `json:"savedAt,omitempty"`
}

// FormFromArticle prefills an editor form for an existing article. The
// excerpt is prefilled from the first 200 characters of the content.
func FormFromArticle(a Article) PostForm {
	excerpt := []rune(a.Content)
	if len(excerpt) > ExcerptPrefillLength {
		excerpt = excerpt[:ExcerptPrefillLength]
	}

	return PostForm{
		Title:         a.Title,
		Category:      a.Category,
		Tags:          strings.Join(a.Tags, ", "),
		Excerpt:       string(excerpt),
		Content:       a.Content,
		ImageURL:      a.ImageURL,
		PublishDate:   a.Date,
		AllowComments: true,
	}
}

// ExcerptPrefillLength is how much content is copied into the excerpt when
// an existing article is opened for editing.
const ExcerptPrefillLength = 200

// CreatePostRequest is the body of POST /posts.
type CreatePostRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Date     string   `json:"date"`
}

// UpdatePostRequest is the body of PUT /posts/:id. A nil ImageURL is sent
// as JSON null and clears the image.
type UpdatePostRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	ImageURL *string  `json:"imageUrl"`
}
