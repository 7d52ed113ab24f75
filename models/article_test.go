package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticle_UnmarshalJSON_CategoryVariants(t *testing.T) {
	var a, b Article
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"title":"Go","category":"Tech"}`), &a))
	require.NoError(t, json.Unmarshal([]byte(`{"id":"2","title":"Soup","categoryName":"Food"}`), &b))

	assert.Equal(t, "Tech", a.Category)
	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, "Food", b.Category)
	assert.Equal(t, int64(2), b.ID)
}

func TestArticle_UnmarshalJSON_NullsAndFallbacks(t *testing.T) {
	body := `{
		"id": 9,
		"authorId": "4",
		"category": null,
		"categoryName": "News",
		"tags": "go, tui,, cms ",
		"imageUrl": null,
		"featuredImage": "https://img.example.com/a.png",
		"dateCreated": "2024-03-01T10:00:00Z",
		"views": 12
	}`

	var a Article
	require.NoError(t, json.Unmarshal([]byte(body), &a))

	assert.Equal(t, int64(4), a.AuthorID)
	assert.Equal(t, "News", a.Category)
	assert.Equal(t, []string{"go", "tui", "cms"}, a.Tags)
	assert.Equal(t, "https://img.example.com/a.png", a.ImageURL)
	assert.Equal(t, "2024-03-01T10:00:00Z", a.Date)
	assert.Equal(t, int64(12), a.Views)
}

func TestArticle_DisplayDefaults(t *testing.T) {
	var a Article
	assert.Equal(t, DefaultArticleIcon, a.DisplayIcon())
	assert.Equal(t, "Published", a.StatusLabel())

	a.Icon = "🚀"
	a.Status = "Draft"
	assert.Equal(t, "🚀", a.DisplayIcon())
	assert.Equal(t, "Draft", a.StatusLabel())
}

func TestArticle_Paragraphs(t *testing.T) {
	a := Article{Content: "first\r\n\r\nsecond\n   \nthird"}
	assert.Equal(t, []string{"first", "second", "third"}, a.Paragraphs())
}

func TestParseTags(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, ParseTags(" a, b,,c ,"))
	assert.Nil(t, ParseTags(""))
	assert.Nil(t, ParseTags(" , ,"))
}

func TestArticles_DecodeList(t *testing.T) {
	var list []Article
	require.NoError(t, json.Unmarshal([]byte(`[{"id":1,"title":"A"},{"id":2,"title":"B"}]`), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "A", list[0].Title)
	assert.Equal(t, "B", list[1].Title)
}

func TestFormFromArticle_PrefillsExcerpt(t *testing.T) {
	content := make([]rune, 250)
	for i := range content {
		content[i] = 'ж'
	}
	a := Article{Title: "T", Category: "C", Tags: []string{"x", "y"}, Content: string(content), Date: "2024-01-02"}

	form := FormFromArticle(a)
	assert.Equal(t, "T", form.Title)
	assert.Equal(t, "x, y", form.Tags)
	assert.Len(t, []rune(form.Excerpt), ExcerptPrefillLength)
	assert.Equal(t, "2024-01-02", form.PublishDate)
}
