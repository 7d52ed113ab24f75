// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DefaultArticleIcon is shown for articles that carry neither an image nor
// an icon of their own.
const DefaultArticleIcon = "📄"

// DefaultArticleStatus is the status badge of articles without a status.
const DefaultArticleStatus = "Published"

// Article is the canonical article shape used past the network boundary.
// The server owns every field; the client never mutates an Article in place.
type Article struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	AuthorID    int64    `json:"authorId"`
	Date        string   `json:"date"`
	DateCreated string   `json:"dateCreated,omitempty"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Content     string   `json:"content"`
	Excerpt     string   `json:"excerpt"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Views       int64    `json:"views"`
	Icon        string   `json:"icon,omitempty"`
	Status      string   `json:"status,omitempty"`
}

type articleWire struct {
	ID            FlexInt64 `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	AuthorID      FlexInt64 `json:"authorId"`
	Date          string    `json:"date"`
	DateCreated   string    `json:"dateCreated"`
	Category      *string   `json:"category"`
	CategoryName  *string   `json:"categoryName"`
	Tags          tagList   `json:"tags"`
	Content       string    `json:"content"`
	Excerpt       string    `json:"excerpt"`
	ImageURL      *string   `json:"imageUrl"`
	FeaturedImage *string   `json:"featuredImage"`
	Views         FlexInt64 `json:"views"`
	Icon          string    `json:"icon"`
	Status        string    `json:"status"`
}

// UnmarshalJSON folds the "category"/"categoryName" and
// "imageUrl"/"featuredImage" variants into one field each.
func (a *Article) UnmarshalJSON(data []byte) error {
	var w articleWire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("decode article: %w", err)
	}

	*a = Article{
		ID:          int64(w.ID),
		Title:       w.Title,
		Author:      w.Author,
		AuthorID:    int64(w.AuthorID),
		Date:        w.Date,
		DateCreated: w.DateCreated,
		Category:    firstNonEmpty(w.Category, w.CategoryName),
		Tags:        []string(w.Tags),
		Content:     w.Content,
		Excerpt:     w.Excerpt,
		ImageURL:    firstNonEmpty(w.ImageURL, w.FeaturedImage),
		Views:       int64(w.Views),
		Icon:        w.Icon,
		Status:      w.Status,
	}
	if a.Date == "" {
		a.Date = a.DateCreated
	}

	return nil
}

// DisplayIcon returns the article icon or the fallback glyph.
func (a Article) DisplayIcon() string {
	if a.Icon != "" {
		return a.Icon
	}
	return DefaultArticleIcon
}

// StatusLabel returns the status badge text.
func (a Article) StatusLabel() string {
	if a.Status != "" {
		return a.Status
	}
	return DefaultArticleStatus
}

// Paragraphs splits content on line breaks and drops blank lines.
func (a Article) Paragraphs() []string {
	lines := strings.Split(strings.ReplaceAll(a.Content, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}

func firstNonEmpty(values ...*string) string {
	for _, v := range values {
		if v != nil && *v != "" {
			return *v
		}
	}
	return ""
}

// tagList accepts either a JSON array of strings or a comma separated string.
type tagList []string

func (t *tagList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*t = list
		return nil
	}

	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode tags: %w", err)
	}
	if raw == nil {
		*t = nil
		return nil
	}
	*t = ParseTags(*raw)
	return nil
}

// ParseTags splits a comma separated tag string, trimming each tag and
// dropping empties.
func ParseTags(raw string) []string {
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
