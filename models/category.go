package models

// Category is an entry of the categories endpoint.
type Category struct {
	Name      string `json:"name"`
	PostCount int64  `json:"postCount"`
}

// Stats is the admin dashboard summary.
type Stats struct {
	TotalArticles  int64 `json:"totalArticles"`
	TotalAuthors   int64 `json:"totalAuthors"`
	TotalViews     int64 `json:"totalViews"`
	PublishedToday int64 `json:"publishedToday"`
}
