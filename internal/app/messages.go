// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the
// validators, the service layer and the terminal screens.
//
// Keeping them in one place ensures the same wording is shown for the same
// outcome no matter which screen triggers it.
package app

// Comment form.
const (
	// MsgCommentRequired is shown when the comment is blank after trimming.
	MsgCommentRequired = "Please enter a comment"

	// MsgCommentTooLong is shown when the comment exceeds MaxCommentLength.
	MsgCommentTooLong = "Comment is too long (max 1000 characters)"

	MsgCommentPosted = "Comment posted successfully!"
)

// Post editor.
const (
	MsgTitleRequired       = "Title is required"
	MsgCategoryRequired    = "Category is required"
	MsgExcerptRequired     = "Excerpt is required"
	MsgContentRequired     = "Content is required"
	MsgPublishDateRequired = "Publish date is required"
	MsgImageURLInvalid     = "Featured image must be a valid URL"

	// MsgFixErrors prefixes the list of post form problems.
	MsgFixErrors = "Please fix the following errors:"

	MsgPostPublished = "Post Published Successfully!"
	MsgPostUpdated   = "Post Updated Successfully!"
	MsgDraftSaved    = "Draft saved locally!"
	MsgDraftFound    = "Found a saved draft. Would you like to load it?"
	MsgNotAuthorized = "You are not authorized to edit this article"
	MsgCancelEditing = "Are you sure you want to cancel? Any unsaved changes will be lost."
)

// Authentication.
const (
	MsgFieldsRequired     = "Please fill in all fields"
	MsgPasswordsMismatch  = "Passwords do not match!"
	MsgPasswordTooShort   = "Password must be at least 8 characters long!"
	MsgTermsNotAccepted   = "Please agree to the Terms & Conditions"
	MsgLoginRequired      = "Please login to continue"
	MsgSessionExpired     = "Session expired. Please login again."
	MsgAdminRequired      = "Admin access required"
	MsgConfirmLogout      = "Are you sure you want to logout?"
	MsgRegistrationPrompt = "Registration successful! Please log in."
)

// Catalog and admin dashboard.
const (
	MsgNoArticlesFound    = "No articles found"
	MsgConfirmDelete      = "Are you sure you want to delete this article? This action cannot be undone."
	MsgArticleDeleted     = "Article deleted successfully!"
	MsgNoArticlesToExport = "No articles to export"
	MsgArticlesExported   = "Articles exported successfully!"
	MsgDataRefreshed      = "Data refreshed!"
	MsgStatsFailed        = "Failed to load statistics"
	MsgCopied             = "Copied to clipboard"
)

// MsgServerUnavailable replaces low-level transport errors in notifications.
const MsgServerUnavailable = "No network or server unavailable"
