package validators

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-writenest/models"
)

const (
	FieldComment         = "comment"
	FieldTitle           = "title"
	FieldCategory        = "category"
	FieldExcerpt         = "excerpt"
	FieldContent         = "content"
	FieldPublishDate     = "publish_date"
	FieldImageURL        = "image_url"
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
	FieldPasswordLength  = "password_length"
	FieldTerms           = "terms"
)

const (
	// MaxCommentLength is the comment limit in characters.
	MaxCommentLength = 1000
	// MinPasswordLength is the shortest password accepted at registration.
	MinPasswordLength = 8
	// MaxTitleLength and MaxExcerptLength drive the editor counters.
	MaxTitleLength   = 200
	MaxExcerptLength = 300
)

// FormValidator validates the comment, post and registration forms.
type FormValidator struct {
}

// NewFormValidator returns the [Validator] for user-entered forms.
func NewFormValidator() Validator {
	return &FormValidator{}
}

// Validate dispatches on the dynamic type of obj. Value and pointer forms of
// models.CommentRequest, models.PostForm, models.RegisterForm and
// models.LoginRequest are accepted; anything else yields ErrUnsupportedType.
//
// Comment, registration and login checks stop at the first problem. Post
// form problems are all collected and returned joined, in field order.
func (v *FormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CommentRequest:
		return v.validateComment(ctx, value, fields...)
	case *models.CommentRequest:
		return v.validateComment(ctx, *value, fields...)

	case models.PostForm:
		return v.validatePostForm(ctx, value, fields...)
	case *models.PostForm:
		return v.validatePostForm(ctx, *value, fields...)

	case models.RegisterForm:
		return v.validateRegisterForm(ctx, value, fields...)
	case *models.RegisterForm:
		return v.validateRegisterForm(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLogin(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *FormValidator) validateComment(_ context.Context, comment models.CommentRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldComment}
	}

	for _, f := range fields {
		switch f {
		case FieldComment:
			body := strings.TrimSpace(comment.Content)
			if body == "" {
				return ErrCommentRequired
			}
			if utf8.RuneCountInString(body) > MaxCommentLength {
				return ErrCommentTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FormValidator) validatePostForm(_ context.Context, form models.PostForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldCategory, FieldExcerpt, FieldContent, FieldPublishDate, FieldImageURL}
	}

	var errs []error
	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(form.Title) == "" {
				errs = append(errs, ErrTitleRequired)
			}
		case FieldCategory:
			if strings.TrimSpace(form.Category) == "" {
				errs = append(errs, ErrCategoryRequired)
			}
		case FieldExcerpt:
			if strings.TrimSpace(form.Excerpt) == "" {
				errs = append(errs, ErrExcerptRequired)
			}
		case FieldContent:
			if strings.TrimSpace(form.Content) == "" {
				errs = append(errs, ErrContentRequired)
			}
		case FieldPublishDate:
			if strings.TrimSpace(form.PublishDate) == "" {
				errs = append(errs, ErrPublishDateRequired)
			}
		case FieldImageURL:
			if raw := strings.TrimSpace(form.ImageURL); raw != "" && !IsAbsoluteURL(raw) {
				errs = append(errs, ErrInvalidImageURL)
			}
		default:
			return ErrUnknownField
		}
	}

	return errors.Join(errs...)
}

func (v *FormValidator) validateRegisterForm(_ context.Context, form models.RegisterForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldConfirmPassword, FieldPasswordLength, FieldTerms}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(form.Name) == "" {
				return ErrFieldsRequired
			}
		case FieldEmail:
			if strings.TrimSpace(form.Email) == "" {
				return ErrFieldsRequired
			}
		case FieldConfirmPassword:
			if form.Password != form.ConfirmPassword {
				return ErrPasswordsMismatch
			}
		case FieldPasswordLength:
			if utf8.RuneCountInString(form.Password) < MinPasswordLength {
				return ErrPasswordTooShort
			}
		case FieldTerms:
			if !form.AgreeTerms {
				return ErrTermsNotAccepted
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FormValidator) validateLogin(_ context.Context, req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if strings.TrimSpace(req.Email) == "" {
				return ErrFieldsRequired
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrFieldsRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// IsAbsoluteURL reports whether raw parses as a URL with a scheme and, for
// hierarchical URLs, a host.
func IsAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return false
	}
	if u.Opaque != "" {
		return true
	}
	return u.Host != ""
}
