package validators

import (
	"errors"

	"github.com/MKhiriev/go-writenest/internal/app"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrCommentRequired = errors.New(app.MsgCommentRequired)
	ErrCommentTooLong  = errors.New(app.MsgCommentTooLong)

	ErrTitleRequired       = errors.New(app.MsgTitleRequired)
	ErrCategoryRequired    = errors.New(app.MsgCategoryRequired)
	ErrExcerptRequired     = errors.New(app.MsgExcerptRequired)
	ErrContentRequired     = errors.New(app.MsgContentRequired)
	ErrPublishDateRequired = errors.New(app.MsgPublishDateRequired)
	ErrInvalidImageURL     = errors.New(app.MsgImageURLInvalid)

	ErrFieldsRequired    = errors.New(app.MsgFieldsRequired)
	ErrPasswordsMismatch = errors.New(app.MsgPasswordsMismatch)
	ErrPasswordTooShort  = errors.New(app.MsgPasswordTooShort)
	ErrTermsNotAccepted  = errors.New(app.MsgTermsNotAccepted)
)
