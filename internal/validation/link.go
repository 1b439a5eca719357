package validation

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"

	"shortlink/internal/domain"
)

const MaxSlugLength = 50

var slugPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

type slugInput struct {
	Slug string `validate:"omitempty,max=50,slug"`
}

type LinkValidator struct {
	urls     *URLValidator
	validate *validator.Validate
}

func NewLinkValidator(maxURLLength int) (*LinkValidator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	err := validate.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register slug rule: %w", err)
	}

	return &LinkValidator{
		urls:     NewURLValidator(maxURLLength),
		validate: validate,
	}, nil
}

// ValidateSlug checks a caller supplied slug. An empty slug is valid and
// means one will be generated.
func (v *LinkValidator) ValidateSlug(slug string) error {
	err := v.validate.Struct(slugInput{Slug: slug})
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Tag() == "max" {
		return ErrSlugTooLong
	}
	return ErrInvalidSlug
}

// ValidateCreate turns a create request into a NewLink, reporting every
// invalid field at once.
func (v *LinkValidator) ValidateCreate(req domain.CreateLinkRequest) (*domain.NewLink, error) {
	var fieldErrs []FieldError

	if err := v.urls.ValidateURL(req.OriginalURL); err != nil {
		fieldErrs = append(fieldErrs, FieldError{Field: "originalUrl", Err: err})
	}
	if err := v.ValidateSlug(req.Slug); err != nil {
		fieldErrs = append(fieldErrs, FieldError{Field: "slug", Err: err})
	}

	expiresAt, err := parseExpiresAt(req.ExpiresAt)
	if err != nil {
		fieldErrs = append(fieldErrs, FieldError{Field: "expiresAt", Err: err})
	}

	if len(fieldErrs) > 0 {
		return nil, &RequestError{Errors: fieldErrs}
	}

	return &domain.NewLink{
		OriginalURL: req.OriginalURL,
		Slug:        req.Slug,
		ExpiresAt:   expiresAt,
	}, nil
}

// expiresAtLayouts are the accepted ISO-8601 forms. Values without an
// offset are read as UTC.
var expiresAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	time.DateOnly,
}

func parseExpiresAt(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	for _, layout := range expiresAtLayouts {
		if t, err := time.Parse(layout, *raw); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, ErrInvalidExpiresAt
}
