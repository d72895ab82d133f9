package importer

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/alexanderramin/lexibox/internal/domain"
	"github.com/go-playground/validator/v10"
)

// RowError reports one record that could not be imported. Row is 1-based;
// zero means the record has no row number.
type RowError struct {
	Row  int
	Word string
	Err  error
}

func (e RowError) Error() string {
	switch {
	case e.Row > 0 && e.Word != "":
		return fmt.Sprintf("row %d (%s): %v", e.Row, e.Word, e.Err)
	case e.Row > 0:
		return fmt.Sprintf("row %d: %v", e.Row, e.Err)
	case e.Word != "":
		return fmt.Sprintf("%s: %v", e.Word, e.Err)
	default:
		return e.Err.Error()
	}
}

func (e RowError) Unwrap() error { return e.Err }

var validate = newValidator()

// newValidator reports fields by their file keys.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateLegacy checks progress and stats counters before they replace
// stored state. Each problem is returned as its own error.
func ValidateLegacy(data *LegacyData) []error {
	var errs []error
	if data.Progress != nil {
		errs = append(errs, structErrors(ProgressFile, data.Progress)...)
	}
	if data.Stats != nil {
		errs = append(errs, structErrors(StatsFile, data.Stats)...)
	}
	return errs
}

func structErrors(file string, v any) []error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []error{fmt.Errorf("%s: %v: %w", file, err, domain.ErrValidation)}
	}
	out := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fmt.Errorf("%s: %s failed %q: %w", file, fieldPath(fe), fe.Tag(), domain.ErrValidation))
	}
	return out
}

// fieldPath drops the struct name from a validator namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// CheckEntry rejects legacy records that healing cannot repair.
func CheckEntry(raw domain.RawEntry) error {
	if raw.Word == "" {
		return fmt.Errorf("word is required: %w", domain.ErrValidation)
	}
	if raw.Sentence == nil || strings.TrimSpace(*raw.Sentence) == "" {
		return fmt.Errorf("sentence is required: %w", domain.ErrValidation)
	}
	return nil
}
