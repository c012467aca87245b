package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/techflow-backend/internal/domain"
)

// maxBodyBytes caps request bodies; question content is the largest payload.
const maxBodyBytes = 1 << 20

// errInvalidBody is returned for bodies that are not a single JSON object.
var errInvalidBody = errors.New("invalid request body")

var validate = newValidator()

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// decode reads a JSON body into dst and validates it. Shape errors come back
// as errInvalidBody, rule violations as a *domain.ValidationError.
func decode(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: trailing data", errInvalidBody)
	}
	return validateStruct(dst)
}

// decodeOptional is decode for endpoints whose body may be omitted.
func decodeOptional(w http.ResponseWriter, r *http.Request, dst any) error {
	if r.ContentLength == 0 {
		return nil
	}
	return decode(w, r, dst)
}

func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]domain.FieldError, 0, len(verrs))
	for _, e := range verrs {
		fields = append(fields, domain.FieldError{Field: fieldPath(e), Message: friendlyMessage(e)})
	}
	return domain.NewValidationErrors(fields)
}

// fieldPath drops the top-level struct name from the namespace: "tags[1]".
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return e.Field()
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		if e.Kind() == reflect.Slice {
			return fmt.Sprintf("must have at least %s items", e.Param())
		}
		return fmt.Sprintf("must be at least %s characters", e.Param())
	case "max":
		if e.Kind() == reflect.Slice {
			return fmt.Sprintf("must have at most %s items", e.Param())
		}
		return fmt.Sprintf("must not exceed %s characters", e.Param())
	case "oneof":
		return "must be one of: " + e.Param()
	case "startswith":
		return "must start with " + e.Param()
	case "url", "http_url":
		return "must be a valid URL"
	default:
		return "is invalid"
	}
}
