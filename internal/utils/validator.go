package utils

import (
	"html"
	"reflect"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/truemail-rb/truemail-go"
)

// emailPattern accepts a local part of [A-Za-z0-9+_.-] and a dotted domain ending in a TLD of two or more letters.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

type Validator struct {
	Validate    *validator.Validate
	VerifyEmail func(email string) bool
	policy      *bluemonday.Policy
}

var (
	instance      *Validator
	configuration *truemail.Configuration
	once          sync.Once
)

func GetValidator() *Validator {
	once.Do(func() {
		configuration, _ = truemail.NewConfiguration(truemail.ConfigurationAttr{
			VerifierEmail:         "team@mail.expense-tracker.dev",
			ValidationTypeDefault: "mx",
			SmtpFailFast:          true,
		})

		instance = &Validator{
			Validate:    validator.New(validator.WithRequiredStructEnabled()),
			VerifyEmail: validateEmail,
			policy:      bluemonday.StrictPolicy(),
		}

		registerCustomValidators(instance.Validate)
	})

	return instance
}

// IsValidEmail reports whether email passes the syntactic check used at registration.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// validateEmail checks that the domain of email accepts mail (MX lookup).
func validateEmail(email string) bool {
	if configuration == nil {
		return false
	}
	return truemail.IsValid(email, configuration)
}

func registerCustomValidators(v *validator.Validate) {
	err := v.RegisterValidation("email_syntax", emailSyntaxValidation)
	if err != nil {
		return
	}
}

func emailSyntaxValidation(fl validator.FieldLevel) bool {
	return IsValidEmail(fl.Field().String())
}

// SanitizeData strips markup from every exported string field of the struct obj points to.
// The result is plain text: entities are decoded, so "O'Brien" stays "O'Brien".
// Fields tagged `sanitize:"-"` (passwords, email addresses) are left untouched.
func (v *Validator) SanitizeData(obj interface{}) error {
	value := reflect.ValueOf(obj)
	if value.Kind() != reflect.Pointer || value.Elem().Kind() != reflect.Struct {
		return &validator.InvalidValidationError{Type: reflect.TypeOf(obj)}
	}

	elem := value.Elem()
	for i := 0; i < elem.NumField(); i++ {
		field := elem.Field(i)
		if field.Kind() != reflect.String || !field.CanSet() {
			continue
		}
		if elem.Type().Field(i).Tag.Get("sanitize") == "-" {
			continue
		}
		field.SetString(v.stripMarkup(field.String()))
	}

	return nil
}

// maxStripPasses bounds stripMarkup for input that hides tags behind nested entities.
const maxStripPasses = 4

// stripMarkup removes tags and decodes entities until the text no longer changes,
// so encoded markup like "&lt;b&gt;" cannot come back as a tag after decoding.
func (v *Validator) stripMarkup(value string) string {
	for i := 0; i < maxStripPasses; i++ {
		next := html.UnescapeString(v.policy.Sanitize(value))
		if next == value {
			return next
		}
		value = next
	}
	return v.policy.Sanitize(value)
}
