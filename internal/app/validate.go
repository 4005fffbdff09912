package app

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	propertyIDRE = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	cardNumberRE = regexp.MustCompile(`^\d{13,19}$`)
	cvvRE        = regexp.MustCompile(`^\d{3,4}$`)
	expiryRE     = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report JSON field names so messages line up with the request body
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("register validation tag %q: %v", tag, err))
		}
	}
	mustRegister("cardnumber", matches(cardNumberRE))
	mustRegister("cvv", matches(cvvRE))
	mustRegister("expiry", matches(expiryRE))
	return v
}

// matches leaves empty values to the required rule.
func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || re.MatchString(s)
	}
}

// ValidPropertyID reports whether id is a well-formed property identifier.
func ValidPropertyID(id string) bool { return propertyIDRE.MatchString(id) }
