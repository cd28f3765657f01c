package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	model "studentoffice-service/internal/domain/models"
)

var (
	latinNameRegex = regexp.MustCompile(`^[A-Za-zÀ-ÖØ-öø-ÿ .'-]+$`)
	usernameRegex  = regexp.MustCompile(`^[A-Za-z0-9.-]+$`)
	domainRegex    = regexp.MustCompile(`^(?:[a-z0-9_][a-z0-9_-]{1,61}[a-z0-9_]\.)+[a-z]{2,63}$`)
	priceRegex     = regexp.MustCompile(`^\d+(?:\.\d{1,2})?$`)
)

func regexValidator(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// New returns a validator that knows the request formats of the API and
// reports fields by their JSON names.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("latin_name", regexValidator(latinNameRegex))
	_ = v.RegisterValidation("username", regexValidator(usernameRegex))
	_ = v.RegisterValidation("domain", regexValidator(domainRegex))
	_ = v.RegisterValidation("price", regexValidator(priceRegex))
	_ = v.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
		return model.Currency(fl.Field().String()).IsValid() == nil
	})

	return v
}

// Properties turns validation failures into JSON pointers, e.g.
// "CreatePostRequest.pollOptions[1]" becomes "/pollOptions/1".
func Properties(err error) []string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []string{}
	}

	properties := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		namespace := fieldErr.Namespace()
		if dot := strings.Index(namespace, "."); dot >= 0 {
			namespace = namespace[dot+1:]
		}
		namespace = strings.NewReplacer(".", "/", "[", "/", "]", "").Replace(namespace)
		properties = append(properties, "/"+namespace)
	}
	return properties
}

// PathID reads a positive integer path parameter.
func PathID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
