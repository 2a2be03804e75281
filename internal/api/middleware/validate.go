package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// credentialsKey is the context key the normalized credentials are stored
// under once validation passes.
const credentialsKey = "credentials"

// Credentials is the declarative schema shared by the register and login
// routes. Username is trimmed and lower-cased before the constraints run.
type Credentials struct {
	Username string `json:"username" validate:"required,max=30"`
	Password string `json:"password" validate:"required"`
}

var validate = validator.New()

// ValidateCredentials binds the request body against the credentials schema.
// On failure it answers 400 with the list of field messages and never invokes
// the downstream handler; on success the normalized value is attached to the
// request context.
func ValidateCredentials(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req Credentials
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string][]string{"error": {"invalid request body"}})
		}

		req.Username = strings.ToLower(strings.TrimSpace(req.Username))

		if err := validate.Struct(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string][]string{"error": validationMessages(err)})
		}

		c.Set(credentialsKey, req)
		return next(c)
	}
}

// BoundCredentials returns the normalized credentials attached by
// ValidateCredentials. The zero value means the middleware did not run.
func BoundCredentials(c echo.Context) Credentials {
	creds, _ := c.Get(credentialsKey).(Credentials)
	return creds
}

func validationMessages(err error) []string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fieldError(fe))
	}
	return msgs
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
