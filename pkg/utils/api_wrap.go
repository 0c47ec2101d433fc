package utils

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type APIResponse struct {
	Status  string              `json:"status"`
	Code    int                 `json:"code"`
	Message string              `json:"message,omitempty"`
	TraceID string              `json:"trace_id,omitempty"`
	Data    interface{}         `json:"data,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

// RespondNoContent answers a successful delete. 204 carries no body.
func RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

func RespondFieldErrors(c *gin.Context, fields map[string][]string) {
	c.JSON(http.StatusBadRequest, APIResponse{
		Status:  "error",
		Code:    http.StatusBadRequest,
		Message: "Validation failed",
		TraceID: c.GetString("trace_id"),
		Errors:  fields,
	})
}

// HandleServiceError translates service layer errors into responses.
func HandleServiceError(c *gin.Context, err error) {
	var vErr *ValidationError
	switch {
	case errors.As(err, &vErr):
		RespondFieldErrors(c, vErr.Fields)
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondFieldErrors(c, map[string][]string{
			"email": {"A user is already registered with this e-mail address."},
		})
	case errors.Is(err, ErrPlanAlreadySubscribed):
		RespondFieldErrors(c, map[string][]string{
			"plan": {"this plan already has a subscription"},
		})
	case errors.Is(err, ErrInvalidResetToken):
		RespondError(c, http.StatusBadRequest, "Invalid or expired reset token")
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrPlanNotFound),
		errors.Is(err, ErrAppNotFound),
		errors.Is(err, ErrSubscriptionNotFound):
		RespondError(c, http.StatusNotFound, "Not found")
	case errors.Is(err, ErrUserOwnsApps):
		RespondError(c, http.StatusConflict, "User still owns apps and cannot be deleted")
	case errors.Is(err, ErrProtectedReference):
		RespondError(c, http.StatusConflict, "Resource is still referenced and cannot be deleted")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

var tagNameOnce sync.Once

// UseJSONFieldNames makes validator errors report json tag names instead
// of Go struct field names, so clients see "domain_name" not "DomainName".
func UseJSONFieldNames() {
	tagNameOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterTagNameFunc(func(fld reflect.StructField) string {
				name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
				if name == "-" {
					return ""
				}
				return name
			})
		}
	})
}

// RespondBindError turns a gin binding failure into the API's 400 shape.
func RespondBindError(c *gin.Context, err error) {
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		fields := make(map[string][]string, len(vErrs))
		for _, fe := range vErrs {
			fields[fe.Field()] = append(fields[fe.Field()], bindErrorMessage(fe))
		}
		RespondFieldErrors(c, fields)
		return
	}
	RespondError(c, http.StatusBadRequest, "Invalid request format")
}

func bindErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "url":
		return "Enter a valid URL."
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "min":
		return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
	case "oneof":
		return fmt.Sprintf("%q is not a valid choice.", fe.Value())
	default:
		return "This value is invalid."
	}
}
