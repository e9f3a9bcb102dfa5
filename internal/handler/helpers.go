package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"

	"github.com/VictorPko73/mi-sistema-facturacion-v1/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.InvalidInput("JSON invalido: %s", err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, apierror.NewValidation(fields))
		return false
	}
	return true
}

// parseID parses the :id path param. Writes a 400 and returns false on a
// non-numeric id.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.InvalidInput("ID invalido"))
		return 0, false
	}
	return uint(id), true
}

// respondError maps a service error onto its HTTP status. Unknown errors are
// logged with full detail and answered with a generic 500 — raw storage
// errors never reach the client.
func respondError(c *gin.Context, err error) {
	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status(), apiErr)
		return
	}
	log.Error().
		Str("path", c.FullPath()).
		Str("method", c.Request.Method).
		Err(err).
		Msg("internal error")
	c.JSON(http.StatusInternalServerError, apierror.Internal("Error interno del servidor"))
}
