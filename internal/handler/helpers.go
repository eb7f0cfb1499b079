package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"

	"github.com/Odenfis/taytaApp/internal/apierror"
	"github.com/Odenfis/taytaApp/internal/service"

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
		c.JSON(http.StatusBadRequest, apierror.Fail("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// paramInt parses an integer path parameter. Writes the 400 response itself;
// callers return immediately on !ok.
func paramInt(c *gin.Context, name string) (int, bool) {
	n, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return 0, false
	}
	return n, true
}

// respondFetch writes the canonical fetch-one outcome: the row, a 404 with an
// empty object when it does not exist, or a 500 on store failure.
func respondFetch(c *gin.Context, resp interface{}, err error) {
	switch {
	case err == nil:
		c.JSON(http.StatusOK, resp)
	case errors.Is(err, service.ErrNoEncontrado):
		c.JSON(http.StatusNotFound, gin.H{})
	default:
		logStoreError(c, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// respondMutation writes the success envelope mutation endpoints use, or the
// 500 failure envelope with the store message attached.
func respondMutation(c *gin.Context, err error) {
	if err != nil {
		logStoreError(c, err)
		c.JSON(http.StatusInternalServerError, apierror.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, apierror.OK())
}

func logStoreError(c *gin.Context, err error) {
	log.Error().
		Str("path", c.FullPath()).
		Str("method", c.Request.Method).
		Err(err).
		Msg("store error")
}
