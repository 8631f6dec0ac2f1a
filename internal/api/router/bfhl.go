package router

import (
	"io"
	"net/http"

	"github.com/DjordjeVuckovic/bfhl/internal/dto"
	"github.com/DjordjeVuckovic/bfhl/internal/service"
	"github.com/labstack/echo/v4"
)

type BfhlRouter struct {
	e          *echo.Echo
	classifier service.Classifier
}

func NewBfhlRouter(e *echo.Echo, classifier service.Classifier) *BfhlRouter {
	return &BfhlRouter{
		e:          e,
		classifier: classifier,
	}
}

func (r *BfhlRouter) Bind() {
	r.e.POST("/bfhl", r.classifyHandler)
	r.e.GET("/bfhl", r.operationHandler)
}

// classifyHandler godoc
// @Summary Classify tokens
// @Description Splits the data array into numbers and alphabets and returns the highest alphabet
// @Tags bfhl
// @Accept json
// @Produce json
// @Param request body dto.ClassifyRequest true "Tokens to classify"
// @Success 200 {object} dto.ClassifyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /bfhl [post]
func (r *BfhlRouter) classifyHandler(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to read request body")
	}

	req, err := dto.ParseRequest(body)
	if err != nil {
		return err
	}

	resp, err := r.classifier.Classify(c.Request().Context(), req.Data)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}

// operationHandler godoc
// @Summary Operation code
// @Tags bfhl
// @Produce json
// @Success 200 {object} dto.OperationResponse
// @Router /bfhl [get]
func (r *BfhlRouter) operationHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.OperationResponse{OperationCode: dto.OperationCode})
}
