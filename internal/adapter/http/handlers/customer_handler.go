package handlers

import (
	"net/http"

	"bidboard/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CustomerHandler serves the read-only customer reference data.
type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

// ListCustomers godoc
// @Summary      List customers
// @Tags         customers
// @Produce      json
// @Success      200  {array}  entities.Customer
// @Router       /customers [get]
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customer, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, customer)
}
