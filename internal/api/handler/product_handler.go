package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storelabs/store-api/internal/api/metrics"
	"github.com/storelabs/store-api/internal/core/domain"
	"github.com/storelabs/store-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for catalog operations.
type ProductHandler struct {
	service ports.CatalogService
}

func NewProductHandler(service ports.CatalogService) *ProductHandler {
	return &ProductHandler{service: service}
}

// errorResponse mirrors the envelope rendered by the central error handler;
// declared here so swagger annotations can reference it.
type errorResponse struct {
	Error string `json:"error"`
}

// productRequest binds both fields as pointers so an absent field is
// distinguishable from an explicit zero value; the store schema treats them
// differently (absent price must not silently become 0).
type productRequest struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
}

func (r productRequest) name() string {
	if r.Name == nil {
		return ""
	}
	return *r.Name
}

type productResponse struct {
	Message string          `json:"message"`
	Product *domain.Product `json:"product"`
}

// List handles GET /products for any authenticated role.
//
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Success      200  {array}   domain.Product
// @Failure      401  "missing session cookie"
// @Failure      403  "invalid token or role"
// @Failure      500  {object}  errorResponse
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Add handles POST /api/addProducts (admin only).
//
// @Summary      Add a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      productRequest  true  "Product name and price"
// @Success      201   {object}  productResponse
// @Failure      401   "missing session cookie"
// @Failure      403   "invalid token or role"
// @Failure      500   {object}  errorResponse
// @Router       /api/addProducts [post]
func (h *ProductHandler) Add(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	product, err := h.service.Add(c.Request().Context(), req.name(), req.Price)
	if err != nil {
		return err
	}

	metrics.ProductWritesTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, productResponse{Message: "Product added", Product: product})
}

// Update handles PUT /api/chngProduct/:id (admin only).
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "Product id"
// @Param        body  body      productRequest  true  "Replacement name and price"
// @Success      200   {object}  productResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/chngProduct/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	product, err := h.service.Update(c.Request().Context(), c.Param("id"), domain.ProductPatch{Name: req.Name, Price: req.Price})
	if err != nil {
		return err
	}

	metrics.ProductWritesTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, productResponse{Message: "Product changed successfully", Product: product})
}

// Delete handles DELETE /api/delProduct/:id (admin only). Answers 201 on
// success; unconventional for a delete, but callers depend on it.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Param        id  path  string  true  "Product id"
// @Success      201  {object}  messageResponse
// @Failure      400  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/delProduct/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.Remove(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.ProductWritesTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusCreated, messageResponse{Message: "Product deleted successfully"})
}
