package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/homefood/internal/catalog"
	"github.com/MikeMC777/homefood/internal/httpx"
)

// listProductsHandler godoc
// @Summary  Products that are not deleted
// @Tags     products
// @Produce  json
// @Success  200 {array} catalog.Product
// @Router   /api/products [get]
func listProductsHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.List(c.Request.Context())
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// getProductHandler godoc
// @Summary  One product
// @Tags     products
// @Produce  json
// @Param    id path int true "Product ID"
// @Success  200 {object} catalog.Product
// @Failure  404 {object} httpx.HTTPError
// @Router   /api/products/{id} [get]
func getProductHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := httpx.ParamID(c, "id")
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		p, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// createProductHandler godoc
// @Summary  Add a product
// @Tags     products
// @Accept   json
// @Produce  json
// @Param    body body catalog.ProductInput true "Product"
// @Success  200 {object} catalog.CreatedResponse
// @Failure  400 {object} httpx.HTTPError
// @Failure  401 {object} httpx.HTTPError
// @Router   /api/products [post]
func createProductHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in catalog.ProductInput
		if err := httpx.BindJSON(c, &in); err != nil {
			httpx.Fail(c, err)
			return
		}
		id, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, catalog.CreatedResponse{ID: id, Message: "Product added"})
	}
}

// updateProductHandler godoc
// @Summary  Overwrite a product
// @Tags     products
// @Accept   json
// @Produce  json
// @Param    id path int true "Product ID"
// @Param    body body catalog.ProductInput true "Product"
// @Success  200 {object} httpx.Message
// @Failure  404 {object} httpx.HTTPError
// @Router   /api/products/{id} [put]
func updateProductHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := httpx.ParamID(c, "id")
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		var in catalog.ProductInput
		if err := httpx.BindJSON(c, &in); err != nil {
			httpx.Fail(c, err)
			return
		}
		if err := svc.Update(c.Request.Context(), id, in); err != nil {
			httpx.Fail(c, err)
			return
		}
		httpx.OK(c, "Product updated")
	}
}

// deleteProductHandler godoc
// @Summary  Soft-delete a product
// @Tags     products
// @Produce  json
// @Param    id path int true "Product ID"
// @Success  200 {object} httpx.Message
// @Failure  404 {object} httpx.HTTPError
// @Router   /api/products/{id} [delete]
func deleteProductHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := httpx.ParamID(c, "id")
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			httpx.Fail(c, err)
			return
		}
		httpx.OK(c, "Product deleted")
	}
}
