package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/homefood/internal/httpx"
	"github.com/MikeMC777/homefood/internal/order"
	"github.com/MikeMC777/homefood/internal/payment"
)

// createOrderHandler godoc
// @Summary  Place an order from the cart
// @Description Line names and prices come from the catalog. total_amount, when sent, must match.
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    body body order.OrderInput true "Cart"
// @Success  200 {object} order.CreatedResponse
// @Failure  400 {object} httpx.HTTPError
// @Failure  401 {object} httpx.HTTPError
// @Router   /api/orders [post]
func createOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in order.OrderInput
		if err := httpx.BindJSON(c, &in); err != nil {
			httpx.Fail(c, err)
			return
		}
		id, err := svc.Create(c.Request.Context(), httpx.IdentityOf(c).UserMobile, in)
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, order.CreatedResponse{Message: "Order placed", OrderID: id})
	}
}

// updateOrderHandler godoc
// @Summary  Replace the contents of an open order
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    id path int true "Order ID"
// @Param    body body order.OrderInput true "Cart"
// @Success  200 {object} httpx.Message
// @Failure  404 {object} httpx.HTTPError
// @Failure  409 {object} httpx.HTTPError
// @Router   /api/orders/{id} [put]
func updateOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := httpx.ParamID(c, "id")
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		var in order.OrderInput
		if err := httpx.BindJSON(c, &in); err != nil {
			httpx.Fail(c, err)
			return
		}
		if err := svc.Update(c.Request.Context(), id, httpx.IdentityOf(c).UserMobile, in); err != nil {
			httpx.Fail(c, err)
			return
		}
		httpx.OK(c, "Order updated")
	}
}

// myOrdersHandler godoc
// @Summary  The current customer's orders, newest first
// @Tags     orders
// @Produce  json
// @Success  200 {array} order.Summary
// @Router   /api/my-orders [get]
func myOrdersHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.ListForUser(c.Request.Context(), httpx.IdentityOf(c).UserMobile)
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// getOrderHandler godoc
// @Summary  Order with items, payment and customer
// @Tags     orders
// @Produce  json
// @Param    id path int true "Order ID"
// @Success  200 {object} order.Detail
// @Failure  403 {object} httpx.HTTPError
// @Failure  404 {object} httpx.HTTPError
// @Router   /api/orders/{id} [get]
func getOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := httpx.ParamID(c, "id")
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		d, err := svc.Detail(c.Request.Context(), id, httpx.IdentityOf(c))
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, d)
	}
}

// updateOrderStatusHandler godoc
// @Summary  Move an order along its lifecycle
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    id path int true "Order ID"
// @Param    body body order.StatusInput true "Status"
// @Success  200 {object} httpx.Message
// @Failure  400 {object} httpx.HTTPError
// @Failure  409 {object} httpx.HTTPError
// @Router   /api/orders/{id}/status [put]
func updateOrderStatusHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := httpx.ParamID(c, "id")
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		var in order.StatusInput
		if err := httpx.BindJSON(c, &in); err != nil {
			httpx.Fail(c, err)
			return
		}
		if err := svc.UpdateStatus(c.Request.Context(), id, in.Status); err != nil {
			httpx.Fail(c, err)
			return
		}
		httpx.OK(c, "Status updated")
	}
}

// recordPaymentHandler godoc
// @Summary  Record what has been paid on an order
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    id path int true "Order ID"
// @Param    body body payment.Input true "Payment"
// @Success  200 {object} payment.Payment
// @Failure  400 {object} httpx.HTTPError
// @Failure  404 {object} httpx.HTTPError
// @Router   /api/orders/{id}/payment [post]
func recordPaymentHandler(svc *payment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := httpx.ParamID(c, "id")
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		var in payment.Input
		if err := httpx.BindJSON(c, &in); err != nil {
			httpx.Fail(c, err)
			return
		}
		p, err := svc.Record(c.Request.Context(), id, in)
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// getPaymentHandler godoc
// @Summary  Payment of an order
// @Tags     payments
// @Produce  json
// @Param    id path int true "Order ID"
// @Success  200 {object} payment.Payment
// @Failure  403 {object} httpx.HTTPError
// @Failure  404 {object} httpx.HTTPError
// @Router   /api/orders/{id}/payment [get]
func getPaymentHandler(svc *payment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := httpx.ParamID(c, "id")
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		p, err := svc.Get(c.Request.Context(), id, httpx.IdentityOf(c))
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// adminOrdersHandler godoc
// @Summary  Every order with customer name and address
// @Tags     admin
// @Produce  json
// @Success  200 {array} order.Summary
// @Router   /api/admin/orders [get]
func adminOrdersHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.ListAll(c.Request.Context())
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// adminUserOrdersHandler godoc
// @Summary  One customer's orders
// @Tags     admin
// @Produce  json
// @Param    mobile path string true "Mobile number"
// @Success  200 {array} order.Summary
// @Router   /api/admin/users/{mobile}/orders [get]
func adminUserOrdersHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.ListForUserAdmin(c.Request.Context(), c.Param("mobile"))
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}
