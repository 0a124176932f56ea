package main

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/homefood/internal/apperr"
	"github.com/MikeMC777/homefood/internal/business"
	"github.com/MikeMC777/homefood/internal/httpx"
	"github.com/MikeMC777/homefood/internal/report"
)

// statsHandler godoc
// @Summary  Dashboard figures
// @Tags     admin
// @Produce  json
// @Success  200 {object} report.Stats
// @Router   /api/admin/stats [get]
func statsHandler(svc *report.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		st, err := svc.Dashboard(c.Request.Context(), time.Now())
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, st)
	}
}

// breakdownHandler godoc
// @Summary  Cash, UPI and outstanding totals
// @Tags     admin
// @Produce  json
// @Success  200 {object} report.Breakdown
// @Router   /api/admin/revenue/breakdown [get]
func breakdownHandler(svc *report.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		b, err := svc.Breakdown(c.Request.Context())
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, b)
	}
}

// dailyRevenueHandler godoc
// @Summary  Revenue per day, zero-filled
// @Tags     admin
// @Produce  json
// @Param    startDate query string false "YYYY-MM-DD"
// @Param    endDate   query string false "YYYY-MM-DD"
// @Success  200 {array} report.DayRevenue
// @Failure  400 {object} httpx.HTTPError
// @Router   /api/admin/revenue/daily [get]
func dailyRevenueHandler(svc *report.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.DailyRevenue(c.Request.Context(), c.Query("startDate"), c.Query("endDate"))
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// getBusinessProfileHandler godoc
// @Summary  Latest business profile, {} when none was saved
// @Tags     business
// @Produce  json
// @Success  200 {object} business.Profile
// @Router   /api/business-profile [get]
// @Router   /api/admin/business-profile [get]
func getBusinessProfileHandler(svc *business.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := svc.Current(c.Request.Context())
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		if p == nil {
			c.JSON(http.StatusOK, gin.H{})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// saveBusinessProfileHandler godoc
// @Summary  Save a new business profile revision
// @Tags     admin
// @Accept   multipart/form-data
// @Produce  json
// @Param    name            formData string false "Shop name"
// @Param    delivery_charge formData number false "Delivery charge"
// @Param    cart_value      formData number false "Minimum cart value"
// @Param    shop_image      formData file   false "Shop image"
// @Param    licence_doc     formData file   false "Licence document"
// @Success  200 {object} httpx.Message
// @Failure  400 {object} httpx.HTTPError
// @Router   /api/admin/business-profile [post]
func saveBusinessProfileHandler(svc *business.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in business.ProfileInput
		if err := c.ShouldBind(&in); err != nil {
			httpx.Fail(c, apperr.Validation("invalid form: %v", err))
			return
		}
		shop, err := formUpload(c, "shop_image")
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		licence, err := formUpload(c, "licence_doc")
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		if _, err := svc.Save(c.Request.Context(), in, shop, licence); err != nil {
			httpx.Fail(c, err)
			return
		}
		httpx.OK(c, "Profile saved")
	}
}

// formUpload returns nil when the field carries no file.
func formUpload(c *gin.Context, field string) (*business.Upload, error) {
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Validation("invalid upload %s: %v", field, err)
	}
	return &business.Upload{
		Filename: fh.Filename,
		Size:     fh.Size,
		Open:     func() (io.ReadCloser, error) { return fh.Open() },
	}, nil
}
