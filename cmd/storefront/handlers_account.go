package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/homefood/internal/account"
	"github.com/MikeMC777/homefood/internal/httpx"
	"github.com/MikeMC777/homefood/internal/report"
	"github.com/MikeMC777/homefood/internal/session"
)

// userLoginHandler godoc
// @Summary  Customer login by mobile number
// @Description Unknown numbers get an account on first login.
// @Tags     user
// @Accept   json
// @Produce  json
// @Param    body body account.LoginRequest true "Mobile number"
// @Success  200 {object} account.LoginResponse
// @Failure  400 {object} httpx.HTTPError
// @Failure  403 {object} httpx.HTTPError
// @Router   /api/user/login [post]
func userLoginHandler(svc *account.Service, sm *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in account.LoginRequest
		if err := httpx.BindJSON(c, &in); err != nil {
			httpx.Fail(c, err)
			return
		}
		u, created, err := svc.Login(c.Request.Context(), in.Mobile)
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		id := httpx.IdentityOf(c)
		id.UserMobile = u.MobileNumber
		if err := httpx.SetIdentity(c, sm, id); err != nil {
			httpx.Fail(c, err)
			return
		}
		msg := "Login successful"
		if created {
			msg = "Account created and logged in"
		}
		c.JSON(http.StatusOK, account.LoginResponse{Message: msg, User: *u, IsNew: created})
	}
}

// userLogoutHandler godoc
// @Summary  Customer logout
// @Tags     user
// @Produce  json
// @Success  200 {object} httpx.Message
// @Router   /api/user/logout [post]
func userLogoutHandler(sm *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := httpx.IdentityOf(c)
		id.UserMobile = ""
		if err := httpx.SetIdentity(c, sm, id); err != nil {
			httpx.Fail(c, err)
			return
		}
		httpx.OK(c, "Logged out")
	}
}

// getProfileHandler godoc
// @Summary  Current customer's profile
// @Tags     user
// @Produce  json
// @Success  200 {object} account.User
// @Failure  401 {object} httpx.HTTPError
// @Router   /api/user/profile [get]
func getProfileHandler(svc *account.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := svc.Profile(c.Request.Context(), httpx.IdentityOf(c).UserMobile)
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

// updateProfileHandler godoc
// @Summary  Update the current customer's profile
// @Tags     user
// @Accept   json
// @Produce  json
// @Param    body body account.ProfileInput true "Profile"
// @Success  200 {object} httpx.Message
// @Failure  401 {object} httpx.HTTPError
// @Router   /api/user/profile [put]
func updateProfileHandler(svc *account.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in account.ProfileInput
		if err := httpx.BindJSON(c, &in); err != nil {
			httpx.Fail(c, err)
			return
		}
		id := httpx.IdentityOf(c)
		if err := svc.UpdateProfile(c.Request.Context(), id, id.UserMobile, in); err != nil {
			httpx.Fail(c, err)
			return
		}
		httpx.OK(c, "Profile updated")
	}
}

// adminLoginHandler godoc
// @Summary  Admin login
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    body body account.AdminLoginRequest true "Credentials"
// @Success  200 {object} httpx.Message
// @Failure  401 {object} httpx.HTTPError
// @Router   /api/admin/login [post]
func adminLoginHandler(svc *account.Service, sm *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in account.AdminLoginRequest
		if err := httpx.BindJSON(c, &in); err != nil {
			httpx.Fail(c, err)
			return
		}
		adminID, err := svc.AdminLogin(c.Request.Context(), in.Username, in.Password)
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		id := httpx.IdentityOf(c)
		id.AdminID = adminID
		if err := httpx.SetIdentity(c, sm, id); err != nil {
			httpx.Fail(c, err)
			return
		}
		httpx.OK(c, "Login successful")
	}
}

// adminLogoutHandler godoc
// @Summary  Admin logout
// @Tags     admin
// @Produce  json
// @Success  200 {object} httpx.Message
// @Router   /api/admin/logout [post]
func adminLogoutHandler(sm *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := httpx.IdentityOf(c)
		id.AdminID = 0
		if err := httpx.SetIdentity(c, sm, id); err != nil {
			httpx.Fail(c, err)
			return
		}
		httpx.OK(c, "Logged out")
	}
}

// adminUsersHandler godoc
// @Summary  Customers with order and payment totals
// @Tags     admin
// @Produce  json
// @Success  200 {array} report.UserSummary
// @Router   /api/admin/users [get]
func adminUsersHandler(svc *report.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.UserSummaries(c.Request.Context())
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// adminUpdateUserHandler godoc
// @Summary  Edit a customer; status Deleted soft-deletes
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    mobile path string true "Mobile number"
// @Param    body body account.AdminUserInput true "Customer"
// @Success  200 {object} httpx.Message
// @Failure  404 {object} httpx.HTTPError
// @Router   /api/admin/users/{mobile} [put]
func adminUpdateUserHandler(svc *account.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in account.AdminUserInput
		if err := httpx.BindJSON(c, &in); err != nil {
			httpx.Fail(c, err)
			return
		}
		if err := svc.AdminUpdateUser(c.Request.Context(), c.Param("mobile"), in); err != nil {
			httpx.Fail(c, err)
			return
		}
		httpx.OK(c, "User updated")
	}
}

// adminDeleteUserHandler godoc
// @Summary  Delete a customer with all of their orders
// @Tags     admin
// @Produce  json
// @Param    mobile path string true "Mobile number"
// @Success  200 {object} httpx.Message
// @Failure  404 {object} httpx.HTTPError
// @Router   /api/admin/users/{mobile} [delete]
func adminDeleteUserHandler(svc *account.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteUser(c.Request.Context(), c.Param("mobile")); err != nil {
			httpx.Fail(c, err)
			return
		}
		httpx.OK(c, "User deleted")
	}
}
