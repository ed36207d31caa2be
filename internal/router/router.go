// Package router wires handlers, authentication and the rbac operation gates
// onto the Echo instance.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/club-passport/internal/handler"
	"github.com/iliyamo/club-passport/internal/middleware"
	"github.com/iliyamo/club-passport/internal/rbac"
)

// Register sets up the full API surface.
//
// /api/auth/* is public. Everything else under /api requires a verified
// bearer token (missing header is 401, unverifiable token 403) and then an
// operation gate: listing events and submitting attendance are open to any
// authenticated role, while event creation, the member list and role updates
// are restricted to admin and chairman (403 on the wrong role).
func Register(e *echo.Echo, jwtSecret string, auth *handler.AuthHandler, events *handler.EventHandler, attendance *handler.AttendanceHandler, users *handler.UserHandler) {
	e.GET("/healthz", handler.Health)

	pub := e.Group("/api/auth")
	pub.POST("/register", auth.Register)
	pub.POST("/login", auth.Login)

	api := e.Group("/api", middleware.JWTAuth(jwtSecret))
	api.GET("/events", events.List, middleware.RequireOperation(rbac.OpListEvents))
	api.POST("/events", events.Create, middleware.RequireOperation(rbac.OpCreateEvent))
	api.POST("/attendance", attendance.Submit, middleware.RequireOperation(rbac.OpSubmitAttendance))
	api.GET("/users", users.List, middleware.RequireOperation(rbac.OpListUsers))
	api.POST("/roles/:id", users.UpdateRole, middleware.RequireOperation(rbac.OpUpdateUserRole))
}
