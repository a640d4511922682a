package router

import (
	"crosscheck/config"
	"crosscheck/controllers"
	"crosscheck/middleware"
	"crosscheck/tools"

	"github.com/gin-gonic/gin"
)

// Initialize wires all routes and middlewares: public auth routes plus
// the landlord-scoped resource routes behind AuthRequired. The
// configuration is threaded to the controllers here.
func Initialize(r *gin.Engine, cfg config.Configuration) {
	controllers.SetConfigurations(cfg)

	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	api := r.Group("/api")

	// Public (no auth)
	api.POST("/register", Logger(), controllers.Register)
	api.POST("/login", Logger(), controllers.Login)

	// Authenticated routes (token required, landlord resolved)
	auth := api.Group("")
	auth.Use(controllers.AuthRequired())

	// Tenants
	auth.GET("/tenants", Logger(), controllers.GetTenants)
	auth.GET("/tenants/:id", Logger(), controllers.GetTenantByID)
	auth.POST("/tenants", Logger(), controllers.CreateTenant)
	auth.PUT("/tenants/:id", Logger(), controllers.UpdateTenant)
	auth.DELETE("/tenants/:id", Logger(), controllers.DeleteTenant)

	// Properties
	auth.POST("/properties", Logger(), controllers.CreateProperty)

	// Leases
	auth.GET("/leases", Logger(), controllers.GetLeases)
	auth.POST("/leases", Logger(), controllers.CreateLease)

	// Payments
	auth.GET("/payments", Logger(), controllers.GetPayments)
	auth.GET("/payments/:id", Logger(), controllers.GetPaymentByID)
	auth.POST("/payments", Logger(), controllers.CreatePayment)
	auth.PUT("/payments/:id", Logger(), controllers.UpdatePayment)
	auth.DELETE("/payments/:id", Logger(), controllers.DeletePayment)

	// Payment types (reference data)
	auth.GET("/payment-types", Logger(), controllers.GetPaymentTypes)

	tools.Logger.Info("Routes initialized")
}
