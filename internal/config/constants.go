package config

import "time"

const (
	// Routes
	InvoicesRoute  = "/dashboard/invoices"
	DashboardRoute = "/dashboard"
	LoginRoute     = "/login"

	// Session cookie
	SessionCookieName = "finboard_session"

	// Login throttling (attempts per window per client)
	LoginRateLimit  = 10
	LoginRateWindow = time.Minute

	// HTTP server timeouts
	ReadTimeout     = 10 * time.Second
	WriteTimeout    = 15 * time.Second
	ShutdownTimeout = 10 * time.Second
)
