package main

// @title Payments API
// @version 1.0
// @description Payments listing with filtering and pagination, plus user management

// @contact.name API Support
// @contact.email support@example.com

// @license.name MIT

// @host localhost:3000
// @BasePath /

// @tag.name Payments
// @tag.description Payment listing and recipients

// @tag.name Users
// @tag.description User management endpoints

// @tag.name Health
// @tag.description Health check endpoints
