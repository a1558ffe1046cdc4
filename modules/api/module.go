package api

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/example/storeadmin/modules/auth"
	"github.com/go-monolith/mono"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// APIModule is the HTTP API module. It exposes the resource and auth
// services over REST.
type APIModule struct {
	app        *fiber.App
	port       string
	containers map[string]mono.ServiceContainer
	authPort   auth.AuthPort
}

// Compile-time interface checks.
var _ mono.Module = (*APIModule)(nil)
var _ mono.DependentModule = (*APIModule)(nil)
var _ mono.HealthCheckableModule = (*APIModule)(nil)

// NewModule creates a new APIModule.
func NewModule() *APIModule {
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	return &APIModule{
		port:       port,
		containers: make(map[string]mono.ServiceContainer),
	}
}

// Name returns the module name.
func (m *APIModule) Name() string {
	return "api"
}

// Dependencies returns the list of module dependencies.
func (m *APIModule) Dependencies() []string {
	return []string{"category", "unit", "offer", "product", "order", "auth"}
}

// SetDependencyServiceContainer receives service containers from dependencies.
func (m *APIModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	m.containers[dependency] = container
	if dependency == "auth" {
		m.authPort = auth.NewAuthAdapter(container)
	}
}

// Start initializes the Fiber HTTP server.
func (m *APIModule) Start(_ context.Context) error {
	for _, dep := range m.Dependencies() {
		if m.containers[dep] == nil {
			return fmt.Errorf("%s dependency not set", dep)
		}
	}

	m.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          customErrorHandler,
	})

	m.app.Use(recover.New())
	m.app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	m.app.Use(cors.New())

	m.setupRoutes()

	go func() {
		if err := m.app.Listen(":" + m.port); err != nil {
			log.Printf("[api] HTTP server error: %v", err)
		}
	}()

	log.Printf("[api] HTTP server started on :%s", m.port)
	return nil
}

// Stop shuts down the Fiber HTTP server.
func (m *APIModule) Stop(_ context.Context) error {
	if m.app == nil {
		return nil
	}
	log.Println("[api] Shutting down HTTP server...")
	return m.app.Shutdown()
}

// Health returns the health status of the module.
func (m *APIModule) Health(_ context.Context) mono.HealthStatus {
	return mono.HealthStatus{
		Healthy: m.app != nil,
		Message: "operational",
		Details: map[string]any{
			"port": m.port,
		},
	}
}

// setupRoutes configures all API routes.
func (m *APIModule) setupRoutes() {
	m.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"module": "api",
		})
	})

	api := m.app.Group("/api")

	categories := api.Group("/categories")
	categories.Post("/", m.createCategory)
	categories.Get("/", m.listCategories)
	categories.Get("/:id", m.getCategory)
	categories.Put("/:id", m.updateCategory)
	categories.Delete("/:id", m.deleteCategory)

	units := api.Group("/units")
	units.Post("/", m.createUnit)
	units.Get("/", m.listUnits)
	units.Get("/:id", m.getUnit)
	units.Put("/:id", m.updateUnit)
	units.Delete("/:id", m.deleteUnit)

	offers := api.Group("/offers")
	offers.Post("/", m.createOffer)
	offers.Get("/", m.listOffers)
	offers.Get("/:id", m.getOffer)
	offers.Put("/:id", m.updateOffer)
	offers.Delete("/:id", m.deleteOffer)

	products := api.Group("/products")
	products.Post("/", m.createProduct)
	products.Get("/", m.listProducts)
	products.Get("/:id", m.getProduct)
	products.Put("/:id", m.updateProduct)
	products.Delete("/:id", m.deleteProduct)

	orders := api.Group("/orders")
	orders.Post("/", m.createOrder)
	orders.Get("/", m.listOrders)
	// The export route must come before the :id routes.
	orders.Get("/export", m.exportOrders)
	orders.Get("/:id", m.getOrder)
	orders.Put("/:id", m.updateOrder)
	orders.Delete("/:id", m.deleteOrder)

	authRoutes := api.Group("/auth")
	authRoutes.Post("/register", m.register)
	authRoutes.Post("/login", m.login)

	users := api.Group("/users")
	users.Get("/", AuthMiddleware(m.authPort), m.listUsers)
}

// customErrorHandler handles Fiber errors.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(ErrorResponse{Error: message})
}
