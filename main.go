package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/example/storeadmin/modules/api"
	"github.com/example/storeadmin/modules/auth"
	"github.com/example/storeadmin/modules/category"
	"github.com/example/storeadmin/modules/offer"
	"github.com/example/storeadmin/modules/order"
	"github.com/example/storeadmin/modules/product"
	"github.com/example/storeadmin/modules/unit"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
)

const shutdownTimeout = 30 * time.Second

func main() {
	log.Println("=== Store Admin API ===")

	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Register modules with the framework
	// Order: independent modules first, then dependent modules
	app.Register(category.NewModule())
	app.Register(unit.NewModule())
	app.Register(offer.NewModule())
	app.Register(product.NewModule())
	app.Register(order.NewModule())
	app.Register(auth.NewModule())
	app.Register(api.NewModule()) // Depends on all of the above

	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Printf("REST API Endpoints (http://localhost:%s):", port)
	log.Println("")
	log.Println("  Resources (POST/GET on the collection, GET/PUT/DELETE on /:id):")
	log.Println("  /api/categories")
	log.Println("  /api/units")
	log.Println("  /api/offers")
	log.Println("  /api/products")
	log.Println("  /api/orders")
	log.Println("  GET    /api/orders/export     - Download orders as CSV")
	log.Println("")
	log.Println("  Auth:")
	log.Println("  POST   /api/auth/register     - Register a new user")
	log.Println("  POST   /api/auth/login        - Login and get a token")
	log.Println("  GET    /api/users             - List users (requires Bearer token)")
	log.Println("")
	log.Println("  GET    /health                - Health check")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
