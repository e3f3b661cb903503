package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"haverststudio-backend/config"
	"haverststudio-backend/controllers"
	"haverststudio-backend/routes"
	"haverststudio-backend/services"
	"haverststudio-backend/store"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	backend, err := store.OpenSQLite(config.DBPath())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer backend.Close()

	st, err := store.Open(backend)
	if err != nil {
		log.Fatalf("Failed to load collections: %v", err)
	}

	notifier := services.NewNotifier(st)
	notifier.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter(controllers.NewController(st))
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
