package main

import (
	"os"
	"time"

	"emptyleg-marketplace/database"
	"emptyleg-marketplace/database/seeders"
	"emptyleg-marketplace/logger"
	"emptyleg-marketplace/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	app := fiber.New(fiber.Config{
		ReadBufferSize:  32768, // 32KB read buffer
		WriteBufferSize: 32768, // 32KB write buffer
		ReadTimeout:     time.Second * 30,
		WriteTimeout:    time.Second * 30,
		BodyLimit:       10 * 1024 * 1024, // 10MB body limit
	})

	if err := godotenv.Load(); err != nil {
		logger.Warning("No .env file found, relying on process environment")
	}

	db, err := database.InitDB()
	if err != nil {
		logger.Fatal("Failed to connect to the database: " + err.Error())
		return
	}
	seeders.SeedAirports(db)

	app.Use(cors.New(cors.Config{
		AllowOrigins:     os.Getenv("FRONTEND_URL"),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	routes.SetupRoutes(app, db)

	appHost := os.Getenv("APP_HOST")
	appPort := os.Getenv("APP_PORT")
	logger.Success("Server is running on ip: " + appHost + " port: " + appPort)
	if err := app.Listen(appHost + ":" + appPort); err != nil {
		logger.Fatal("Server stopped: " + err.Error())
	}
}
