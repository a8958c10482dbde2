package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/redis/go-redis/v9"

	"event_ticketing/catalog"
	"event_ticketing/config"
	"event_ticketing/database"
	"event_ticketing/handler"
	"event_ticketing/helper"
	"event_ticketing/inventory"
	"event_ticketing/router"
)

func main() {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigOr("CORS_ORIGINS", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		MaxAge:           600,
	}))

	var (
		store  inventory.Store
		events inventory.EventStore
		ledger inventory.Ledger
	)

	if config.ConfigOr("STORE_DRIVER", "postgres") == "memory" {
		mem := inventory.NewMemoryStore()
		store, events, ledger = mem, mem, mem
		log.Println("Chạy với store memory, dữ liệu mất khi restart")
	} else {
		database.ConnectDB()
		gs := database.NewGormStore(database.DB)
		store, events, ledger = gs, gs, gs
	}

	// Publisher: có Redis thì đi qua queue + pub/sub, không thì
	// worker channel in-process
	var pub inventory.Publisher
	var redisClient *redis.Client
	if addr := config.Config("REDIS_ADDR"); addr != "" {
		redisClient = database.NewRedisClient(addr)
		pub = database.NewRedisPublisher(redisClient)
		helper.StartSalesWorker(context.Background(), redisClient, ledger)
	} else {
		worker := helper.StartLedgerWorker(ledger)
		defer worker.Stop()
		pub = worker
	}

	engine := inventory.NewEngine(store, pub)
	svc := catalog.NewService(store, events)
	handler.Init(store, events, ledger, svc, engine, redisClient)

	helper.StartMaintenanceScheduler(store, events)
	defer helper.StopMaintenanceScheduler()

	router.SetupRoutes(app)
	log.Fatal(app.Listen(":" + config.ConfigOr("PORT", "8002")))
}
