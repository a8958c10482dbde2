package handler

import (
	"github.com/redis/go-redis/v9"

	"event_ticketing/catalog"
	"event_ticketing/inventory"
)

// Package state, gán một lần trong main trước khi nhận request
var (
	Store   inventory.Store
	Events  inventory.EventStore
	Ledger  inventory.Ledger
	Catalog *catalog.Service
	Engine  *inventory.Engine

	redisClient *redis.Client
)

func Init(store inventory.Store, events inventory.EventStore, ledger inventory.Ledger, svc *catalog.Service, engine *inventory.Engine, client *redis.Client) {
	Store = store
	Events = events
	Ledger = ledger
	Catalog = svc
	Engine = engine
	redisClient = client
}
