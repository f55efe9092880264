package routes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/gofiber/fiber/v2"

	"github.com/fdcrail/railmanager/pkg/redis_client"
	"github.com/fdcrail/railmanager/pkg/routing"
)

var routeCache *cache.Cache[string]

func RoutingRouter(router fiber.Router) {
	if redis_client.Client != nil {
		redisStore := redisstore.NewRedis(redis_client.Client, store.WithExpiration(15*time.Minute))
		routeCache = cache.New[string](redisStore)
	}

	router.Get("/", getRoute)
}

func getRoute(c *fiber.Ctx) error {
	from := c.Query("from")
	to := c.Query("to")

	if from == "" || to == "" {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Both from and to station identifiers must be given",
		})
	}

	cacheKey := fmt.Sprintf("route:%s:%s", from, to)

	if routeCache != nil {
		if cached, err := routeCache.Get(context.Background(), cacheKey); err == nil {
			var route routing.Route
			if json.Unmarshal([]byte(cached), &route) == nil {
				return c.JSON(route)
			}
		}
	}

	route, err := routing.ShortestPath(manager.Graph, from, to)
	if errors.Is(err, routing.ErrNoPath) {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "No route between the given stations",
		})
	} else if err != nil {
		return mutationError(c, err)
	}

	if routeCache != nil {
		routeJSON, _ := json.Marshal(route)
		routeCache.Set(context.Background(), cacheKey, string(routeJSON))
	}

	return c.JSON(route)
}
