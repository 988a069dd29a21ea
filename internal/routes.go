package internal

import (
	"net/http"

	"catchlog/internal/controllers"
	"catchlog/internal/providers"
	"catchlog/internal/structures"
)

func InitRoutes(apiController *controllers.ApiController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/catches", http.HandlerFunc(apiController.GetCatches))
	routers.Post("/catches", http.HandlerFunc(apiController.CreateCatch))
	routers.Get("/stats", http.HandlerFunc(apiController.GetStats))
	return routers
}
