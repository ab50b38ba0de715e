// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"marketplace/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler       *handler.UserHandler
	NFTHandler        *handler.NFTHandler
	CollectionHandler *handler.CollectionHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler       *handler.UserHandler
	nftHandler        *handler.NFTHandler
	collectionHandler *handler.CollectionHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:       params.UserHandler,
		nftHandler:        params.NFTHandler,
		collectionHandler: params.CollectionHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	usersGroup := e.Group("/users")
	{
		usersGroup.GET("/:address", r.userHandler.GetUser)
		usersGroup.PUT("/:address", r.userHandler.UpdateProfile)
	}

	collectionsGroup := e.Group("/collections")
	{
		collectionsGroup.GET("", r.collectionHandler.GetAll)
		collectionsGroup.POST("/:address", r.collectionHandler.Create)
		collectionsGroup.GET("/:name", r.collectionHandler.Get)
		collectionsGroup.PUT("/change-info/:name", r.collectionHandler.ChangeInfo)
		collectionsGroup.DELETE("/:name", r.collectionHandler.Delete)
	}

	nftsGroup := e.Group("/nfts")
	{
		nftsGroup.GET("", r.nftHandler.GetAll)
		nftsGroup.POST("", r.nftHandler.Create)
		nftsGroup.POST("/multiple", r.nftHandler.CreateMany)
		nftsGroup.GET("/multiple/:encodedIds", r.nftHandler.GetMultiple)
		nftsGroup.PUT("/on-market/:tokenId", r.nftHandler.PutOnMarket)
		nftsGroup.PUT("/off-market/:tokenId", r.nftHandler.TakeOffMarket)
		nftsGroup.PUT("/edit/:tokenId", r.nftHandler.Edit)
		nftsGroup.PUT("/transfer/:tokenId", r.nftHandler.Transfer)
		nftsGroup.GET("/:tokenId", r.nftHandler.GetOne)
		nftsGroup.DELETE("/:tokenId", r.nftHandler.Delete)

		// Likes
		nftsGroup.GET("/likes/:tokenId", r.userHandler.GetLikes)
		nftsGroup.PUT("/likes/:tokenId", r.userHandler.Like)
		nftsGroup.PUT("/unlikes/:tokenId", r.userHandler.Unlike)
	}
}
