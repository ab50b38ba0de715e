package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CollectionHandlerParams holds dependencies for CollectionHandler, injected by Fx.
type CollectionHandlerParams struct {
	fx.In

	CollectionUC usecase.CollectionUsecase
	Logger       *slog.Logger
}

// CollectionHandler serves collection endpoints.
type CollectionHandler struct {
	collectionUC usecase.CollectionUsecase
	logger       *slog.Logger
}

// NewCollectionHandler is the constructor for CollectionHandler
func NewCollectionHandler(params CollectionHandlerParams) *CollectionHandler {
	return &CollectionHandler{
		collectionUC: params.CollectionUC,
		logger:       params.Logger,
	}
}

// Create returns the draft collection of :address, creating it when needed.
func (h *CollectionHandler) Create(c echo.Context) error {
	collection, err := h.collectionUC.Create(c.Request().Context(), c.Param("address"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, collection)
}

// Get returns the collection :name.
func (h *CollectionHandler) Get(c echo.Context) error {
	collection, err := h.collectionUC.Read(c.Request().Context(), c.Param("name"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, collection)
}

// GetAll returns every collection.
func (h *CollectionHandler) GetAll(c echo.Context) error {
	collections, err := h.collectionUC.ListAll(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, collections)
}

// ChangeInfo edits name, image and description of :name.
func (h *CollectionHandler) ChangeInfo(c echo.Context) error {
	var req UpdateCollectionRequest
	if handled, err := bindRequest(c, h.logger, &req, "Invalid collection input"); handled {
		return err
	}

	collection, err := h.collectionUC.Update(c.Request().Context(), usecase.UpdateCollectionInput{
		Name: c.Param("name"),
		Changes: entity.CollectionChanges{
			NewName:     req.NewName,
			Image:       req.Image,
			Description: req.Description,
			IsSameName:  req.IsSameName,
		},
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, collection)
}

// Delete removes the empty collection :name.
func (h *CollectionHandler) Delete(c echo.Context) error {
	name := c.Param("name")
	if err := h.collectionUC.Delete(c.Request().Context(), name); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, fmt.Sprintf("Deleted the collection: %s", name))
}
