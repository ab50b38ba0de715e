package handler

import (
	"context"
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves user profiles and likes.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// GetUser returns the user registered under :address.
func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.userUC.FetchByAddress(c.Request().Context(), c.Param("address"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// UpdateProfile rewrites the editable profile of :address.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req UpdateProfileRequest
	if handled, err := bindRequest(c, h.logger, &req, "Invalid profile input"); handled {
		return err
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), usecase.UpdateProfileInput{
		Address: c.Param("address"),
		Profile: req.toProfile(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// GetLikes returns the like counter of :tokenId.
func (h *UserHandler) GetLikes(c echo.Context) error {
	tokenID, err := parseTokenID(c.Param("tokenId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_TOKEN_ID", err.Error())
	}

	likes, err := h.userUC.FetchLikes(c.Request().Context(), tokenID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.LikesResponse{Likes: likes})
}

// Like records a like of :tokenId by the address in the body and returns [nft, user].
func (h *UserHandler) Like(c echo.Context) error {
	return h.toggleLike(c, h.userUC.Like)
}

// Unlike removes a like of :tokenId by the address in the body and returns [nft, user].
func (h *UserHandler) Unlike(c echo.Context) error {
	return h.toggleLike(c, h.userUC.Unlike)
}

// likeFunc is the shape shared by Like and Unlike.
type likeFunc func(ctx context.Context, tokenID int64, address string) (*usecase.LikeOutput, error)

func (h *UserHandler) toggleLike(c echo.Context, apply likeFunc) error {
	tokenID, err := parseTokenID(c.Param("tokenId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_TOKEN_ID", err.Error())
	}

	var req AddressRequest
	if handled, err := bindRequest(c, h.logger, &req, "Invalid like input"); handled {
		return err
	}

	out, err := apply(c.Request().Context(), tokenID, req.Address)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, []any{out.NFT, out.User})
}
