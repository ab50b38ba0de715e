package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NFTHandlerParams holds dependencies for NFTHandler, injected by Fx.
type NFTHandlerParams struct {
	fx.In

	NFTUC  usecase.NFTUsecase
	Logger *slog.Logger
}

// NFTHandler serves minting, listing and lookup of NFTs.
type NFTHandler struct {
	nftUC  usecase.NFTUsecase
	logger *slog.Logger
}

// NewNFTHandler is the constructor for NFTHandler
func NewNFTHandler(params NFTHandlerParams) *NFTHandler {
	return &NFTHandler{
		nftUC:  params.NFTUC,
		logger: params.Logger,
	}
}

// Create mints one NFT.
func (h *NFTHandler) Create(c echo.Context) error {
	var req CreateNFTRequest
	if handled, err := bindRequest(c, h.logger, &req, "Invalid NFT input"); handled {
		return err
	}

	nft, err := h.nftUC.Create(c.Request().Context(), usecase.CreateNFTInput{
		Address:        req.Address,
		Collection:     req.Collection,
		BlockchainType: req.BlockchainType,
		ErcType:        req.ErcType,
		TokenID:        int64(req.TokenID),
		ItemID:         int64(req.ItemID),
		Name:           req.Name,
		Image:          req.Image,
		AnimationURL:   req.AnimationURL,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nft)
}

// CreateMany mints a batch of NFTs atomically.
func (h *NFTHandler) CreateMany(c echo.Context) error {
	var req CreateNFTsRequest
	if handled, err := bindRequest(c, h.logger, &req, "Invalid NFT batch input"); handled {
		return err
	}

	nfts, err := h.nftUC.CreateMany(c.Request().Context(), usecase.CreateNFTsInput{
		Address:        req.Address,
		Collection:     req.Collection,
		BlockchainType: req.BlockchainType,
		ErcType:        req.ErcType,
		TokenIDs:       int64s(req.TokenIDs),
		ItemIDs:        int64s(req.ItemIDs),
		Names:          req.Names,
		Images:         req.Images,
		AnimationURLs:  req.AnimationURLs,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nfts)
}

// PutOnMarket writes the market state of :tokenId and, while mutable, its listing details.
func (h *NFTHandler) PutOnMarket(c echo.Context) error {
	tokenID, err := parseTokenID(c.Param("tokenId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_TOKEN_ID", err.Error())
	}

	var req PutOnMarketRequest
	if handled, err := bindRequest(c, h.logger, &req, "Invalid market input"); handled {
		return err
	}

	nft, err := h.nftUC.PutOnMarket(c.Request().Context(), usecase.PutOnMarketInput{
		TokenID: tokenID,
		Market:  req.toMarketState(),
		Listing: req.toListing(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nft)
}

// TakeOffMarket resets the market state of :tokenId.
func (h *NFTHandler) TakeOffMarket(c echo.Context) error {
	tokenID, err := parseTokenID(c.Param("tokenId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_TOKEN_ID", err.Error())
	}

	nft, err := h.nftUC.TakeOffMarket(c.Request().Context(), tokenID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nft)
}

// Edit rewrites the metadata of :tokenId.
func (h *NFTHandler) Edit(c echo.Context) error {
	tokenID, err := parseTokenID(c.Param("tokenId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_TOKEN_ID", err.Error())
	}

	var req EditNFTRequest
	if handled, err := bindRequest(c, h.logger, &req, "Invalid edit input"); handled {
		return err
	}

	nft, err := h.nftUC.Edit(c.Request().Context(), usecase.EditNFTInput{
		TokenID:    tokenID,
		Collection: req.Collection,
		Edit:       req.toEdit(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nft)
}

// Transfer moves :tokenId to the address in the body.
func (h *NFTHandler) Transfer(c echo.Context) error {
	tokenID, err := parseTokenID(c.Param("tokenId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_TOKEN_ID", err.Error())
	}

	var req AddressRequest
	if handled, err := bindRequest(c, h.logger, &req, "Invalid transfer input"); handled {
		return err
	}

	nft, err := h.nftUC.Transfer(c.Request().Context(), usecase.TransferNFTInput{
		TokenID: tokenID,
		Address: req.Address,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nft)
}

// Delete removes :tokenId and its reviews.
func (h *NFTHandler) Delete(c echo.Context) error {
	tokenID, err := parseTokenID(c.Param("tokenId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_TOKEN_ID", err.Error())
	}

	if err := h.nftUC.Delete(c.Request().Context(), tokenID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, fmt.Sprintf("Deleted the NFT: %d", tokenID))
}

// GetAll returns every NFT.
func (h *NFTHandler) GetAll(c echo.Context) error {
	nfts, err := h.nftUC.FetchAll(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nfts)
}

// GetOne returns :tokenId.
func (h *NFTHandler) GetOne(c echo.Context) error {
	tokenID, err := parseTokenID(c.Param("tokenId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_TOKEN_ID", err.Error())
	}

	nft, err := h.nftUC.FetchOne(c.Request().Context(), tokenID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nft)
}

// GetMultiple returns the NFTs of a "-" joined id list, null where a token does not exist.
func (h *NFTHandler) GetMultiple(c echo.Context) error {
	nfts, err := h.nftUC.FetchMultiple(c.Request().Context(), c.Param("encodedIds"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nfts)
}
