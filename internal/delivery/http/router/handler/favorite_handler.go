package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"rentcar/internal/delivery/http/response"
	"rentcar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FavoriteHandler holds dependencies for favorites-related handlers.
type FavoriteHandler struct {
	uc     usecase.FavoriteUsecase
	logger *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler, injected by Fx.
func NewFavoriteHandler(uc usecase.FavoriteUsecase, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		uc:     uc,
		logger: logger,
	}
}

func favoriteInputFromPath(c echo.Context) (*usecase.FavoriteInput, error) {
	carID, err := strconv.Atoi(c.Param("carId"))
	if err != nil {
		return nil, err
	}

	return &usecase.FavoriteInput{
		UserPhoneNumber: c.Param("phoneNumber"),
		CarID:           carID,
	}, nil
}

// AddToFavorites links a car to the user's favorites list.
func (h *FavoriteHandler) AddToFavorites(c echo.Context) error {
	input, err := favoriteInputFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid car ID")
	}

	if err := h.uc.AddToFavorites(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Car added to favorites")
}

// RemoveFromFavorites unlinks a car from the user's favorites list.
func (h *FavoriteHandler) RemoveFromFavorites(c echo.Context) error {
	input, err := favoriteInputFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid car ID")
	}

	if err := h.uc.RemoveFromFavorites(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Car removed from favorites")
}

// GetFavoriteCars returns the full car records the user has favorited.
func (h *FavoriteHandler) GetFavoriteCars(c echo.Context) error {
	cars, err := h.uc.GetFavoriteCars(c.Request().Context(), c.Param("phoneNumber"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cars, "")
}
