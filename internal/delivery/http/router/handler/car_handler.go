package handler

import (
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"rentcar/internal/delivery/http/response"
	"rentcar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// carForm is the multipart payload for creating and updating car listings.
// Images travel as separate file parts under the "images" field.
type carForm struct {
	Brand            string  `form:"brand" validate:"required"`
	Model            string  `form:"model" validate:"required"`
	Year             int     `form:"year"`
	Price            float64 `form:"price"`
	Multiplier       int     `form:"multiplier"`
	Capacity         int     `form:"capacity"`
	Transmission     string  `form:"transmission"`
	FuelCapacity     int     `form:"fuelCapacity"`
	City             string  `form:"city" validate:"required"`
	CreatedBy        string  `form:"createdBy"`
	CreatedByEmail   string  `form:"createdByEmail"`
	OwnerPhoneNumber string  `form:"ownerPhoneNumber"`
}

// CarHandler holds dependencies for car catalog handlers.
type CarHandler struct {
	uc     usecase.CarUsecase
	logger *slog.Logger
}

// NewCarHandler is the constructor for CarHandler, injected by Fx.
func NewCarHandler(uc usecase.CarUsecase, logger *slog.Logger) *CarHandler {
	return &CarHandler{
		uc:     uc,
		logger: logger,
	}
}

// imageUploads opens the "images" file parts of the request. The returned
// closer releases the opened files once the usecase has consumed them.
func imageUploads(c echo.Context) ([]usecase.ImageUpload, func(), error) {
	form, err := c.MultipartForm()
	if err != nil {
		// No multipart body means no images, which is valid.
		return nil, func() {}, nil
	}

	files := form.File["images"]
	uploads := make([]usecase.ImageUpload, 0, len(files))
	opened := make([]multipart.File, 0, len(files))
	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	for _, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			closeAll()

			return nil, nil, err
		}
		opened = append(opened, file)
		uploads = append(uploads, usecase.ImageUpload{
			Filename: fileHeader.Filename,
			Content:  file,
		})
	}

	return uploads, closeAll, nil
}

// CreateCar handles listing a new car for rent.
func (h *CarHandler) CreateCar(c echo.Context) error {
	var form carForm
	if err := c.Bind(&form); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid car input")
	}
	if err := c.Validate(&form); err != nil {
		return errors.WithStack(err)
	}

	uploads, closeUploads, err := imageUploads(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid image upload")
	}
	defer closeUploads()

	car, err := h.uc.CreateCar(c.Request().Context(), &usecase.CreateCarInput{
		Brand:            form.Brand,
		Model:            form.Model,
		Year:             form.Year,
		Price:            form.Price,
		Multiplier:       form.Multiplier,
		Capacity:         form.Capacity,
		Transmission:     form.Transmission,
		FuelCapacity:     form.FuelCapacity,
		City:             form.City,
		CreatedBy:        form.CreatedBy,
		CreatedByEmail:   form.CreatedByEmail,
		OwnerPhoneNumber: form.OwnerPhoneNumber,
		Images:           uploads,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, car, "Car created successfully")
}

// GetCar returns a single listing by ID.
func (h *CarHandler) GetCar(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid car ID")
	}

	car, err := h.uc.GetCar(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, car, "")
}

// UpdateCar modifies an existing listing.
func (h *CarHandler) UpdateCar(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid car ID")
	}

	var form carForm
	if err := c.Bind(&form); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid car input")
	}
	if err := c.Validate(&form); err != nil {
		return errors.WithStack(err)
	}

	uploads, closeUploads, err := imageUploads(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid image upload")
	}
	defer closeUploads()

	car, err := h.uc.UpdateCar(c.Request().Context(), &usecase.UpdateCarInput{
		ID:           id,
		Brand:        form.Brand,
		Model:        form.Model,
		Year:         form.Year,
		Price:        form.Price,
		Multiplier:   form.Multiplier,
		Capacity:     form.Capacity,
		Transmission: form.Transmission,
		FuelCapacity: form.FuelCapacity,
		City:         form.City,
		Images:       uploads,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, car, "Car updated successfully")
}

// DeleteCar removes a listing.
func (h *CarHandler) DeleteCar(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid car ID")
	}

	if err := h.uc.DeleteCar(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Car deleted successfully")
}

// ListCars returns the catalog, optionally filtered by city.
func (h *CarHandler) ListCars(c echo.Context) error {
	cars, err := h.uc.ListCars(c.Request().Context(), c.QueryParam("city"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cars, "")
}
