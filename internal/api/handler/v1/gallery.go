package v1

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/samrambhakamela/mela-api/internal/api/handler/v1/response"
	"github.com/samrambhakamela/mela-api/internal/domain"
)

type GalleryService interface {
	List(ctx context.Context) ([]domain.Photo, error)
	Upload(ctx context.Context, filename, contentType string, reader io.Reader, size int64) (domain.Photo, error)
	Delete(ctx context.Context, key string) error
}

type GalleryHandler struct {
	svc GalleryService
}

func NewGalleryHandler(svc GalleryService) *GalleryHandler {
	return &GalleryHandler{
		svc: svc,
	}
}

// HandleGetPhotos godoc
// @Summary      List gallery photos
// @Tags         photos
// @Produce      json
// @Success      200      {object}   []domain.Photo
// @Failure      500      {object}   response.Err
// @Router       /photos [get]
func (h *GalleryHandler) HandleGetPhotos(ctx *gin.Context) {
	photos, err := h.svc.List(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetPhotos -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, photos)
}

// HandleUploadPhoto godoc
// @Summary      Upload a gallery photo
// @Tags         photos
// @Accept       multipart/form-data
// @Produce      json
// @Param        photo  formData  file  true  "photo file"
// @Success      201      {object}   domain.Photo
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /photos [post]
func (h *GalleryHandler) HandleUploadPhoto(ctx *gin.Context) {
	header, err := ctx.FormFile("photo")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("a photo file is required")))

		return
	}

	file, err := header.Open()
	if err != nil {
		err = fmt.Errorf("v1.HandleUploadPhoto -> header.Open -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}
	defer file.Close()

	photo, err := h.svc.Upload(ctx.Request.Context(), header.Filename, header.Header.Get("Content-Type"), file, header.Size)
	if err != nil {
		err = fmt.Errorf("v1.HandleUploadPhoto -> h.svc.Upload -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, photo)
}

// HandleDeletePhoto godoc
// @Summary      Delete a gallery photo
// @Tags         photos
// @Produce      json
// @Param        key  path      string  true  "photo key"
// @Success      204
// @Failure      500      {object}   response.Err
// @Router       /photos/{key} [delete]
func (h *GalleryHandler) HandleDeletePhoto(ctx *gin.Context) {
	key := ctx.Param("key")

	if err := h.svc.Delete(ctx.Request.Context(), key); err != nil {
		err = fmt.Errorf("v1.HandleDeletePhoto -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
