package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/bapesu/bapesu-api/internal/application/dto"
	"github.com/bapesu/bapesu-api/internal/application/usecase"
	"github.com/bapesu/bapesu-api/internal/domain"
)

const maxUploadBytes = 10 << 20

// ToolsHandler herramientas de IA y multimedia (requieren autenticación).
type ToolsHandler struct {
	uc *usecase.ToolsUseCase
}

// NewToolsHandler construye el handler.
func NewToolsHandler(uc *usecase.ToolsUseCase) *ToolsHandler {
	return &ToolsHandler{uc: uc}
}

// RemoveBackground godoc
// @Summary      Quitar el fondo de una imagen
// @Tags         tools
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      image/png
// @Param        image  formData  file  true  "Imagen"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/tools/remove-background [post]
func (h *ToolsHandler) RemoveBackground(c *fiber.Ctx) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return domain.NewValidationError("No se proporcionó ninguna imagen", "image")
	}
	if fh.Size > maxUploadBytes {
		return domain.NewValidationError("La imagen supera el tamaño máximo de 10 MB", "image")
	}
	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return err
	}

	out, err := h.uc.RemoveBackground(c.UserContext(), data, fh.Filename)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="sin_fondo.png"`)
	return c.Send(out)
}

// GenerateDescription godoc
// @Summary      Generar descripción de producto con IA
// @Tags         tools
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GenerateDescriptionRequest  true  "Datos del producto"
// @Success      200  {object}  dto.GeneratedTextResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/tools/generate-description [post]
func (h *ToolsHandler) GenerateDescription(c *fiber.Ctx) error {
	var in dto.GenerateDescriptionRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.GenerateDescription(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GenerateVideoIdea godoc
// @Summary      Generar idea de video con IA
// @Tags         tools
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VideoIdeaRequest  true  "Tema"
// @Success      200  {object}  dto.GeneratedTextResponse
// @Router       /api/v1/tools/generate-things-videos [post]
func (h *ToolsHandler) GenerateVideoIdea(c *fiber.Ctx) error {
	var in dto.VideoIdeaRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.GenerateVideoIdea(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GenerateQR godoc
// @Summary      Generar código QR
// @Tags         tools
// @Security     Bearer
// @Accept       json
// @Produce      image/png
// @Param        body  body  dto.QRRequest  true  "Contenido"
// @Success      200  {file}  binary
// @Router       /api/v1/tools/qr_generator [post]
func (h *ToolsHandler) GenerateQR(c *fiber.Ctx) error {
	var in dto.QRRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.GenerateQR(in)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(out)
}

// TextToSpeech godoc
// @Summary      Convertir texto a voz (MP3)
// @Tags         tools
// @Security     Bearer
// @Accept       json
// @Produce      audio/mpeg
// @Param        body  body  dto.SpeechRequest  true  "Texto"
// @Success      200  {file}  binary
// @Router       /api/v1/tools/text_x_voz [post]
func (h *ToolsHandler) TextToSpeech(c *fiber.Ctx) error {
	var in dto.SpeechRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.TextToSpeech(c.UserContext(), in)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "audio/mpeg")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="audio.mp3"`)
	return c.Send(out)
}
