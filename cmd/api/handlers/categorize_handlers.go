package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"promptdeck/cmd/api/dto"
	"promptdeck/services"
)

// CategorizeDraftHandler godoc
// @Summary      Categorize a draft payload
// @Description  Suggest 1-3 categories for an unsaved prompt payload. Nothing is persisted.
// @Tags         categorize
// @Accept       json
// @Param        request  body  dto.CategorizeRequestDTO  true  "Draft payload"
// @Produce      json
// @Success      200  {object}  dto.CategorizeResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Security     BearerAuth
// @Router       /prompts/categorize [post]
func CategorizeDraftHandler(svc *services.CategorizeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CategorizeRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request_body"})
			return
		}

		tags, cerr := svc.CategorizeDraft(c.Request.Context(), services.DraftInput{
			Title:       req.Title,
			Description: req.Description,
			Content:     req.Content,
			ImageURLs:   req.ImageURLs,
		})
		if cerr != nil {
			c.JSON(cerr.StatusCode, gin.H{"error": cerr.ErrorCode})
			return
		}

		c.JSON(http.StatusOK, dto.CategorizeResponseDTO{Categories: tags})
	}
}

// CategorizePromptHandler godoc
// @Summary      Categorize a stored prompt
// @Description  Run categorization for one stored prompt and persist the resulting tags
// @Tags         categorize
// @Param        id  path  string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.CategorizeResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Security     BearerAuth
// @Router       /prompts/{id}/categorize [post]
func CategorizePromptHandler(svc *services.CategorizeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_prompt_id"})
			return
		}

		tags, cerr := svc.CategorizePrompt(c.Request.Context(), id)
		if cerr != nil {
			c.JSON(cerr.StatusCode, gin.H{"error": cerr.ErrorCode})
			return
		}

		c.JSON(http.StatusOK, dto.CategorizeResponseDTO{Categories: tags})
	}
}

// BatchCategorizeHandler godoc
// @Summary      Trigger batch categorization
// @Description  Select uncategorized prompts up to the batch limit and categorize them sequentially
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.BatchCategorizeResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Security     BearerAuth
// @Router       /admin/prompts/categorize-batch [post]
func BatchCategorizeHandler(svc *services.CategorizeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		report, cerr := svc.CategorizeBatch(c.Request.Context())
		if cerr != nil {
			c.JSON(cerr.StatusCode, gin.H{"error": cerr.ErrorCode})
			return
		}

		c.JSON(http.StatusOK, dto.BatchCategorizeResponseDTO{
			Message:   "batch categorization finished",
			Processed: report.Processed,
			Total:     report.Total,
			Errors:    report.Errors,
		})
	}
}
