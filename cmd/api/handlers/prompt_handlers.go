package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"promptdeck/cmd/api/dto"
	"promptdeck/services"
)

// CreatePromptHandler godoc
// @Summary      Create prompt
// @Description  Register a new prompt record in uncategorized state
// @Tags         prompts
// @Accept       json
// @Param        request  body  dto.CreatePromptRequestDTO  true  "Prompt payload"
// @Produce      json
// @Success      201  {object}  dto.PromptDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Security     BearerAuth
// @Router       /prompts [post]
func CreatePromptHandler(svc *services.PromptService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CreatePromptRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request_body"})
			return
		}

		authorID := c.GetString("user_id")

		p, err := svc.Create(c.Request.Context(), services.CreatePromptInput{
			AuthorID:    authorID,
			Title:       req.Title,
			Description: req.Description,
			Content:     req.Content,
			ImageURLs:   req.ImageURLs,
		})
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, dto.NewPromptDTO(*p))
	}
}

// ListPromptsHandler godoc
// @Summary      List prompts
// @Description  List prompts with pagination and optional filters, newest first
// @Tags         prompts
// @Param        page       query  int     false  "Page number (1-based)"
// @Param        page_size  query  int     false  "Page size (<=100)"
// @Param        category   query  string  false  "Category filter (exact match)"
// @Param        author_id  query  string  false  "Author filter"
// @Produce      json
// @Success      200  {object}  dto.PaginationPromptDTO
// @Router       /prompts [get]
func ListPromptsHandler(svc *services.PromptService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in services.ListPromptsInput
		in.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
		in.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))
		in.Category = c.Query("category")
		in.AuthorID = c.Query("author_id")

		out, err := svc.List(c.Request.Context(), in)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		items := make([]dto.PromptDTO, 0, len(out.Items))
		for _, p := range out.Items {
			items = append(items, dto.NewPromptDTO(p))
		}
		c.JSON(http.StatusOK, dto.PaginationPromptDTO{
			Items:    items,
			Page:     out.Page,
			PageSize: out.PageSize,
			Total:    out.Total,
		})
	}
}

// GetPromptHandler godoc
// @Summary      Get prompt by id
// @Description  Get a single prompt by ObjectID
// @Tags         prompts
// @Param        id  path  string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.PromptDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /prompts/{id} [get]
func GetPromptHandler(svc *services.PromptService) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param("id")
		p, err := svc.GetByID(c.Request.Context(), idStr)
		if err != nil {
			status, code := promptLookupStatus(err)
			c.JSON(status, gin.H{"error": code})
			return
		}
		c.JSON(http.StatusOK, dto.NewPromptDTO(*p))
	}
}

// promptLookupStatus 는 조회 오류를 HTTP 상태/코드로 변환한다.
// 저장소 장애를 404 로 뭉개지 않는다.
func promptLookupStatus(err error) (int, string) {
	switch {
	case errors.Is(err, primitive.ErrInvalidHex):
		return http.StatusBadRequest, "invalid_prompt_id"
	case errors.Is(err, mongo.ErrNoDocuments):
		return http.StatusNotFound, "not_found"
	default:
		return http.StatusInternalServerError, "store_failed"
	}
}
