package handlers

import (
	"github.com/gin-gonic/gin"

	"avtoservice/internal/core/apperror"
	"avtoservice/internal/domain/catalogs/sklad"
	"avtoservice/internal/infrastructure/http/v1/dto"
)

// SkladHandler serves the parts warehouse catalog plus stock operations.
type SkladHandler struct {
	*CatalogHandler[*sklad.Item, dto.CreateSkladItemRequest, dto.UpdateSkladItemRequest]
	service *sklad.Service
}

// NewSkladHandler creates a new warehouse handler.
func NewSkladHandler(base *BaseHandler, service *sklad.Service) *SkladHandler {
	config := CatalogHandlerConfig[*sklad.Item, dto.CreateSkladItemRequest, dto.UpdateSkladItemRequest]{
		Service: service.CatalogService,
		MapCreateDTO: func(req *dto.CreateSkladItemRequest) (*sklad.Item, error) {
			return req.ToEntity(), nil
		},
		MapUpdateDTO: func(req *dto.UpdateSkladItemRequest, existing *sklad.Item) error {
			req.ApplyTo(existing)
			return nil
		},
		MapToDTO: func(item *sklad.Item) any {
			return dto.FromSkladItem(item)
		},
	}

	return &SkladHandler{
		CatalogHandler: NewCatalogHandler(base, config),
		service:        service,
	}
}

// GetByArticle handles GET /sklad/by-article/:article
func (h *SkladHandler) GetByArticle(c *gin.Context) {
	article := c.Param("article")
	if article == "" {
		h.Error(c, apperror.NewValidation("article number is required"))
		return
	}

	item, err := h.service.FindByArticleNumber(c.Request.Context(), article)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromSkladItem(item))
}

// AdjustQuantity handles POST /sklad/adjust-quantity - applies a signed
// stock delta to the item with the given article number.
func (h *SkladHandler) AdjustQuantity(c *gin.Context) {
	var req dto.AdjustQuantityRequest
	if !h.BindJSON(c, &req) {
		return
	}

	item, err := h.service.AdjustQuantity(c.Request.Context(), req.ArticleNumber, req.Delta)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromSkladItem(item))
}
