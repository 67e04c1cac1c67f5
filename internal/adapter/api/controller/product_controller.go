package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-negocios/internal/adapter/api/dto"
	"github.com/hugohenrick/pdv-negocios/internal/adapter/repository"
	"github.com/hugohenrick/pdv-negocios/internal/domain/product"
	"github.com/hugohenrick/pdv-negocios/internal/domain/sale"
	"github.com/hugohenrick/pdv-negocios/internal/service"
)

// ProductController gerencia as requisições relacionadas aos produtos
type ProductController struct {
	productRepository product.Repository
	stockService      *service.StockService
}

// NewProductController cria uma nova instância de ProductController
func NewProductController(productRepository product.Repository, stockService *service.StockService) *ProductController {
	return &ProductController{
		productRepository: productRepository,
		stockService:      stockService,
	}
}

// Create cria um novo produto
// @Summary Cria um novo produto
// @Description Cria um produto no catálogo do negócio do contexto
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /products [post]
func (c *ProductController) Create(ctx *gin.Context) {
	var request dto.ProductRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	tenantID := ctx.GetString("tenant_id")

	p, err := product.NewProduct(tenantID, request.EANCode, request.Name, request.Description,
		request.PurchasePrice, request.SalePrice, request.Stock, request.MinStock, request.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if err := c.productRepository.Create(ctx, p); err != nil {
		if errors.Is(err, repository.ErrProductDuplicateEAN) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Código de barras já cadastrado", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductResponse(p))
}

// List lista os produtos do negócio
// @Summary Lista os produtos
// @Description Lista os produtos ativos, com busca por nome ou código de barras
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param search query string false "Nome ou código de barras"
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {object} dto.ProductListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [get]
func (c *ProductController) List(ctx *gin.Context) {
	tenantID := ctx.GetString("tenant_id")
	term := ctx.Query("search")

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	products, err := c.productRepository.Search(ctx, tenantID, term, pagination.PageSize, pagination.Offset())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar produtos", err.Error()))
		return
	}

	total, err := c.productRepository.CountByTenant(ctx, tenantID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao contar produtos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(products, total, pagination.Page, pagination.PageSize))
}

// Get busca um produto pelo ID
// @Summary Busca um produto
// @Description Busca um produto pelo seu ID
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id} [get]
func (c *ProductController) Get(ctx *gin.Context) {
	tenantID := ctx.GetString("tenant_id")
	id := ctx.Param("id")

	p, err := c.productRepository.FindByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Produto não encontrado", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// GetByEAN busca um produto pelo código de barras
// @Summary Busca um produto pelo código de barras
// @Description Usado pelo ponto de venda para leitura de código de barras
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param ean path string true "Código de barras"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/ean/{ean} [get]
func (c *ProductController) GetByEAN(ctx *gin.Context) {
	tenantID := ctx.GetString("tenant_id")
	ean := ctx.Param("ean")

	p, err := c.productRepository.FindByEAN(ctx, tenantID, ean)
	if err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Produto não encontrado", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// LowStock lista os produtos com estoque baixo
// @Summary Lista produtos com estoque baixo
// @Description Lista os produtos ativos com estoque menor ou igual ao mínimo
// @Tags products
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ProductResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/low-stock [get]
func (c *ProductController) LowStock(ctx *gin.Context) {
	tenantID := ctx.GetString("tenant_id")

	products, err := c.productRepository.FindLowStock(ctx, tenantID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar produtos", err.Error()))
		return
	}

	response := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, dto.ToProductResponse(p))
	}

	ctx.JSON(http.StatusOK, response)
}

// AdjustStock ajusta manualmente o estoque de um produto
// @Summary Ajusta o estoque de um produto
// @Description Soma (delta positivo) ou subtrai (delta negativo) unidades do estoque
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do produto"
// @Param adjustment body dto.StockAdjustmentRequest true "Ajuste"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /products/{id}/stock [patch]
func (c *ProductController) AdjustStock(ctx *gin.Context) {
	tenantID := ctx.GetString("tenant_id")
	id := ctx.Param("id")

	var request dto.StockAdjustmentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	p, err := c.stockService.Adjust(ctx, tenantID, id, request.Delta)
	if err != nil {
		var notFound *sale.ProductNotFoundError
		var insufficient *sale.InsufficientStockError
		switch {
		case errors.As(err, &notFound) || errors.Is(err, product.ErrProductNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Produto não encontrado", err.Error()))
		case errors.As(err, &insufficient):
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "Estoque insuficiente", err.Error()))
		default:
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao ajustar estoque", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// Update atualiza um produto
// @Summary Atualiza um produto
// @Description Atualiza os dados cadastrais de um produto (o estoque é ajustado à parte)
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do produto"
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id} [put]
func (c *ProductController) Update(ctx *gin.Context) {
	tenantID := ctx.GetString("tenant_id")
	id := ctx.Param("id")

	var request dto.ProductRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	p, err := c.productRepository.FindByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Produto não encontrado", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar produto", err.Error()))
		return
	}

	if err := p.Update(request.EANCode, request.Name, request.Description,
		request.PurchasePrice, request.SalePrice, request.MinStock, request.CategoryID); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if err := c.productRepository.Update(ctx, p); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// Delete desativa um produto
// @Summary Desativa um produto
// @Description Marca um produto como inativo (exclusão lógica)
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id} [delete]
func (c *ProductController) Delete(ctx *gin.Context) {
	tenantID := ctx.GetString("tenant_id")
	id := ctx.Param("id")

	if err := c.productRepository.Delete(ctx, tenantID, id); err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Produto não encontrado", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao desativar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Produto desativado com sucesso", nil))
}
