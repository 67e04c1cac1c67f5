package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-negocios/internal/adapter/api/dto"
	"github.com/hugohenrick/pdv-negocios/internal/domain/category"
)

// CategoryController gerencia as requisições relacionadas às categorias
type CategoryController struct {
	categoryRepository category.Repository
}

// NewCategoryController cria uma nova instância de CategoryController
func NewCategoryController(categoryRepository category.Repository) *CategoryController {
	return &CategoryController{
		categoryRepository: categoryRepository,
	}
}

// Create cria uma nova categoria
// @Summary Cria uma nova categoria
// @Description Cria uma categoria de produtos no negócio do contexto
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category body dto.CategoryRequest true "Dados da categoria"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /categories [post]
func (c *CategoryController) Create(ctx *gin.Context) {
	var request dto.CategoryRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	tenantID := ctx.GetString("tenant_id")

	cat, err := category.NewCategory(tenantID, request.Name, request.Description)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if err := c.categoryRepository.Create(ctx, cat); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar categoria", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(cat))
}

// List lista as categorias do negócio
// @Summary Lista as categorias
// @Description Lista as categorias do negócio do contexto
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.CategoryResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories [get]
func (c *CategoryController) List(ctx *gin.Context) {
	tenantID := ctx.GetString("tenant_id")

	categories, err := c.categoryRepository.List(ctx, tenantID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar categorias", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(categories))
}

// Get busca uma categoria pelo ID
// @Summary Busca uma categoria
// @Description Busca uma categoria pelo seu ID
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da categoria"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /categories/{id} [get]
func (c *CategoryController) Get(ctx *gin.Context) {
	tenantID := ctx.GetString("tenant_id")
	id := ctx.Param("id")

	cat, err := c.categoryRepository.FindByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, category.ErrCategoryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Categoria não encontrada", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar categoria", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(cat))
}
