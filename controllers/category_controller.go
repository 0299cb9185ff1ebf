package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muhbabelli/BidBay/services"
)

type CategoryController struct {
	categoryService *services.CategoryService
}

func NewCategoryController(categoryService *services.CategoryService) *CategoryController {
	return &CategoryController{categoryService: categoryService}
}

func (ctl *CategoryController) List(c *gin.Context) {
	categories, svcErr := ctl.categoryService.List(c.Request.Context())
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (ctl *CategoryController) Create(c *gin.Context) {
	var req services.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	category, svcErr := ctl.categoryService.Create(c.Request.Context(), &req)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusCreated, category)
}
