package extension

import (
	"go-marketplace/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ExtensionController struct {
	Service ExtensionService
}

func NewExtensionController(service ExtensionService) *ExtensionController {
	return &ExtensionController{
		Service: service,
	}
}

// criteriaFromQuery never fails: unparsable numbers read as zero and are
// replaced by the defaults.
func criteriaFromQuery(c *fiber.Ctx) SearchCriteria {
	return SearchCriteria{
		Query:       c.Query("query"),
		Category:    c.Query("category"),
		PriceFilter: PriceFilter(c.Query("price")),
		MinRating:   c.QueryFloat("min_rating"),
		SortBy:      c.Query("sort_by"),
		SortOrder:   SortOrder(c.Query("sort_order")),
		Page:        c.QueryInt("page"),
		Limit:       c.QueryInt("limit"),
	}
}

// Search godoc
// @Summary Search extensions
// @Description Filter, sort and paginate the marketplace catalogue
// @Tags extensions
// @Produce json
// @Param query query string false "Substring of name, description, publisher or tag"
// @Param category query string false "Category name or all"
// @Param price query string false "free, paid or any"
// @Param min_rating query number false "Minimum rating"
// @Param sort_by query string false "Extension attribute"
// @Param sort_order query string false "asc or desc"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 12)"
// @Success 200 {object} SearchResult
// @Router /api/extensions [get]
func (ctrl *ExtensionController) Search(c *fiber.Ctx) error {
	result, err := ctrl.Service.Search(c.UserContext(), criteriaFromQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// GetExtension godoc
// @Summary Get extension
// @Description Get an extension by ID
// @Tags extensions
// @Produce json
// @Param id path string true "Extension ID"
// @Success 200 {object} models.Extension
// @Failure 404 {object} map[string]interface{}
// @Router /api/extensions/{id} [get]
func (ctrl *ExtensionController) GetExtension(c *fiber.Ctx) error {
	ext, err := ctrl.Service.GetExtension(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(ext)
}

// ListCategories godoc
// @Summary List categories
// @Tags extensions
// @Produce json
// @Success 200 {array} models.Category
// @Router /api/categories [get]
func (ctrl *ExtensionController) ListCategories(c *fiber.Ctx) error {
	cats, err := ctrl.Service.ListCategories(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(cats)
}

// ListReviews godoc
// @Summary List reviews
// @Description Reviews of an extension, newest first
// @Tags reviews
// @Produce json
// @Param id path string true "Extension ID"
// @Success 200 {array} models.Review
// @Failure 404 {object} map[string]interface{}
// @Router /api/extensions/{id}/reviews [get]
func (ctrl *ExtensionController) ListReviews(c *fiber.Ctx) error {
	reviews, err := ctrl.Service.ListReviews(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(reviews)
}

// SubmitReview godoc
// @Summary Submit review
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path string true "Extension ID"
// @Param review body ReviewInput true "Rating (1-5) and comment"
// @Success 201 {object} models.Review
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/extensions/{id}/reviews [post]
func (ctrl *ExtensionController) SubmitReview(c *fiber.Ctx) error {
	var input ReviewInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	user, _ := middleware.CurrentUser(c)
	review, err := ctrl.Service.SubmitReview(c.UserContext(), user, c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}

