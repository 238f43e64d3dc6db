package developer

import (
	"fmt"

	"go-marketplace/internal/middleware"
	"go-marketplace/internal/models"

	"github.com/gofiber/fiber/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type DeveloperController struct {
	Service DeveloperService
}

func NewDeveloperController(service DeveloperService) *DeveloperController {
	return &DeveloperController{Service: service}
}

// ListExtensions godoc
// @Summary List published extensions
// @Description Developer projections of the current developer's extensions
// @Tags developer
// @Produce json
// @Success 200 {array} models.DeveloperExtension
// @Failure 403 {object} map[string]interface{}
// @Router /api/developer/extensions [get]
func (ctrl *DeveloperController) ListExtensions(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)
	exts, err := ctrl.Service.ListDeveloperExtensions(c.UserContext(), user.ID)
	if err != nil {
		return err
	}
	if exts == nil {
		exts = []models.DeveloperExtension{}
	}
	return c.JSON(exts)
}

// Publish godoc
// @Summary Publish extension
// @Tags developer
// @Accept json
// @Produce json
// @Param extension body PublishInput true "Draft"
// @Success 201 {object} models.Extension
// @Failure 400 {object} map[string]interface{}
// @Router /api/developer/extensions [post]
func (ctrl *DeveloperController) Publish(c *fiber.Ctx) error {
	var input PublishInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	user, _ := middleware.CurrentUser(c)
	ext, err := ctrl.Service.Publish(c.UserContext(), user, input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(ext)
}

// Delete godoc
// @Summary Delete published extension
// @Tags developer
// @Param id path string true "Extension ID"
// @Success 204
// @Failure 404 {object} map[string]interface{}
// @Router /api/developer/extensions/{id} [delete]
func (ctrl *DeveloperController) Delete(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)
	if err := ctrl.Service.DeletePublished(c.UserContext(), user, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetAnalytics godoc
// @Summary Extension analytics
// @Tags developer
// @Produce json
// @Param id path string true "Extension ID"
// @Success 200 {object} models.ExtensionAnalytics
// @Failure 404 {object} map[string]interface{}
// @Router /api/developer/extensions/{id}/analytics [get]
func (ctrl *DeveloperController) GetAnalytics(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)
	a, err := ctrl.Service.GetAnalytics(c.UserContext(), user.ID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(a)
}

// ExportAnalytics godoc
// @Summary Export analytics
// @Description Download the analytics series as an Excel workbook
// @Tags developer
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Extension ID"
// @Success 200 {file} file
// @Failure 404 {object} map[string]interface{}
// @Router /api/developer/extensions/{id}/analytics/export [get]
func (ctrl *DeveloperController) ExportAnalytics(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)
	data, filename, err := ctrl.Service.ExportAnalytics(c.UserContext(), user.ID, c.Params("id"))
	if err != nil {
		return err
	}

	c.Set("Content-Type", xlsxContentType)
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	return c.Send(data)
}
