package installation

import (
	"go-marketplace/internal/middleware"
	"go-marketplace/internal/models"

	"github.com/gofiber/fiber/v2"
)

type InstallationController struct {
	Service InstallationService
}

func NewInstallationController(service InstallationService) *InstallationController {
	return &InstallationController{Service: service}
}

// Install godoc
// @Summary Install extension
// @Description Install an extension for the current user
// @Tags installed
// @Produce json
// @Param id path string true "Extension ID"
// @Success 201 {object} models.InstalledExtension
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /api/extensions/{id}/install [post]
func (ctrl *InstallationController) Install(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)
	installed, err := ctrl.Service.Install(c.UserContext(), user, c.Params("id"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(installed)
}

// ListInstalled godoc
// @Summary List installed extensions
// @Tags installed
// @Produce json
// @Success 200 {array} InstalledView
// @Router /api/installed [get]
func (ctrl *InstallationController) ListInstalled(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)
	installed, err := ctrl.Service.ListInstalled(c.UserContext(), user.ID)
	if err != nil {
		return err
	}
	if installed == nil {
		installed = []InstalledView{}
	}
	return c.JSON(installed)
}

// Uninstall godoc
// @Summary Uninstall extension
// @Tags installed
// @Param id path string true "Installation ID"
// @Success 204
// @Failure 404 {object} map[string]interface{}
// @Router /api/installed/{id} [delete]
func (ctrl *InstallationController) Uninstall(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)
	if err := ctrl.Service.Uninstall(c.UserContext(), user, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateConfiguration godoc
// @Summary Update configuration
// @Description Shallow-merge scalar settings into the installation's configuration
// @Tags installed
// @Accept json
// @Produce json
// @Param id path string true "Installation ID"
// @Param configuration body object true "Partial configuration"
// @Success 200 {object} models.InstalledExtension
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/installed/{id}/configuration [patch]
func (ctrl *InstallationController) UpdateConfiguration(c *fiber.Ctx) error {
	var patch models.ConfigMap
	if err := c.BodyParser(&patch); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Configuration must be an object of string, number or boolean values")
	}

	user, _ := middleware.CurrentUser(c)
	updated, err := ctrl.Service.UpdateConfiguration(c.UserContext(), user, c.Params("id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

// SetEnabled godoc
// @Summary Enable or disable an installation
// @Tags installed
// @Accept json
// @Produce json
// @Param id path string true "Installation ID"
// @Param body body EnabledInput true "Enabled flag"
// @Success 200 {object} models.InstalledExtension
// @Failure 404 {object} map[string]interface{}
// @Router /api/installed/{id}/enabled [patch]
func (ctrl *InstallationController) SetEnabled(c *fiber.Ctx) error {
	var input EnabledInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	user, _ := middleware.CurrentUser(c)
	updated, err := ctrl.Service.SetEnabled(c.UserContext(), user, c.Params("id"), input.Enabled)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}
