package handlers

import (
	"Bowl-Builder-Backend/domain"
	"Bowl-Builder-Backend/internal/api/presenters"
	"Bowl-Builder-Backend/pkg/bowl"
	"Bowl-Builder-Backend/pkg/nutrition"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	BowlHandler interface {
		GetCurrentBowl(c *fiber.Ctx) error
		CreateBowl(c *fiber.Ctx) error
		GetSavedBowls(c *fiber.Ctx) error
		GetBowl(c *fiber.Ctx) error
		RenameBowl(c *fiber.Ctx) error
		SaveBowl(c *fiber.Ctx) error
		AddIngredient(c *fiber.Ctx) error
		RemoveIngredient(c *fiber.Ctx) error
		ResetBowl(c *fiber.Ctx) error
		DeleteBowl(c *fiber.Ctx) error
	}

	bowlHandler struct {
		bowlService      bowl.BowlService
		nutritionService nutrition.NutritionService
		validator        *validator.Validate
	}
)

func NewBowlHandler(bowlService bowl.BowlService, nutritionService nutrition.NutritionService, validator *validator.Validate) BowlHandler {
	return &bowlHandler{
		bowlService:      bowlService,
		nutritionService: nutritionService,
		validator:        validator,
	}
}

// GetCurrentBowl returns the working bowl with its live nutrition, creating
// the bowl on first use.
func (h *bowlHandler) GetCurrentBowl(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	b, err := h.bowlService.GetOrCreateWorkingBowl(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetBowl, err)
	}

	res, err := h.nutritionService.Aggregate(c.Context(), b.ID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetNutrition, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetBowl)
}

func (h *bowlHandler) CreateBowl(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateBowlRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateBowl, err)
	}

	res, err := h.bowlService.CreateBowl(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedCreateBowl, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateBowl)
}

func (h *bowlHandler) GetSavedBowls(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.bowlService.GetSavedBowls(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetSavedBowls, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSavedBowls)
}

func (h *bowlHandler) GetBowl(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	bowlID := c.Params("id")

	if _, err := h.bowlService.AuthorizeBowl(c.Context(), bowlID, userID); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetBowl, err)
	}

	res, err := h.nutritionService.Aggregate(c.Context(), bowlID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetNutrition, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetBowl)
}

func (h *bowlHandler) RenameBowl(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	bowlID := c.Params("id")
	req := new(domain.RenameBowlRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRenameBowl, err)
	}

	if _, err := h.bowlService.RenameBowl(c.Context(), bowlID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedRenameBowl, err)
	}

	res, err := h.nutritionService.Aggregate(c.Context(), bowlID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetNutrition, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRenameBowl)
}

func (h *bowlHandler) SaveBowl(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	bowlID := c.Params("id")

	if _, err := h.bowlService.SaveBowl(c.Context(), bowlID, userID); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedSaveBowl, err)
	}

	res, err := h.nutritionService.Aggregate(c.Context(), bowlID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetNutrition, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSaveBowl)
}

func (h *bowlHandler) AddIngredient(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	bowlID := c.Params("id")
	req := new(domain.UpsertLineRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddIngredient, err)
	}

	if err := h.bowlService.AddIngredient(c.Context(), bowlID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedAddIngredient, err)
	}

	res, err := h.nutritionService.Aggregate(c.Context(), bowlID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetNutrition, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAddIngredient)
}

func (h *bowlHandler) RemoveIngredient(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	bowlID := c.Params("id")
	ingredientID := c.Params("ingredientID")

	if err := h.bowlService.RemoveIngredient(c.Context(), bowlID, ingredientID, userID); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedRemoveIngredient, err)
	}

	res, err := h.nutritionService.Aggregate(c.Context(), bowlID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetNutrition, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRemoveIngredient)
}

func (h *bowlHandler) ResetBowl(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.bowlService.ResetWorkingBowl(c.Context(), userID); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedResetBowl, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessResetBowl)
}

func (h *bowlHandler) DeleteBowl(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	bowlID := c.Params("id")

	if err := h.bowlService.DeleteBowl(c.Context(), bowlID, userID); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedDeleteBowl, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteBowl)
}
