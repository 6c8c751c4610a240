package controller

import (
	"laptop-dss-be/internal/dto"
	"laptop-dss-be/internal/pkg/serverutils"
	"laptop-dss-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IRecommendationController interface {
	RegisterRoutes(r fiber.Router)
	Recommend(ctx *fiber.Ctx) error
}

type recommendationController struct {
	recommendationService service.IRecommendationService
}

func NewRecommendationController(recommendationService service.IRecommendationService) IRecommendationController {
	return &recommendationController{recommendationService: recommendationService}
}

func (c *recommendationController) RegisterRoutes(r fiber.Router) {
	r.Post("/recommendations", c.Recommend)
}

func (c *recommendationController) Recommend(ctx *fiber.Ctx) error {
	var req dto.RecommendationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.recommendationService.Recommend(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success rank laptops", res))
}
