package controller

import (
	"laptop-dss-be/internal/dto"
	"laptop-dss-be/internal/pkg/serverutils"
	"laptop-dss-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ILaptopController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
}

type laptopController struct {
	datasetService service.IDatasetService
}

func NewLaptopController(datasetService service.IDatasetService) ILaptopController {
	return &laptopController{datasetService: datasetService}
}

func (c *laptopController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/laptops")
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get("/stats", c.Stats)
}

func (c *laptopController) List(ctx *fiber.Ctx) error {
	var req dto.ListLaptopsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid query parameters")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.datasetService.List(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list laptops", res))
}

func (c *laptopController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateLaptopRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.datasetService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create laptop", res))
}

func (c *laptopController) Stats(ctx *fiber.Ctx) error {
	res, err := c.datasetService.Stats(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get dataset stats", res))
}
