package employee

import (
	"context"

	"employees/inner/common"
	"employees/inner/web"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const invalidBodyMessage = "Invalid request body"

type Controller struct {
	server          *web.Server
	employeeService Svc
	logger          *common.Logger
}

// интерфейс сервиса employee.Service
type Svc interface {
	List(ctx context.Context, request ListRequest) (PageResponse, error)
	FindById(ctx context.Context, id string) (Response, error)
	Create(ctx context.Context, request CreateRequest) (Response, error)
	Update(ctx context.Context, id string, request UpdateRequest) (Response, error)
	Destroy(ctx context.Context, id string) (Response, error)
}

func NewController(server *web.Server, employeeService Svc, logger *common.Logger) *Controller {
	return &Controller{
		server:          server,
		employeeService: employeeService,
		logger:          logger,
	}
}

// функция для регистрации маршрутов
func (c *Controller) RegisterRoutes() {
	// полный маршрут получится "/api/v1/employees"
	employees := c.server.GroupApiV1.Group("/employees")
	employees.Get("/get", c.GetEmployees)
	employees.Get("/detail/:id", c.GetEmployee)
	employees.Post("/create", c.CreateEmployee)
	employees.Put("/update/:id", c.UpdateEmployee)
	employees.Delete("/destroy/:id", c.DestroyEmployee)
}

// GetEmployees
// @Summary      Список сотрудников
// @Tags         employees
// @Produce      json
// @Param        keyword      query  string  false  "подстрока id, имени или email"
// @Param        sortByField  query  string  false  "поле сортировки"
// @Param        valueSort    query  string  false  "asc или desc"
// @Param        page         query  int     false  "номер страницы"  default(1)
// @Param        limit        query  int     false  "размер страницы"  default(10)
// @Success      200  {object}  common.PageResponse[Response]
// @Failure      400  {object}  common.ErrorResponse
// @Router       /api/v1/employees/get [get]
func (c *Controller) GetEmployees(ctx *fiber.Ctx) error {
	var request ListRequest
	if err := ctx.QueryParser(&request); err != nil {
		return common.NewBadRequestError(err.Error())
	}

	page, err := c.employeeService.List(ctx.UserContext(), request)
	if err != nil {
		return err
	}
	return common.PageOkResponse(ctx, "Successfully get data", page.CurrentPage, page.TotalPage, page.TotalData, page.Data)
}

// GetEmployee
// @Summary      Сотрудник по идентификатору
// @Tags         employees
// @Produce      json
// @Param        id   path  string  true  "идентификатор YYMMNNNN"
// @Success      200  {object}  common.Response[Response]
// @Failure      404  {object}  common.ErrorResponse
// @Router       /api/v1/employees/detail/{id} [get]
func (c *Controller) GetEmployee(ctx *fiber.Ctx) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}

	employee, err := c.employeeService.FindById(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return common.OkResponse(ctx, fiber.StatusOK, "Successfully get detail data", employee)
}

// CreateEmployee
// @Summary      Создание сотрудника
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        request  body  CreateRequest  true  "данные сотрудника"
// @Success      201  {object}  common.Response[Response]
// @Failure      400  {object}  common.ErrorResponse
// @Router       /api/v1/employees/create [post]
func (c *Controller) CreateEmployee(ctx *fiber.Ctx) error {
	var request CreateRequest
	if err := parseBody(ctx, &request); err != nil {
		return err
	}
	c.logger.InfoCtx(ctx, "create employee request",
		append(common.ParseRequestBody(ctx.Body()), zap.String("ip", ctx.IP()))...)

	employee, err := c.employeeService.Create(ctx.UserContext(), request)
	if err != nil {
		return err
	}
	return common.OkResponse(ctx, fiber.StatusCreated, "Successfully created data", employee)
}

// UpdateEmployee
// @Summary      Изменение сотрудника
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        id       path  string         true  "идентификатор YYMMNNNN"
// @Param        request  body  UpdateRequest  true  "данные сотрудника"
// @Success      200  {object}  common.Response[Response]
// @Failure      400  {object}  common.ErrorResponse
// @Failure      404  {object}  common.ErrorResponse
// @Router       /api/v1/employees/update/{id} [put]
func (c *Controller) UpdateEmployee(ctx *fiber.Ctx) error {
	// формат идентификатора проверяет сервис после валидации тела
	id := ctx.Params("id")
	var request UpdateRequest
	if err := parseBody(ctx, &request); err != nil {
		return err
	}
	c.logger.InfoCtx(ctx, "update employee request",
		append(common.ParseRequestBody(ctx.Body()), zap.String("id", id), zap.String("ip", ctx.IP()))...)

	employee, err := c.employeeService.Update(ctx.UserContext(), id, request)
	if err != nil {
		return err
	}
	return common.OkResponse(ctx, fiber.StatusOK, "Successfully updated data!", employee)
}

// DestroyEmployee
// @Summary      Удаление сотрудника
// @Tags         employees
// @Produce      json
// @Param        id   path  string  true  "идентификатор YYMMNNNN"
// @Success      200  {object}  common.Response[Response]
// @Failure      404  {object}  common.ErrorResponse
// @Router       /api/v1/employees/destroy/{id} [delete]
func (c *Controller) DestroyEmployee(ctx *fiber.Ctx) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}
	c.logger.InfoCtx(ctx, "destroy employee request", zap.String("id", id), zap.String("ip", ctx.IP()))

	employee, err := c.employeeService.Destroy(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return common.OkResponse(ctx, fiber.StatusOK, "Successfully deleted data!", employee)
}

// идентификатор не из 8 цифр не может существовать в базе
func idParam(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params("id")
	if !IsValidId(id) {
		return "", notFoundError(id)
	}
	return id, nil
}

// пустое тело не разбирается: отсутствующие поля сообщит валидация
func parseBody(ctx *fiber.Ctx, out any) error {
	if len(ctx.Body()) == 0 {
		return nil
	}
	if err := ctx.BodyParser(out); err != nil {
		return common.NewBadRequestError(invalidBodyMessage)
	}
	return nil
}
