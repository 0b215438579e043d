package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"employees/inner/common"
	"employees/inner/validator"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// сколько раз повторяется создание при конфликте выданного идентификатора
	maxCreateAttempts = 5

	emailRegisteredMessage = "Email already registered!"
)

type Service struct {
	repo      Repo
	validator Validator
	logger    *common.Logger
	now       func() time.Time
}

type Repo interface {
	FindMany(ctx context.Context, query ListQuery) ([]Entity, error)
	Count(ctx context.Context, query ListQuery) (int64, error)
	FindById(ctx context.Context, id string) (Entity, error)
	FindByIdTx(ctx context.Context, tx *sqlx.Tx, id string) (Entity, error)
	ExistsByEmailTx(ctx context.Context, tx *sqlx.Tx, email, excludeId string) (bool, error)
	FindLastIdTx(ctx context.Context, tx *sqlx.Tx, prefix string) (string, error)
	AddTx(ctx context.Context, tx *sqlx.Tx, employee *Entity) error
	UpdateTx(ctx context.Context, tx *sqlx.Tx, employee *Entity) error
	DeleteById(ctx context.Context, id string) error
	BeginTransaction(ctx context.Context) (*sqlx.Tx, error)
}

type Validator interface {
	Validate(request any) error
}

// функция-конструктор
func NewService(repo Repo, validator Validator, logger *common.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		logger:    logger,
		now:       time.Now,
	}
}

// List страница сотрудников с фильтром по ключевому слову и сортировкой
func (svc *Service) List(ctx context.Context, request ListRequest) (PageResponse, error) {
	svc.logger.Debug("Finding employees",
		zap.String("keyword", request.Keyword),
		zap.String("sortByField", request.SortByField),
		zap.String("valueSort", request.ValueSort),
		zap.String("page", request.Page),
		zap.String("limit", request.Limit))

	query, err := BuildListQuery(request)
	if err != nil {
		svc.logger.Warn("Invalid list request", zap.Error(err))
		return PageResponse{}, err
	}

	var (
		entities []Entity
		total    int64
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var findErr error
		entities, findErr = svc.repo.FindMany(groupCtx, query)
		if findErr != nil {
			return fmt.Errorf("error finding employees: %w", findErr)
		}
		return nil
	})
	group.Go(func() error {
		var countErr error
		total, countErr = svc.repo.Count(groupCtx, query)
		if countErr != nil {
			return fmt.Errorf("error counting employees: %w", countErr)
		}
		return nil
	})
	if err = group.Wait(); err != nil {
		svc.logger.Error("Failed to find employees", zap.Error(err))
		return PageResponse{}, err
	}

	responses := make([]Response, len(entities))
	for i, entity := range entities {
		responses[i] = entity.toResponse()
	}

	page := PageResponse{
		Data:        responses,
		CurrentPage: query.Page,
		TotalPage:   TotalPage(total, query.Limit),
		TotalData:   total,
	}
	svc.logger.Debug("Found employees",
		zap.Int("currentPage", page.CurrentPage),
		zap.Int("totalPage", page.TotalPage),
		zap.Int64("totalData", page.TotalData),
		zap.Int("dataCount", len(page.Data)))
	return page, nil
}

func (svc *Service) FindById(ctx context.Context, id string) (Response, error) {
	svc.logger.Debug("Finding employee by ID", zap.String("id", id))

	entity, err := svc.repo.FindById(ctx, id)
	if err != nil {
		svc.logger.Warn("Failed to find employee by ID",
			zap.String("id", id),
			zap.Error(err))
		return Response{}, fmt.Errorf("error finding employee with id %s: %w", id, err)
	}

	svc.logger.Debug("Employee found successfully", zap.String("id", id))
	return entity.toResponse(), nil
}

// Create создаёт сотрудника и выдаёт ему идентификатор YYMMNNNN.
// Выдача и вставка идут в одной транзакции, при конфликте идентификатора транзакция повторяется
func (svc *Service) Create(ctx context.Context, request CreateRequest) (Response, error) {
	svc.logger.Info("Creating new employee", zap.String("email", request.Email))

	if err := svc.validateRequest(request); err != nil {
		return Response{}, err
	}
	address, err := NormalizeAddress(request.Address)
	if err != nil {
		svc.logger.Warn("Invalid employee address", zap.String("email", request.Email))
		return Response{}, err
	}

	var entity Entity
	for attempt := 1; attempt <= maxCreateAttempts; attempt++ {
		err = svc.withTransaction(ctx, func(tx *sqlx.Tx) error {
			return svc.createTx(ctx, tx, request, address, &entity)
		})

		var duplicate common.DuplicateKeyError
		if errors.As(err, &duplicate) && duplicate.Field == "id" {
			svc.logger.Warn("Employee id already taken, retrying",
				zap.String("id", entity.Id),
				zap.Int("attempt", attempt))
			continue
		}
		break
	}
	if err != nil {
		svc.logger.Error("Failed to create employee",
			zap.String("email", request.Email),
			zap.Error(err))
		return Response{}, err
	}

	svc.logger.Info("Employee created successfully",
		zap.String("email", request.Email),
		zap.String("id", entity.Id))
	return entity.toResponse(), nil
}

func (svc *Service) createTx(ctx context.Context, tx *sqlx.Tx, request CreateRequest, address string, entity *Entity) error {
	// в рамках транзакции проверяем, что email ещё не занят
	isExist, err := svc.repo.ExistsByEmailTx(ctx, tx, request.Email, "")
	if err != nil {
		return fmt.Errorf("error finding employee by email: %w", err)
	}
	if isExist {
		return common.AlreadyExistsError{Message: emailRegisteredMessage}
	}

	now := svc.now()
	lastId, err := svc.repo.FindLastIdTx(ctx, tx, IdPrefix(now))
	if err != nil {
		return fmt.Errorf("error finding last employee id: %w", err)
	}
	id, err := NextId(now, lastId)
	if err != nil {
		return fmt.Errorf("error allocating employee id: %w", err)
	}

	*entity = request.ToEntity(id, address)
	if err = svc.validator.Validate(entity); err != nil {
		return err
	}
	if err = svc.repo.AddTx(ctx, tx, entity); err != nil {
		return fmt.Errorf("error saving employee %s: %w", id, err)
	}
	return nil
}

func (svc *Service) Update(ctx context.Context, id string, request UpdateRequest) (Response, error) {
	svc.logger.Info("Updating employee", zap.String("id", id))

	if err := svc.validateRequest(request); err != nil {
		return Response{}, err
	}
	address, err := NormalizeAddress(request.Address)
	if err != nil {
		svc.logger.Warn("Invalid employee address", zap.String("id", id))
		return Response{}, err
	}
	// идентификатор не из 8 цифр не может существовать в базе
	if !IsValidId(id) {
		svc.logger.Warn("Malformed employee id", zap.String("id", id))
		return Response{}, notFoundError(id)
	}

	var entity Entity
	err = svc.withTransaction(ctx, func(tx *sqlx.Tx) error {
		isExist, err := svc.repo.ExistsByEmailTx(ctx, tx, request.Email, id)
		if err != nil {
			return fmt.Errorf("error finding employee by email: %w", err)
		}
		if isExist {
			return common.AlreadyExistsError{Message: emailRegisteredMessage}
		}

		entity, err = svc.repo.FindByIdTx(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("error finding employee with id %s: %w", id, err)
		}

		request.apply(&entity, address)
		if err = svc.validator.Validate(&entity); err != nil {
			return err
		}
		if err = svc.repo.UpdateTx(ctx, tx, &entity); err != nil {
			return fmt.Errorf("error updating employee %s: %w", id, err)
		}
		return nil
	})
	if err != nil {
		svc.logger.Error("Failed to update employee",
			zap.String("id", id),
			zap.Error(err))
		return Response{}, err
	}

	svc.logger.Info("Employee updated successfully", zap.String("id", id))
	return entity.toResponse(), nil
}

// Destroy удаляет сотрудника и возвращает удалённую запись
func (svc *Service) Destroy(ctx context.Context, id string) (Response, error) {
	svc.logger.Info("Deleting employee by ID", zap.String("id", id))

	entity, err := svc.repo.FindById(ctx, id)
	if err != nil {
		svc.logger.Warn("Failed to find employee for deletion",
			zap.String("id", id),
			zap.Error(err))
		return Response{}, fmt.Errorf("error finding employee with id %s: %w", id, err)
	}

	if err = svc.repo.DeleteById(ctx, id); err != nil {
		svc.logger.Error("Failed to delete employee by ID",
			zap.String("id", id),
			zap.Error(err))
		return Response{}, fmt.Errorf("error deleting employee with id %s: %w", id, err)
	}

	svc.logger.Info("Employee deleted successfully", zap.String("id", id))
	return entity.toResponse(), nil
}

// withTransaction выполняет fn в транзакции: коммит при успехе, откат при ошибке
func (svc *Service) withTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := svc.repo.BeginTransaction(ctx)
	if err != nil {
		svc.logger.Error("Failed to begin transaction", zap.Error(err))
		return fmt.Errorf("error creating transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				svc.logger.Error("Failed to rollback transaction", zap.Error(rollbackErr))
			}
		} else {
			if commitErr := tx.Commit(); commitErr != nil {
				svc.logger.Error("Failed to commit transaction", zap.Error(commitErr))
				err = fmt.Errorf("error committing transaction: %w", commitErr)
			}
		}
	}()

	return fn(tx)
}

// валидация тела запроса: клиенту уходит одно сообщение
func (svc *Service) validateRequest(request any) error {
	err := svc.validator.Validate(request)
	if err == nil {
		return nil
	}

	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		primary := validationErr.Primary()
		svc.logger.Warn("Employee request validation failed",
			zap.String("field", primary.Field),
			zap.String("message", primary.Message))
		return common.RequestValidationError{
			Message: primary.Message,
			Data:    validationErr.Errors,
		}
	}

	svc.logger.Error("Employee request validation failed", zap.Error(err))
	return common.RequestValidationError{Message: err.Error()}
}
