package employee

type Entity struct {
	Id        string `db:"id" label:"Id" validate:"required,len=8,numeric"`
	Name      string `db:"name" label:"Name" validate:"required,max=255"`
	Email     string `db:"email" label:"Email" validate:"required,max=255"`
	Mobile    string `db:"mobile" label:"Mobile" validate:"required,max=255"`
	BirthDate string `db:"birth_date" label:"Birth date" validate:"required,max=255"`
	Address   string `db:"address" label:"Address" validate:"required"`
}

func (e *Entity) toResponse() Response {
	return Response{
		Id:        e.Id,
		Name:      e.Name,
		Email:     e.Email,
		Mobile:    e.Mobile,
		BirthDate: e.BirthDate,
		Address:   e.Address,
	}
}

type Response struct {
	Id        string `json:"id" example:"24070001"`
	Name      string `json:"name" example:"John Doe"`
	Email     string `json:"email" example:"john.doe@example.com"`
	Mobile    string `json:"mobile" example:"081234567890"`
	BirthDate string `json:"birthDate" example:"1990-01-31"`
	Address   string `json:"address" example:"Street 1, City"`
} // @name Employee

// CreateRequest тело запроса на создание сотрудника.
// Адрес передаётся строкой с JSON-массивом строк
type CreateRequest struct {
	Name      string `json:"name" form:"name" label:"Name" validate:"required"`
	Email     string `json:"email" form:"email" label:"Email" validate:"required,employee_email"`
	Mobile    string `json:"mobile" form:"mobile" label:"Mobile" validate:"required"`
	BirthDate string `json:"birthDate" form:"birthDate" label:"Birth date" validate:"required"`
	Address   string `json:"address" form:"address" label:"Address" validate:"required" example:"[\"Street 1\",\"City\"]"`
} // @name CreateEmployeeRequest

func (req *CreateRequest) ToEntity(id, address string) Entity {
	return Entity{
		Id:        id,
		Name:      req.Name,
		Email:     req.Email,
		Mobile:    req.Mobile,
		BirthDate: req.BirthDate,
		Address:   address,
	}
}

// UpdateRequest тело запроса на изменение, поля те же, что и при создании
type UpdateRequest CreateRequest // @name UpdateEmployeeRequest

func (req *UpdateRequest) apply(entity *Entity, address string) {
	entity.Name = req.Name
	entity.Email = req.Email
	entity.Mobile = req.Mobile
	entity.BirthDate = req.BirthDate
	entity.Address = address
}

// ListRequest параметры запроса списка в том виде, в каком они пришли в query
type ListRequest struct {
	Keyword     string `query:"keyword"`
	SortByField string `query:"sortByField"`
	ValueSort   string `query:"valueSort"`
	Page        string `query:"page"`
	Limit       string `query:"limit"`
}

// PageResponse страница сотрудников с метаданными пагинации
type PageResponse struct {
	Data        []Response
	CurrentPage int
	TotalPage   int
	TotalData   int64
}
