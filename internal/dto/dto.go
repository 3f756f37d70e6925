package dto

// LoginRequest - запрос на вход по паролю
type LoginRequest struct {
	EmployeeID string `json:"employeeId" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// CreateEmployeeRequest - запрос на регистрацию сотрудника
type CreateEmployeeRequest struct {
	EmployeeID    string `json:"employeeId" validate:"required,max=50"`
	EmployeeName  string `json:"employeeName" validate:"required,max=100"`
	EmployeePwd   string `json:"employeePwd" validate:"required"`
	PhoneNum      string `json:"phoneNum" validate:"max=30"`
	EmployeeType  string `json:"employeeType" validate:"max=30"`
	Address       string `json:"address" validate:"max=200"`
	WorkPlaceName string `json:"workPlaceName" validate:"max=100"`
}

// UpdateEmployeeRequest - запрос на обновление профиля; ключевые поля
// (employeeId, employeeName) не изменяются, пароль перехешируется только
// если передан непустым
type UpdateEmployeeRequest struct {
	EmployeeName  string `json:"employeeName" validate:"max=100"`
	EmployeePwd   string `json:"employeePwd"`
	PhoneNum      string `json:"phoneNum" validate:"max=30"`
	EmployeeType  string `json:"employeeType" validate:"max=30"`
	Address       string `json:"address" validate:"max=200"`
	WorkPlaceName string `json:"workPlaceName" validate:"max=100"`
}

// ClockInRequest - запрос на отметку прихода
type ClockInRequest struct {
	EmployeeID    string `json:"employeeId" validate:"required,max=50"`
	EmployeeName  string `json:"employeeName" validate:"required,max=100"`
	WorkPlaceName string `json:"workPlaceName" validate:"max=100"`
	CommuteDay    string `json:"commuteDay" validate:"required,datetime=2006-01-02"`
	StartTime     string `json:"startTime" validate:"required"`
}

// ClockOutRequest - запрос на отметку ухода; день всегда текущая дата сервера
type ClockOutRequest struct {
	EmployeeID string `json:"employeeId" validate:"required,max=50"`
	EndTime    string `json:"endTime" validate:"required"`
}

// CreateGoodsRequest - запрос на создание товара
type CreateGoodsRequest struct {
	Barcode   string `json:"barcode" validate:"required,max=50"`
	GoodsName string `json:"goodsName" validate:"required,max=200"`
}

// UpdateGoodsRequest - запрос на переименование товара по штрихкоду
type UpdateGoodsRequest struct {
	GoodsName string `json:"goodsName" validate:"required,max=200"`
}

// CreateOrderRequest - запрос на заявку; дата заявки назначается сервером
// и от клиента не принимается
type CreateOrderRequest struct {
	EmployeeID   string `json:"employeeId" validate:"required,max=50"`
	EmployeeName string `json:"employeeName" validate:"required,max=100"`
	Barcode      string `json:"barcode" validate:"required,max=50"`
	BoxNum       int    `json:"boxNum"`
	GoodsName    string `json:"goodsName" validate:"max=200"`
}

// SaveWorkPlaceRequest - запрос на создание либо перезапись рабочей точки
type SaveWorkPlaceRequest struct {
	WorkPlaceName string  `json:"workPlaceName" validate:"required,max=100"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
}

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
