package domain

// Employee представляет сотрудника; первичный ключ составной (employeeId, employeeName)
type Employee struct {
	EmployeeID    string `json:"employeeId" gorm:"column:employee_id;primaryKey;type:varchar(50)"`
	EmployeeName  string `json:"employeeName" gorm:"column:employee_name;primaryKey;type:varchar(100)"`
	EmployeePwd   string `json:"employeePwd" gorm:"column:employee_pwd;type:varchar(100)"`
	PhoneNum      string `json:"phoneNum" gorm:"column:phone_num;type:varchar(30)"`
	EmployeeType  string `json:"employeeType" gorm:"column:employee_type;type:varchar(30)"`
	Address       string `json:"address" gorm:"column:address;type:varchar(200)"`
	WorkPlaceName string `json:"workPlaceName" gorm:"column:work_place_name;type:varchar(100)"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return "employee_md"
}

// EmployeeKey - составной ключ сотрудника
type EmployeeKey struct {
	EmployeeID   string
	EmployeeName string
}

// Key возвращает составной ключ записи
func (e Employee) Key() EmployeeKey {
	return EmployeeKey{EmployeeID: e.EmployeeID, EmployeeName: e.EmployeeName}
}

// Equal сравнивает записи по всем полям, не только по ключу
func (e Employee) Equal(other Employee) bool {
	return e == other
}

// WorkPlace представляет рабочую точку; ключ - её имя
type WorkPlace struct {
	WorkPlaceName string  `json:"workPlaceName" gorm:"column:work_place_name;primaryKey;type:varchar(100)"`
	Latitude      float64 `json:"latitude" gorm:"column:latitude"`
	Longitude     float64 `json:"longitude" gorm:"column:longitude"`
}

// TableName задаёт имя таблицы для GORM
func (WorkPlace) TableName() string {
	return "work_place"
}

// Equal сравнивает записи по всем полям
func (w WorkPlace) Equal(other WorkPlace) bool {
	return w == other
}

// Goods представляет товар каталога; ключ составной (barcode, goodsName),
// поэтому один штрихкод может существовать под несколькими именами
type Goods struct {
	Barcode   string `json:"barcode" gorm:"column:barcode;primaryKey;type:varchar(50)"`
	GoodsName string `json:"goodsName" gorm:"column:goods_name;primaryKey;type:varchar(200)"`
}

// TableName задаёт имя таблицы для GORM
func (Goods) TableName() string {
	return "goods"
}

// GoodsKey - составной ключ товара
type GoodsKey struct {
	Barcode   string
	GoodsName string
}

// Key возвращает составной ключ записи
func (g Goods) Key() GoodsKey {
	return GoodsKey{Barcode: g.Barcode, GoodsName: g.GoodsName}
}

// Equal сравнивает записи по всем полям
func (g Goods) Equal(other Goods) bool {
	return g == other
}

// Commute представляет явку сотрудника; одна запись на сотрудника в день,
// ключ составной (commuteDay, employeeId)
type Commute struct {
	CommuteDay    Date       `json:"commuteDay" gorm:"column:commute_day;primaryKey"`
	EmployeeID    string     `json:"employeeId" gorm:"column:employee_id;primaryKey;type:varchar(50)"`
	EmployeeName  string     `json:"employeeName" gorm:"column:employee_name;type:varchar(100)"`
	StartTime     *TimeOfDay `json:"startTime" gorm:"column:start_time"`
	EndTime       *TimeOfDay `json:"endTime" gorm:"column:end_time"`
	WorkPlaceName string     `json:"workPlaceName" gorm:"column:work_place_name;type:varchar(100)"`
}

// TableName задаёт имя таблицы для GORM
func (Commute) TableName() string {
	return "commute"
}

// CommuteKey - составной ключ явки
type CommuteKey struct {
	CommuteDay Date
	EmployeeID string
}

// Equal сравнивает ключи по значению; нулевые компоненты допустимы
func (k CommuteKey) Equal(other CommuteKey) bool {
	return k.CommuteDay.Equal(other.CommuteDay) && k.EmployeeID == other.EmployeeID
}

// Key возвращает составной ключ записи
func (c Commute) Key() CommuteKey {
	return CommuteKey{CommuteDay: c.CommuteDay, EmployeeID: c.EmployeeID}
}

// Equal сравнивает записи по всем полям, не только по ключу
func (c Commute) Equal(other Commute) bool {
	return c.CommuteDay.Equal(other.CommuteDay) &&
		c.EmployeeID == other.EmployeeID &&
		c.EmployeeName == other.EmployeeName &&
		timePtrEqual(c.StartTime, other.StartTime) &&
		timePtrEqual(c.EndTime, other.EndTime) &&
		c.WorkPlaceName == other.WorkPlaceName
}

// Ordering представляет заявку на товар; ключ составной
// (orderingDay, employeeId, barcode) - один товар на сотрудника в день
type Ordering struct {
	OrderingDay  Date   `json:"orderingDay" gorm:"column:ordering_day;primaryKey"`
	EmployeeID   string `json:"employeeId" gorm:"column:employee_id;primaryKey;type:varchar(50)"`
	Barcode      string `json:"barcode" gorm:"column:barcode;primaryKey;type:varchar(50)"`
	EmployeeName string `json:"employeeName" gorm:"column:employee_name;type:varchar(100)"`
	BoxNum       int    `json:"boxNum" gorm:"column:box_num"`
	GoodsName    string `json:"goodsName" gorm:"column:goods_name;type:varchar(200)"`
}

// TableName задаёт имя таблицы для GORM
func (Ordering) TableName() string {
	return "ordering"
}

// OrderingKey - составной ключ заявки
type OrderingKey struct {
	OrderingDay Date
	EmployeeID  string
	Barcode     string
}

// Equal сравнивает ключи по значению; нулевые компоненты допустимы
func (k OrderingKey) Equal(other OrderingKey) bool {
	return k.OrderingDay.Equal(other.OrderingDay) &&
		k.EmployeeID == other.EmployeeID &&
		k.Barcode == other.Barcode
}

// Key возвращает составной ключ записи
func (o Ordering) Key() OrderingKey {
	return OrderingKey{OrderingDay: o.OrderingDay, EmployeeID: o.EmployeeID, Barcode: o.Barcode}
}

// Equal сравнивает записи по всем полям, не только по ключу
func (o Ordering) Equal(other Ordering) bool {
	return o.OrderingDay.Equal(other.OrderingDay) &&
		o.EmployeeID == other.EmployeeID &&
		o.Barcode == other.Barcode &&
		o.EmployeeName == other.EmployeeName &&
		o.BoxNum == other.BoxNum &&
		o.GoodsName == other.GoodsName
}

func timePtrEqual(a, b *TimeOfDay) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
