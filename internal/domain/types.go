package domain

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date - календарная дата без времени суток (YYYY-MM-DD в JSON и БД)
type Date struct {
	t time.Time
}

// NewDate создаёт дату из года, месяца и дня
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf усекает момент времени до календарной даты
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return NewDate(year, month, day)
}

// Today возвращает текущую дату сервера
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate разбирает строку формата YYYY-MM-DD
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

// IsZero сообщает, что дата не задана (аналог null)
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Equal сравнивает даты по значению
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// Before сообщает, что d раньше other
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// AddDays возвращает дату, сдвинутую на days дней
func (d Date) AddDays(days int) Date {
	return DateOf(d.t.AddDate(0, 0, days))
}

func (d Date) String() string {
	return d.t.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		*d = Date{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %s", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value реализует driver.Valuer для сохранения в БД
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.t, nil
}

// Scan реализует sql.Scanner; принимает time.Time и строковые представления
func (d *Date) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Date", value)
	}
}

func (d *Date) scanString(s string) error {
	for _, layout := range []string{dateLayout, time.RFC3339, "2006-01-02 15:04:05-07:00", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			*d = DateOf(t)
			return nil
		}
	}
	return fmt.Errorf("cannot scan %q into Date", s)
}

// GormDataType задаёт тип колонки для GORM
func (Date) GormDataType() string {
	return "date"
}

// TimeOfDay - время суток без даты (HH:MM:SS в JSON и БД, на входе допустим HH:MM)
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// ParseTimeOfDay разбирает строку формата HH:MM или HH:MM:SS
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	layout := "15:04:05"
	if len(s) == 5 {
		layout = "15:04"
	}
	parsed, err := time.Parse(layout, s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time %q", s)
	}
	return TimeOfDay{Hour: parsed.Hour(), Minute: parsed.Minute(), Second: parsed.Second()}, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		*t = TimeOfDay{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid time %s", s)
	}
	parsed, err := ParseTimeOfDay(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value реализует driver.Valuer; текстовое HH:MM:SS принимается и postgres, и sqlite
func (t TimeOfDay) Value() (driver.Value, error) {
	return t.String(), nil
}

// Scan реализует sql.Scanner
func (t *TimeOfDay) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*t = TimeOfDay{}
		return nil
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	case time.Time:
		t.Hour, t.Minute, t.Second = v.Hour(), v.Minute(), v.Second()
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeOfDay", value)
	}
}

func (t *TimeOfDay) scanString(s string) error {
	if len(s) > 8 {
		s = s[:8]
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// GormDataType задаёт тип колонки для GORM
func (TimeOfDay) GormDataType() string {
	return "time"
}
