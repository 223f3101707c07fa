package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// JSONB 用于PostgreSQL JSONB类型
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			bytes = []byte(s)
		} else {
			return nil
		}
	}
	return json.Unmarshal(bytes, j)
}

// StringArray 字符串数组，存储为JSONB
type StringArray []string

func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	b, err := json.Marshal(a)
	return string(b), err
}

func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			bytes = []byte(s)
		} else {
			return nil
		}
	}
	return json.Unmarshal(bytes, a)
}

// Date 仅日期类型，JSON序列化为 YYYY-MM-DD
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

// NewDate 创建日期
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate 解析 YYYY-MM-DD 格式日期
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(fmt.Sprintf("%q", d.Format(dateLayout))), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		*d = Date{}
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	t, err := time.Parse(dateLayout, str)
	if err != nil {
		return err
	}
	*d = Date{Time: t}
	return nil
}

func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time, nil
}

func (d *Date) Scan(value interface{}) error {
	if value == nil {
		*d = Date{}
		return nil
	}
	switch v := value.(type) {
	case time.Time:
		*d = Date{Time: v}
	case []byte:
		t, err := time.Parse(dateLayout, string(v)[:10])
		if err != nil {
			return err
		}
		*d = Date{Time: t}
	case string:
		if len(v) < 10 {
			return fmt.Errorf("invalid date value: %q", v)
		}
		t, err := time.Parse(dateLayout, v[:10])
		if err != nil {
			return err
		}
		*d = Date{Time: t}
	default:
		return fmt.Errorf("unsupported date type %T", value)
	}
	return nil
}
