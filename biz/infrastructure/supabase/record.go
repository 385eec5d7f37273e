package supabase

import (
	"encoding/json"
	"fmt"
)

// Record 后端返回的行在越过边界时做字段校验, 尽早发现表结构漂移
type Record interface {
	// Required 必须出现且不为 null 的列, 空字符串是合法值
	Required() []string
}

type record[T any] interface {
	*T
	Record
}

// Decode 先检查必填列, 再解码成具体类型
func Decode[T any, P record[T]](table string, raw json.RawMessage) (*T, error) {
	var columns map[string]json.RawMessage
	if err := json.Unmarshal(raw, &columns); err != nil {
		return nil, fmt.Errorf("%s: decode row: %w", table, err)
	}
	row := P(new(T))
	for _, name := range row.Required() {
		if v, ok := columns[name]; !ok || string(v) == "null" {
			return nil, fmt.Errorf("%s: missing required field %q", table, name)
		}
	}
	if err := json.Unmarshal(raw, row); err != nil {
		return nil, fmt.Errorf("%s: decode row: %w", table, err)
	}
	return (*T)(row), nil
}

func DecodeAll[T any, P record[T]](table string, raws []json.RawMessage) ([]*T, error) {
	rows := make([]*T, 0, len(raws))
	for _, raw := range raws {
		row, err := Decode[T, P](table, raw)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Require 按 name, value 成对传入, 返回第一个为空的字段
func Require(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			return fmt.Errorf("missing required field %q", pairs[i])
		}
	}
	return nil
}

// MaybeSingle 0 行返回 ErrNoRows, 多行返回 ErrMultipleRows
func MaybeSingle[T any](rows []T) (T, error) {
	var zero T
	switch len(rows) {
	case 0:
		return zero, ErrNoRows
	case 1:
		return rows[0], nil
	default:
		return zero, ErrMultipleRows
	}
}

// First insert 返回的第一行
func First[T any](table string, rows []T) (T, error) {
	var zero T
	if len(rows) == 0 {
		return zero, fmt.Errorf("%s: insert returned no rows", table)
	}
	return rows[0], nil
}
