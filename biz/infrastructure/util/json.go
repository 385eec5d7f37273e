package util

import (
	"encoding/json"
	"fmt"
)

// JSONF 将对象序列化为json字符串, 仅用于日志
func JSONF(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(data)
}
