package taai

import (
	"fmt"

	"github.com/samber/lo"
)

// required 按顺序返回第一个缺失字段的错误, 参数为 name, value 交替
func required(fields ...any) error {
	for i := 0; i+1 < len(fields); i += 2 {
		if lo.IsNil(fields[i+1]) {
			return fmt.Errorf("%v is required", fields[i])
		}
	}
	return nil
}
