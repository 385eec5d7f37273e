package service

import "github.com/jinzhu/copier"

// project 将仓储记录转换为响应结构
func project[D any](src any) (*D, error) {
	dst := new(D)
	if err := copier.Copy(dst, src); err != nil {
		return nil, err
	}
	return dst, nil
}

// projectAll 结果为空时返回空切片而非 nil
func projectAll[D, S any](rows []S) ([]*D, error) {
	out := make([]*D, 0, len(rows))
	for _, r := range rows {
		d, err := project[D](r)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
