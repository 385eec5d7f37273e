package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"taai-api/biz/infrastructure/consts"
)

// Database 关系存储的最小接口, dest 必须是指向切片的指针
type Database interface {
	Select(ctx context.Context, q *Query, dest any) error
	Insert(ctx context.Context, table string, row any, dest any) error
}

type condition struct {
	column string
	value  string
}

// Query 单表查询: 等值过滤 + 可选排序
type Query struct {
	Table     string
	filters   []condition
	orderBy   string
	ascending bool
}

func From(table string) *Query {
	return &Query{Table: table}
}

func (q *Query) Eq(column, value string) *Query {
	q.filters = append(q.filters, condition{column: column, value: value})
	return q
}

func (q *Query) Order(column string, ascending bool) *Query {
	q.orderBy = column
	q.ascending = ascending
	return q
}

// Filters 返回过滤条件 column -> value, 供内存实现使用
func (q *Query) Filters() map[string]string {
	m := make(map[string]string, len(q.filters))
	for _, f := range q.filters {
		m[f.column] = f.value
	}
	return m
}

func (q *Query) OrderBy() (string, bool) {
	return q.orderBy, q.ascending
}

// Encode PostgREST 查询串
func (q *Query) Encode() string {
	v := url.Values{}
	v.Set("select", "*")
	for _, f := range q.filters {
		v.Add(f.column, "eq."+f.value)
	}
	if q.orderBy != "" {
		dir := "desc"
		if q.ascending {
			dir = "asc"
		}
		v.Set("order", q.orderBy+"."+dir)
	}
	return v.Encode()
}

func (c *Client) Select(ctx context.Context, q *Query, dest any) error {
	body, err := c.do(ctx, &request{
		method: http.MethodGet,
		uri:    c.url(restPath, url.PathEscape(q.Table), "?", q.Encode()),
		header: map[string]string{"Accept": consts.ContentTypeJson},
	})
	if err != nil {
		return err
	}
	return decodeRows(q.Table, body, dest)
}

func (c *Client) Insert(ctx context.Context, table string, row any, dest any) error {
	payload, err := json.Marshal(row)
	if err != nil {
		return err
	}
	body, err := c.do(ctx, &request{
		method:      http.MethodPost,
		uri:         c.url(restPath, url.PathEscape(table)),
		header:      map[string]string{"Prefer": "return=representation"},
		contentType: consts.ContentTypeJson,
		body:        payload,
	})
	if err != nil {
		return err
	}
	return decodeRows(table, body, dest)
}

func decodeRows(table string, body []byte, dest any) error {
	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("decode %s rows: %w", table, err)
	}
	return nil
}
