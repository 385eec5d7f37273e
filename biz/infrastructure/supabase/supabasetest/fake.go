// Package supabasetest 提供内存版的 Database/Auth/Storage, 记录调用次数, 仅供测试使用
package supabasetest

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"taai-api/biz/infrastructure/consts"
	"taai-api/biz/infrastructure/supabase"

	"github.com/google/uuid"
	"github.com/spf13/cast"
)

const BaseURL = "https://project.supabase.co"

type Object struct {
	Data        []byte
	ContentType string
}

type Backend struct {
	mu       sync.Mutex
	calls    int
	tables   map[string][]map[string]any
	unique   map[string][]string
	sessions map[string]*supabase.Session
	objects  map[string]Object
	signOuts []string

	// Err 不为空时所有调用都返回它
	Err error
}

func New() *Backend {
	return &Backend{
		tables:   make(map[string][]map[string]any),
		unique:   make(map[string][]string),
		sessions: make(map[string]*supabase.Session),
		objects:  make(map[string]Object),
	}
}

// Calls 后端被调用的总次数
func (b *Backend) Calls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls
}

func (b *Backend) enter() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls++
	return b.Err
}

// Unique 声明唯一约束
func (b *Backend) Unique(table string, columns ...string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.unique[table] = append(b.unique[table], columns...)
}

// Seed 直接写入行, 不计入调用次数
func (b *Backend) Seed(table string, rows ...any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, r := range rows {
		b.tables[table] = append(b.tables[table], toMap(r))
	}
}

func (b *Backend) Rows(table string) []map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]map[string]any(nil), b.tables[table]...)
}

func (b *Backend) Select(_ context.Context, q *supabase.Query, dest any) error {
	if err := b.enter(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	filters := q.Filters()
	matched := make([]map[string]any, 0)
	for _, row := range b.tables[q.Table] {
		ok := true
		for col, val := range filters {
			if cast.ToString(row[col]) != val {
				ok = false
				break
			}
		}
		if ok {
			matched = append(matched, row)
		}
	}
	if col, asc := q.OrderBy(); col != "" {
		sort.SliceStable(matched, func(i, j int) bool {
			vi, vj := cast.ToFloat64(matched[i][col]), cast.ToFloat64(matched[j][col])
			if asc {
				return vi < vj
			}
			return vi > vj
		})
	}
	return decode(matched, dest)
}

func (b *Backend) Insert(_ context.Context, table string, row any, dest any) error {
	if err := b.enter(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	m := toMap(row)
	for _, col := range b.unique[table] {
		for _, existing := range b.tables[table] {
			if cast.ToString(existing[col]) == cast.ToString(m[col]) {
				return &supabase.APIError{
					Status:  409,
					Message: fmt.Sprintf("duplicate key value violates unique constraint \"%s_%s_key\"", table, col),
				}
			}
		}
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	m[consts.ID] = uuid.NewString()
	m["created_at"] = now
	m["updated_at"] = now
	if table == consts.TableGrades {
		m["graded_at"] = now
	}
	b.tables[table] = append(b.tables[table], m)
	return decode([]map[string]any{m}, dest)
}

// AddSession 注册一个可以换取会话的 ID token
func (b *Backend) AddSession(idToken string, s *supabase.Session) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sessions[idToken] = s
}

func (b *Backend) SignInWithIDToken(_ context.Context, provider, idToken string) (*supabase.Session, error) {
	if err := b.enter(); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	s, ok := b.sessions[idToken]
	if !ok || provider != consts.ProviderGoogle {
		return nil, &supabase.APIError{Status: 400, Message: "Bad ID token"}
	}
	return s, nil
}

func (b *Backend) SignOut(_ context.Context, accessToken string) error {
	if err := b.enter(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.signOuts = append(b.signOuts, accessToken)
	return nil
}

func (b *Backend) SignOuts() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.signOuts...)
}

func (b *Backend) Upload(_ context.Context, bucket, key string, data []byte, contentType string) error {
	if err := b.enter(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.objects[bucket+"/"+key] = Object{Data: append([]byte(nil), data...), ContentType: contentType}
	return nil
}

func (b *Backend) PublicURL(bucket, key string) string {
	return BaseURL + "/storage/v1/object/public/" + bucket + "/" + key
}

func (b *Backend) Object(bucket, key string) (Object, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	o, ok := b.objects[bucket+"/"+key]
	return o, ok
}

func toMap(v any) map[string]any {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	m := make(map[string]any)
	if err = json.Unmarshal(data, &m); err != nil {
		panic(err)
	}
	return m
}

func decode(rows []map[string]any, dest any) error {
	data, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

var (
	_ supabase.Database = (*Backend)(nil)
	_ supabase.Auth     = (*Backend)(nil)
	_ supabase.Storage  = (*Backend)(nil)
)
