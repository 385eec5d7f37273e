package classroom

import (
	"context"
	"encoding/json"
	"errors"

	"taai-api/biz/infrastructure/consts"
	"taai-api/biz/infrastructure/supabase"

	"github.com/google/wire"
)

type IMapper interface {
	FindAll(ctx context.Context) ([]*Classroom, error)
	FindOne(ctx context.Context, id string) (*Classroom, error)
}

type Mapper struct {
	db supabase.Database
}

var MapperSet = wire.NewSet(
	NewMapper,
	wire.Bind(new(IMapper), new(*Mapper)),
)

func NewMapper(db supabase.Database) *Mapper {
	return &Mapper{db: db}
}

// FindAll 返回调用方可见的全部课程, 可见范围由后端行级策略决定
func (m *Mapper) FindAll(ctx context.Context) ([]*Classroom, error) {
	var raws []json.RawMessage
	if err := m.db.Select(ctx, supabase.From(consts.TableClassrooms), &raws); err != nil {
		return nil, err
	}
	return supabase.DecodeAll[Classroom](consts.TableClassrooms, raws)
}

func (m *Mapper) FindOne(ctx context.Context, id string) (*Classroom, error) {
	var raws []json.RawMessage
	if err := m.db.Select(ctx, supabase.From(consts.TableClassrooms).Eq(consts.ID, id), &raws); err != nil {
		return nil, err
	}
	raw, err := supabase.MaybeSingle(raws)
	switch {
	case errors.Is(err, supabase.ErrNoRows):
		return nil, consts.ErrNotFound
	case err != nil:
		return nil, err
	}
	return supabase.Decode[Classroom](consts.TableClassrooms, raw)
}
