package assignment

import (
	"context"
	"encoding/json"
	"errors"

	"taai-api/biz/infrastructure/consts"
	"taai-api/biz/infrastructure/supabase"

	"github.com/google/wire"
)

type IMapper interface {
	FindByClassroomID(ctx context.Context, classroomID string) ([]*Assignment, error)
	FindOne(ctx context.Context, id string) (*Assignment, error)
	Insert(ctx context.Context, a *NewAssignment) (*Assignment, error)
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

func (m *Mapper) FindByClassroomID(ctx context.Context, classroomID string) ([]*Assignment, error) {
	var raws []json.RawMessage
	q := supabase.From(consts.TableAssignments).Eq(consts.ClassroomID, classroomID)
	if err := m.db.Select(ctx, q, &raws); err != nil {
		return nil, err
	}
	return supabase.DecodeAll[Assignment](consts.TableAssignments, raws)
}

func (m *Mapper) FindOne(ctx context.Context, id string) (*Assignment, error) {
	var raws []json.RawMessage
	if err := m.db.Select(ctx, supabase.From(consts.TableAssignments).Eq(consts.ID, id), &raws); err != nil {
		return nil, err
	}
	raw, err := supabase.MaybeSingle(raws)
	switch {
	case errors.Is(err, supabase.ErrNoRows):
		return nil, consts.ErrNotFound
	case err != nil:
		return nil, err
	}
	return supabase.Decode[Assignment](consts.TableAssignments, raw)
}

func (m *Mapper) Insert(ctx context.Context, a *NewAssignment) (*Assignment, error) {
	var raws []json.RawMessage
	if err := m.db.Insert(ctx, consts.TableAssignments, a, &raws); err != nil {
		return nil, err
	}
	raw, err := supabase.First(consts.TableAssignments, raws)
	if err != nil {
		return nil, err
	}
	return supabase.Decode[Assignment](consts.TableAssignments, raw)
}
