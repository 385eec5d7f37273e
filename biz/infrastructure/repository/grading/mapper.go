package grading

import (
	"context"
	"encoding/json"
	"errors"
	"sort"

	"taai-api/biz/infrastructure/consts"
	"taai-api/biz/infrastructure/supabase"

	"github.com/google/wire"
)

type ICriterionMapper interface {
	FindByAssignmentID(ctx context.Context, assignmentID string) ([]*Criterion, error)
	Insert(ctx context.Context, c *NewCriterion) (*Criterion, error)
}

type IGradeMapper interface {
	FindBySubmissionID(ctx context.Context, submissionID string) (*Grade, error)
	Insert(ctx context.Context, g *NewGrade) (*Grade, error)
}

type CriterionMapper struct {
	db supabase.Database
}

type GradeMapper struct {
	db supabase.Database
}

var MapperSet = wire.NewSet(
	NewCriterionMapper,
	NewGradeMapper,
	wire.Bind(new(ICriterionMapper), new(*CriterionMapper)),
	wire.Bind(new(IGradeMapper), new(*GradeMapper)),
)

func NewCriterionMapper(db supabase.Database) *CriterionMapper {
	return &CriterionMapper{db: db}
}

func NewGradeMapper(db supabase.Database) *GradeMapper {
	return &GradeMapper{db: db}
}

// FindByAssignmentID 按 order_index 升序返回, 后端已排序, 这里再做一次稳定排序兜底
func (m *CriterionMapper) FindByAssignmentID(ctx context.Context, assignmentID string) ([]*Criterion, error) {
	var raws []json.RawMessage
	q := supabase.From(consts.TableGradingCriteria).
		Eq(consts.AssignmentID, assignmentID).
		Order(consts.OrderIndex, true)
	if err := m.db.Select(ctx, q, &raws); err != nil {
		return nil, err
	}
	rows, err := supabase.DecodeAll[Criterion](consts.TableGradingCriteria, raws)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].OrderIndex < rows[j].OrderIndex
	})
	return rows, nil
}

func (m *CriterionMapper) Insert(ctx context.Context, c *NewCriterion) (*Criterion, error) {
	var raws []json.RawMessage
	if err := m.db.Insert(ctx, consts.TableGradingCriteria, c, &raws); err != nil {
		return nil, err
	}
	raw, err := supabase.First(consts.TableGradingCriteria, raws)
	if err != nil {
		return nil, err
	}
	return supabase.Decode[Criterion](consts.TableGradingCriteria, raw)
}

func (m *GradeMapper) FindBySubmissionID(ctx context.Context, submissionID string) (*Grade, error) {
	var raws []json.RawMessage
	q := supabase.From(consts.TableGrades).Eq(consts.SubmissionID, submissionID)
	if err := m.db.Select(ctx, q, &raws); err != nil {
		return nil, err
	}
	raw, err := supabase.MaybeSingle(raws)
	switch {
	case errors.Is(err, supabase.ErrNoRows):
		return nil, consts.ErrNotFound
	case err != nil:
		return nil, err
	}
	return supabase.Decode[Grade](consts.TableGrades, raw)
}

func (m *GradeMapper) Insert(ctx context.Context, g *NewGrade) (*Grade, error) {
	var raws []json.RawMessage
	if err := m.db.Insert(ctx, consts.TableGrades, g, &raws); err != nil {
		return nil, err
	}
	raw, err := supabase.First(consts.TableGrades, raws)
	if err != nil {
		return nil, err
	}
	return supabase.Decode[Grade](consts.TableGrades, raw)
}
