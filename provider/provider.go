package provider

import (
	"taai-api/biz/application/service"
	"taai-api/biz/infrastructure/config"
	"taai-api/biz/infrastructure/repository/assignment"
	"taai-api/biz/infrastructure/repository/classroom"
	"taai-api/biz/infrastructure/repository/grading"
	"taai-api/biz/infrastructure/supabase"

	"github.com/google/wire"
)

// Provider 提供controller依赖的对象
type Provider struct {
	Config            *config.Config
	AuthService       service.IAuthService
	ClassroomService  service.IClassroomService
	AssignmentService service.IAssignmentService
	GradingService    service.IGradingService
	FileService       service.IFileService
}

var ApplicationSet = wire.NewSet(
	service.AuthServiceSet,
	service.ClassroomServiceSet,
	service.AssignmentServiceSet,
	service.GradingServiceSet,
	service.FileServiceSet,
)

var InfrastructureSet = wire.NewSet(
	config.NewConfig,
	supabase.ProviderSet,
	classroom.MapperSet,
	assignment.MapperSet,
	grading.MapperSet,
)

var AllProvider = wire.NewSet(
	ApplicationSet,
	InfrastructureSet,
)
