package provider

import (
	"school-leave/biz/application/service"
	"school-leave/biz/infrastructure/config"
	"school-leave/biz/infrastructure/repository/class"
	"school-leave/biz/infrastructure/repository/message"
	"school-leave/biz/infrastructure/repository/student"
	"school-leave/biz/infrastructure/repository/user"

	"github.com/google/wire"
)

var provider *Provider

func Init() {
	var err error
	provider, err = NewProvider()
	if err != nil {
		panic(err)
	}
}

// Provider 提供controller依赖的对象
type Provider struct {
	Config         *config.Config
	AuthService    service.IAuthService
	ClassService   service.IClassService
	StudentService service.IStudentService
	TeacherService service.ITeacherService
	MessageService service.IMessageService
	SeedService    service.ISeedService
}

func Get() *Provider {
	return provider
}

var ApplicationSet = wire.NewSet(
	service.AuthServiceSet,
	service.ClassServiceSet,
	service.StudentServiceSet,
	service.TeacherServiceSet,
	service.MessageServiceSet,
	service.SeedServiceSet,
)

var InfrastructureSet = wire.NewSet(
	config.NewConfig,
	user.NewMongoMapper,
	wire.Bind(new(user.Mapper), new(*user.MongoMapper)),
	class.NewMongoMapper,
	wire.Bind(new(class.Mapper), new(*class.MongoMapper)),
	student.NewMongoMapper,
	wire.Bind(new(student.Mapper), new(*student.MongoMapper)),
	message.NewMongoMapper,
	wire.Bind(new(message.Mapper), new(*message.MongoMapper)),
)

var AllProvider = wire.NewSet(
	ApplicationSet,
	InfrastructureSet,
)
