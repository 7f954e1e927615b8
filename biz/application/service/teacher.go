package service

import (
	"context"
	"errors"

	"school-leave/biz/application/dto/school"
	"school-leave/biz/infrastructure/consts"
	"school-leave/biz/infrastructure/repository/class"
	"school-leave/biz/infrastructure/repository/user"
	"school-leave/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/samber/lo"
	"golang.org/x/crypto/bcrypt"
)

type ITeacherService interface {
	ListTeachers(ctx context.Context, req *school.ListTeachersReq) (*school.ListTeachersResp, error)
	CreateTeacher(ctx context.Context, req *school.CreateTeacherReq) (*school.CreateTeacherResp, error)
	DeleteTeacher(ctx context.Context, req *school.DeleteTeacherReq) (*school.Response, error)
}

type TeacherService struct {
	UserMapper  user.Mapper
	ClassMapper class.Mapper
}

var TeacherServiceSet = wire.NewSet(
	wire.Struct(new(TeacherService), "*"),
	wire.Bind(new(ITeacherService), new(*TeacherService)),
)

// ListTeachers 列出全部教师账号，凭据不出库
func (s *TeacherService) ListTeachers(ctx context.Context, req *school.ListTeachersReq) (*school.ListTeachersResp, error) {
	caller, err := resolveCaller(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}
	if err := requireModerator(caller); err != nil {
		return nil, err
	}

	teachers, err := s.UserMapper.FindManyByRole(ctx, consts.RoleTeacher)
	if err != nil {
		log.Error("获取教师列表失败: %v", err)
		return nil, consts.ErrUpdate
	}
	return &school.ListTeachersResp{
		Teachers: lo.Map(teachers, func(t *user.User, _ int) *school.TeacherInfo {
			return teacherInfo(t)
		}),
	}, nil
}

// CreateTeacher 创建教师账号，邮箱全局唯一
func (s *TeacherService) CreateTeacher(ctx context.Context, req *school.CreateTeacherReq) (*school.CreateTeacherResp, error) {
	caller, err := resolveCaller(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}
	if err := requireModerator(caller); err != nil {
		return nil, err
	}

	existing, err := s.UserMapper.FindOneByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, consts.ErrNotFound) {
		return nil, consts.ErrInsert
	}
	if existing != nil {
		return nil, consts.ErrEmailInUse
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("密码哈希失败: %v", err)
		return nil, consts.ErrInsert
	}

	t := &user.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Role:     consts.RoleTeacher,
	}
	if err := s.UserMapper.Insert(ctx, t); err != nil {
		log.Error("创建教师失败: %v", err)
		return nil, consts.ErrInsert
	}
	return &school.CreateTeacherResp{Teacher: teacherInfo(t)}, nil
}

// DeleteTeacher 删除教师账号，并清除其任教班级的教师引用
func (s *TeacherService) DeleteTeacher(ctx context.Context, req *school.DeleteTeacherReq) (*school.Response, error) {
	caller, err := resolveCaller(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}
	if err := requireModerator(caller); err != nil {
		return nil, err
	}

	t, err := s.UserMapper.FindOne(ctx, req.Id)
	if err != nil || t.Role != consts.RoleTeacher {
		return nil, consts.ErrTeacherNotFound
	}
	if err := s.UserMapper.Delete(ctx, req.Id); err != nil {
		log.Error("删除教师失败: %v", err)
		return nil, consts.ErrDelete
	}
	if err := s.ClassMapper.ClearTeacherByTeacher(ctx, req.Id); err != nil {
		log.Error("清除班级教师引用失败: %v", err)
		return nil, consts.ErrDelete
	}
	return &school.Response{Message: "Teacher deleted"}, nil
}

func teacherInfo(t *user.User) *school.TeacherInfo {
	return &school.TeacherInfo{
		Id:              t.ID.Hex(),
		Name:            t.Name,
		Email:           t.Email,
		AssignedClassId: t.AssignedClassID,
		CreateTime:      t.CreateTime.Unix(),
	}
}
