package service

import (
	"context"
	"errors"

	"school-leave/biz/application/dto/school"
	"school-leave/biz/infrastructure/consts"
	"school-leave/biz/infrastructure/repository/class"
	"school-leave/biz/infrastructure/repository/student"
	"school-leave/biz/infrastructure/repository/user"
	"school-leave/biz/infrastructure/util/log"

	"github.com/google/wire"
)

type IClassService interface {
	ListClasses(ctx context.Context, req *school.ListClassesReq) (*school.ListClassesResp, error)
	CreateClass(ctx context.Context, req *school.CreateClassReq) (*school.CreateClassResp, error)
	DeleteClass(ctx context.Context, req *school.DeleteClassReq) (*school.Response, error)
	AssignTeacher(ctx context.Context, req *school.AssignTeacherReq) (*school.AssignTeacherResp, error)
	AddStudent(ctx context.Context, req *school.AddStudentReq) (*school.AddStudentResp, error)
	RemoveStudent(ctx context.Context, req *school.RemoveStudentReq) (*school.RemoveStudentResp, error)
}

type ClassService struct {
	ClassMapper   class.Mapper
	StudentMapper student.Mapper
	UserMapper    user.Mapper
}

var ClassServiceSet = wire.NewSet(
	wire.Struct(new(ClassService), "*"),
	wire.Bind(new(IClassService), new(*ClassService)),
)

// ListClasses 管理员看全部班级，教师只看自己任教的班级
func (s *ClassService) ListClasses(ctx context.Context, req *school.ListClassesReq) (*school.ListClassesResp, error) {
	caller, err := resolveCaller(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}

	var classes []*class.Class
	if caller.Role == consts.RoleModerator {
		classes, err = s.ClassMapper.FindAll(ctx)
		if err != nil {
			log.Error("获取班级列表失败: %v", err)
			return nil, consts.ErrUpdate
		}
	} else {
		c, err := s.ClassMapper.FindOneByTeacher(ctx, caller.ID.Hex())
		if err != nil && !errors.Is(err, consts.ErrNotFound) {
			return nil, consts.ErrUpdate
		}
		if c != nil {
			classes = append(classes, c)
		}
	}

	infos := make([]*school.ClassInfo, 0, len(classes))
	for _, c := range classes {
		infos = append(infos, s.classInfo(ctx, c))
	}
	return &school.ListClassesResp{Classes: infos}, nil
}

// CreateClass 创建空班级
func (s *ClassService) CreateClass(ctx context.Context, req *school.CreateClassReq) (*school.CreateClassResp, error) {
	caller, err := resolveCaller(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}
	if err := requireModerator(caller); err != nil {
		return nil, err
	}

	c := &class.Class{Name: req.Name}
	if err := s.ClassMapper.Insert(ctx, c); err != nil {
		log.Error("创建班级失败: %v", err)
		return nil, consts.ErrInsert
	}
	return &school.CreateClassResp{Class: s.classInfo(ctx, c)}, nil
}

// DeleteClass 删除班级并清理教师、学生身上的反向引用。
// 三步写入分别只有单文档原子性，中途失败会留下悬挂引用。
func (s *ClassService) DeleteClass(ctx context.Context, req *school.DeleteClassReq) (*school.Response, error) {
	caller, err := resolveCaller(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}
	if err := requireModerator(caller); err != nil {
		return nil, err
	}

	if _, err := s.ClassMapper.FindOne(ctx, req.Id); err != nil {
		return nil, consts.ErrClassNotFound
	}
	if err := s.ClassMapper.Delete(ctx, req.Id); err != nil {
		log.Error("删除班级失败: %v", err)
		return nil, consts.ErrDelete
	}
	if err := s.UserMapper.ClearAssignedClassByClass(ctx, req.Id); err != nil {
		log.Error("清除教师班级引用失败: %v", err)
		return nil, consts.ErrDelete
	}
	if err := s.StudentMapper.ClearClassByClass(ctx, req.Id); err != nil {
		log.Error("清除学生班级引用失败: %v", err)
		return nil, consts.ErrDelete
	}
	return &school.Response{Message: "Class deleted"}, nil
}

// AssignTeacher 指派或取消班主任。换班时同时清除旧教师和新教师原班级的引用，
// 保证教师与班级的互指始终一一对应。
func (s *ClassService) AssignTeacher(ctx context.Context, req *school.AssignTeacherReq) (*school.AssignTeacherResp, error) {
	caller, err := resolveCaller(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}
	if err := requireModerator(caller); err != nil {
		return nil, err
	}

	c, err := s.ClassMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, consts.ErrClassNotFound
	}

	// 解除本班原教师
	if c.TeacherID != "" {
		if err := s.UserMapper.SetAssignedClass(ctx, c.TeacherID, ""); err != nil {
			log.Error("清除原教师引用失败: %v", err)
			return nil, consts.ErrUpdate
		}
	}

	if req.TeacherId != "" {
		t, err := s.UserMapper.FindOne(ctx, req.TeacherId)
		if err != nil || t.Role != consts.RoleTeacher {
			return nil, consts.ErrTeacherNotFound
		}
		// 新教师若已任教其他班级，先解除那边的引用
		if t.AssignedClassID != "" && t.AssignedClassID != req.Id {
			if err := s.ClassMapper.SetTeacher(ctx, t.AssignedClassID, ""); err != nil {
				log.Error("清除新教师原班级引用失败: %v", err)
				return nil, consts.ErrUpdate
			}
		}
		if err := s.UserMapper.SetAssignedClass(ctx, req.TeacherId, req.Id); err != nil {
			return nil, consts.ErrUpdate
		}
	}
	if err := s.ClassMapper.SetTeacher(ctx, req.Id, req.TeacherId); err != nil {
		return nil, consts.ErrUpdate
	}

	c, err = s.ClassMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, consts.ErrClassNotFound
	}
	return &school.AssignTeacherResp{Class: s.classInfo(ctx, c)}, nil
}

// AddStudent 学生入班，若已在其他班级先从原班级移除
func (s *ClassService) AddStudent(ctx context.Context, req *school.AddStudentReq) (*school.AddStudentResp, error) {
	caller, err := resolveCaller(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}
	if err := requireModerator(caller); err != nil {
		return nil, err
	}

	c, err := s.ClassMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, consts.ErrClassNotFound
	}
	st, err := s.StudentMapper.FindOne(ctx, req.StudentId)
	if err != nil {
		return nil, consts.ErrStudentNotFound
	}

	if st.ClassID != "" && st.ClassID != req.Id {
		if err := s.ClassMapper.RemoveStudent(ctx, st.ClassID, req.StudentId); err != nil {
			log.Error("从原班级移除学生失败: %v", err)
			return nil, consts.ErrUpdate
		}
	}
	if err := s.StudentMapper.SetClass(ctx, req.StudentId, req.Id); err != nil {
		return nil, consts.ErrUpdate
	}
	if err := s.ClassMapper.AddStudent(ctx, req.Id, req.StudentId); err != nil {
		return nil, consts.ErrUpdate
	}

	c, err = s.ClassMapper.FindOne(ctx, c.ID.Hex())
	if err != nil {
		return nil, consts.ErrClassNotFound
	}
	return &school.AddStudentResp{Class: s.classInfo(ctx, c)}, nil
}

// RemoveStudent 学生退班
func (s *ClassService) RemoveStudent(ctx context.Context, req *school.RemoveStudentReq) (*school.RemoveStudentResp, error) {
	caller, err := resolveCaller(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}
	if err := requireModerator(caller); err != nil {
		return nil, err
	}

	if _, err := s.ClassMapper.FindOne(ctx, req.Id); err != nil {
		return nil, consts.ErrClassNotFound
	}
	if _, err := s.StudentMapper.FindOne(ctx, req.StudentId); err != nil {
		return nil, consts.ErrStudentNotFound
	}

	if err := s.ClassMapper.RemoveStudent(ctx, req.Id, req.StudentId); err != nil {
		return nil, consts.ErrUpdate
	}
	if err := s.StudentMapper.SetClass(ctx, req.StudentId, ""); err != nil {
		return nil, consts.ErrUpdate
	}

	c, err := s.ClassMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, consts.ErrClassNotFound
	}
	return &school.RemoveStudentResp{Class: s.classInfo(ctx, c)}, nil
}

// classInfo 构造班级读侧视图，展开教师与学生姓名
func (s *ClassService) classInfo(ctx context.Context, c *class.Class) *school.ClassInfo {
	info := &school.ClassInfo{
		Id:         c.ID.Hex(),
		Name:       c.Name,
		Students:   make([]*school.StudentRef, 0, len(c.Students)),
		CreateTime: c.CreateTime.Unix(),
	}
	if c.TeacherID != "" {
		if t, err := s.UserMapper.FindOne(ctx, c.TeacherID); err == nil {
			info.Teacher = &school.TeacherRef{Id: t.ID.Hex(), Name: t.Name, Email: t.Email}
		}
	}
	for _, sid := range c.Students {
		st, err := s.StudentMapper.FindOne(ctx, sid)
		if err != nil {
			log.CtxInfo(ctx, "学生 %s 不存在，跳过: %v", sid, err)
			continue
		}
		info.Students = append(info.Students, &school.StudentRef{Id: st.ID.Hex(), Name: st.Name})
	}
	return info
}
