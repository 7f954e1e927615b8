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

type IStudentService interface {
	ListStudents(ctx context.Context, req *school.ListStudentsReq) (*school.ListStudentsResp, error)
	CreateStudent(ctx context.Context, req *school.CreateStudentReq) (*school.CreateStudentResp, error)
	DeleteStudent(ctx context.Context, req *school.DeleteStudentReq) (*school.Response, error)
}

type StudentService struct {
	StudentMapper student.Mapper
	ClassMapper   class.Mapper
	UserMapper    user.Mapper
}

var StudentServiceSet = wire.NewSet(
	wire.Struct(new(StudentService), "*"),
	wire.Bind(new(IStudentService), new(*StudentService)),
)

// ListStudents 管理员看全部学生，教师只看自己班级的学生
func (s *StudentService) ListStudents(ctx context.Context, req *school.ListStudentsReq) (*school.ListStudentsResp, error) {
	caller, err := resolveCaller(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}

	var students []*student.Student
	if caller.Role == consts.RoleModerator {
		students, err = s.StudentMapper.FindAll(ctx)
		if err != nil {
			log.Error("获取学生列表失败: %v", err)
			return nil, consts.ErrUpdate
		}
	} else {
		c, err := s.ClassMapper.FindOneByTeacher(ctx, caller.ID.Hex())
		if errors.Is(err, consts.ErrNotFound) {
			// 教师未任教任何班级，返回空列表
			return &school.ListStudentsResp{Students: []*school.StudentInfo{}}, nil
		}
		if err != nil {
			return nil, consts.ErrUpdate
		}
		students, err = s.StudentMapper.FindManyByClass(ctx, c.ID.Hex())
		if err != nil {
			return nil, consts.ErrUpdate
		}
	}

	infos := make([]*school.StudentInfo, 0, len(students))
	for _, st := range students {
		infos = append(infos, s.studentInfo(ctx, st))
	}
	return &school.ListStudentsResp{Students: infos}, nil
}

// CreateStudent 创建未分班的学生
func (s *StudentService) CreateStudent(ctx context.Context, req *school.CreateStudentReq) (*school.CreateStudentResp, error) {
	caller, err := resolveCaller(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}
	if err := requireModerator(caller); err != nil {
		return nil, err
	}

	st := &student.Student{Name: req.Name}
	if err := s.StudentMapper.Insert(ctx, st); err != nil {
		log.Error("创建学生失败: %v", err)
		return nil, consts.ErrInsert
	}
	return &school.CreateStudentResp{Student: s.studentInfo(ctx, st)}, nil
}

// DeleteStudent 删除学生并维护其班级的学生集合
func (s *StudentService) DeleteStudent(ctx context.Context, req *school.DeleteStudentReq) (*school.Response, error) {
	caller, err := resolveCaller(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}
	if err := requireModerator(caller); err != nil {
		return nil, err
	}

	st, err := s.StudentMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, consts.ErrStudentNotFound
	}
	if err := s.StudentMapper.Delete(ctx, req.Id); err != nil {
		log.Error("删除学生失败: %v", err)
		return nil, consts.ErrDelete
	}
	if st.ClassID != "" {
		if err := s.ClassMapper.RemoveStudent(ctx, st.ClassID, req.Id); err != nil {
			log.Error("从班级移除学生失败: %v", err)
			return nil, consts.ErrDelete
		}
	}
	return &school.Response{Message: "Student deleted"}, nil
}

// studentInfo 构造学生读侧视图，展开班级名称
func (s *StudentService) studentInfo(ctx context.Context, st *student.Student) *school.StudentInfo {
	info := &school.StudentInfo{
		Id:         st.ID.Hex(),
		Name:       st.Name,
		ClassId:    st.ClassID,
		CreateTime: st.CreateTime.Unix(),
	}
	if st.ClassID != "" {
		if c, err := s.ClassMapper.FindOne(ctx, st.ClassID); err == nil {
			info.ClassName = c.Name
		}
	}
	return info
}
