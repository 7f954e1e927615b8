package service

import (
	"context"
	"time"

	"school-leave/biz/infrastructure/consts"
	"school-leave/biz/infrastructure/repository/class"
	"school-leave/biz/infrastructure/repository/message"
	"school-leave/biz/infrastructure/repository/student"
	"school-leave/biz/infrastructure/repository/user"
	"school-leave/biz/infrastructure/util/log"

	"github.com/google/wire"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type ISeedService interface {
	Reset(ctx context.Context) error
}

// SeedService 清空并重建演示数据：一个管理员、两位教师、六名学生、两个班级、两条通知
type SeedService struct {
	UserMapper    user.Mapper
	ClassMapper   class.Mapper
	StudentMapper student.Mapper
	MessageMapper message.Mapper
}

var SeedServiceSet = wire.NewSet(
	wire.Struct(new(SeedService), "*"),
	wire.Bind(new(ISeedService), new(*SeedService)),
)

func (s *SeedService) Reset(ctx context.Context) error {
	log.Info("清空现有数据...")
	for _, remove := range []func(context.Context) error{
		s.UserMapper.RemoveAll,
		s.ClassMapper.RemoveAll,
		s.StudentMapper.RemoveAll,
		s.MessageMapper.RemoveAll,
	} {
		if err := remove(ctx); err != nil {
			return err
		}
	}

	log.Info("写入初始数据...")
	moderator := &user.User{
		ID:       primitive.NewObjectID(),
		Name:     "المشرف الإداري",
		Email:    "admin@school.com",
		Password: mustHash("admin123"),
		Role:     consts.RoleModerator,
	}
	teacher1 := &user.User{
		ID:       primitive.NewObjectID(),
		Name:     "سارة محمد",
		Email:    "sarah@school.com",
		Password: mustHash("teacher123"),
		Role:     consts.RoleTeacher,
	}
	teacher2 := &user.User{
		ID:       primitive.NewObjectID(),
		Name:     "محمد علي",
		Email:    "michael@school.com",
		Password: mustHash("teacher123"),
		Role:     consts.RoleTeacher,
	}

	class1ID := primitive.NewObjectID()
	class2ID := primitive.NewObjectID()
	teacher1.AssignedClassID = class1ID.Hex()
	teacher2.AssignedClassID = class2ID.Hex()

	names := []string{"أحمد سامي", "ليلى حسين", "خالد يوسف", "مريم عبد الله", "سليم طارق", "هند علي"}
	students := make([]*student.Student, 0, len(names))
	for i, name := range names {
		classID := class1ID
		if i >= 3 {
			classID = class2ID
		}
		students = append(students, &student.Student{
			ID:      primitive.NewObjectID(),
			Name:    name,
			ClassID: classID.Hex(),
		})
	}

	class1 := &class.Class{
		ID:        class1ID,
		Name:      "الصف 10-أ",
		TeacherID: teacher1.ID.Hex(),
		Students:  []string{students[0].ID.Hex(), students[1].ID.Hex(), students[2].ID.Hex()},
	}
	class2 := &class.Class{
		ID:        class2ID,
		Name:      "الصف 10-ب",
		TeacherID: teacher2.ID.Hex(),
		Students:  []string{students[3].ID.Hex(), students[4].ID.Hex(), students[5].ID.Hex()},
	}

	for _, u := range []*user.User{moderator, teacher1, teacher2} {
		if err := s.UserMapper.Insert(ctx, u); err != nil {
			return err
		}
	}
	for _, st := range students {
		if err := s.StudentMapper.Insert(ctx, st); err != nil {
			return err
		}
	}
	for _, c := range []*class.Class{class1, class2} {
		if err := s.ClassMapper.Insert(ctx, c); err != nil {
			return err
		}
	}

	today := time.Now().Format("2006-01-02")
	messages := []*message.Message{
		{
			TeacherID: teacher1.ID.Hex(),
			StudentID: students[0].ID.Hex(),
			ClassID:   class1ID.Hex(),
			Date:      today,
			Time:      "11:45",
			Reason:    "سيغادر المدرسة بناءً على طلب والديه",
		},
		{
			TeacherID: teacher2.ID.Hex(),
			StudentID: students[4].ID.Hex(),
			ClassID:   class2ID.Hex(),
			Date:      today,
			Time:      "12:00",
			Reason:    "يحتاج إذن خروج مبكر اليوم",
		},
	}
	for _, msg := range messages {
		if err := s.MessageMapper.Insert(ctx, msg); err != nil {
			return err
		}
	}

	log.Info("初始数据写入完成")
	log.Info("  Moderator: admin@school.com / admin123")
	log.Info("  Teacher 1: sarah@school.com / teacher123 (%s)", class1.Name)
	log.Info("  Teacher 2: michael@school.com / teacher123 (%s)", class2.Name)
	return nil
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}
