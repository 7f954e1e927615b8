package service

import (
	"context"
	"sort"
	"time"

	"school-leave/biz/adaptor"
	"school-leave/biz/application/dto/basic"
	"school-leave/biz/infrastructure/consts"
	"school-leave/biz/infrastructure/repository/class"
	"school-leave/biz/infrastructure/repository/message"
	"school-leave/biz/infrastructure/repository/student"
	"school-leave/biz/infrastructure/repository/user"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// 内存版mapper，语义与mongo实现保持一致

type fakeUserMapper struct {
	users map[string]*user.User
}

func newFakeUserMapper() *fakeUserMapper {
	return &fakeUserMapper{users: make(map[string]*user.User)}
}

func (m *fakeUserMapper) Insert(_ context.Context, u *user.User) error {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
		u.CreateTime = time.Now()
		u.UpdateTime = u.CreateTime
	}
	m.users[u.ID.Hex()] = u
	return nil
}

func (m *fakeUserMapper) FindOne(_ context.Context, id string) (*user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, consts.ErrNotFound
	}
	return u, nil
}

func (m *fakeUserMapper) FindOneByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, consts.ErrNotFound
}

func (m *fakeUserMapper) FindManyByRole(_ context.Context, role string) ([]*user.User, error) {
	var out []*user.User
	for _, u := range m.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreateTime.Before(out[j].CreateTime) })
	return out, nil
}

func (m *fakeUserMapper) Delete(_ context.Context, id string) error {
	if _, ok := m.users[id]; !ok {
		return consts.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *fakeUserMapper) SetAssignedClass(_ context.Context, id string, classID string) error {
	if u, ok := m.users[id]; ok {
		u.AssignedClassID = classID
	}
	return nil
}

func (m *fakeUserMapper) ClearAssignedClassByClass(_ context.Context, classID string) error {
	for _, u := range m.users {
		if u.AssignedClassID == classID {
			u.AssignedClassID = ""
		}
	}
	return nil
}

func (m *fakeUserMapper) RemoveAll(_ context.Context) error {
	m.users = make(map[string]*user.User)
	return nil
}

type fakeClassMapper struct {
	classes map[string]*class.Class
}

func newFakeClassMapper() *fakeClassMapper {
	return &fakeClassMapper{classes: make(map[string]*class.Class)}
}

func (m *fakeClassMapper) Insert(_ context.Context, c *class.Class) error {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
		c.CreateTime = time.Now()
		c.UpdateTime = c.CreateTime
	}
	if c.Students == nil {
		c.Students = []string{}
	}
	m.classes[c.ID.Hex()] = c
	return nil
}

func (m *fakeClassMapper) FindOne(_ context.Context, id string) (*class.Class, error) {
	c, ok := m.classes[id]
	if !ok {
		return nil, consts.ErrNotFound
	}
	return c, nil
}

func (m *fakeClassMapper) FindOneByTeacher(_ context.Context, teacherID string) (*class.Class, error) {
	for _, c := range m.classes {
		if c.TeacherID == teacherID {
			return c, nil
		}
	}
	return nil, consts.ErrNotFound
}

func (m *fakeClassMapper) FindAll(_ context.Context) ([]*class.Class, error) {
	out := lo.Values(m.classes)
	sort.Slice(out, func(i, j int) bool { return out[i].CreateTime.Before(out[j].CreateTime) })
	return out, nil
}

func (m *fakeClassMapper) Delete(_ context.Context, id string) error {
	if _, ok := m.classes[id]; !ok {
		return consts.ErrNotFound
	}
	delete(m.classes, id)
	return nil
}

func (m *fakeClassMapper) SetTeacher(_ context.Context, id string, teacherID string) error {
	if c, ok := m.classes[id]; ok {
		c.TeacherID = teacherID
	}
	return nil
}

func (m *fakeClassMapper) ClearTeacherByTeacher(_ context.Context, teacherID string) error {
	for _, c := range m.classes {
		if c.TeacherID == teacherID {
			c.TeacherID = ""
		}
	}
	return nil
}

func (m *fakeClassMapper) AddStudent(_ context.Context, id string, studentID string) error {
	if c, ok := m.classes[id]; ok {
		if !lo.Contains(c.Students, studentID) {
			c.Students = append(c.Students, studentID)
		}
	}
	return nil
}

func (m *fakeClassMapper) RemoveStudent(_ context.Context, id string, studentID string) error {
	if c, ok := m.classes[id]; ok {
		c.Students = lo.Without(c.Students, studentID)
	}
	return nil
}

func (m *fakeClassMapper) RemoveAll(_ context.Context) error {
	m.classes = make(map[string]*class.Class)
	return nil
}

type fakeStudentMapper struct {
	students map[string]*student.Student
}

func newFakeStudentMapper() *fakeStudentMapper {
	return &fakeStudentMapper{students: make(map[string]*student.Student)}
}

func (m *fakeStudentMapper) Insert(_ context.Context, s *student.Student) error {
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
		s.CreateTime = time.Now()
		s.UpdateTime = s.CreateTime
	}
	m.students[s.ID.Hex()] = s
	return nil
}

func (m *fakeStudentMapper) FindOne(_ context.Context, id string) (*student.Student, error) {
	s, ok := m.students[id]
	if !ok {
		return nil, consts.ErrNotFound
	}
	return s, nil
}

func (m *fakeStudentMapper) FindAll(_ context.Context) ([]*student.Student, error) {
	out := lo.Values(m.students)
	sort.Slice(out, func(i, j int) bool { return out[i].CreateTime.Before(out[j].CreateTime) })
	return out, nil
}

func (m *fakeStudentMapper) FindManyByClass(_ context.Context, classID string) ([]*student.Student, error) {
	var out []*student.Student
	for _, s := range m.students {
		if s.ClassID == classID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreateTime.Before(out[j].CreateTime) })
	return out, nil
}

func (m *fakeStudentMapper) Delete(_ context.Context, id string) error {
	if _, ok := m.students[id]; !ok {
		return consts.ErrNotFound
	}
	delete(m.students, id)
	return nil
}

func (m *fakeStudentMapper) SetClass(_ context.Context, id string, classID string) error {
	if s, ok := m.students[id]; ok {
		s.ClassID = classID
	}
	return nil
}

func (m *fakeStudentMapper) ClearClassByClass(_ context.Context, classID string) error {
	for _, s := range m.students {
		if s.ClassID == classID {
			s.ClassID = ""
		}
	}
	return nil
}

func (m *fakeStudentMapper) RemoveAll(_ context.Context) error {
	m.students = make(map[string]*student.Student)
	return nil
}

type fakeMessageMapper struct {
	messages []*message.Message
	seq      int64
}

func newFakeMessageMapper() *fakeMessageMapper {
	return &fakeMessageMapper{}
}

func (m *fakeMessageMapper) Insert(_ context.Context, msg *message.Message) error {
	if msg.ID.IsZero() {
		msg.ID = primitive.NewObjectID()
		m.seq++
		msg.CreateTime = time.Now().Add(time.Duration(m.seq) * time.Millisecond)
		msg.UpdateTime = msg.CreateTime
	}
	m.messages = append(m.messages, msg)
	return nil
}

func (m *fakeMessageMapper) FindAll(_ context.Context) ([]*message.Message, error) {
	out := append([]*message.Message{}, m.messages...)
	sort.Slice(out, func(i, j int) bool { return out[i].CreateTime.After(out[j].CreateTime) })
	return out, nil
}

func (m *fakeMessageMapper) FindManyByTeacher(_ context.Context, teacherID string) ([]*message.Message, error) {
	var out []*message.Message
	for _, msg := range m.messages {
		if msg.TeacherID == teacherID {
			out = append(out, msg)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreateTime.After(out[j].CreateTime) })
	return out, nil
}

func (m *fakeMessageMapper) Delete(_ context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return consts.ErrInvalidObjectId
	}
	m.messages = lo.Filter(m.messages, func(msg *message.Message, _ int) bool {
		return msg.ID.Hex() != id
	})
	return nil
}

func (m *fakeMessageMapper) RemoveAll(_ context.Context) error {
	m.messages = nil
	return nil
}

// testEnv 将各service接到内存mapper上
type testEnv struct {
	users    *fakeUserMapper
	classes  *fakeClassMapper
	students *fakeStudentMapper
	messages *fakeMessageMapper

	auth    *AuthService
	class   *ClassService
	student *StudentService
	teacher *TeacherService
	message *MessageService
	seed    *SeedService
}

func newTestEnv() *testEnv {
	users := newFakeUserMapper()
	classes := newFakeClassMapper()
	students := newFakeStudentMapper()
	messages := newFakeMessageMapper()
	return &testEnv{
		users:    users,
		classes:  classes,
		students: students,
		messages: messages,
		auth:     &AuthService{UserMapper: users},
		class:    &ClassService{ClassMapper: classes, StudentMapper: students, UserMapper: users},
		student:  &StudentService{StudentMapper: students, ClassMapper: classes, UserMapper: users},
		teacher:  &TeacherService{UserMapper: users, ClassMapper: classes},
		message:  &MessageService{MessageMapper: messages, ClassMapper: classes, StudentMapper: students, UserMapper: users},
		seed:     &SeedService{UserMapper: users, ClassMapper: classes, StudentMapper: students, MessageMapper: messages},
	}
}

func (e *testEnv) addUser(name, email, password, role string) *user.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	u := &user.User{Name: name, Email: email, Password: string(hash), Role: role}
	_ = e.users.Insert(context.Background(), u)
	return u
}

func (e *testEnv) addModerator() *user.User {
	return e.addUser("مشرف", "admin@school.com", "admin123", consts.RoleModerator)
}

func (e *testEnv) addTeacher(name, email string) *user.User {
	return e.addUser(name, email, "teacher123", consts.RoleTeacher)
}

func (e *testEnv) addStudent(name string) *student.Student {
	s := &student.Student{Name: name}
	_ = e.students.Insert(context.Background(), s)
	return s
}

func (e *testEnv) addClass(name string) *class.Class {
	c := &class.Class{Name: name}
	_ = e.classes.Insert(context.Background(), c)
	return c
}

// asCaller 以指定用户身份构造上下文
func asCaller(u *user.User) context.Context {
	return adaptor.CtxWithUserMeta(context.Background(), &basic.UserMeta{UserId: u.ID.Hex()})
}
