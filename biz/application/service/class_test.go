package service

import (
	"context"
	"testing"

	"school-leave/biz/application/dto/school"
	"school-leave/biz/infrastructure/consts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateClassModeratorOnly(t *testing.T) {
	env := newTestEnv()
	env.addModerator()
	teacher := env.addTeacher("سارة محمد", "sarah@school.com")

	_, err := env.class.CreateClass(asCaller(teacher), &school.CreateClassReq{Name: "10-A"})
	assert.ErrorIs(t, err, consts.ErrForbidden)

	_, err = env.class.CreateClass(context.Background(), &school.CreateClassReq{Name: "10-A"})
	assert.ErrorIs(t, err, consts.ErrNotAuthentication)
}

func TestDeleteClassCascade(t *testing.T) {
	env := newTestEnv()
	mod := env.addModerator()
	teacher := env.addTeacher("سارة محمد", "sarah@school.com")
	ahmed := env.addStudent("أحمد سامي")
	layla := env.addStudent("ليلى حسين")
	c := env.addClass("10-A")

	ctx := asCaller(mod)
	_, err := env.class.AssignTeacher(ctx, &school.AssignTeacherReq{Id: c.ID.Hex(), TeacherId: teacher.ID.Hex()})
	require.NoError(t, err)
	_, err = env.class.AddStudent(ctx, &school.AddStudentReq{Id: c.ID.Hex(), StudentId: ahmed.ID.Hex()})
	require.NoError(t, err)
	_, err = env.class.AddStudent(ctx, &school.AddStudentReq{Id: c.ID.Hex(), StudentId: layla.ID.Hex()})
	require.NoError(t, err)

	_, err = env.class.DeleteClass(ctx, &school.DeleteClassReq{Id: c.ID.Hex()})
	require.NoError(t, err)

	// 班级消失，教师与学生身上的引用全部清空
	_, err = env.classes.FindOne(ctx, c.ID.Hex())
	assert.ErrorIs(t, err, consts.ErrNotFound)
	assert.Empty(t, teacher.AssignedClassID)
	assert.Empty(t, ahmed.ClassID)
	assert.Empty(t, layla.ClassID)
}

func TestDeleteClassNotFound(t *testing.T) {
	env := newTestEnv()
	mod := env.addModerator()

	_, err := env.class.DeleteClass(asCaller(mod), &school.DeleteClassReq{Id: "64b000000000000000000000"})
	assert.ErrorIs(t, err, consts.ErrClassNotFound)
}

func TestAssignTeacherSymmetry(t *testing.T) {
	env := newTestEnv()
	mod := env.addModerator()
	teacher := env.addTeacher("سارة محمد", "sarah@school.com")
	c := env.addClass("10-A")
	ctx := asCaller(mod)

	_, err := env.class.AssignTeacher(ctx, &school.AssignTeacherReq{Id: c.ID.Hex(), TeacherId: teacher.ID.Hex()})
	require.NoError(t, err)
	assert.Equal(t, teacher.ID.Hex(), c.TeacherID)
	assert.Equal(t, c.ID.Hex(), teacher.AssignedClassID)

	// 传空teacherId表示取消指派，双向引用一起清空
	_, err = env.class.AssignTeacher(ctx, &school.AssignTeacherReq{Id: c.ID.Hex()})
	require.NoError(t, err)
	assert.Empty(t, c.TeacherID)
	assert.Empty(t, teacher.AssignedClassID)
}

func TestAssignTeacherReleasesPreviousClass(t *testing.T) {
	env := newTestEnv()
	mod := env.addModerator()
	teacher := env.addTeacher("سارة محمد", "sarah@school.com")
	c1 := env.addClass("10-A")
	c2 := env.addClass("10-B")
	ctx := asCaller(mod)

	_, err := env.class.AssignTeacher(ctx, &school.AssignTeacherReq{Id: c1.ID.Hex(), TeacherId: teacher.ID.Hex()})
	require.NoError(t, err)
	_, err = env.class.AssignTeacher(ctx, &school.AssignTeacherReq{Id: c2.ID.Hex(), TeacherId: teacher.ID.Hex()})
	require.NoError(t, err)

	// 教师不能同时被两个班级引用
	assert.Empty(t, c1.TeacherID)
	assert.Equal(t, teacher.ID.Hex(), c2.TeacherID)
	assert.Equal(t, c2.ID.Hex(), teacher.AssignedClassID)
}

func TestAssignTeacherReplacesOldTeacher(t *testing.T) {
	env := newTestEnv()
	mod := env.addModerator()
	t1 := env.addTeacher("سارة محمد", "sarah@school.com")
	t2 := env.addTeacher("محمد علي", "michael@school.com")
	c := env.addClass("10-A")
	ctx := asCaller(mod)

	_, err := env.class.AssignTeacher(ctx, &school.AssignTeacherReq{Id: c.ID.Hex(), TeacherId: t1.ID.Hex()})
	require.NoError(t, err)
	_, err = env.class.AssignTeacher(ctx, &school.AssignTeacherReq{Id: c.ID.Hex(), TeacherId: t2.ID.Hex()})
	require.NoError(t, err)

	assert.Empty(t, t1.AssignedClassID)
	assert.Equal(t, t2.ID.Hex(), c.TeacherID)
	assert.Equal(t, c.ID.Hex(), t2.AssignedClassID)
}

func TestAddStudentMovesBetweenClasses(t *testing.T) {
	env := newTestEnv()
	mod := env.addModerator()
	ahmed := env.addStudent("أحمد سامي")
	c1 := env.addClass("10-A")
	c2 := env.addClass("10-B")
	ctx := asCaller(mod)

	_, err := env.class.AddStudent(ctx, &school.AddStudentReq{Id: c1.ID.Hex(), StudentId: ahmed.ID.Hex()})
	require.NoError(t, err)
	assert.Equal(t, c1.ID.Hex(), ahmed.ClassID)
	assert.Contains(t, c1.Students, ahmed.ID.Hex())

	// 转班后不再出现在原班级的学生集合里
	_, err = env.class.AddStudent(ctx, &school.AddStudentReq{Id: c2.ID.Hex(), StudentId: ahmed.ID.Hex()})
	require.NoError(t, err)
	assert.Equal(t, c2.ID.Hex(), ahmed.ClassID)
	assert.Contains(t, c2.Students, ahmed.ID.Hex())
	assert.NotContains(t, c1.Students, ahmed.ID.Hex())
}

func TestAddStudentIdempotent(t *testing.T) {
	env := newTestEnv()
	mod := env.addModerator()
	ahmed := env.addStudent("أحمد سامي")
	c := env.addClass("10-A")
	ctx := asCaller(mod)

	for i := 0; i < 2; i++ {
		_, err := env.class.AddStudent(ctx, &school.AddStudentReq{Id: c.ID.Hex(), StudentId: ahmed.ID.Hex()})
		require.NoError(t, err)
	}
	assert.Len(t, c.Students, 1)
}

func TestAddStudentUnknownIds(t *testing.T) {
	env := newTestEnv()
	mod := env.addModerator()
	ahmed := env.addStudent("أحمد سامي")
	c := env.addClass("10-A")
	ctx := asCaller(mod)

	_, err := env.class.AddStudent(ctx, &school.AddStudentReq{Id: "64b000000000000000000000", StudentId: ahmed.ID.Hex()})
	assert.ErrorIs(t, err, consts.ErrClassNotFound)

	_, err = env.class.AddStudent(ctx, &school.AddStudentReq{Id: c.ID.Hex(), StudentId: "64b000000000000000000000"})
	assert.ErrorIs(t, err, consts.ErrStudentNotFound)
}

func TestRemoveStudentUnknownIds(t *testing.T) {
	env := newTestEnv()
	mod := env.addModerator()
	ahmed := env.addStudent("أحمد سامي")
	c := env.addClass("10-A")
	ctx := asCaller(mod)

	_, err := env.class.RemoveStudent(ctx, &school.RemoveStudentReq{Id: "64b000000000000000000000", StudentId: ahmed.ID.Hex()})
	assert.ErrorIs(t, err, consts.ErrClassNotFound)

	_, err = env.class.RemoveStudent(ctx, &school.RemoveStudentReq{Id: c.ID.Hex(), StudentId: "64b000000000000000000000"})
	assert.ErrorIs(t, err, consts.ErrStudentNotFound)
}

func TestRemoveStudentClearsBothSides(t *testing.T) {
	env := newTestEnv()
	mod := env.addModerator()
	ahmed := env.addStudent("أحمد سامي")
	c := env.addClass("10-A")
	ctx := asCaller(mod)

	_, err := env.class.AddStudent(ctx, &school.AddStudentReq{Id: c.ID.Hex(), StudentId: ahmed.ID.Hex()})
	require.NoError(t, err)
	_, err = env.class.RemoveStudent(ctx, &school.RemoveStudentReq{Id: c.ID.Hex(), StudentId: ahmed.ID.Hex()})
	require.NoError(t, err)

	assert.Empty(t, ahmed.ClassID)
	assert.NotContains(t, c.Students, ahmed.ID.Hex())
}

// 场景：管理员建班、建学生、学生入班后，两侧列表都能看到对方
func TestModeratorRosterScenario(t *testing.T) {
	env := newTestEnv()
	mod := env.addModerator()
	ctx := asCaller(mod)

	created, err := env.class.CreateClass(ctx, &school.CreateClassReq{Name: "10-A"})
	require.NoError(t, err)
	stResp, err := env.student.CreateStudent(ctx, &school.CreateStudentReq{Name: "Ahmed"})
	require.NoError(t, err)
	_, err = env.class.AddStudent(ctx, &school.AddStudentReq{Id: created.Class.Id, StudentId: stResp.Student.Id})
	require.NoError(t, err)

	classes, err := env.class.ListClasses(ctx, &school.ListClassesReq{})
	require.NoError(t, err)
	require.Len(t, classes.Classes, 1)
	assert.Equal(t, "10-A", classes.Classes[0].Name)
	require.Len(t, classes.Classes[0].Students, 1)
	assert.Equal(t, "Ahmed", classes.Classes[0].Students[0].Name)

	students, err := env.student.ListStudents(ctx, &school.ListStudentsReq{})
	require.NoError(t, err)
	require.Len(t, students.Students, 1)
	assert.Equal(t, "10-A", students.Students[0].ClassName)
}

func TestListClassesTeacherScope(t *testing.T) {
	env := newTestEnv()
	mod := env.addModerator()
	t1 := env.addTeacher("سارة محمد", "sarah@school.com")
	t2 := env.addTeacher("محمد علي", "michael@school.com")
	c1 := env.addClass("10-A")
	c2 := env.addClass("10-B")
	ctx := asCaller(mod)

	_, err := env.class.AssignTeacher(ctx, &school.AssignTeacherReq{Id: c1.ID.Hex(), TeacherId: t1.ID.Hex()})
	require.NoError(t, err)
	_, err = env.class.AssignTeacher(ctx, &school.AssignTeacherReq{Id: c2.ID.Hex(), TeacherId: t2.ID.Hex()})
	require.NoError(t, err)

	all, err := env.class.ListClasses(ctx, &school.ListClassesReq{})
	require.NoError(t, err)
	assert.Len(t, all.Classes, 2)

	own, err := env.class.ListClasses(asCaller(t1), &school.ListClassesReq{})
	require.NoError(t, err)
	require.Len(t, own.Classes, 1)
	assert.Equal(t, c1.ID.Hex(), own.Classes[0].Id)
	require.NotNil(t, own.Classes[0].Teacher)
	assert.Equal(t, "sarah@school.com", own.Classes[0].Teacher.Email)
}
