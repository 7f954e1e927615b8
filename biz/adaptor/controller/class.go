package controller

import (
	"context"
	"net/http"

	"school-leave/biz/adaptor"
	"school-leave/biz/application/dto/school"
	"school-leave/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
)

// ListClasses 班级列表
func ListClasses(ctx context.Context, c *app.RequestContext) {
	var req school.ListClassesReq
	p := provider.Get()
	resp, err := p.ClassService.ListClasses(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// CreateClass 创建班级
func CreateClass(ctx context.Context, c *app.RequestContext) {
	var req school.CreateClassReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.H{"message": err.Error()})
		return
	}
	p := provider.Get()
	resp, err := p.ClassService.CreateClass(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// DeleteClass 删除班级并级联解除引用
func DeleteClass(ctx context.Context, c *app.RequestContext) {
	var req school.DeleteClassReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.H{"message": err.Error()})
		return
	}
	p := provider.Get()
	resp, err := p.ClassService.DeleteClass(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// AssignTeacher 指派或取消班主任
func AssignTeacher(ctx context.Context, c *app.RequestContext) {
	var req school.AssignTeacherReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.H{"message": err.Error()})
		return
	}
	p := provider.Get()
	resp, err := p.ClassService.AssignTeacher(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// AddStudent 学生入班
func AddStudent(ctx context.Context, c *app.RequestContext) {
	var req school.AddStudentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.H{"message": err.Error()})
		return
	}
	p := provider.Get()
	resp, err := p.ClassService.AddStudent(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// RemoveStudent 学生退班
func RemoveStudent(ctx context.Context, c *app.RequestContext) {
	var req school.RemoveStudentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.H{"message": err.Error()})
		return
	}
	p := provider.Get()
	resp, err := p.ClassService.RemoveStudent(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
