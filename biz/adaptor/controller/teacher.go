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

// ListTeachers 教师列表
func ListTeachers(ctx context.Context, c *app.RequestContext) {
	var req school.ListTeachersReq
	p := provider.Get()
	resp, err := p.TeacherService.ListTeachers(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// CreateTeacher 创建教师账号
func CreateTeacher(ctx context.Context, c *app.RequestContext) {
	var req school.CreateTeacherReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.H{"message": err.Error()})
		return
	}
	p := provider.Get()
	resp, err := p.TeacherService.CreateTeacher(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// DeleteTeacher 删除教师账号
func DeleteTeacher(ctx context.Context, c *app.RequestContext) {
	var req school.DeleteTeacherReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.H{"message": err.Error()})
		return
	}
	p := provider.Get()
	resp, err := p.TeacherService.DeleteTeacher(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
