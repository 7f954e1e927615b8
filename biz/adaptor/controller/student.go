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

// ListStudents 学生列表
func ListStudents(ctx context.Context, c *app.RequestContext) {
	var req school.ListStudentsReq
	p := provider.Get()
	resp, err := p.StudentService.ListStudents(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// CreateStudent 创建学生
func CreateStudent(ctx context.Context, c *app.RequestContext) {
	var req school.CreateStudentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.H{"message": err.Error()})
		return
	}
	p := provider.Get()
	resp, err := p.StudentService.CreateStudent(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// DeleteStudent 删除学生
func DeleteStudent(ctx context.Context, c *app.RequestContext) {
	var req school.DeleteStudentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.H{"message": err.Error()})
		return
	}
	p := provider.Get()
	resp, err := p.StudentService.DeleteStudent(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
