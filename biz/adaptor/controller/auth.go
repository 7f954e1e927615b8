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

// Login 登录换取token
func Login(ctx context.Context, c *app.RequestContext) {
	var req school.LoginReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.H{"message": err.Error()})
		return
	}
	p := provider.Get()
	resp, err := p.AuthService.Login(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetMe 返回调用者本人的信息
func GetMe(ctx context.Context, c *app.RequestContext) {
	var req school.GetMeReq
	p := provider.Get()
	resp, err := p.AuthService.GetMe(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
