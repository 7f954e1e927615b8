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

// ListMessages 早退通知列表
func ListMessages(ctx context.Context, c *app.RequestContext) {
	var req school.ListMessagesReq
	p := provider.Get()
	resp, err := p.MessageService.ListMessages(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// CreateMessage 教师提交早退通知
func CreateMessage(ctx context.Context, c *app.RequestContext) {
	var req school.CreateMessageReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.H{"message": err.Error()})
		return
	}
	p := provider.Get()
	resp, err := p.MessageService.CreateMessage(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// DeleteMessage 删除早退通知
func DeleteMessage(ctx context.Context, c *app.RequestContext) {
	var req school.DeleteMessageReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.H{"message": err.Error()})
		return
	}
	p := provider.Get()
	resp, err := p.MessageService.DeleteMessage(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
