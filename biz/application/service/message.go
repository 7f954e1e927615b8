package service

import (
	"context"
	"errors"

	"school-leave/biz/application/dto/school"
	"school-leave/biz/infrastructure/consts"
	"school-leave/biz/infrastructure/repository/class"
	"school-leave/biz/infrastructure/repository/message"
	"school-leave/biz/infrastructure/repository/student"
	"school-leave/biz/infrastructure/repository/user"
	"school-leave/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/samber/lo"
)

type IMessageService interface {
	ListMessages(ctx context.Context, req *school.ListMessagesReq) (*school.ListMessagesResp, error)
	CreateMessage(ctx context.Context, req *school.CreateMessageReq) (*school.CreateMessageResp, error)
	DeleteMessage(ctx context.Context, req *school.DeleteMessageReq) (*school.Response, error)
}

type MessageService struct {
	MessageMapper message.Mapper
	ClassMapper   class.Mapper
	StudentMapper student.Mapper
	UserMapper    user.Mapper
}

var MessageServiceSet = wire.NewSet(
	wire.Struct(new(MessageService), "*"),
	wire.Bind(new(IMessageService), new(*MessageService)),
)

// ListMessages 管理员看全部通知，教师只看自己发出的，均按创建时间倒序
func (s *MessageService) ListMessages(ctx context.Context, req *school.ListMessagesReq) (*school.ListMessagesResp, error) {
	caller, err := resolveCaller(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}

	var messages []*message.Message
	if caller.Role == consts.RoleModerator {
		messages, err = s.MessageMapper.FindAll(ctx)
	} else {
		messages, err = s.MessageMapper.FindManyByTeacher(ctx, caller.ID.Hex())
	}
	if err != nil {
		log.Error("获取通知列表失败: %v", err)
		return nil, consts.ErrUpdate
	}

	infos := make([]*school.MessageInfo, 0, len(messages))
	for _, msg := range messages {
		infos = append(infos, s.messageInfo(ctx, msg))
	}
	return &school.ListMessagesResp{Messages: infos}, nil
}

// CreateMessage 教师为本班学生提交早退通知。通知一经创建不可修改。
func (s *MessageService) CreateMessage(ctx context.Context, req *school.CreateMessageReq) (*school.CreateMessageResp, error) {
	caller, err := resolveCaller(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}

	c, err := s.ClassMapper.FindOneByTeacher(ctx, caller.ID.Hex())
	if errors.Is(err, consts.ErrNotFound) {
		return nil, consts.ErrNoClassAssigned
	}
	if err != nil {
		return nil, consts.ErrUpdate
	}
	if !lo.Contains(c.Students, req.StudentId) {
		return nil, consts.ErrStudentNotInClass
	}

	msg := &message.Message{
		TeacherID: caller.ID.Hex(),
		StudentID: req.StudentId,
		ClassID:   c.ID.Hex(),
		Date:      req.Date,
		Time:      req.Time,
		Reason:    req.Reason,
	}
	if err := s.MessageMapper.Insert(ctx, msg); err != nil {
		log.Error("创建通知失败: %v", err)
		return nil, consts.ErrInsert
	}
	return &school.CreateMessageResp{Message: s.messageInfo(ctx, msg)}, nil
}

// DeleteMessage 删除通知，id不存在时视为已删除
func (s *MessageService) DeleteMessage(ctx context.Context, req *school.DeleteMessageReq) (*school.Response, error) {
	caller, err := resolveCaller(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}
	if err := requireModerator(caller); err != nil {
		return nil, err
	}

	if err := s.MessageMapper.Delete(ctx, req.Id); err != nil && !errors.Is(err, consts.ErrInvalidObjectId) {
		log.Error("删除通知失败: %v", err)
		return nil, consts.ErrDelete
	}
	return &school.Response{Message: "Deleted"}, nil
}

// messageInfo 构造通知读侧视图。被引用的实体可能已删除，
// 通知作为历史记录保留，对应名称留空。
func (s *MessageService) messageInfo(ctx context.Context, msg *message.Message) *school.MessageInfo {
	info := &school.MessageInfo{
		Id:         msg.ID.Hex(),
		TeacherId:  msg.TeacherID,
		StudentId:  msg.StudentID,
		ClassId:    msg.ClassID,
		Date:       msg.Date,
		Time:       msg.Time,
		Reason:     msg.Reason,
		CreateTime: msg.CreateTime.Unix(),
	}
	if t, err := s.UserMapper.FindOne(ctx, msg.TeacherID); err == nil {
		info.TeacherName = t.Name
	}
	if st, err := s.StudentMapper.FindOne(ctx, msg.StudentID); err == nil {
		info.StudentName = st.Name
	}
	if c, err := s.ClassMapper.FindOne(ctx, msg.ClassID); err == nil {
		info.ClassName = c.Name
	}
	return info
}
