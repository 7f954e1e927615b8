package service

import (
	"context"

	"school-leave/biz/adaptor"
	"school-leave/biz/infrastructure/consts"
	"school-leave/biz/infrastructure/repository/user"
)

// resolveCaller 解析调用者身份，所有接口都要求登录
func resolveCaller(ctx context.Context, users user.Mapper) (*user.User, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	u, err := users.FindOne(ctx, meta.GetUserId())
	if err != nil {
		return nil, consts.ErrNotAuthentication
	}
	return u, nil
}

// requireModerator 仅允许管理员操作
func requireModerator(u *user.User) error {
	if u.Role != consts.RoleModerator {
		return consts.ErrForbidden
	}
	return nil
}
