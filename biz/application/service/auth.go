package service

import (
	"context"

	"school-leave/biz/adaptor"
	"school-leave/biz/application/dto/school"
	"school-leave/biz/infrastructure/consts"
	"school-leave/biz/infrastructure/repository/user"
	"school-leave/biz/infrastructure/util/log"

	"github.com/google/wire"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Login(ctx context.Context, req *school.LoginReq) (*school.LoginResp, error)
	GetMe(ctx context.Context, req *school.GetMeReq) (*school.UserInfo, error)
}

type AuthService struct {
	UserMapper user.Mapper
}

var AuthServiceSet = wire.NewSet(
	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),
)

// Login 邮箱密码换取bearer token
func (s *AuthService) Login(ctx context.Context, req *school.LoginReq) (*school.LoginResp, error) {
	u, err := s.UserMapper.FindOneByEmail(ctx, req.Email)
	if err != nil {
		return nil, consts.ErrInvalidCredential
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return nil, consts.ErrInvalidCredential
	}

	token, expire, err := adaptor.GenerateJwtToken(u.ID.Hex())
	if err != nil {
		log.Error("签发token失败: %v", err)
		return nil, consts.ErrInsert
	}

	return &school.LoginResp{
		Token:        token,
		AccessExpire: expire,
		User:         userInfo(u),
	}, nil
}

// GetMe 返回调用者本人的信息
func (s *AuthService) GetMe(ctx context.Context, req *school.GetMeReq) (*school.UserInfo, error) {
	caller, err := resolveCaller(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}
	return userInfo(caller), nil
}

func userInfo(u *user.User) *school.UserInfo {
	return &school.UserInfo{
		Id:              u.ID.Hex(),
		Name:            u.Name,
		Email:           u.Email,
		Role:            u.Role,
		AssignedClassId: u.AssignedClassID,
	}
}
