package adaptor

import (
	"context"
	"strings"
	"time"

	"school-leave/biz/application/dto/basic"
	"school-leave/biz/infrastructure/config"
	"school-leave/biz/infrastructure/util/log"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/golang-jwt/jwt/v4"
	"github.com/spf13/cast"
)

const hertzContext = "hertz_context"
const userMetaContext = "user_meta"

func InjectContext(ctx context.Context, c *app.RequestContext) context.Context {
	return context.WithValue(ctx, hertzContext, c)
}

func ExtractContext(ctx context.Context) (*app.RequestContext, bool) {
	c, ok := ctx.Value(hertzContext).(*app.RequestContext)
	return c, ok
}

// CtxWithUserMeta 直接注入用户信息，测试场景使用
func CtxWithUserMeta(ctx context.Context, meta *basic.UserMeta) context.Context {
	return context.WithValue(ctx, userMetaContext, meta)
}

// ExtractUserMeta 从请求中解析调用者身份，解析失败返回空UserMeta
func ExtractUserMeta(ctx context.Context) (user *basic.UserMeta) {
	if meta, ok := ctx.Value(userMetaContext).(*basic.UserMeta); ok {
		return meta
	}
	user = new(basic.UserMeta)
	var err error
	defer func() {
		if err != nil {
			log.CtxInfo(ctx, "extract user meta fail, err=%v", err)
		}
	}()
	c, ok := ExtractContext(ctx)
	if !ok {
		return
	}
	tokenString := strings.TrimPrefix(string(c.GetHeader("Authorization")), "Bearer ")
	token, err := jwt.Parse(tokenString, func(_ *jwt.Token) (interface{}, error) {
		return []byte(config.GetConfig().Auth.SecretKey), nil
	})
	if err != nil {
		return
	}
	if !token.Valid {
		err = jwt.ErrTokenUnverifiable
		return
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return
	}
	user.UserId = cast.ToString(claims["userId"])
	return
}

// GenerateJwtToken 签发jwt，有效期由配置决定（默认7天）
func GenerateJwtToken(userID string) (string, int64, error) {
	iat := time.Now().Unix()
	exp := iat + config.GetConfig().Auth.AccessExpire
	claims := make(jwt.MapClaims)
	claims["exp"] = exp
	claims["iat"] = iat
	claims["userId"] = userID
	token := jwt.New(jwt.SigningMethodHS256)
	token.Claims = claims
	tokenString, err := token.SignedString([]byte(config.GetConfig().Auth.SecretKey))
	if err != nil {
		return "", 0, err
	}
	return tokenString, exp, nil
}
