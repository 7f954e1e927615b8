package adaptor

import (
	"context"
	"net/http"

	"school-leave/biz/infrastructure/util"
	"school-leave/biz/infrastructure/util/log"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// PostProcess 统一写回响应，错误按 {message} 形式返回
func PostProcess(ctx context.Context, c *app.RequestContext, req, resp any, err error) {
	log.CtxInfo(ctx, "[%s] req=%s, resp=%s, err=%v", c.Path(), util.JSONF(req), util.JSONF(resp), err)
	if err == nil {
		c.JSON(http.StatusOK, resp)
		return
	}
	s, ok := status.FromError(err)
	if !ok || s.Code() == codes.Unknown || s.Code() == codes.Internal {
		// 内部错误不向调用方暴露细节
		log.CtxError(ctx, "[%s] internal error: %v", c.Path(), err)
		c.JSON(http.StatusInternalServerError, utils.H{"message": "Server error"})
		return
	}
	c.JSON(httpCode(s.Code()), utils.H{"message": s.Message()})
}

func httpCode(code codes.Code) int {
	switch code {
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.NotFound:
		return http.StatusNotFound
	case codes.InvalidArgument, codes.AlreadyExists, codes.FailedPrecondition:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
