package consts

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Errno struct {
	err  error
	code codes.Code
}

// GRPCStatus 实现 GRPCStatus 方法
func (en *Errno) GRPCStatus() *status.Status {
	return status.New(en.code, en.err.Error())
}

// 实现 Error 方法
func (en *Errno) Error() string {
	return en.err.Error()
}

// NewErrno 创建自定义错误
func NewErrno(code codes.Code, err error) *Errno {
	return &Errno{
		err:  err,
		code: code,
	}
}

// 认证与权限
var (
	ErrNotAuthentication = NewErrno(codes.Unauthenticated, errors.New("Unauthorized"))
	ErrInvalidToken      = NewErrno(codes.Unauthenticated, errors.New("Invalid token"))
	ErrForbidden         = NewErrno(codes.PermissionDenied, errors.New("Forbidden: Moderator only"))
	ErrInvalidCredential = NewErrno(codes.InvalidArgument, errors.New("Invalid credentials"))
)

// 业务错误
var (
	ErrClassNotFound     = NewErrno(codes.NotFound, errors.New("Class not found"))
	ErrStudentNotFound   = NewErrno(codes.NotFound, errors.New("Student not found"))
	ErrTeacherNotFound   = NewErrno(codes.NotFound, errors.New("Teacher not found"))
	ErrEmailInUse        = NewErrno(codes.AlreadyExists, errors.New("Email already in use"))
	ErrNoClassAssigned   = NewErrno(codes.FailedPrecondition, errors.New("No class assigned"))
	ErrStudentNotInClass = NewErrno(codes.PermissionDenied, errors.New("Student not in your class"))
)

// 数据库相关错误
var (
	ErrNotFound        = NewErrno(codes.NotFound, errors.New("not found"))
	ErrInvalidObjectId = NewErrno(codes.InvalidArgument, errors.New("Invalid id"))
	ErrInsert          = NewErrno(codes.Internal, errors.New("Server error"))
	ErrUpdate          = NewErrno(codes.Internal, errors.New("Server error"))
	ErrDelete          = NewErrno(codes.Internal, errors.New("Server error"))
)
