package services

import (
	"errors"
	"fmt"
)

// 核心层的三类错误，handler 据此决定渲染 404/403/400 页面。
// 所有错误都同步返回给调用方，不做自动重试。
var (
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrValidation = errors.New("validation failed")
)

// ErrSelfFollow 自己关注自己，和原始行为一致按"找不到"处理
var ErrSelfFollow = fmt.Errorf("%w: cannot follow yourself", ErrForbidden)
