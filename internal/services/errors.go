package services

import (
	"errors"
	"fmt"
)

// 服务层错误分类，handler 通过 errors.Is 映射 HTTP 状态码
var (
	// ErrNotFound 表示请求的记录不存在 (404)
	ErrNotFound = errors.New("记录未找到")
	// ErrInvalidRequest 表示违反业务规则 (400)
	ErrInvalidRequest = errors.New("请求无效")
	// ErrConflict 表示唯一约束冲突或仍被引用 (409)
	ErrConflict = errors.New("资源冲突")
)

var (
	ErrCaseNotFound            = fmt.Errorf("%w: 案件", ErrNotFound)
	ErrCompanyNotFound         = fmt.Errorf("%w: 公司", ErrNotFound)
	ErrNameChangeNotFound      = fmt.Errorf("%w: 名称变更记录", ErrNotFound)
	ErrRegistrarNotFound       = fmt.Errorf("%w: RTA", ErrNotFound)
	ErrRegistrarBranchNotFound = fmt.Errorf("%w: RTA 分支机构", ErrNotFound)

	ErrInvalidCaseType      = fmt.Errorf("%w: 案件类型无效", ErrInvalidRequest)
	ErrInvalidFlag          = fmt.Errorf("%w: 标志只能为 Yes 或 No", ErrInvalidRequest)
	ErrInvalidDate          = fmt.Errorf("%w: 日期格式无效", ErrInvalidRequest)
	ErrInvalidPAN           = fmt.Errorf("%w: PAN 格式无效", ErrInvalidRequest)
	ErrLastNameChange       = fmt.Errorf("%w: 不能删除公司唯一的名称记录", ErrInvalidRequest)
	ErrNameChangeCompanyMix = fmt.Errorf("%w: 名称记录不能改挂到其他公司", ErrInvalidRequest)

	ErrDuplicateRecord = fmt.Errorf("%w: 记录已存在", ErrConflict)
	ErrRegistrarInUse  = fmt.Errorf("%w: RTA 仍有关联的分支机构", ErrConflict)
	ErrBranchInUse     = fmt.Errorf("%w: RTA 分支机构仍被公司引用", ErrConflict)

	ErrInvalidCredentials = errors.New("用户名或密码错误")
)
