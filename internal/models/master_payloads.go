package models

// CompanyPayload 是创建 / 更新公司的请求体
// 创建时 CompanyName 会写入第一条名称记录
type CompanyPayload struct {
	CompanyName             string  `json:"companyName" binding:"required,max=255"`
	Ticker                  string  `json:"ticker" binding:"max=50"`
	ISIN                    string  `json:"isin" binding:"omitempty,len=12,alphanum"`
	CIN                     string  `json:"cin" binding:"max=30"`
	FaceValue               float64 `json:"faceValue" binding:"gte=0"`
	Address                 string  `json:"address"`
	Email                   string  `json:"email" binding:"omitempty,email"`
	Phone                   string  `json:"phone" binding:"max=50"`
	RegistrarMasterBranchID *int64  `json:"registrarMasterBranchId,omitempty"`
	DateOfNameChange        string  `json:"dateOfNameChange" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateCompanyPayload 只更新公司自身字段，名称变更通过 NameChangeMaster 维护
type UpdateCompanyPayload struct {
	ISIN                    *string  `json:"isin,omitempty" binding:"omitempty,len=12,alphanum"`
	CIN                     *string  `json:"cin,omitempty" binding:"omitempty,max=30"`
	FaceValue               *float64 `json:"faceValue,omitempty" binding:"omitempty,gte=0"`
	Address                 *string  `json:"address,omitempty"`
	Email                   *string  `json:"email,omitempty" binding:"omitempty,email"`
	Phone                   *string  `json:"phone,omitempty" binding:"omitempty,max=50"`
	RegistrarMasterBranchID *int64   `json:"registrarMasterBranchId,omitempty"`
}

// NameChangePayload 是新增 / 修改名称历史的请求体
type NameChangePayload struct {
	CompanyID        int64  `json:"companyId" binding:"required,gt=0"`
	CompanyName      string `json:"companyName" binding:"required,max=255"`
	Ticker           string `json:"ticker" binding:"max=50"`
	DateOfNameChange string `json:"dateOfNameChange" binding:"required,datetime=2006-01-02"`
}

// RegistrarPayload 是 RTA 的请求体
type RegistrarPayload struct {
	RegistrarName string `json:"registrarName" binding:"required,max=255"`
	SebiRegNo     string `json:"sebiRegNo" binding:"max=100"`
	Address       string `json:"address"`
	ContactPerson string `json:"contactPerson" binding:"max=255"`
	Email         string `json:"email" binding:"omitempty,email"`
	Phone         string `json:"phone" binding:"max=50"`
	Website       string `json:"website" binding:"omitempty,url"`
}

// RegistrarBranchPayload 是 RTA 分支机构的请求体
type RegistrarBranchPayload struct {
	RegistrarMasterID int64  `json:"registrarMasterId" binding:"required,gt=0"`
	BranchName        string `json:"branchName" binding:"required,max=255"`
	Address           string `json:"address"`
	City              string `json:"city" binding:"max=100"`
	State             string `json:"state" binding:"max=100"`
	PinCode           string `json:"pinCode" binding:"omitempty,numeric,len=6"`
	ContactPerson     string `json:"contactPerson" binding:"max=255"`
	Email             string `json:"email" binding:"omitempty,email"`
	Phone             string `json:"phone" binding:"max=50"`
}

// ListQuery 是列表接口共用的分页 / 搜索参数
type ListQuery struct {
	Page      int    `form:"page,default=1"`
	Limit     int    `form:"limit,default=10"`
	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder,default=desc"`
	Search    string `form:"search"`
}

// Normalize 修正非法的分页参数
func (q *ListQuery) Normalize() {
	if q.SortOrder != "asc" && q.SortOrder != "desc" {
		q.SortOrder = "desc" // 确保是有效值，否则默认为 desc
	}
	if q.Limit <= 0 {
		q.Limit = 10
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
	if q.Page <= 0 {
		q.Page = 1
	}
}

// Offset 返回当前页的偏移量
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}
