package models

import (
	"sort"
	"time"
)

// RegistrarMaster 对应于数据库中的 registrar_masters 表 (RTA)
type RegistrarMaster struct {
	ID            int64                   `json:"id" gorm:"primaryKey;autoIncrement"`
	RegistrarName string                  `json:"registrarName" gorm:"column:registrar_name;not null;size:255"`
	SebiRegNo     string                  `json:"sebiRegNo" gorm:"column:sebi_reg_no;size:100"`
	Address       string                  `json:"address" gorm:"column:address;type:text"`
	ContactPerson string                  `json:"contactPerson" gorm:"column:contact_person;size:255"`
	Email         string                  `json:"email" gorm:"column:email;size:255"`
	Phone         string                  `json:"phone" gorm:"column:phone;size:50"`
	Website       string                  `json:"website" gorm:"column:website;size:255"`
	Branches      []RegistrarMasterBranch `json:"branches,omitempty" gorm:"foreignKey:RegistrarMasterID"`
	CreatedAt     time.Time               `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt     time.Time               `json:"updatedAt" gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName 指定 RegistrarMaster 结构体对应的数据库表名
func (RegistrarMaster) TableName() string {
	return "registrar_masters"
}

// RegistrarMasterBranch 对应于数据库中的 registrar_master_branches 表
type RegistrarMasterBranch struct {
	ID                int64            `json:"id" gorm:"primaryKey;autoIncrement"`
	RegistrarMasterID int64            `json:"registrarMasterId" gorm:"column:registrar_master_id;not null;index"`
	RegistrarMaster   *RegistrarMaster `json:"registrarMaster,omitempty" gorm:"foreignKey:RegistrarMasterID"`
	BranchName        string           `json:"branchName" gorm:"column:branch_name;not null;size:255"`
	Address           string           `json:"address" gorm:"column:address;type:text"`
	City              string           `json:"city" gorm:"column:city;size:100"`
	State             string           `json:"state" gorm:"column:state;size:100"`
	PinCode           string           `json:"pinCode" gorm:"column:pin_code;size:10"`
	ContactPerson     string           `json:"contactPerson" gorm:"column:contact_person;size:255"`
	Email             string           `json:"email" gorm:"column:email;size:255"`
	Phone             string           `json:"phone" gorm:"column:phone;size:50"`
	CreatedAt         time.Time        `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt         time.Time        `json:"updatedAt" gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName 指定 RegistrarMasterBranch 结构体对应的数据库表名
func (RegistrarMasterBranch) TableName() string {
	return "registrar_master_branches"
}

// CompanyMaster 对应于数据库中的 company_masters 表
// 公司名称以 NameChanges 的最新一条为准
type CompanyMaster struct {
	ID                      int64                  `json:"id" gorm:"primaryKey;autoIncrement"`
	ISIN                    string                 `json:"isin" gorm:"column:isin;size:20;index"`
	CIN                     string                 `json:"cin" gorm:"column:cin;size:30"`
	FaceValue               float64                `json:"faceValue" gorm:"column:face_value"`
	Address                 string                 `json:"address" gorm:"column:address;type:text"`
	Email                   string                 `json:"email" gorm:"column:email;size:255"`
	Phone                   string                 `json:"phone" gorm:"column:phone;size:50"`
	RegistrarMasterBranchID *int64                 `json:"registrarMasterBranchId,omitempty" gorm:"column:registrar_master_branch_id;index"`
	RegistrarMasterBranch   *RegistrarMasterBranch `json:"registrarMasterBranch,omitempty" gorm:"foreignKey:RegistrarMasterBranchID"`
	NameChanges             []NameChangeMaster     `json:"nameChanges,omitempty" gorm:"foreignKey:CompanyID"`
	CreatedAt               time.Time              `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt               time.Time              `json:"updatedAt" gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName 指定 CompanyMaster 结构体对应的数据库表名
func (CompanyMaster) TableName() string {
	return "company_masters"
}

// NameChangeMaster 记录公司在某个时间点的名称与代码
type NameChangeMaster struct {
	ID               int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	CompanyID        int64     `json:"companyId" gorm:"column:company_id;not null;index"`
	CompanyName      string    `json:"companyName" gorm:"column:company_name;not null;size:255"`
	Ticker           string    `json:"ticker" gorm:"column:ticker;size:50"`
	DateOfNameChange time.Time `json:"dateOfNameChange" gorm:"column:date_of_name_change;type:date;not null"`
	CreatedAt        time.Time `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt        time.Time `json:"updatedAt" gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName 指定 NameChangeMaster 结构体对应的数据库表名
func (NameChangeMaster) TableName() string {
	return "name_change_masters"
}

// SortedNameChanges 按时间升序返回名称历史，同日期按 id 排序
func (c CompanyMaster) SortedNameChanges() []NameChangeMaster {
	history := make([]NameChangeMaster, len(c.NameChanges))
	copy(history, c.NameChanges)
	sort.SliceStable(history, func(i, j int) bool {
		if history[i].DateOfNameChange.Equal(history[j].DateOfNameChange) {
			return history[i].ID < history[j].ID
		}
		return history[i].DateOfNameChange.Before(history[j].DateOfNameChange)
	})
	return history
}

// CurrentName 是最新一条名称记录
func (c CompanyMaster) CurrentName() string {
	history := c.SortedNameChanges()
	if len(history) == 0 {
		return ""
	}
	return history[len(history)-1].CompanyName
}

// PreviousName 是最新记录之前的一条，没有历史时为空
func (c CompanyMaster) PreviousName() string {
	history := c.SortedNameChanges()
	if len(history) < 2 {
		return ""
	}
	return history[len(history)-2].CompanyName
}

// CurrentTicker 返回最新的代码
func (c CompanyMaster) CurrentTicker() string {
	history := c.SortedNameChanges()
	if len(history) == 0 {
		return ""
	}
	return history[len(history)-1].Ticker
}

// CompanyResponse 在公司记录上附加由名称历史推导出的当前 / 曾用名称
type CompanyResponse struct {
	CompanyMaster
	CompanyName  string `json:"companyName"`
	PreviousName string `json:"previousName"`
	Ticker       string `json:"ticker"`
}

// NewCompanyResponse 构造公司响应
func NewCompanyResponse(c CompanyMaster) CompanyResponse {
	return CompanyResponse{
		CompanyMaster: c,
		CompanyName:   c.CurrentName(),
		PreviousName:  c.PreviousName(),
		Ticker:        c.CurrentTicker(),
	}
}
