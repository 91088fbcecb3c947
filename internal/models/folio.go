package models

import (
	"math"
	"time"
)

// Project 是一组证书批次和人员记录的上级项目
type Project struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"column:name;not null;size:255"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName 指定 Project 结构体对应的数据库表名
func (Project) TableName() string {
	return "projects"
}

// ShareCertificate 是案件所属的证书批次，关联公司与项目
type ShareCertificate struct {
	ID        int64          `json:"id" gorm:"primaryKey;autoIncrement"`
	ProjectID int64          `json:"projectId" gorm:"column:project_id;not null;index"`
	Project   *Project       `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
	CompanyID int64          `json:"companyId" gorm:"column:company_id;not null;index"`
	Company   *CompanyMaster `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
	CreatedAt time.Time      `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time      `json:"updatedAt" gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName 指定 ShareCertificate 结构体对应的数据库表名
func (ShareCertificate) TableName() string {
	return "share_certificates"
}

// Folio 对应于数据库中的 folios 表
// ShareholderName1/2/3 引用 ShareHolderDetail 的 id
type Folio struct {
	ID                 int64         `json:"id" gorm:"primaryKey;autoIncrement"`
	ShareCertificateID int64         `json:"shareCertificateId" gorm:"column:share_certificate_id;not null;index"`
	FolioNumber        string        `json:"folioNumber" gorm:"column:folio_number;not null;size:100"`
	ShareholderName1   *int64        `json:"shareholderName1,omitempty" gorm:"column:shareholder_name1"`
	ShareholderName2   *int64        `json:"shareholderName2,omitempty" gorm:"column:shareholder_name2"`
	ShareholderName3   *int64        `json:"shareholderName3,omitempty" gorm:"column:shareholder_name3"`
	Certificates       []Certificate `json:"certificates" gorm:"foreignKey:FolioID"`
	CreatedAt          time.Time     `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt          time.Time     `json:"updatedAt" gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName 指定 Folio 结构体对应的数据库表名
func (Folio) TableName() string {
	return "folios"
}

// ShareholderSlots 按 1..3 的顺序返回持有人引用
func (f Folio) ShareholderSlots() [3]*int64 {
	return [3]*int64{f.ShareholderName1, f.ShareholderName2, f.ShareholderName3}
}

// TotalShares 是所有证书股数之和，溢出时截断为 math.MaxInt64
func (f Folio) TotalShares() int64 {
	var total int64
	for _, c := range f.Certificates {
		if c.NoOfShares > 0 && total > math.MaxInt64-c.NoOfShares {
			return math.MaxInt64
		}
		total += c.NoOfShares
	}
	return total
}

// LatestCertificate 返回按 action date 排序后的最后一张证书
func (f Folio) LatestCertificate() *Certificate {
	if len(f.Certificates) == 0 {
		return nil
	}
	return &f.Certificates[len(f.Certificates)-1]
}

// Certificate 是 folio 下的一张实体股票证书
// ShareholderNameNTxt 是证书上印刷的名字，独立于 ShareHolderDetail
type Certificate struct {
	ID                  int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	FolioID             int64      `json:"folioId" gorm:"column:folio_id;not null;index"`
	CertificateNumber   string     `json:"certificateNumber" gorm:"column:certificate_number;size:100"`
	NoOfShares          int64      `json:"noOfShares" gorm:"column:no_of_shares;not null;default:0"`
	DistinctiveNoFrom   int64      `json:"distinctiveNoFrom" gorm:"column:distinctive_no_from"`
	DistinctiveNoTo     int64      `json:"distinctiveNoTo" gorm:"column:distinctive_no_to"`
	FaceValue           float64    `json:"faceValue" gorm:"column:face_value"`
	DateOfAllotment     *time.Time `json:"dateOfAllotment,omitempty" gorm:"column:date_of_allotment;type:date"`
	ActionDate          *time.Time `json:"actionDate,omitempty" gorm:"column:action_date"`
	ShareholderName1Txt string     `json:"shareholderName1Txt" gorm:"column:shareholder_name1_txt;size:255"`
	ShareholderName2Txt string     `json:"shareholderName2Txt" gorm:"column:shareholder_name2_txt;size:255"`
	ShareholderName3Txt string     `json:"shareholderName3Txt" gorm:"column:shareholder_name3_txt;size:255"`
	CreatedAt           time.Time  `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt           time.Time  `json:"updatedAt" gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName 指定 Certificate 结构体对应的数据库表名
func (Certificate) TableName() string {
	return "certificates"
}

// NameTxt 返回第 slot (1..3) 个印刷名字
func (c Certificate) NameTxt(slot int) string {
	switch slot {
	case 1:
		return c.ShareholderName1Txt
	case 2:
		return c.ShareholderName2Txt
	case 3:
		return c.ShareholderName3Txt
	}
	return ""
}
