package models

import (
	"strings"
	"time"
)

// CaseType 标识案件的业务流程
type CaseType string

const (
	CaseTypeClaim                                   CaseType = "Claim"
	CaseTypeClaimIssueDuplicate                     CaseType = "ClaimIssueDuplicate"
	CaseTypeTransmission                            CaseType = "Transmission"
	CaseTypeTransmissionIssueDuplicate              CaseType = "TransmissionIssueDuplicate"
	CaseTypeTransmissionTransposition               CaseType = "TransmissionTransposition"
	CaseTypeTransmissionIssueDuplicateTransposition CaseType = "TransmissionIssueDuplicateTransposition"
	CaseTypeDeletion                                CaseType = "Deletion"
	CaseTypeDeletionIssueDuplicate                  CaseType = "DeletionIssueDuplicate"
	CaseTypeDeletionTransposition                   CaseType = "DeletionTransposition"
	CaseTypeDeletionIssueDuplicateTransposition     CaseType = "DeletionIssueDuplicateTransposition"
)

// AllCaseTypes 列出所有已定义的案件类型
var AllCaseTypes = []CaseType{
	CaseTypeClaim,
	CaseTypeClaimIssueDuplicate,
	CaseTypeTransmission,
	CaseTypeTransmissionIssueDuplicate,
	CaseTypeTransmissionTransposition,
	CaseTypeTransmissionIssueDuplicateTransposition,
	CaseTypeDeletion,
	CaseTypeDeletionIssueDuplicate,
	CaseTypeDeletionTransposition,
	CaseTypeDeletionIssueDuplicateTransposition,
}

// Valid reports whether t is one of the defined case types.
func (t CaseType) Valid() bool {
	for _, ct := range AllCaseTypes {
		if ct == t {
			return true
		}
	}
	return false
}

// IsTransmission 对应 caseType 中包含 "Transmission" 子串
func (t CaseType) IsTransmission() bool {
	return strings.Contains(string(t), "Transmission")
}

// 三态标志取值
const (
	FlagYes = "Yes"
	FlagNo  = "No"
)

// Case 对应于数据库中的 cases 表
type Case struct {
	ID                 int64             `json:"id" gorm:"primaryKey;autoIncrement"`
	CaseType           CaseType          `json:"caseType" gorm:"column:case_type;not null;size:64;index"`
	ShareCertificateID int64             `json:"shareCertificateId" gorm:"column:share_certificate_id;not null;index"`
	ShareCertificate   *ShareCertificate `json:"shareCertificate,omitempty" gorm:"foreignKey:ShareCertificateID"`

	// 多选 id 列表
	Folios                     IDList `json:"folios" gorm:"column:folios"`
	SelectClaimant             IDList `json:"selectClaimant" gorm:"column:select_claimant"`
	SelectNomination           IDList `json:"selectNomination" gorm:"column:select_nomination"`
	TranspositionOrder         IDList `json:"transpositionOrder" gorm:"column:transposition_order"`
	SelectAffidavitShareholder IDList `json:"selectAffidavitShareholder" gorm:"column:select_affidavit_shareholder"`
	SelectAffidavitLegalHeir   IDList `json:"selectAffidavitLegalHeir" gorm:"column:select_affidavit_legal_heir"`

	// 三态 Yes/No 标志
	IsDeceased     string `json:"isDeceased" gorm:"column:is_deceased;size:8"`
	IsMinor        string `json:"isMinor" gorm:"column:is_minor;size:8"`
	IsTestate      string `json:"isTestate" gorm:"column:is_testate;size:8"`
	AllowAffidavit string `json:"allowAffidavit" gorm:"column:allow_affidavit;size:8"`

	// 身故 / 未成年信息
	DeadShareholderID *int64     `json:"deadShareholderId,omitempty" gorm:"column:dead_shareholder_id"`
	DOD               *time.Time `json:"dod,omitempty" gorm:"column:dod;type:date"`
	PlaceOfDeath      string     `json:"placeOfDeath" gorm:"column:place_of_death;size:255"`
	DOBMinor          *time.Time `json:"dobMinor,omitempty" gorm:"column:dob_minor;type:date"`
	GuardianName      string     `json:"guardianName" gorm:"column:guardian_name;size:255"`
	GuardianRelation  string     `json:"guardianRelation" gorm:"column:guardian_relation;size:100"`
	GuardianPAN       string     `json:"guardianPan" gorm:"column:guardian_pan;size:20"`

	Document  *string   `json:"document,omitempty" gorm:"column:document;size:512"` // 上传附件的存储路径
	Remarks   *string   `json:"remarks,omitempty" gorm:"column:remarks;type:text"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName 指定 Case 结构体对应的数据库表名
func (Case) TableName() string {
	return "cases"
}

// Flag 判断三态标志是否为 Yes
func Flag(v string) bool {
	return v == FlagYes
}

// ValidFlag 允许 Yes、No 或空
func ValidFlag(v string) bool {
	return v == "" || v == FlagYes || v == FlagNo
}

// CasePayload 是创建 / 更新案件的请求体
type CasePayload struct {
	CaseType                   CaseType `json:"caseType" binding:"required,max=64"`
	ShareCertificateID         int64    `json:"shareCertificateId" binding:"required,gt=0"`
	Folios                     IDList   `json:"folios"`
	SelectClaimant             IDList   `json:"selectClaimant"`
	SelectNomination           IDList   `json:"selectNomination"`
	TranspositionOrder         IDList   `json:"transpositionOrder"`
	SelectAffidavitShareholder IDList   `json:"selectAffidavitShareholder"`
	SelectAffidavitLegalHeir   IDList   `json:"selectAffidavitLegalHeir"`
	IsDeceased                 string   `json:"isDeceased" binding:"omitempty,oneof=Yes No"`
	IsMinor                    string   `json:"isMinor" binding:"omitempty,oneof=Yes No"`
	IsTestate                  string   `json:"isTestate" binding:"omitempty,oneof=Yes No"`
	AllowAffidavit             string   `json:"allowAffidavit" binding:"omitempty,oneof=Yes No"`
	DeadShareholderID          *int64   `json:"deadShareholderId,omitempty"`
	DOD                        string   `json:"dod" binding:"omitempty,datetime=2006-01-02"`
	PlaceOfDeath               string   `json:"placeOfDeath" binding:"max=255"`
	DOBMinor                   string   `json:"dobMinor" binding:"omitempty,datetime=2006-01-02"`
	GuardianName               string   `json:"guardianName" binding:"max=255"`
	GuardianRelation           string   `json:"guardianRelation" binding:"max=100"`
	GuardianPAN                string   `json:"guardianPan" binding:"max=20"`
	Remarks                    *string  `json:"remarks,omitempty"`
}

// EnrichedCase 是案件与解析后的关联记录的组合视图
type EnrichedCase struct {
	Case
	FoliosSet             []Folio             `json:"foliosSet"`
	Claimants             []LegalHeirDetail   `json:"clamaints"`
	Order                 []ShareHolderDetail `json:"order"`
	AffidavitShareholders []ShareHolderDetail `json:"affidavitShareholders"`
	AffidavitLegalHeirs   []LegalHeirDetail   `json:"affidavitLegalHeirs"`
	Nominations           []Nomination        `json:"nominations"`
}
