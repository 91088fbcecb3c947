package models

import "time"

// PersonDetail 是持有人与法定继承人共用的 KYC / 银行字段
type PersonDetail struct {
	ProjectID     int64      `json:"projectId" gorm:"column:project_id;not null;index"`
	Name          string     `json:"name" gorm:"column:name;not null;size:255"`
	FatherName    string     `json:"fatherName" gorm:"column:father_name;size:255"`
	PAN           string     `json:"pan" gorm:"column:pan;size:20"`
	Aadhaar       string     `json:"aadhaar" gorm:"column:aadhaar;size:20"`
	DOB           *time.Time `json:"dob,omitempty" gorm:"column:dob;type:date"`
	Age           int        `json:"age" gorm:"column:age"`
	Occupation    string     `json:"occupation" gorm:"column:occupation;size:100"`
	Address       string     `json:"address" gorm:"column:address;type:text"`
	City          string     `json:"city" gorm:"column:city;size:100"`
	State         string     `json:"state" gorm:"column:state;size:100"`
	PinCode       string     `json:"pinCode" gorm:"column:pin_code;size:10"`
	Mobile        string     `json:"mobile" gorm:"column:mobile;size:20"`
	Email         string     `json:"email" gorm:"column:email;size:255"`
	BankName      string     `json:"bankName" gorm:"column:bank_name;size:255"`
	BankBranch    string     `json:"bankBranch" gorm:"column:bank_branch;size:255"`
	BankAddress   string     `json:"bankAddress" gorm:"column:bank_address;type:text"`
	AccountNumber string     `json:"accountNumber" gorm:"column:account_number;size:50"`
	AccountType   string     `json:"accountType" gorm:"column:account_type;size:50"`
	IFSC          string     `json:"ifsc" gorm:"column:ifsc;size:20"`
	MICR          string     `json:"micr" gorm:"column:micr;size:20"`
	DematAccount  string     `json:"dematAccount" gorm:"column:demat_account;size:50"`
}

// ShareHolderDetail 对应于数据库中的 share_holder_details 表
type ShareHolderDetail struct {
	ID int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	PersonDetail
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName 指定 ShareHolderDetail 结构体对应的数据库表名
func (ShareHolderDetail) TableName() string {
	return "share_holder_details"
}

// LegalHeirDetail 对应于数据库中的 legal_heir_details 表
type LegalHeirDetail struct {
	ID int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	PersonDetail
	DeceasedRelationship string    `json:"deceasedRelationship" gorm:"column:deceased_relationship;size:100"`
	CreatedAt            time.Time `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt            time.Time `json:"updatedAt" gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName 指定 LegalHeirDetail 结构体对应的数据库表名
func (LegalHeirDetail) TableName() string {
	return "legal_heir_details"
}

// Nomination 保存被提名人、监护人以及已故被提名人的信息
type Nomination struct {
	ID                   int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	ProjectID            int64      `json:"projectId" gorm:"column:project_id;not null;index"`
	NomineeName          string     `json:"nomineeName" gorm:"column:nominee_name;not null;size:255"`
	NomineeRelationship  string     `json:"nomineeRelationship" gorm:"column:nominee_relationship;size:100"`
	NomineeFatherName    string     `json:"nomineeFatherName" gorm:"column:nominee_father_name;size:255"`
	NomineeDOB           *time.Time `json:"nomineeDob,omitempty" gorm:"column:nominee_dob;type:date"`
	NomineeOccupation    string     `json:"nomineeOccupation" gorm:"column:nominee_occupation;size:100"`
	NomineeNationality   string     `json:"nomineeNationality" gorm:"column:nominee_nationality;size:100"`
	NomineeAddress       string     `json:"nomineeAddress" gorm:"column:nominee_address;type:text"`
	NomineeEmail         string     `json:"nomineeEmail" gorm:"column:nominee_email;size:255"`
	NomineeMobile        string     `json:"nomineeMobile" gorm:"column:nominee_mobile;size:20"`
	NomineePAN           string     `json:"nomineePan" gorm:"column:nominee_pan;size:20"`
	GuardianName         string     `json:"guardianName" gorm:"column:guardian_name;size:255"`
	GuardianAddress      string     `json:"guardianAddress" gorm:"column:guardian_address;type:text"`
	GuardianRelationship string     `json:"guardianRelationship" gorm:"column:guardian_relationship;size:100"`
	DeceasedNomineeName  string     `json:"deceasedNomineeName" gorm:"column:deceased_nominee_name;size:255"`
	DeceasedNomineeDOD   *time.Time `json:"deceasedNomineeDod,omitempty" gorm:"column:deceased_nominee_dod;type:date"`
	CreatedAt            time.Time  `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt            time.Time  `json:"updatedAt" gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName 指定 Nomination 结构体对应的数据库表名
func (Nomination) TableName() string {
	return "nominations"
}

// MinorNominee 当被提名人未满 18 岁时返回 true
func (n Nomination) MinorNominee(at time.Time) bool {
	if n.NomineeDOB == nil {
		return false
	}
	return n.NomineeDOB.AddDate(18, 0, 0).After(at)
}
