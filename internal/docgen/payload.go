package docgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/share_registry/internal/models"
	"github.com/share_registry/pkg/utils"
)

// Person 是扁平化后的持有人 / 继承人字段，日期已格式化
type Person struct {
	ID            int64
	Name          string
	FatherName    string
	Relationship  string // 与身故持有人的关系，仅继承人有值
	PAN           string
	Aadhaar       string
	DOB           string
	Age           string
	Occupation    string
	Address       string
	City          string
	State         string
	PinCode       string
	Mobile        string
	Email         string
	BankName      string
	BankBranch    string
	BankAddress   string
	AccountNumber string
	AccountType   string
	IFSC          string
	MICR          string
	DematAccount  string
}

// FullAddress 把地址、城市、邦与邮编拼成一行
func (p Person) FullAddress() string {
	parts := make([]string, 0, 4)
	for _, s := range []string{p.Address, p.City, p.State, p.PinCode} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

// ShareholderSlot 是 folio 的第 N 个持有人
type ShareholderSlot struct {
	Slot              int
	Present           bool
	NameOnCertificate string // 最新证书上印刷的名字
	Person
}

// DisplayName 优先使用证书上的名字
func (s ShareholderSlot) DisplayName() string {
	if s.NameOnCertificate != "" {
		return s.NameOnCertificate
	}
	return s.Name
}

// CertificateLine 是证书表格中的一行
type CertificateLine struct {
	SerialNo           int
	CertificateNumber  string
	NoOfShares         string
	DistinctiveNos     string // "{from}-{to}"
	FaceValue          string
	DateOfAllotment    string
	NamesOnCertificate string
}

// Nominee 是扁平化后的提名记录
type Nominee struct {
	ID                   int64
	Name                 string
	Relationship         string
	FatherName           string
	DOB                  string
	IsMinor              bool
	Occupation           string
	Nationality          string
	Address              string
	Email                string
	Mobile               string
	PAN                  string
	GuardianName         string
	GuardianAddress      string
	GuardianRelationship string
	DeceasedNomineeName  string
	DeceasedNomineeDOD   string
}

// Payload 是生成一个 folio 全部文档所需的数据
type Payload struct {
	CaseID   int64
	CaseType models.CaseType
	Date     string // 文档落款日期

	CompanyName     string
	CompanyOldName  string
	CompanyOldName2 string // 无历史名称时回落为当前名称
	CompanyTicker   string
	CompanyISIN     string
	CompanyCIN      string
	CompanyAddress  string
	FaceValue       string

	RTAName          string
	RTASebiRegNo     string
	RTABranch        string
	RTAAddress       string
	RTAContactPerson string
	RTAEmail         string
	RTAPhone         string

	FolioNumber                  string
	CombinedTotalNoOfShares      int64
	CombinedTotalNoOfSharesWords string
	Shareholders                 [3]ShareholderSlot
	Certificates                 []CertificateLine

	Claimants    []Person
	NonClaimants []Person
	LegalHeirs   []Person // 项目下全部法定继承人
	Nominees     []Nominee
	Survivors    []string // 扣除身故持有人后的证书名字

	IsDeceased         bool
	DeceasedName       string
	DateOfDeath        string
	PlaceOfDeath       string
	IsTestate          bool
	IsMinor            bool
	MinorDOB           string
	GuardianName       string
	GuardianRelation   string
	GuardianPAN        string
	TranspositionOrder []string

	AffidavitDeponents []Person
}

// HolderNames 返回存在的持有人名字 (证书名优先)
func (p *Payload) HolderNames() []string {
	names := make([]string, 0, 3)
	for _, s := range p.Shareholders {
		if s.Present {
			names = append(names, s.DisplayName())
		}
	}
	return names
}

// PresentHolders 返回存在的持有人槽位
func (p *Payload) PresentHolders() []ShareholderSlot {
	out := make([]ShareholderSlot, 0, 3)
	for _, s := range p.Shareholders {
		if s.Present {
			out = append(out, s)
		}
	}
	return out
}

// PersonFromShareholder 扁平化持有人记录
func PersonFromShareholder(h models.ShareHolderDetail) Person {
	p := fromDetail(h.PersonDetail)
	p.ID = h.ID
	return p
}

// PersonFromLegalHeir 扁平化继承人记录
func PersonFromLegalHeir(h models.LegalHeirDetail) Person {
	p := fromDetail(h.PersonDetail)
	p.ID = h.ID
	p.Relationship = h.DeceasedRelationship
	return p
}

func fromDetail(d models.PersonDetail) Person {
	age := ""
	if d.Age > 0 {
		age = strconv.Itoa(d.Age)
	}
	return Person{
		Name:          d.Name,
		FatherName:    d.FatherName,
		PAN:           d.PAN,
		Aadhaar:       d.Aadhaar,
		DOB:           utils.FormatDate(d.DOB),
		Age:           age,
		Occupation:    d.Occupation,
		Address:       d.Address,
		City:          d.City,
		State:         d.State,
		PinCode:       d.PinCode,
		Mobile:        d.Mobile,
		Email:         d.Email,
		BankName:      d.BankName,
		BankBranch:    d.BankBranch,
		BankAddress:   d.BankAddress,
		AccountNumber: d.AccountNumber,
		AccountType:   d.AccountType,
		IFSC:          d.IFSC,
		MICR:          d.MICR,
		DematAccount:  d.DematAccount,
	}
}

// NomineeFrom 扁平化提名记录，minor 由调用方根据落款日期计算
func NomineeFrom(n models.Nomination, minor bool) Nominee {
	return Nominee{
		ID:                   n.ID,
		Name:                 n.NomineeName,
		Relationship:         n.NomineeRelationship,
		FatherName:           n.NomineeFatherName,
		DOB:                  utils.FormatDate(n.NomineeDOB),
		IsMinor:              minor,
		Occupation:           n.NomineeOccupation,
		Nationality:          n.NomineeNationality,
		Address:              n.NomineeAddress,
		Email:                n.NomineeEmail,
		Mobile:               n.NomineeMobile,
		PAN:                  n.NomineePAN,
		GuardianName:         n.GuardianName,
		GuardianAddress:      n.GuardianAddress,
		GuardianRelationship: n.GuardianRelationship,
		DeceasedNomineeName:  n.DeceasedNomineeName,
		DeceasedNomineeDOD:   utils.FormatDate(n.DeceasedNomineeDOD),
	}
}

// CertificateLineFrom 生成证书表格行，serial 从 1 开始
func CertificateLineFrom(serial int, c models.Certificate) CertificateLine {
	names := make([]string, 0, 3)
	for slot := 1; slot <= 3; slot++ {
		if n := strings.TrimSpace(c.NameTxt(slot)); n != "" {
			names = append(names, n)
		}
	}
	return CertificateLine{
		SerialNo:           serial,
		CertificateNumber:  c.CertificateNumber,
		NoOfShares:         strconv.FormatInt(c.NoOfShares, 10),
		DistinctiveNos:     fmt.Sprintf("%d-%d", c.DistinctiveNoFrom, c.DistinctiveNoTo),
		FaceValue:          FormatAmount(c.FaceValue),
		DateOfAllotment:    utils.FormatDate(c.DateOfAllotment),
		NamesOnCertificate: strings.Join(names, ", "),
	}
}

// FormatAmount 去掉多余的小数位，0 输出空字符串
func FormatAmount(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
