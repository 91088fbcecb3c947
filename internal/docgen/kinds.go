package docgen

import (
	"errors"
	"fmt"

	"github.com/share_registry/internal/models"
)

// ErrUnknownCaseType 表示案件类型没有对应的文档清单
var ErrUnknownCaseType = errors.New("未知的案件类型")

// Kind 是文档类型，取值同时用作文件名与子目录名
type Kind string

const (
	KindISR1           Kind = "ISR1"
	KindISR2           Kind = "ISR2"
	KindISR3           Kind = "ISR3"
	KindISR4           Kind = "ISR4"
	KindISR5           Kind = "ISR5"
	KindSH13           Kind = "form_no_sh_13"
	KindSH14           Kind = "Form_SH_14"
	KindAnnexureD      Kind = "Annexure_D"
	KindAnnexureE      Kind = "Annexure_E"
	KindAnnexureF      Kind = "Annexure_F"
	KindDeletion       Kind = "Deletion"
	KindFormADuplicate Kind = "Form_A_Duplicate"
	KindFormBDuplicate Kind = "Form_B_Duplicate"
	KindAffidavit      Kind = "Affidavit"
)

// 各案件类型共用的文档清单片段
var (
	claimKinds = []Kind{KindISR1, KindISR2, KindISR3, KindISR4, KindSH13, KindSH14}

	transmissionKinds = []Kind{
		KindISR1, KindISR2, KindISR3, KindISR5, KindSH13, KindSH14,
		KindAnnexureD, KindAnnexureE, KindAnnexureF,
	}

	deletionKinds = []Kind{KindISR1, KindISR2, KindISR3, KindISR4, KindSH13, KindSH14, KindDeletion}

	duplicateKinds = []Kind{KindFormADuplicate, KindFormBDuplicate}
)

// DispatchList 返回案件类型对应的有序文档清单，每次调用返回新切片
func DispatchList(ct models.CaseType) ([]Kind, error) {
	switch ct {
	case models.CaseTypeClaim:
		return concat(claimKinds), nil
	case models.CaseTypeClaimIssueDuplicate:
		return concat(claimKinds, duplicateKinds), nil

	case models.CaseTypeTransmission:
		return concat(transmissionKinds), nil
	case models.CaseTypeTransmissionIssueDuplicate:
		return concat(withISR4(transmissionKinds), duplicateKinds), nil
	case models.CaseTypeTransmissionTransposition:
		return concat(withISR4(transmissionKinds)), nil
	case models.CaseTypeTransmissionIssueDuplicateTransposition:
		return concat(withISR4(transmissionKinds), duplicateKinds), nil

	case models.CaseTypeDeletion:
		return concat(deletionKinds), nil
	case models.CaseTypeDeletionIssueDuplicate:
		return concat(deletionKinds, duplicateKinds), nil
	case models.CaseTypeDeletionTransposition:
		return concat(deletionKinds), nil
	case models.CaseTypeDeletionIssueDuplicateTransposition:
		return concat(deletionKinds, duplicateKinds), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCaseType, ct)
}

// withISR4 在 ISR3 之后插入 ISR4 (转让 / 补发都需要 ISR-4 申请)
func withISR4(kinds []Kind) []Kind {
	out := make([]Kind, 0, len(kinds)+1)
	for _, k := range kinds {
		out = append(out, k)
		if k == KindISR3 {
			out = append(out, KindISR4)
		}
	}
	return out
}

func concat(lists ...[]Kind) []Kind {
	var out []Kind
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// MultiInstance 报告该类型是否按集合逐项生成
func (k Kind) MultiInstance() bool {
	switch k {
	case KindISR2, KindISR5, KindAnnexureD, KindSH13, KindSH14, KindAffidavit:
		return true
	}
	return false
}

// Count 返回该类型在 payload 上要生成的份数，单份类型恒为 1
func (k Kind) Count(p *Payload) int {
	switch k {
	case KindISR2, KindISR5:
		return len(p.Claimants)
	case KindAnnexureD:
		return len(p.LegalHeirs)
	case KindSH13, KindSH14:
		return len(p.Nominees)
	case KindAffidavit:
		return len(p.AffidavitDeponents)
	}
	return 1
}
