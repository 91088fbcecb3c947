package docgen

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownKind   = errors.New("未知的文档类型")
	ErrIndexOutRange = errors.New("文档序号超出集合范围")
)

type layoutFunc func(p *Payload, i int) *Document

var layouts = map[Kind]layoutFunc{
	KindISR1:           buildISR1,
	KindISR2:           buildISR2,
	KindISR3:           buildISR3,
	KindISR4:           buildISR4,
	KindISR5:           buildISR5,
	KindSH13:           buildSH13,
	KindSH14:           buildSH14,
	KindAnnexureD:      buildAnnexureD,
	KindAnnexureE:      buildAnnexureE,
	KindAnnexureF:      buildAnnexureF,
	KindDeletion:       buildDeletion,
	KindFormADuplicate: buildFormA,
	KindFormBDuplicate: buildFormB,
	KindAffidavit:      buildAffidavit,
}

// Build 排版文档但不写盘。i 是集合中的下标 (从 0 开始)，单份类型忽略
func Build(kind Kind, p *Payload, i int) (*Document, error) {
	layout, ok := layouts[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if kind.MultiInstance() && (i < 0 || i >= kind.Count(p)) {
		return nil, fmt.Errorf("%w: %s[%d]", ErrIndexOutRange, kind, i)
	}
	return layout(p, i), nil
}

// Generate 排版并写入 outputPath，返回确认信息
func Generate(kind Kind, p *Payload, i int, outputPath string) (string, error) {
	doc, err := Build(kind, p, i)
	if err != nil {
		return "", err
	}
	if err := doc.WriteFile(outputPath); err != nil {
		return "", fmt.Errorf("写入文档 %s 失败: %w", outputPath, err)
	}
	return fmt.Sprintf("%s document generated at %s", kind, outputPath), nil
}
