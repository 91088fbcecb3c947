// Package docgen 把案件数据排版为 .docx 法律表格。
//
// Document 是一个只追加的内容构建器，负责段落、表格与签名栏等公共样式；
// 各文档类型只描述自己的内容 (见 layout_*.go)。写盘时由 godocx 生成 OOXML。
package docgen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

// 段落样式，取自 godocx 默认模板
const (
	styleTitle   = "Title"
	styleHeading = "Heading1"
	styleSection = "Heading2"
	styleNote    = "Quote"
	styleTable   = "TableGrid"
)

// Run 是一段具有统一格式的文字
type Run struct {
	Text   string
	Bold   bool
	Italic bool
}

// Plain 构造普通文字
func Plain(text string) Run { return Run{Text: text} }

// Bold 构造加粗文字
func Bold(text string) Run { return Run{Text: text, Bold: true} }

type blockKind int

const (
	blockParagraph blockKind = iota
	blockTable
	blockPageBreak
)

type block struct {
	kind    blockKind
	style   string
	runs    []Run
	headers []string
	rows    [][]string
}

// Document 是一个 .docx 文档的内容构建器
type Document struct {
	title  string
	blocks []block
	text   strings.Builder // 纯文本副本，便于检索与测试
}

// NewDocument 创建文档，title 作为第一行标题
func NewDocument(title string) *Document {
	d := &Document{title: title}
	d.para(styleTitle, Plain(title))
	return d
}

// Title 返回文档标题
func (d *Document) Title() string { return d.title }

// Text 返回文档的纯文本内容，每个段落一行
func (d *Document) Text() string { return d.text.String() }

// Heading 大标题
func (d *Document) Heading(text string) *Document {
	return d.para(styleHeading, Bold(text))
}

// SubHeading 加粗的小标题
func (d *Document) SubHeading(text string) *Document {
	return d.para("", Bold(text))
}

// Section 节标题
func (d *Document) Section(text string) *Document {
	return d.para(styleSection, Bold(text))
}

// Paragraph 正文段落
func (d *Document) Paragraph(text string) *Document {
	return d.para("", Plain(text))
}

// Runs 由多段格式不同的文字组成的段落
func (d *Document) Runs(runs ...Run) *Document {
	return d.para("", runs...)
}

// Note 斜体说明
func (d *Document) Note(text string) *Document {
	return d.para(styleNote, Run{Text: text, Italic: true})
}

// Field 输出 "标签: 值" 的一行
func (d *Document) Field(label, value string) *Document {
	return d.para("", Bold(label+": "), Plain(value))
}

// Lines 逐行输出文字，常用于地址块，空行跳过
func (d *Document) Lines(lines ...string) *Document {
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		d.para("", Plain(l))
	}
	return d
}

// Right 日期与地点行
func (d *Document) Right(text string) *Document {
	return d.para("", Plain(text))
}

// Blank 空行
func (d *Document) Blank() *Document {
	return d.para("")
}

// PageBreak 分页
func (d *Document) PageBreak() *Document {
	d.blocks = append(d.blocks, block{kind: blockPageBreak})
	d.text.WriteString("\f\n")
	return d
}

// Table 输出带表头的表格，行的列数不足时以空单元格补齐
func (d *Document) Table(headers []string, rows [][]string) *Document {
	cols := len(headers)
	for _, r := range rows {
		if len(r) > cols {
			cols = len(r)
		}
	}
	if cols == 0 {
		return d
	}

	padded := make([][]string, len(rows))
	for i, r := range rows {
		padded[i] = padRow(r, cols)
	}
	var head []string
	if len(headers) > 0 {
		head = padRow(headers, cols)
		d.text.WriteString(strings.Join(head, "\t") + "\n")
	}
	for _, r := range padded {
		d.text.WriteString(strings.Join(r, "\t") + "\n")
	}
	d.blocks = append(d.blocks, block{kind: blockTable, headers: head, rows: padded})
	return d.Blank()
}

// KeyValueTable 两列的 "项目 / 内容" 表格
func (d *Document) KeyValueTable(pairs [][2]string) *Document {
	rows := make([][]string, len(pairs))
	for i, p := range pairs {
		rows[i] = []string{p[0], p[1]}
	}
	return d.Table(nil, rows)
}

// Signatures 为每个签名人输出一列签名栏
func (d *Document) Signatures(names ...string) *Document {
	if len(names) == 0 {
		return d
	}
	headers := make([]string, len(names))
	sign := make([]string, len(names))
	for i := range names {
		headers[i] = fmt.Sprintf("Signatory %d", i+1)
	}
	return d.Table(headers, [][]string{sign, names})
}

func padRow(cells []string, cols int) []string {
	out := make([]string, cols)
	copy(out, cells)
	return out
}

func (d *Document) para(style string, runs ...Run) *Document {
	d.blocks = append(d.blocks, block{kind: blockParagraph, style: style, runs: runs})
	for _, r := range runs {
		d.text.WriteString(r.Text)
	}
	d.text.WriteString("\n")
	return d
}

// WriteFile 用 godocx 渲染文档并写入 path，必要时创建父目录
func (d *Document) WriteFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	root, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("创建 docx 失败: %w", err)
	}
	for _, b := range d.blocks {
		switch b.kind {
		case blockParagraph:
			renderParagraph(root, b)
		case blockTable:
			renderTable(root, b)
		case blockPageBreak:
			root.AddPageBreak()
		}
	}
	return root.SaveTo(path)
}

// renderParagraph 把段落中的换行拆成多个段落
func renderParagraph(root *docx.RootDoc, b block) {
	lines := splitRuns(b.runs)
	for _, line := range lines {
		p := root.AddParagraph("")
		if b.style != "" {
			p.Style(b.style)
		}
		for _, r := range line {
			addRun(p, r)
		}
	}
}

func renderTable(root *docx.RootDoc, b block) {
	tbl := root.AddTable()
	tbl.Style(styleTable)
	if len(b.headers) > 0 {
		row := tbl.AddRow()
		for _, h := range b.headers {
			addRun(row.AddCell().AddParagraph(""), Bold(h))
		}
	}
	for _, cells := range b.rows {
		row := tbl.AddRow()
		for _, v := range cells {
			cell := row.AddCell()
			for _, line := range strings.Split(v, "\n") {
				cell.AddParagraph(line)
			}
		}
	}
}

func addRun(p *docx.Paragraph, r Run) {
	if r.Text == "" {
		return
	}
	run := p.AddText(r.Text)
	if r.Bold {
		run.Bold(true)
	}
	if r.Italic {
		run.Italic(true)
	}
}

// splitRuns 按 run 文本中的 "\n" 把一个段落切成多行，每行保留原格式
func splitRuns(runs []Run) [][]Run {
	lines := [][]Run{nil}
	for _, r := range runs {
		for i, part := range strings.Split(r.Text, "\n") {
			if i > 0 {
				lines = append(lines, nil)
			}
			last := len(lines) - 1
			lines[last] = append(lines[last], Run{Text: part, Bold: r.Bold, Italic: r.Italic})
		}
	}
	return lines
}
