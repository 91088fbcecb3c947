package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// idListSeparator 是历史数据中多选 id 的分隔符
const idListSeparator = "_"

// IDList 是有序的外键 id 序列。
// 数据库中仍以 "3_5_9" 形式的文本保存，JSON 中以数组表示。
type IDList []int64

// ParseIDList 解析下划线分隔的 id 文本，无法解析为整数的片段会被丢弃。
// 例如 "3_abc_5" 解析为 [3 5]。
func ParseIDList(s string) IDList {
	if strings.TrimSpace(s) == "" {
		return IDList{}
	}
	parts := strings.Split(s, idListSeparator)
	ids := make(IDList, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// String 返回下划线连接的文本形式
func (l IDList) String() string {
	parts := make([]string, len(l))
	for i, id := range l {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, idListSeparator)
}

// Unique 返回去重后的 id，保持首次出现的顺序
func (l IDList) Unique() IDList {
	seen := make(map[int64]struct{}, len(l))
	out := make(IDList, 0, len(l))
	for _, id := range l {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Value implements driver.Valuer.
func (l IDList) Value() (driver.Value, error) {
	return l.String(), nil
}

// Scan implements sql.Scanner.
func (l *IDList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*l = IDList{}
	case string:
		*l = ParseIDList(v)
	case []byte:
		*l = ParseIDList(string(v))
	default:
		return fmt.Errorf("IDList: 不支持的数据库类型 %T", value)
	}
	return nil
}

// GormDataType 让 GORM 以文本列保存
func (IDList) GormDataType() string {
	return "text"
}

// MarshalJSON 输出为 JSON 数组
func (l IDList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]int64(l))
}

// UnmarshalJSON 接受数组 [3,5] 或旧格式字符串 "3_5"
func (l *IDList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*l = IDList{}
		return nil
	}
	if strings.HasPrefix(trimmed, "\"") {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = ParseIDList(s)
		return nil
	}
	var ids []int64
	if err := json.Unmarshal(data, &ids); err != nil {
		return fmt.Errorf("IDList 必须是整数数组: %w", err)
	}
	*l = IDList(ids)
	return nil
}
