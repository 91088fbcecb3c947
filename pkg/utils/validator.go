package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidPANFormat  = errors.New("无效的 PAN 格式，应为 5 个字母 + 4 位数字 + 1 个字母")
	ErrInvalidDateFormat = errors.New("日期格式无效，请使用 YYYY-MM-DD 或 DD-MM-YYYY")
)

var panPattern = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)

// DisplayDateLayout 是所有文档使用的日期格式 (DD-MM-YYYY)
const DisplayDateLayout = "02-01-2006"

// ValidatePAN 校验 PAN 号码格式，空字符串视为未填写
func ValidatePAN(pan string) error {
	trimmed := strings.ToUpper(strings.TrimSpace(pan))
	if trimmed == "" {
		return nil
	}
	if !panPattern.MatchString(trimmed) {
		return ErrInvalidPANFormat
	}
	return nil
}

// ParseDate 解析日期字符串，支持多种常见格式。
// 支持 YYYY-MM-DD, YYYY/MM/DD, DD-MM-YYYY 等及其不补零的变体。
func ParseDate(dateStr string) (time.Time, error) {
	trimmedDateStr := strings.TrimSpace(dateStr)
	if trimmedDateStr == "" {
		return time.Time{}, ErrInvalidDateFormat // 空日期字符串视为无效
	}

	normalizedDateStr := strings.ReplaceAll(trimmedDateStr, "/", "-")

	// 包含补零和不补零的情况
	dateLayouts := []string{
		"2006-01-02", // YYYY-MM-DD
		"2006-1-2",   // YYYY-M-D
		"02-01-2006", // DD-MM-YYYY
		"2-1-2006",   // D-M-YYYY
	}

	for _, layout := range dateLayouts {
		parsedDate, err := time.Parse(layout, normalizedDateStr)
		if err == nil {
			return parsedDate, nil // 解析成功，立即返回
		}
	}
	// 所有格式尝试完毕后仍失败
	return time.Time{}, ErrInvalidDateFormat
}

// ParseOptionalDate 空字符串返回 nil
func ParseOptionalDate(dateStr string) (*time.Time, error) {
	if strings.TrimSpace(dateStr) == "" {
		return nil, nil
	}
	t, err := ParseDate(dateStr)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatDate 以 DD-MM-YYYY 输出日期，nil 或零值输出空字符串
func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(DisplayDateLayout)
}

// ValidationDetails 把 gin 绑定错误展开为每个字段一条的说明
func ValidationDetails(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			details = append(details, fmt.Sprintf("%s: 未通过 %s=%s 校验", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			details = append(details, fmt.Sprintf("%s: 未通过 %s 校验", fe.Field(), fe.Tag()))
		}
	}
	return details
}
