package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	ones = []string{
		"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
		"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
		"seventeen", "eighteen", "nineteen",
	}
	tens = []string{"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety"}
)

// NumberToWords 按印度计数法 (crore / lakh / thousand) 把整数转成英文小写单词。
// 股数不会为负，负数返回空字符串
func NumberToWords(n int64) string {
	if n < 0 {
		return ""
	}
	if n == 0 {
		return "zero"
	}

	var parts []string
	if crore := n / 10000000; crore > 0 {
		// crore 以上继续按同一规则展开，例如 "one hundred crore"
		parts = append(parts, NumberToWords(crore), "crore")
		n %= 10000000
	}
	if lakh := n / 100000; lakh > 0 {
		parts = append(parts, belowHundred(lakh), "lakh")
		n %= 100000
	}
	if thousand := n / 1000; thousand > 0 {
		parts = append(parts, belowHundred(thousand), "thousand")
		n %= 1000
	}
	if hundred := n / 100; hundred > 0 {
		parts = append(parts, ones[hundred], "hundred")
		n %= 100
	}
	if n > 0 {
		parts = append(parts, belowHundred(n))
	}
	return strings.Join(parts, " ")
}

func belowHundred(n int64) string {
	if n < 20 {
		return ones[n]
	}
	if n%10 == 0 {
		return tens[n/10]
	}
	return tens[n/10] + "-" + ones[n%10]
}

// SharesInWords 返回首字母大写的股数单词，例如 200 → "Two Hundred"
// Caser 有状态，不能在 goroutine 之间共享
func SharesInWords(n int64) string {
	return cases.Title(language.English).String(NumberToWords(n))
}
