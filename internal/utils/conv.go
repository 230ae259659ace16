package utils

import (
	"strconv"
)

// StringToInt 字符串转 int，解析失败时返回 0
func StringToInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
