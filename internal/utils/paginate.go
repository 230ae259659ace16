package utils

import (
	"math"
)

// Page 一页列表数据和分页元信息，交给模板渲染
type Page[T any] struct {
	Items      []T
	Number     int // 实际返回的页码，越界请求会被修正到这里
	TotalPages int
	TotalItems int
	PerPage    int
}

func (p Page[T]) HasPrev() bool {
	return p.Number > 1
}

func (p Page[T]) HasNext() bool {
	return p.Number < p.TotalPages
}

func (p Page[T]) PrevNumber() int {
	return p.Number - 1
}

func (p Page[T]) NextNumber() int {
	return p.Number + 1
}

// Paginate 把已排序的列表切成固定大小的一页。
// 页码越界不报错：小于 1 修正到第一页，超过末页修正到末页。
// 空列表返回一个没有内容的第一页。
func Paginate[T any](items []T, page, perPage int) Page[T] {
	if perPage < 1 {
		perPage = 1
	}

	totalPages := int(math.Ceil(float64(len(items)) / float64(perPage)))
	if totalPages == 0 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	return Page[T]{
		Items:      items[start:end],
		Number:     page,
		TotalPages: totalPages,
		TotalItems: len(items),
		PerPage:    perPage,
	}
}

// PageNumber 解析查询串里的页码参数，缺失或不是数字时按第一页处理
func PageNumber(s string) int {
	n := StringToInt(s)
	if n < 1 {
		return 1
	}
	return n
}
