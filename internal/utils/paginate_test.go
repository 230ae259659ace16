package utils

import (
	"testing"
)

func makeItems(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

func TestPaginateFullAndPartialPages(t *testing.T) {
	// 13 条，每页 10 条：共 2 页，末页 3 条
	items := makeItems(13)

	page1 := Paginate(items, 1, 10)
	if page1.TotalPages != 2 {
		t.Errorf("TotalPages = %d, want 2", page1.TotalPages)
	}
	if len(page1.Items) != 10 {
		t.Errorf("page 1 has %d items, want 10", len(page1.Items))
	}
	if page1.HasPrev() {
		t.Error("page 1 should not have prev")
	}
	if !page1.HasNext() {
		t.Error("page 1 should have next")
	}

	page2 := Paginate(items, 2, 10)
	if len(page2.Items) != 3 {
		t.Errorf("page 2 has %d items, want 3", len(page2.Items))
	}
	if page2.Items[0] != 11 {
		t.Errorf("page 2 starts at %d, want 11", page2.Items[0])
	}
	if page2.HasNext() {
		t.Error("last page should not have next")
	}
	if !page2.HasPrev() {
		t.Error("page 2 should have prev")
	}
}

func TestPaginateExactDivision(t *testing.T) {
	// 整除时末页也是满的
	page := Paginate(makeItems(20), 2, 10)
	if page.TotalPages != 2 {
		t.Errorf("TotalPages = %d, want 2", page.TotalPages)
	}
	if len(page.Items) != 10 {
		t.Errorf("last page has %d items, want 10", len(page.Items))
	}
}

func TestPaginateSmallPageSize(t *testing.T) {
	// 小页容量，验证 ceil 计算：7 条每页 3 条 = 3 页
	items := makeItems(7)
	page3 := Paginate(items, 3, 3)
	if page3.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", page3.TotalPages)
	}
	if len(page3.Items) != 1 {
		t.Errorf("page 3 has %d items, want 1", len(page3.Items))
	}
}

func TestPaginateClampsOutOfRange(t *testing.T) {
	items := makeItems(25)

	// 页码太小修正到第一页
	low := Paginate(items, 0, 10)
	if low.Number != 1 {
		t.Errorf("page 0 clamped to %d, want 1", low.Number)
	}
	low = Paginate(items, -5, 10)
	if low.Number != 1 {
		t.Errorf("page -5 clamped to %d, want 1", low.Number)
	}

	// 页码太大修正到末页
	high := Paginate(items, 99, 10)
	if high.Number != 3 {
		t.Errorf("page 99 clamped to %d, want 3", high.Number)
	}
	if len(high.Items) != 5 {
		t.Errorf("clamped page has %d items, want 5", len(high.Items))
	}
}

func TestPaginateEmpty(t *testing.T) {
	// 空列表：一页零条，没有前后页
	page := Paginate([]int{}, 1, 10)
	if page.Number != 1 {
		t.Errorf("Number = %d, want 1", page.Number)
	}
	if page.TotalPages != 1 {
		t.Errorf("TotalPages = %d, want 1", page.TotalPages)
	}
	if len(page.Items) != 0 {
		t.Errorf("empty set returned %d items", len(page.Items))
	}
	if page.HasPrev() || page.HasNext() {
		t.Error("empty page should have neither prev nor next")
	}
}

func TestPageNumber(t *testing.T) {
	cases := map[string]int{
		"":    1,
		"abc": 1,
		"0":   1,
		"-3":  1,
		"1":   1,
		"7":   7,
	}
	for input, want := range cases {
		if got := PageNumber(input); got != want {
			t.Errorf("PageNumber(%q) = %d, want %d", input, got, want)
		}
	}
}
