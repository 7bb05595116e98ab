// Package reporting - Test phân trang: phủ kín không trùng lặp, clamp trang, tập rỗng.
package reporting

import "testing"

func makeItems(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}

func TestPaginate_23ItemsTrang10(t *testing.T) {
	items := makeItems(23)

	page1 := Paginate(items, PageState{Page: 1, Limit: 10})
	if page1.TotalPages != 3 {
		t.Fatalf("23 items / 10 mỗi trang phải là 3 trang, nhận được %d", page1.TotalPages)
	}
	if len(page1.Items) != 10 {
		t.Errorf("trang 1 phải có 10 items, nhận được %d", len(page1.Items))
	}

	page3 := Paginate(items, PageState{Page: 3, Limit: 10})
	if len(page3.Items) != 3 {
		t.Errorf("trang 3 phải có đúng 3 items, nhận được %d", len(page3.Items))
	}

	// Trang vượt quá tổng số trang bị clamp về trang cuối
	page4 := Paginate(items, PageState{Page: 4, Limit: 10})
	if page4.Page != 3 {
		t.Errorf("trang 4 phải bị clamp về trang 3, nhận được trang %d", page4.Page)
	}
	if len(page4.Items) != 3 {
		t.Errorf("trang bị clamp phải chứa nội dung trang cuối, nhận được %d items", len(page4.Items))
	}
}

func TestPaginate_PhuKinKhongTrungLap(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 23, 100} {
		items := makeItems(n)
		limit := 10

		seen := make(map[int]int)
		totalPages := TotalPages(n, limit)
		for page := 1; page <= totalPages; page++ {
			result := Paginate(items, PageState{Page: page, Limit: limit})
			for _, item := range result.Items {
				seen[item]++
			}
		}

		if n == 0 {
			if len(seen) != 0 {
				t.Errorf("n=0: tập rỗng không được sinh ra item nào")
			}
			continue
		}
		if len(seen) != n {
			t.Errorf("n=%d: hợp các trang phải phủ kín toàn bộ, thấy %d items", n, len(seen))
		}
		for item, count := range seen {
			if count != 1 {
				t.Errorf("n=%d: item %d xuất hiện %d lần, phải đúng 1 lần", n, item, count)
			}
		}
	}
}

func TestPaginate_TapRongVanLaTrang1Tren1(t *testing.T) {
	result := Paginate([]int{}, PageState{Page: 1, Limit: 10})

	if result.TotalPages != 1 {
		t.Errorf("tập rỗng phải báo totalPages = 1, nhận được %d", result.TotalPages)
	}
	if result.Page != 1 {
		t.Errorf("tập rỗng phải ở trang 1, nhận được %d", result.Page)
	}
	if result.TotalItems != 0 {
		t.Errorf("tập rỗng phải có totalItems = 0, nhận được %d", result.TotalItems)
	}
	if len(result.Items) != 0 {
		t.Errorf("tập rỗng phải trả về slice rỗng, nhận được %d items", len(result.Items))
	}
	if result.Items == nil {
		t.Error("Items phải là slice rỗng, không phải nil, để JSON render [] thay vì null")
	}
}

func TestPaginate_NormalizeGiaTriKhongHopLe(t *testing.T) {
	items := makeItems(5)

	result := Paginate(items, PageState{Page: 0, Limit: 0})
	if result.Page != 1 {
		t.Errorf("page 0 phải được normalize về 1, nhận được %d", result.Page)
	}
	if result.Limit != DefaultPageSize {
		t.Errorf("limit 0 phải về mặc định %d, nhận được %d", DefaultPageSize, result.Limit)
	}

	negative := Paginate(items, PageState{Page: -3, Limit: -1})
	if negative.Page != 1 || negative.Limit != DefaultPageSize {
		t.Errorf("giá trị âm phải được normalize: page=%d limit=%d", negative.Page, negative.Limit)
	}
}
