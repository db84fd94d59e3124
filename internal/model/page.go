package model

// Paging describes a windowed result set.
type Paging struct {
	CurrentPage int `json:"current_page"`
	TotalPage   int `json:"total_page"`
	Size        int `json:"size"`
}

// NewPaging computes paging metadata from a total row count.
// total_page is ceil(total/size).
func NewPaging(page, size int, total int64) Paging {
	totalPage := int((total + int64(size) - 1) / int64(size))
	return Paging{CurrentPage: page, TotalPage: totalPage, Size: size}
}
