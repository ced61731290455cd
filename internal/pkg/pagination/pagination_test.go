package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Params
		want Params
	}{
		{"valid passes through", Params{Page: 3, Limit: 50}, Params{Page: 3, Limit: 50}},
		{"zero page becomes first", Params{Page: 0, Limit: 10}, Params{Page: 1, Limit: 10}},
		{"negative limit gets default", Params{Page: 1, Limit: -1}, Params{Page: 1, Limit: DefaultLimit}},
		{"oversized limit is capped", Params{Page: 1, Limit: 5000}, Params{Page: 1, Limit: MaxLimit}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Params{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 40, Params{Page: 3, Limit: 20}.Offset())
}

func TestNewPage(t *testing.T) {
	items := []string{"a", "b", "c"}

	page := NewPage(items, Params{Page: 1, Limit: 3}, 7)
	assert.Equal(t, items, page.Items)
	assert.Equal(t, int64(7), page.Total)
	assert.Equal(t, 3, page.TotalPages)

	page = NewPage(items, Params{Page: 2, Limit: 3}, 6)
	assert.Equal(t, 2, page.TotalPages)
}

func TestNewPageEmptyTotal(t *testing.T) {
	page := NewPage([]int{}, Params{Page: 1, Limit: 20}, 0)
	assert.Zero(t, page.TotalPages)
	assert.Empty(t, page.Items)
}
