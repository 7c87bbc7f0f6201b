package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories(t *testing.T) {
	cats := Categories()
	require.Len(t, cats, 8)

	// Exactly one fallback, and it comes last in display order.
	assert.Equal(t, CategoryOther, cats[len(cats)-1].ID)

	seen := make(map[CategoryID]bool)
	for _, cat := range cats {
		assert.False(t, seen[cat.ID], "duplicate category ID %s", cat.ID)
		seen[cat.ID] = true
		assert.NotEmpty(t, cat.Name)
		assert.NotEmpty(t, cat.Icon)
		assert.NotEmpty(t, cat.Color)
	}
}

func TestCategoriesReturnsCopy(t *testing.T) {
	cats := Categories()
	cats[0].Name = "mutated"

	fresh := Categories()
	assert.Equal(t, "餐饮", fresh[0].Name)
}

func TestCategoryByID(t *testing.T) {
	cat, ok := CategoryByID(CategoryFood)
	require.True(t, ok)
	assert.Equal(t, "餐饮", cat.Name)

	_, ok = CategoryByID("groceries")
	assert.False(t, ok)
}

func TestCategoryByName(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantID CategoryID
	}{
		{name: "food display name", input: "餐饮", wantID: CategoryFood},
		{name: "transport display name", input: "交通", wantID: CategoryTransport},
		{name: "tech display name", input: "数码", wantID: CategoryTech},
		{name: "fallback display name", input: "其他", wantID: CategoryOther},
		{name: "unknown name falls back", input: "Groceries", wantID: CategoryOther},
		{name: "empty name falls back", input: "", wantID: CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := CategoryByName(tt.input)
			assert.Equal(t, tt.wantID, cat.ID)
		})
	}
}
