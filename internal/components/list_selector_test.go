package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListSelectorNavigation(t *testing.T) {
	ls := NewListSelector("Suggestions").SetSize(30, 3)
	ls.SetItems(ItemsFromStrings([]string{"a", "b", "c", "d"}))

	item, ok := ls.CurrentItem()
	require.True(t, ok)
	assert.Equal(t, "a", item.Value)

	ls.MoveUp()
	item, _ = ls.CurrentItem()
	assert.Equal(t, "a", item.Value)

	for i := 0; i < 10; i++ {
		ls.MoveDown()
	}
	item, _ = ls.CurrentItem()
	assert.Equal(t, "d", item.Value)
	assert.Equal(t, 2, ls.startIndex, "two visible rows under the title")

	ls.MoveToFirst()
	assert.Equal(t, 0, ls.startIndex)
}

func TestListSelectorSetItemsKeepsCursorOnValue(t *testing.T) {
	ls := NewListSelector("")
	ls.SetItems(ItemsFromStrings([]string{"heart", "lung", "liver"}))
	ls.MoveDown()
	ls.MoveDown()

	ls.SetItems(ItemsFromStrings([]string{"liver", "kidney"}))
	item, _ := ls.CurrentItem()
	assert.Equal(t, "liver", item.Value)

	ls.SetItems(ItemsFromStrings([]string{"spleen"}))
	item, _ = ls.CurrentItem()
	assert.Equal(t, "spleen", item.Value)
}

func TestListSelectorEmpty(t *testing.T) {
	ls := NewListSelector("Favorites").SetEmptyText("No favorites added yet.")

	_, ok := ls.CurrentItem()
	assert.False(t, ok)
	assert.Contains(t, ls.Render(), "No favorites added yet.")
}

func TestListSelectorRenderShowsItems(t *testing.T) {
	ls := NewListSelector("").SetSize(30, 5)
	ls.SetItems([]ListItem{{Label: "diabetes", Value: "diabetes", Suffix: "*"}, {Label: "diabetic", Value: "diabetic"}})

	out := ls.Render()
	assert.Contains(t, out, "diabetes")
	assert.Contains(t, out, "diabetic")
	assert.Contains(t, out, "*")
}
