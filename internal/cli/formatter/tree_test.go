package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTree_Empty(t *testing.T) {
	assert.Equal(t, "", RenderTree(nil))
}

func TestRenderTree_NoBadges(t *testing.T) {
	items := []TreeItem{
		{Title: "Report", Todo: "TODO"},
		{Title: "Outline", Todo: "TODO", Level: 1},
		{Title: "Deliver", Todo: "TODO", Level: 1, IsLast: true},
	}

	want := "TODO Report\n" +
		"├─ TODO Outline\n" +
		"└─ TODO Deliver\n"
	assert.Equal(t, want, stripANSI(RenderTree(items)))
}

func TestRenderTree_BadgesRightAligned(t *testing.T) {
	items := []TreeItem{
		{Title: "Quarterly report", Todo: "TODO", Badge: "<2024-06-14 Fri>"},
		{Title: "Outline", Todo: "TODO", Level: 1, Badge: "<2024-06-07 Fri>"},
		{Title: "Draft", Todo: "TODO", Level: 1, Badge: "<2024-06-11 Tue>"},
		{Title: "Deliver", Todo: "TODO", Level: 1, IsLast: true, Badge: "<2024-06-14 Fri>"},
	}

	want := "TODO Quarterly report  [ <2024-06-14 Fri> ]\n" +
		"├─ TODO Outline        [ <2024-06-07 Fri> ]\n" +
		"├─ TODO Draft          [ <2024-06-11 Tue> ]\n" +
		"└─ TODO Deliver        [ <2024-06-14 Fri> ]\n"
	assert.Equal(t, want, stripANSI(RenderTree(items)))
}

func TestRenderTree_DeepNestingUsesPipes(t *testing.T) {
	items := []TreeItem{
		{Title: "Root"},
		{Title: "Child", Level: 1, IsLast: true},
		{Title: "Grandchild", Level: 2, IsLast: true},
	}

	want := "Root\n" +
		"└─ Child\n" +
		"│  └─ Grandchild\n"
	assert.Equal(t, want, stripANSI(RenderTree(items)))
}

func TestRenderTree_NoTodoKeyword(t *testing.T) {
	items := []TreeItem{{Title: "Plain headline"}}
	assert.Equal(t, "Plain headline\n", stripANSI(RenderTree(items)))
}
