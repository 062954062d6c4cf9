package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/orgplant/internal/domain"
	"github.com/alexanderramin/orgplant/internal/org"
	"github.com/alexanderramin/orgplant/internal/service"
)

// FormatPlantPreview renders the tree a request would grow, plus where it
// lands, inside a bordered box.
func FormatPlantPreview(p *service.PlantPreview) string {
	var b strings.Builder
	b.WriteString(RenderTree(previewTreeItems(p.Tree)))
	b.WriteString("\n")

	if cat := p.Tree.Category(); cat != "" {
		b.WriteString(fmt.Sprintf("  %s  %s\n", StyleDim.Render("CATEGORY"), StyleFg.Render(cat)))
	}
	target := fmt.Sprintf("%s, line %d", p.File, p.Line+1)
	b.WriteString(fmt.Sprintf("  %s  %s\n", StyleDim.Render("TARGET  "), StyleFg.Render(target)))

	return RenderBox("Preview", b.String())
}

// FormatPlanted renders the confirmation line after a tree reached its file.
func FormatPlanted(p *service.PlantPreview) string {
	subtasks := "subtasks"
	if len(p.Tree.Subtasks) == 1 {
		subtasks = "subtask"
	}
	return fmt.Sprintf("%s %s planted in %s (%d %s)",
		StyleGreen.Render("✔"),
		Bold(p.Tree.Root.Title),
		p.File,
		len(p.Tree.Subtasks),
		subtasks,
	)
}

func previewTreeItems(tree *domain.ProjectTree) []TreeItem {
	items := make([]TreeItem, 0, len(tree.Subtasks)+1)
	items = append(items, TreeItem{
		Title: tree.Root.Title,
		Todo:  tree.Root.Todo,
		Badge: planningBadge(tree.Root),
	})
	for i, sub := range tree.Subtasks {
		items = append(items, TreeItem{
			Title:  sub.Title,
			Todo:   sub.Todo,
			Level:  1,
			IsLast: i == len(tree.Subtasks)-1,
			Badge:  planningBadge(sub),
		})
	}
	return items
}

func planningBadge(h domain.HeadlineRecord) string {
	d := h.PlanningDate()
	if d == nil {
		return ""
	}
	return org.Timestamp(*d)
}
