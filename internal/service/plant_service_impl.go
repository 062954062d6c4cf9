package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/orgplant/internal/config"
	"github.com/alexanderramin/orgplant/internal/domain"
	"github.com/alexanderramin/orgplant/internal/org"
	"github.com/alexanderramin/orgplant/internal/repository"
	"github.com/alexanderramin/orgplant/internal/template"
)

type plantService struct {
	settings config.Settings
	docs     DocumentStore
	history  repository.PlantingRepo // optional
	observer UseCaseObserver
	now      func() time.Time
}

// NewPlantService wires the planting use cases. history may be nil, in
// which case plantings are not recorded.
func NewPlantService(
	settings config.Settings,
	docs DocumentStore,
	history repository.PlantingRepo,
	observers ...UseCaseObserver,
) PlantService {
	return &plantService{
		settings: settings,
		docs:     docs,
		history:  history,
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
}

func (s *plantService) Preview(ctx context.Context, req PlantRequest) (preview *PlantPreview, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		observeUseCase(ctx, s.observer, "plant-preview", startedAt, err, map[string]any{
			"file":    req.File,
			"project": req.Name,
		})
	}()

	preview, _, err = s.resolve(req)
	return preview, err
}

func (s *plantService) Plant(ctx context.Context, req PlantRequest) (preview *PlantPreview, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"file":    req.File,
		"project": req.Name,
	}
	defer func() {
		observeUseCase(ctx, s.observer, "plant", startedAt, err, fields)
	}()

	preview, lines, err := s.resolve(req)
	if err != nil {
		return nil, err
	}

	spliced := org.Splice(lines, preview.Line, org.RenderLines(preview.Tree))
	if err = s.docs.Write(preview.File, org.JoinLines(spliced)); err != nil {
		return nil, err
	}

	// The ledger is advisory: a failed insert must never fail a planting
	// that already reached the file.
	if s.history != nil {
		record := &domain.Planting{
			ID:           uuid.New().String(),
			Name:         preview.Tree.Root.Title,
			Category:     preview.Tree.Category(),
			File:         preview.File,
			DueDate:      preview.DueDate,
			SubtaskCount: len(preview.Tree.Subtasks),
			CreatedAt:    s.now().UTC(),
		}
		if histErr := s.history.Create(ctx, record); histErr != nil {
			fields["history_error"] = histErr.Error()
		}
	}

	return preview, nil
}

// resolve turns a request into the tree and insertion point, leaving the
// document untouched. The document's lines come back alongside the preview
// so Plant can splice without a second read.
func (s *plantService) resolve(req PlantRequest) (*PlantPreview, []string, error) {
	file := req.File
	if file == "" {
		file = s.settings.OrgFile
	}
	if file == "" {
		return nil, nil, fmt.Errorf("no target file: set org_file in the config or pass --file")
	}

	doc, err := s.docs.Read(file)
	if err != nil {
		return nil, nil, err
	}
	lines := org.SplitLines(doc)

	level := req.Level
	insertAt := len(lines)
	if req.After != "" {
		anchor, ok := org.FindHeadline(lines, req.After)
		if !ok {
			return nil, nil, fmt.Errorf("headline %q not found in %s", req.After, file)
		}
		if level < 1 {
			level = anchor.Level
		}
		insertAt = org.SubtreeEnd(lines, anchor.Line, anchor.Level)
	}

	due, err := org.ParseDate(req.Due, s.now())
	if err != nil {
		return nil, nil, fmt.Errorf("invalid due date: %w", err)
	}

	tree := template.Build(s.settings, template.Request{
		Name:     req.Name,
		Category: req.Category,
		Due:      due,
		Level:    level,
		Todo:     req.Todo,
		Weekends: req.Weekends,
	})

	preview := &PlantPreview{
		Tree:    tree,
		Block:   org.Render(tree),
		File:    file,
		Line:    insertAt,
		DueDate: due,
	}
	return preview, lines, nil
}
