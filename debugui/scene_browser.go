package debugui

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/scenekit/scene"
)

// EntityInfo is a cached row of the scene browser.
type EntityInfo struct {
	ID        scene.EntityID
	Tag       string
	Layer     string
	UnitTypes []string
}

type browserCache struct {
	entities      []EntityInfo
	lastEntities  int
	lastLayers    int
	sortColumn    int
	sortAscending bool
}

// SceneBrowser lists the scene's entities grouped by layer.
type SceneBrowser struct {
	cache              *browserCache
	selected           scene.EntityID
	filterText         string
	maxEntitiesPerPage int
	currentPage        int
}

func NewSceneBrowser(maxEntitiesPerPage int) *SceneBrowser {
	return &SceneBrowser{
		cache:              &browserCache{sortAscending: true},
		maxEntitiesPerPage: max(1, maxEntitiesPerPage),
	}
}

// Selected returns the ID of the selected entity, or zero.
func (sb *SceneBrowser) Selected() scene.EntityID { return sb.selected }

func (sb *SceneBrowser) Select(id scene.EntityID) { sb.selected = id }

// SetFilter filters rows by tag, layer, unit type or ID.
func (sb *SceneBrowser) SetFilter(text string) {
	sb.filterText = text
	sb.currentPage = 0
}

// Invalidate forces the next render to rebuild its rows.
func (sb *SceneBrowser) Invalidate() {
	sb.cache.entities = nil
}

func (sb *SceneBrowser) Render(s *scene.Scene) {
	if !imgui.BeginV("Scene Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	sb.rebuildCacheIfNeeded(s)

	imgui.Text(fmt.Sprintf("Scene: %s (%s)", s.Name(), s.ID()))
	if imgui.InputTextWithHint("##search", "Filter by tag...", &sb.filterText, imgui.InputTextFlagsNone, nil) {
		sb.currentPage = 0
	}
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		sb.SetFilter("")
	}
	imgui.SameLine()
	if imgui.Button("Refresh") {
		sb.Invalidate()
		sb.rebuildCacheIfNeeded(s)
	}

	filtered := sb.Filtered()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("ID")
		imgui.TableSetupColumn("Tag")
		imgui.TableSetupColumn("Layer")
		imgui.TableSetupColumn("Units")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			sb.cache.sortColumn = int(spec.ColumnIndex())
			sb.cache.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sb.sortEntities()
			sortSpecs.SetSpecsDirty(false)
			filtered = sb.Filtered()
		}

		start, end := sb.pageBounds(len(filtered))
		for _, e := range filtered[start:end] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			if imgui.SelectableBoolV(fmt.Sprintf("%d", e.ID), sb.selected == e.ID, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				sb.selected = e.ID
			}

			imgui.TableNextColumn()
			imgui.Text(e.Tag)

			imgui.TableNextColumn()
			imgui.Text(e.Layer)

			imgui.TableNextColumn()
			imgui.Text(strings.Join(e.UnitTypes, ", "))
		}

		imgui.EndTable()
	}

	if len(filtered) > sb.maxEntitiesPerPage {
		totalPages := sb.pages(len(filtered))
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", sb.currentPage+1, totalPages, len(filtered)))
		imgui.SameLine()
		if imgui.Button("Prev") && sb.currentPage > 0 {
			sb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && sb.currentPage < totalPages-1 {
			sb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d entities", len(filtered)))
	}

	imgui.End()
}

func (sb *SceneBrowser) pages(n int) int {
	return max(1, (n+sb.maxEntitiesPerPage-1)/sb.maxEntitiesPerPage)
}

func (sb *SceneBrowser) pageBounds(n int) (start, end int) {
	sb.currentPage = min(sb.currentPage, sb.pages(n)-1)
	start = sb.currentPage * sb.maxEntitiesPerPage
	end = min(start+sb.maxEntitiesPerPage, n)
	return start, end
}

func (sb *SceneBrowser) rebuildCacheIfNeeded(s *scene.Scene) {
	entities, layers := s.EntityCount(), len(s.Layers())
	if sb.cache.lastEntities != entities || sb.cache.lastLayers != layers {
		sb.cache.entities = nil
		sb.cache.lastEntities, sb.cache.lastLayers = entities, layers
	}

	if sb.cache.entities == nil {
		sb.rebuildCache(s)
	}
}

func (sb *SceneBrowser) rebuildCache(s *scene.Scene) {
	sb.cache.entities = make([]EntityInfo, 0, s.EntityCount()+1)

	if cam := s.CameraEntity(); cam != nil {
		sb.cache.entities = append(sb.cache.entities, entityInfo(cam, "(camera)"))
	}
	for _, l := range s.Layers() {
		for _, e := range l.Entities() {
			sb.cache.entities = append(sb.cache.entities, entityInfo(e, l.Name()))
		}
	}

	sb.sortEntities()
}

func entityInfo(e *scene.Entity, layer string) EntityInfo {
	units := e.Units()
	types := make([]string, len(units))
	for i, u := range units {
		types[i] = unitTypeName(u)
	}
	return EntityInfo{ID: e.ID(), Tag: e.Tag(), Layer: layer, UnitTypes: types}
}

func unitTypeName(u scene.Unit) string {
	t := reflect.TypeOf(u)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.String()
}

func (sb *SceneBrowser) sortEntities() {
	sort.SliceStable(sb.cache.entities, func(i, j int) bool {
		a, b := sb.cache.entities[i], sb.cache.entities[j]
		var less bool

		switch sb.cache.sortColumn {
		case 1:
			less = a.Tag < b.Tag
		case 2:
			less = a.Layer < b.Layer
		case 3:
			less = len(a.UnitTypes) < len(b.UnitTypes)
		default:
			less = a.ID < b.ID
		}

		if !sb.cache.sortAscending {
			return !less
		}
		return less
	})
}

// Filtered returns the cached rows matching the filter text.
func (sb *SceneBrowser) Filtered() []EntityInfo {
	if sb.filterText == "" {
		return sb.cache.entities
	}

	filtered := make([]EntityInfo, 0, len(sb.cache.entities))
	filterLower := strings.ToLower(sb.filterText)

	for _, e := range sb.cache.entities {
		idStr := fmt.Sprintf("%d", e.ID)
		units := strings.ToLower(strings.Join(e.UnitTypes, " "))

		if !strings.Contains(strings.ToLower(e.Tag), filterLower) &&
			!strings.Contains(strings.ToLower(e.Layer), filterLower) &&
			!strings.Contains(units, filterLower) &&
			idStr != filterLower {
			continue
		}
		filtered = append(filtered, e)
	}

	return filtered
}
