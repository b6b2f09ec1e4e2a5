package resume2pdf

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// SkillGroup is one normalized skill grouping. Title may be empty when the
// source shape carried no group name; Items hold the raw (unescaped) values.
type SkillGroup struct {
	Title string
	Items []any
}

// FormatSkillGroups normalizes the flexible skill category shapes into an
// ordered sequence of groups:
//
//   - nil yields nothing
//   - a list of scalars yields one untitled group
//   - a mapping of title to items yields one group per key, in source order
//   - a list of mappings with "title" and "items" keys yields one group each
//   - any other scalar yields one untitled single-item group
func FormatSkillGroups(value any) []SkillGroup {
	switch v := value.(type) {
	case nil:
		return nil
	case yaml.MapSlice:
		groups := make([]SkillGroup, 0, len(v))
		for _, item := range v {
			groups = append(groups, SkillGroup{
				Title: fmt.Sprint(item.Key),
				Items: toItemList(item.Value),
			})
		}
		return groups
	case map[string]any:
		// Unordered fallback for callers that hand-build data.
		groups := make([]SkillGroup, 0, len(v))
		for key, val := range v {
			groups = append(groups, SkillGroup{Title: key, Items: toItemList(val)})
		}
		return groups
	case []any:
		return groupsFromList(v)
	default:
		return []SkillGroup{{Items: []any{v}}}
	}
}

// groupsFromList handles list shapes: either scalar items forming a single
// untitled group, or {title, items} mappings forming one group each.
func groupsFromList(list []any) []SkillGroup {
	var groups []SkillGroup
	var loose []any

	for _, elem := range list {
		if title, items, ok := titledGroup(elem); ok {
			groups = append(groups, SkillGroup{Title: title, Items: items})
			continue
		}
		if elem != nil {
			loose = append(loose, elem)
		}
	}

	if len(loose) > 0 {
		groups = append(groups, SkillGroup{Items: loose})
	}
	return groups
}

// titledGroup extracts a {title, items} mapping element, if elem is one.
func titledGroup(elem any) (title string, items []any, ok bool) {
	switch m := elem.(type) {
	case yaml.MapSlice:
		var sawItems bool
		for _, item := range m {
			switch fmt.Sprint(item.Key) {
			case "title":
				title = fmt.Sprint(item.Value)
			case "items":
				items = toItemList(item.Value)
				sawItems = true
			}
		}
		return title, items, sawItems
	case map[string]any:
		raw, sawItems := m["items"]
		if !sawItems {
			return "", nil, false
		}
		if t, found := m["title"]; found {
			title = fmt.Sprint(t)
		}
		return title, toItemList(raw), true
	default:
		return "", nil, false
	}
}

// toItemList coerces a group's items value to a list.
func toItemList(value any) []any {
	switch v := value.(type) {
	case nil:
		return nil
	case []any:
		return v
	default:
		return []any{v}
	}
}
