package nav

import (
	"encoding/json"
)

// Item is one entry of a navigation tree: a Page or a Section.
type Item interface {
	isItem()
}

// Tree is an ordered list of navigation entries.
type Tree []Item

// Page is a leaf pointing at a site path.
type Page string

func (Page) isItem() {}

// Section is a titled entry. It holds either children or, when Ref is set,
// a directory reference whose content is listed by a curated nav file.
type Section struct {
	Title    string
	Children Tree
	Ref      string
}

func (*Section) isItem() {}

// NewSection returns a section with a non-nil child list.
func NewSection(title string, children ...Item) *Section {
	if children == nil {
		children = Tree{}
	}

	return &Section{Title: title, Children: children}
}

// Entry returns a section titled title holding tree.
func Entry(title string, tree Tree) *Section {
	return NewSection(title, tree...)
}

func (section *Section) value() any {
	if section.Ref != "" {
		return section.Ref
	}

	if section.Children == nil {
		return Tree{}
	}

	return section.Children
}

// MarshalYAML renders the section as a single-key mapping.
func (section *Section) MarshalYAML() (any, error) {
	return map[string]any{section.Title: section.value()}, nil
}

// MarshalJSON renders the section as a single-key object.
func (section *Section) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{section.Title: section.value()})
}

// MarshalJSON renders an empty tree as [] rather than null.
func (tree Tree) MarshalJSON() ([]byte, error) {
	if tree == nil {
		return []byte("[]"), nil
	}

	return json.Marshal([]Item(tree))
}

// Pages returns every page path in the tree, depth first.
func (tree Tree) Pages() []string {
	var pages []string

	for _, item := range tree {
		switch item := item.(type) {
		case Page:
			pages = append(pages, string(item))
		case *Section:
			pages = append(pages, item.Children.Pages()...)
		}
	}

	return pages
}
