package mdp

import "strings"

// LinkTarget is the destination of a reference definition.
type LinkTarget struct {
	URL   string
	Title string
}

// linkMap maps normalized reference labels to destinations. Only the root
// parser owns one; forked parsers carry nil and let unresolved references
// flow outward.
type linkMap map[string]LinkTarget

// add records a definition. The first definition of a label wins.
func (lm linkMap) add(label string, target LinkTarget) {
	key := normalizeLabel(label)
	if _, ok := lm[key]; ok {
		return
	}
	lm[key] = target
}

func (lm linkMap) lookup(label string) (LinkTarget, bool) {
	t, ok := lm[normalizeLabel(label)]
	return t, ok
}

// Labels are case-insensitive and whitespace-normalized.
func normalizeLabel(label string) string {
	return strings.ToLower(strings.Join(strings.Fields(label), " "))
}

// fixLinks resolves reference inlines in place throughout blocks against an
// optional table. A nil table leaves everything untouched; an unknown label
// leaves the reference in its literal textual form. Neither is an error, and
// the fixup is idempotent.
func fixLinks(blocks []Block, links linkMap) {
	if links == nil {
		return
	}
	for i := range blocks {
		fixInlines(blocks[i].Inlines, links)
		fixLinks(blocks[i].Children, links)
	}
}

func fixInlines(inlines []Inline, links linkMap) {
	if links == nil {
		return
	}
	for i := range inlines {
		in := &inlines[i]
		fixInlines(in.Children, links)
		switch in.Kind {
		case InlineRefLink, InlineRefImage:
			target, ok := links.lookup(in.Label)
			if !ok {
				continue
			}
			if in.Kind == InlineRefLink {
				in.Kind = InlineLink
			} else {
				in.Kind = InlineImage
			}
			in.URL = target.URL
			in.Title = target.Title
			in.Label = ""
			in.Text = nil
		}
	}
}
