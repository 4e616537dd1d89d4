// Package dom is a headless host for view trees. It indexes element ids,
// simulates the window's scroll signal and records the scroll and
// navigation side effects a browser would perform.
package dom

import "github.com/wisdomalbert/portfolio/internal/view"

// Document is a mounted view tree with an id index.
type Document struct {
	root *view.Node
	byID map[string]*view.Node
}

// NewDocument indexes root. As in a browser, the first element carrying
// an id wins.
func NewDocument(root *view.Node) *Document {
	d := &Document{root: root, byID: make(map[string]*view.Node)}
	view.Walk(root, func(n *view.Node) bool {
		if id := n.ID(); id != "" {
			if _, seen := d.byID[id]; !seen {
				d.byID[id] = n
			}
		}
		return true
	})
	return d
}

// Root returns the mounted tree.
func (d *Document) Root() *view.Node {
	return d.root
}

// ElementByID returns the element with the given id.
func (d *Document) ElementByID(id string) (*view.Node, bool) {
	n, ok := d.byID[id]
	return n, ok
}

// IDs returns the number of distinct ids in the document.
func (d *Document) IDs() int {
	return len(d.byID)
}
