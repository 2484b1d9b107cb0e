package render

import (
	"github.com/arthur-debert/prettysitter/pkg/config"
	"github.com/arthur-debert/prettysitter/pkg/tree"
)

// Marks resolves nodes against the ordered mark groups.
type Marks []config.Mark

// Resolve scans the groups in registration order and returns the position
// of the first one whose node set contains the node. The position indexes
// the mark list and anything parallel to it, such as the renderer's brush
// table.
func (m Marks) Resolve(n tree.Node) (int, bool) {
	for i, mark := range m {
		if mark.Nodes.Contains(n) {
			return i, true
		}
	}
	return -1, false
}
