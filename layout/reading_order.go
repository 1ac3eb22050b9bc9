package layout

import (
	"sort"

	"github.com/tsawler/pagedown/model"
)

// BlockOrder records one block's position in the page's reading order.
type BlockOrder struct {
	Block model.BlockID
	BBox  model.BBox

	// Order is the block's reading-order index, 0-based and contiguous.
	Order int
}

// ResolveReadingOrder orders a page's blocks by top edge, then left edge.
// The sort is stable, so re-resolving an already ordered page is a no-op.
// The returned indices always form the permutation 0..N-1.
//
// This is a scan order, not a true multi-column reading flow; column-aware
// reflow is out of scope by design.
func ResolveReadingOrder(p *model.Page) []BlockOrder {
	orders := make([]BlockOrder, 0, p.BlockCount())
	for id := 0; id < p.BlockCount(); id++ {
		bid := model.BlockID(id)
		orders = append(orders, BlockOrder{Block: bid, BBox: p.Block(bid).BBox})
	}

	sort.SliceStable(orders, func(i, j int) bool {
		if orders[i].BBox.Y0 != orders[j].BBox.Y0 {
			return orders[i].BBox.Y0 < orders[j].BBox.Y0
		}
		return orders[i].BBox.X0 < orders[j].BBox.X0
	})

	for i := range orders {
		orders[i].Order = i
	}
	return orders
}
