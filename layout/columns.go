package layout

import "github.com/tsawler/pagedown/model"

// ColumnInfo is the result of the column heuristic for one page.
type ColumnInfo struct {
	// ColumnCount is 1 or 2. Detection is capped at two columns by
	// design; this is a documented limitation, not a defect.
	ColumnCount int

	// MultiColumn is true when ColumnCount > 1.
	MultiColumn bool
}

// ColumnConfig holds configuration for column detection.
type ColumnConfig struct {
	// BucketWidth is the width of the horizontal bins block centers are
	// grouped into. Default: 50 points.
	BucketWidth float64

	// MaxColumns caps the detected column count. Default: 2.
	MaxColumns int
}

// DefaultColumnConfig returns the default configuration.
func DefaultColumnConfig() ColumnConfig {
	return ColumnConfig{
		BucketWidth: 50,
		MaxColumns:  2,
	}
}

// ColumnDetector detects simple multi-column layout from block positions.
type ColumnDetector struct {
	config ColumnConfig
}

// NewColumnDetector creates a column detector with default configuration.
func NewColumnDetector() *ColumnDetector {
	return NewColumnDetectorWithConfig(DefaultColumnConfig())
}

// NewColumnDetectorWithConfig creates a column detector with custom
// configuration.
func NewColumnDetectorWithConfig(config ColumnConfig) *ColumnDetector {
	return &ColumnDetector{config: config}
}

// Detect buckets block horizontal centers into fixed-width bins and caps
// the distinct-bin count at MaxColumns. Pages whose block centers all
// round to the same integer are treated as single-column regardless of
// binning.
func (d *ColumnDetector) Detect(p *model.Page) ColumnInfo {
	if p.BlockCount() == 0 {
		return ColumnInfo{ColumnCount: 1}
	}

	distinct := make(map[int]struct{})
	buckets := make(map[int]struct{})
	for id := 0; id < p.BlockCount(); id++ {
		center := p.Block(model.BlockID(id)).BBox.CenterX()
		distinct[int(center)] = struct{}{}
		buckets[int(center/d.config.BucketWidth)] = struct{}{}
	}

	count := 1
	if len(distinct) > 1 {
		count = len(buckets)
		if count > d.config.MaxColumns {
			count = d.config.MaxColumns
		}
		if count < 1 {
			count = 1
		}
	}

	return ColumnInfo{
		ColumnCount: count,
		MultiColumn: count > 1,
	}
}
