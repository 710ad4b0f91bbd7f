package debug

// RenderStartData contains information about the start of a render operation.
type RenderStartData struct {
	Rows int `json:"rows"`
}

// RenderEndData contains information about the end of a render operation.
type RenderEndData struct {
	ArtWidth   int   `json:"art_width"`
	TotalLines int   `json:"total_lines"`
	ElapsedMs  int64 `json:"elapsed_ms"`
}

// ParseData contains the result of parsing a bitmap.
type ParseData struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Coords [][2]int `json:"coords"` // (row, col) pairs of active pixels
}

// GroupData contains the result of grouping active pixels.
type GroupData struct {
	Groups []GroupInfo `json:"groups"`
	MinRow int         `json:"min_row"`
}

// GroupInfo describes one grouped block.
type GroupInfo struct {
	Row  int   `json:"row"`
	Cols []int `json:"cols"`
}

// PlacementData contains the computed canvas position of one group's shapes.
type PlacementData struct {
	Row         int    `json:"row"`
	FirstCol    int    `json:"first_col"`
	PixelCount  int    `json:"pixel_count"`
	TopStart    int    `json:"top_start"`
	BottomStart int    `json:"bottom_start"`
	TopShape    string `json:"top_shape"`
	BottomShape string `json:"bottom_shape"`
}

// ValidateData contains the outcome of an art validation gate.
type ValidateData struct {
	Gate   string `json:"gate"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail,omitempty"`
}
