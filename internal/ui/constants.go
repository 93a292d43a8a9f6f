// Package ui provides shared UI constants and utilities.
package ui

const (
	// ScrollMargin is the number of options kept visible around the cursor.
	ScrollMargin = 2

	// BorderHeight is the vertical space consumed by a standard panel border.
	BorderHeight = 2

	// HeaderHeight is the space for a panel title and its separator.
	HeaderHeight = 2

	// PanelOverhead is the total vertical overhead (border + header).
	PanelOverhead = BorderHeight + HeaderHeight
)
