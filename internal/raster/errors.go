package raster

import "errors"

var (
	// ErrInvalidDimensions indicates a non-positive grid width or height.
	ErrInvalidDimensions = errors.New("raster: width and height must be positive")

	// ErrInvalidCellSize indicates a non-positive cell size component.
	ErrInvalidCellSize = errors.New("raster: cell size must be positive")
)
