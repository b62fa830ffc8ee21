package board

import (
	"fmt"

	"go.jetify.com/typeid/v2"
)

const (
	ShapePrefix = "rect"
	AssetPrefix = "asset"
)

// NewShapeID returns a fresh TypeID such as rect_01h455vb4pex5vsknk084sn02q.
func NewShapeID() string {
	id := typeid.MustGenerate(ShapePrefix)
	return id.String()
}

// NewAssetID names an imported image file.
func NewAssetID() string {
	id := typeid.MustGenerate(AssetPrefix)
	return id.String()
}

func ValidateShapeID(id string) error {
	parsed, err := typeid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid shape id %q: %w", id, err)
	}
	if parsed.Prefix() != ShapePrefix {
		return fmt.Errorf("expected prefix %q but got %q in id %q", ShapePrefix, parsed.Prefix(), id)
	}
	return nil
}
