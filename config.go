package main

import (
	"image/color"
	"time"
)

const (
	// --- View ---
	KeyboardZoomFactor = 1.1
	FitPadding         = 40.0

	// --- Grid & Background ---
	GridSize        = 20.0
	OriginCrossSize = 15.0

	// --- Shapes ---
	ShadowOffset      = 5.0
	BorderThickness   = 2.0
	HandleSize        = 8.0
	LabelPaddingX     = 8.0
	LabelPaddingY     = 6.0
	LabelMinWidth     = 40.0
	MaxImportedSide   = 400.0
	PreviewStrokeSize = 1.0

	// --- Input ---
	DoubleClickTime   = 350 * time.Millisecond
	DoubleClickSlop   = 30 // pixels
	KeyRepeatDelay    = 30 // ticks
	KeyRepeatInterval = 3  // ticks

	// --- UI ---
	ToolButtonWidth = 44.0
	ZoomButtonWidth = 30.0
	FillButtonWidth = 64.0
	ButtonHeight    = 30.0
	ButtonMargin    = 10.0
)

var (
	// --- Colors ---
	ColorBackground    = color.RGBA{30, 30, 35, 255}
	ColorGrid          = color.RGBA{255, 255, 255, 12}
	ColorGridMajor     = color.RGBA{255, 255, 255, 28}
	ColorOriginCross   = color.RGBA{255, 100, 100, 150}
	ColorShadow        = color.RGBA{0, 0, 0, 100}
	ColorShapeHover    = color.RGBA{0, 120, 255, 255}
	ColorShapeSelected = color.RGBA{50, 205, 50, 255}
	ColorHandle        = color.RGBA{255, 255, 255, 230}
	ColorHandleActive  = color.RGBA{255, 140, 0, 255}
	ColorLabel         = color.RGBA{20, 20, 25, 255}
	ColorDrawPreview   = color.RGBA{100, 149, 237, 90}
	ColorDrawStroke    = color.RGBA{100, 149, 237, 255}
	ColorMarquee       = color.RGBA{0, 120, 255, 40}
	ColorMarqueeStroke = color.RGBA{0, 120, 255, 200}
	ColorEditing       = color.RGBA{255, 140, 0, 255}
)
