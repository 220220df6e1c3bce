package scene

import "github.com/go-gl/mathgl/mgl32"

// Names of the scene's shapes, which double as draw list names.
const (
	TableName            = "table"
	CandleName           = "candle"
	WickName             = "wick"
	UpperCandlestickName = "upper candlestick"
	LowerCandlestickName = "lower candlestick"
	NapkinName           = "napkin"
	KnifeName            = "knife handle"
	KnifeTipName         = "knife tip"
)

// quadIndices splits a four vertex quad into two triangles sharing the
// top-right/bottom-left diagonal.
func quadIndices() []uint16 {
	return []uint16{
		0, 1, 3,
		1, 2, 3,
	}
}

// boxIndices triangulates the eight vertex boxes (candle, wick, knife parts).
func boxIndices() []uint16 {
	return []uint16{
		0, 1, 3,
		1, 2, 3,
		0, 1, 4,
		0, 4, 5,
		0, 5, 6,
		0, 3, 6,
		4, 5, 6,
		4, 6, 7,
		2, 3, 6,
		2, 6, 7,
		1, 4, 7,
		1, 2, 7,
	}
}

// pyramidIndices triangulates a square base and an apex (candlestick halves).
func pyramidIndices() []uint16 {
	return []uint16{
		0, 1, 2,
		0, 3, 2,
		0, 1, 4,
		1, 2, 4,
		2, 3, 4,
		3, 0, 4,
	}
}

// PlaneShape builds a textured quad from its four corners.
func PlaneShape(name string, topRight, topLeft, bottomLeft, bottomRight mgl32.Vec3) Shape {
	return Shape{
		Name: name,
		Vertices: []float32{
			// x, y, z, r, g, b, s, t
			topLeft.X(), topLeft.Y(), topLeft.Z(), 1, 0, 0, 0, 1,
			topRight.X(), topRight.Y(), topRight.Z(), 1, 0, 0, 1, 1,
			bottomRight.X(), bottomRight.Y(), bottomRight.Z(), 1, 0, 0, 1, 0,
			bottomLeft.X(), bottomLeft.Y(), bottomLeft.Z(), 1, 0, 0, 0, 0,
		},
		Indices: quadIndices(),
		Layout:  TexturedLayout,
	}
}

// TableShape is the 10x10 table top the other objects rest on.
func TableShape() Shape {
	return PlaneShape(TableName,
		mgl32.Vec3{5.0, -0.3, -5.0},
		mgl32.Vec3{-5.0, -0.3, -5.0},
		mgl32.Vec3{-5.0, -0.3, 5.0},
		mgl32.Vec3{5.0, -0.3, 5.0},
	)
}

// NapkinShape lies just above the table to the right of the candle.
func NapkinShape() Shape {
	return PlaneShape(NapkinName,
		mgl32.Vec3{3.0, -0.25, 1.0},
		mgl32.Vec3{2.0, -0.25, 1.0},
		mgl32.Vec3{2.0, -0.25, 3.0},
		mgl32.Vec3{3.0, -0.25, 3.0},
	)
}

// CandleShape is the wax column standing in the upper candlestick.
func CandleShape() Shape {
	return Shape{
		Name: CandleName,
		Vertices: []float32{
			0.05, 1.5, 0.05, 1.0, 0.0, 0.0, 1.0,
			0.05, 0.5, 0.05, 0.0, 1.0, 0.0, 1.0,
			-0.05, 0.5, 0.05, 0.0, 0.0, 1.0, 1.0,
			-0.05, 1.5, 0.05, 1.0, 0.0, 1.0, 1.0,

			0.05, 0.5, -0.05, 0.5, 0.5, 1.0, 1.0,
			0.05, 1.5, -0.05, 1.0, 1.0, 0.5, 1.0,
			-0.05, 1.5, -0.05, 0.2, 0.2, 0.5, 1.0,
			-0.05, 0.5, -0.05, 1.0, 0.0, 1.0, 1.0,
		},
		Indices: boxIndices(),
		Layout:  ColoredLayout,
	}
}

// WickShape sits on top of the candle.
func WickShape() Shape {
	return Shape{
		Name: WickName,
		Vertices: []float32{
			0.02, 1.7, 0.02, 1.0, 0.0, 0.0, 1.0,
			0.02, 1.5, 0.02, 0.0, 1.0, 0.0, 1.0,
			-0.02, 1.5, 0.02, 0.0, 0.0, 1.0, 1.0,
			-0.02, 1.7, 0.02, 1.0, 0.0, 1.0, 1.0,

			0.02, 1.5, -0.02, 0.5, 0.5, 1.0, 1.0,
			0.02, 1.7, -0.02, 1.0, 1.0, 0.5, 1.0,
			-0.02, 1.7, -0.02, 0.2, 0.2, 0.5, 1.0,
			-0.02, 1.5, -0.02, 1.0, 0.0, 1.0, 1.0,
		},
		Indices: boxIndices(),
		Layout:  ColoredLayout,
	}
}

// UpperCandlestickShape is the inverted pyramid cup holding the candle.
func UpperCandlestickShape() Shape {
	return Shape{
		Name: UpperCandlestickName,
		Vertices: []float32{
			0.2, 0.5, -0.2, 1.0, 0.0, 1.0, 1.0,
			0.2, 0.5, 0.2, 1.0, 0.0, 0.0, 1.0,
			-0.2, 0.5, 0.2, 0.0, 1.0, 1.0, 1.0,
			-0.2, 0.5, -0.2, 0.2, 0.2, 0.5, 1.0,

			0.0, 0.1, 0.0, 0.5, 0.5, 1.0, 1.0, // apex
		},
		Indices: pyramidIndices(),
		Layout:  ColoredLayout,
	}
}

// LowerCandlestickShape is the pyramid base standing on the table.
func LowerCandlestickShape() Shape {
	return Shape{
		Name: LowerCandlestickName,
		Vertices: []float32{
			0.2, -0.3, -0.2, 1.0, 0.0, 1.0, 1.0,
			0.2, -0.3, 0.2, 1.0, 0.0, 0.0, 1.0,
			-0.2, -0.3, 0.2, 0.0, 1.0, 1.0, 1.0,
			-0.2, -0.3, -0.2, 0.2, 0.2, 0.5, 1.0,

			0.0, 0.2, 0.0, 0.5, 0.5, 1.0, 1.0, // apex
		},
		Indices: pyramidIndices(),
		Layout:  ColoredLayout,
	}
}

// KnifeShape is the butter knife handle lying on the napkin.
func KnifeShape() Shape {
	return Shape{
		Name: KnifeName,
		Vertices: []float32{
			2.6, -0.20, 2.0, 1.0, 0.0, 0.0, 1.0,
			2.6, -0.15, 3.5, 0.0, 1.0, 0.0, 1.0,
			2.5, -0.15, 3.5, 0.0, 0.0, 1.0, 1.0,
			2.5, -0.20, 2.0, 1.0, 0.0, 1.0, 1.0,

			2.6, -0.24, 3.5, 0.5, 0.5, 1.0, 1.0,
			2.6, -0.24, 2.0, 1.0, 1.0, 0.5, 1.0,
			2.5, -0.24, 2.0, 0.2, 0.2, 0.5, 1.0,
			2.5, -0.24, 3.5, 1.0, 0.0, 1.0, 1.0,
		},
		Indices: boxIndices(),
		Layout:  ColoredLayout,
	}
}

// KnifeTipShape is the blade, tapering from the handle towards -Z.
func KnifeTipShape() Shape {
	return Shape{
		Name: KnifeTipName,
		Vertices: []float32{
			2.3, -0.24, 0.8, 1.0, 0.0, 0.0, 1.0,
			2.6, -0.24, 0.5, 0.0, 1.0, 0.0, 1.0,
			2.3, -0.20, 0.8, 0.0, 0.0, 1.0, 1.0,
			2.3, -0.24, 2.0, 1.0, 0.0, 1.0, 1.0,

			2.6, -0.20, 2.0, 0.5, 0.5, 1.0, 1.0,
			2.6, -0.24, 2.0, 1.0, 1.0, 0.5, 1.0,
			2.6, -0.24, 0.5, 0.2, 0.2, 0.5, 1.0,
			2.3, -0.20, 2.0, 1.0, 0.0, 1.0, 1.0,
		},
		Indices: boxIndices(),
		Layout:  ColoredLayout,
	}
}
