package domain

type PlantHealth string

const (
	HealthDead    PlantHealth = "dead"
	HealthOkay    PlantHealth = "okay"
	HealthHealthy PlantHealth = "healthy"
)

type PlantSize string

const (
	SizeSmall  PlantSize = "small"
	SizeMedium PlantSize = "medium"
	SizeBig    PlantSize = "big"
)

type ArealSize string

const (
	ArealSmall  ArealSize = "small"
	ArealMedium ArealSize = "medium"
	ArealLarge  ArealSize = "large"
)

type HorizontalPos string

const (
	PosLeft   HorizontalPos = "left"
	PosCenter HorizontalPos = "center"
	PosRight  HorizontalPos = "right"
)

type VerticalPos string

const (
	PosTop    VerticalPos = "top"
	PosMiddle VerticalPos = "middle"
	PosBottom VerticalPos = "bottom"
)

// ValidHealths is the canonical set of accepted plant health strings.
var ValidHealths = map[string]bool{
	"dead": true, "okay": true, "healthy": true,
}

// ValidArealSizes is the canonical set of accepted areal size strings.
var ValidArealSizes = map[string]bool{
	"small": true, "medium": true, "large": true,
}

// ValidHorizontalPos and ValidVerticalPos are the accepted areal layout slots.
var ValidHorizontalPos = map[string]bool{
	"left": true, "center": true, "right": true,
}

var ValidVerticalPos = map[string]bool{
	"top": true, "middle": true, "bottom": true,
}
