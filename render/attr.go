package render

import (
	"fmt"

	"github.com/jdeans289/sls/random"
	"github.com/jdeans289/sls/sprite"
)

// Attr is a display attribute forwarded with each drawn cell
type Attr uint8

const (
	AttrNormal Attr = iota
	AttrBold
	AttrDim
)

// DefaultSparkleModulus draws three normal, one bold and one dim in five
const DefaultSparkleModulus = 5

// ErrInvalidArgument is shared with the sprite package so callers test one value
var ErrInvalidArgument = sprite.ErrInvalidArgument

// attrTable maps a draw to an attribute, draws past the end are normal
var attrTable = [...]Attr{
	AttrNormal,
	AttrNormal,
	AttrNormal,
	AttrBold,
	AttrDim,
}

func (a Attr) String() string {
	switch a {
	case AttrNormal:
		return "normal"
	case AttrBold:
		return "bold"
	case AttrDim:
		return "dim"
	default:
		return fmt.Sprintf("Attr(%d)", uint8(a))
	}
}

// Sampler perturbs display attributes for sparkle compositing
type Sampler struct {
	rng random.Source
}

// NewSampler creates a sampler drawing from rng
func NewSampler(rng random.Source) *Sampler {
	return &Sampler{rng: rng}
}

// Sample draws uniformly from [0, modulus) and maps the draw through attrTable
func (s *Sampler) Sample(modulus int) (Attr, error) {
	if modulus < 1 {
		return AttrNormal, fmt.Errorf("%w: sparkle modulus %d", ErrInvalidArgument, modulus)
	}
	return attrFor(s.rng.Intn(modulus)), nil
}

func attrFor(draw int) Attr {
	if draw < 0 || draw >= len(attrTable) {
		return AttrNormal
	}
	return attrTable[draw]
}
