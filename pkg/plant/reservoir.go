package plant

import (
	"fmt"
	"time"

	z "github.com/Oudwins/zog"
)

const DefaultReservoirHeightM = 100.0

type reservoirInput struct {
	Name          string
	MaxCapacityM3 float64
	VolumeM3      float64
	HeightM       float64
}

var reservoirSchema = z.Struct(z.Shape{
	"Name":          z.String().Required(),
	"MaxCapacityM3": z.Float64().Required().GT(0, z.Message("must be positive")),
	"VolumeM3":      nonNegativeSchema,
	"HeightM":       z.Float64().Required().GT(0, z.Message("must be positive")),
})

// Reservoir stores water. Head is modeled as linear in the fill ratio.
type Reservoir struct {
	name          string
	maxCapacityM3 float64
	volumeM3      float64
	inflowM3s     float64
	outflowM3s    float64
	heightM       float64
}

func NewReservoir(name string, maxCapacityM3, volumeM3 float64) (*Reservoir, error) {
	return NewReservoirWithHeight(name, maxCapacityM3, volumeM3, DefaultReservoirHeightM)
}

func NewReservoirWithHeight(name string, maxCapacityM3, volumeM3, heightM float64) (*Reservoir, error) {
	input := &reservoirInput{Name: name, MaxCapacityM3: maxCapacityM3, VolumeM3: volumeM3, HeightM: heightM}
	if err := validate(reservoirSchema, input); err != nil {
		return nil, err
	}
	if volumeM3 > maxCapacityM3 {
		return nil, fmt.Errorf("%w: VolumeM3: %.0f exceeds capacity %.0f", ErrOutOfRange, volumeM3, maxCapacityM3)
	}
	return &Reservoir{
		name:          name,
		maxCapacityM3: maxCapacityM3,
		volumeM3:      volumeM3,
		heightM:       heightM,
	}, nil
}

func (r *Reservoir) Name() string            { return r.name }
func (r *Reservoir) MaxCapacityM3() float64  { return r.maxCapacityM3 }
func (r *Reservoir) VolumeM3() float64       { return r.volumeM3 }
func (r *Reservoir) InflowRateM3s() float64  { return r.inflowM3s }
func (r *Reservoir) OutflowRateM3s() float64 { return r.outflowM3s }
func (r *Reservoir) HeightM() float64        { return r.heightM }

// UpdateVolume integrates the net flow over one step (forward Euler) and clamps into [0, capacity].
func (r *Reservoir) UpdateVolume(step time.Duration) {
	net := r.inflowM3s - r.outflowM3s
	r.volumeM3 = clamp(r.volumeM3+net*step.Seconds(), 0, r.maxCapacityM3)
}

func (r *Reservoir) SetInflowRate(rateM3s float64) error {
	if err := validateRate(rateM3s); err != nil {
		return fmt.Errorf("inflow: %w", err)
	}
	r.inflowM3s = rateM3s
	return nil
}

func (r *Reservoir) SetOutflowRate(rateM3s float64) error {
	if err := validateRate(rateM3s); err != nil {
		return fmt.Errorf("outflow: %w", err)
	}
	r.outflowM3s = rateM3s
	return nil
}

func (r *Reservoir) WaterLevelPercentage() float64 {
	return r.volumeM3 / r.maxCapacityM3 * 100
}

func (r *Reservoir) AvailableHead() float64 {
	return r.heightM * (r.volumeM3 / r.maxCapacityM3)
}
