package acoustics

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Medium carries the physical properties of the propagation medium. The zero
// value is not useful; start from Air or parse a YAML problem description.
type Medium struct {
	SpeedOfSound float64 `yaml:"SpeedOfSound"` // [m/s]
	Density      float64 `yaml:"Density"`      // [kg/m3]
}

// Air at roughly 20C, the default medium of the solver inputs.
var Air = Medium{
	SpeedOfSound: 344.0,
	Density:      1.205,
}

func (m *Medium) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, m); err != nil {
		return fmt.Errorf("error unmarshaling medium: %s", err)
	}
	if m.SpeedOfSound <= 0 || m.Density <= 0 {
		return fmt.Errorf("medium properties must be positive, got %+v", *m)
	}
	return nil
}

func (m *Medium) Print() {
	fmt.Printf("%8.3f\t\t= SpeedOfSound [m/s]\n", m.SpeedOfSound)
	fmt.Printf("%8.3f\t\t= Density [kg/m3]\n", m.Density)
}
