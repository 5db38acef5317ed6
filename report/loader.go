package report

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/octogo-ml/octogo/pkg/errors"
)

// ErrExperimentNotFound is returned when the experiment file does not exist.
var ErrExperimentNotFound = errors.New("experiment file not found")

// LoadExperiment loads an Experiment from a YAML file, so results collected
// outside Go (training scripts, notebooks) can be rendered with the same
// writers. If the file does not exist, ErrExperimentNotFound is returned.
func LoadExperiment(path string) (*Experiment, error) {
	data, err := os.ReadFile(path) //nolint:gosec // caller-provided experiment path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrExperimentNotFound
		}
		return nil, errors.Wrapf(err, "report: reading %s", path)
	}

	var exp Experiment
	if err := yaml.Unmarshal(data, &exp); err != nil {
		return nil, errors.Wrapf(err, "report: parsing %s", path)
	}

	return &exp, nil
}
