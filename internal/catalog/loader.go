package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/phanindra-max/FrameworkLens/internal/model"
)

// fileCatalog is the YAML shape of an external catalog definition
type fileCatalog struct {
	Frameworks []fileFramework `yaml:"frameworks"`
}

type fileFramework struct {
	Area        string        `yaml:"area"`
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Sections    []fileSection `yaml:"sections"`
}

type fileSection struct {
	Name      string         `yaml:"name"`
	Questions []fileQuestion `yaml:"questions"`
}

type fileQuestion struct {
	ID       string  `yaml:"id"`
	Prompt   string  `yaml:"prompt"`
	Weight   float64 `yaml:"weight"`
	ScaleMin int     `yaml:"scaleMin"`
	ScaleMax int     `yaml:"scaleMax"`
}

// Load builds the catalog from a YAML file, or from the builtin
// questionnaire when path is empty. Any malformed definition is a
// startup-fatal error.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return New(Builtin())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrInvalidCatalog, path, err)
	}

	var def fileCatalog
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrInvalidCatalog, path, err)
	}
	if len(def.Frameworks) == 0 {
		return nil, fmt.Errorf("%w: %s defines no frameworks", ErrInvalidCatalog, path)
	}

	frameworks := make([]model.Framework, 0, len(def.Frameworks))
	for _, ff := range def.Frameworks {
		fw := model.Framework{
			Area:        model.FrameworkArea(ff.Area),
			Name:        ff.Name,
			Description: ff.Description,
		}
		for _, fs := range ff.Sections {
			sec := model.Section{Name: fs.Name}
			for _, fq := range fs.Questions {
				sec.Questions = append(sec.Questions, model.Question{
					ID:       fq.ID,
					Prompt:   fq.Prompt,
					Weight:   fq.Weight,
					ScaleMin: fq.ScaleMin,
					ScaleMax: fq.ScaleMax,
				})
			}
			fw.Sections = append(fw.Sections, sec)
		}
		frameworks = append(frameworks, fw)
	}

	return New(frameworks)
}
