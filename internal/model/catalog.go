package model

// FrameworkArea identifies one of the readiness frameworks being scored
type FrameworkArea string

const (
	AreaNISTAIRMF FrameworkArea = "NIST_AI_RMF"
	AreaCOSOERM   FrameworkArea = "COSO_ERM"
	AreaGRC       FrameworkArea = "GRC"
)

// Valid reports whether the area is one of the known frameworks
func (a FrameworkArea) Valid() bool {
	switch a {
	case AreaNISTAIRMF, AreaCOSOERM, AreaGRC:
		return true
	}
	return false
}

// Framework groups the sections of one readiness framework
type Framework struct {
	Area        FrameworkArea `json:"area" bson:"area"`
	Name        string        `json:"name" bson:"name"`
	Description string        `json:"description" bson:"description"`
	Sections    []Section     `json:"sections" bson:"sections"`
}

// Section is an ordered group of questions within a framework
type Section struct {
	Name      string     `json:"name" bson:"name"`
	Questions []Question `json:"questions" bson:"questions"`
}

// Question is one item in the questionnaire. Answers are ordinal values
// on the [ScaleMin, ScaleMax] scale; Weight biases the question's
// contribution to its area score.
type Question struct {
	ID       string        `json:"id" bson:"id"`
	Area     FrameworkArea `json:"area" bson:"area"`
	Section  string        `json:"section" bson:"section"`
	Prompt   string        `json:"prompt" bson:"prompt"`
	ScaleMin int           `json:"scaleMin" bson:"scaleMin"`
	ScaleMax int           `json:"scaleMax" bson:"scaleMax"`
	Weight   float64       `json:"weight" bson:"weight"`
}
