package catalog

// Kind identifies the type of a content item.
type Kind string

const (
	KindLesson Kind = "lesson"
	KindVideo  Kind = "video"
	KindQuiz   Kind = "quiz"
)

// Label returns the display label for a kind.
func (k Kind) Label() string {
	switch k {
	case KindLesson:
		return "Lesson"
	case KindVideo:
		return "Video"
	case KindQuiz:
		return "Quiz"
	default:
		return "Unknown"
	}
}

// Question is a single quiz question with its ordered answer options.
// CorrectOption must equal one of Options by exact value.
type Question struct {
	Text          string   `yaml:"text" json:"text"`
	Options       []string `yaml:"options" json:"options"`
	CorrectOption string   `yaml:"correct" json:"correct"`
	Explanation   string   `yaml:"explanation" json:"explanation"`
}

// ContentItem is one unit of learning content within a subject.
// Position within its module is implicit from catalog order and is
// never stored; the engine derives ordering from iteration order.
type ContentItem struct {
	ID        string     `yaml:"id" json:"id"`
	Title     string     `yaml:"title" json:"title"`
	Module    string     `yaml:"module" json:"module"`
	Kind      Kind       `yaml:"kind" json:"kind"`
	VideoRef  string     `yaml:"video_ref,omitempty" json:"video_ref,omitempty"`
	Questions []Question `yaml:"questions,omitempty" json:"questions,omitempty"`
}

// FAQ is a learner-submitted question with its answer, attached to a
// lesson or video item.
type FAQ struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	AuthorName string `json:"author_name"`
}
