package keywords

import "strings"

// Urgency — словарь признаков мотивированного продавца. Порядок важен:
// в нём же возвращаются найденные фразы.
var Urgency = []string{ //nolint:gochecknoglobals
	"must sell",
	"motivated",
	"urgent",
	"divorce",
	"relocating",
	"moving",
	"job loss",
	"foreclosure",
	"short sale",
	"quick sale",
	"asap",
	"obo",
	"best offer",
	"make offer",
	"need gone",
	"priced to sell",
	"reduced",
	"price drop",
	"estate sale",
	"bankruptcy",
	"liquidation",
	"cash only",
	"investor special",
	"handyman",
	"fixer",
	"as-is",
	"no reasonable offer refused",
}

// Detector ищет фразы словаря в тексте без учёта регистра.
type Detector struct {
	vocabulary []string
}

// New создаёт детектор со своим словарём. Повторы в словаре отбрасываются.
func New(vocabulary ...string) Detector {
	seen := make(map[string]struct{}, len(vocabulary))
	vocab := make([]string, 0, len(vocabulary))

	for _, kw := range vocabulary {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if _, ok := seen[kw]; ok {
			continue
		}
		seen[kw] = struct{}{}
		vocab = append(vocab, kw)
	}

	return Detector{vocabulary: vocab}
}

// Default — детектор со словарём Urgency.
func Default() Detector {
	return New(Urgency...)
}

// Detect возвращает найденные фразы в порядке словаря, каждую не более одного раза.
// Никогда не возвращает nil.
func (d Detector) Detect(title, description string) []string {
	text := strings.ToLower(title + " " + description)
	found := make([]string, 0)

	for _, kw := range d.vocabulary {
		if strings.Contains(text, kw) {
			found = append(found, kw)
		}
	}

	return found
}

// Vocabulary возвращает копию словаря.
func (d Detector) Vocabulary() []string {
	out := make([]string, len(d.vocabulary))
	copy(out, d.vocabulary)
	return out
}

// Detect — поиск по словарю Urgency.
func Detect(title, description string) []string {
	return Default().Detect(title, description)
}
