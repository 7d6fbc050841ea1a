package question

import (
	"regexp"
	"strings"
)

var (
	optionPattern       = regexp.MustCompile(`^([A-D])\.[\s\p{Zs}]*(.+)$`)
	answerLetterPattern = regexp.MustCompile(`^([A-D])\.`)
	answerPrefixPattern = regexp.MustCompile(`^[A-D]\.[\s\p{Zs}]*`)
)

// explanationSeparator splits the answer letter from its explanation.
const explanationSeparator = " - "

// Option is a lettered answer choice.
type Option struct {
	Letter string `json:"letter"`
	Text   string `json:"text"`
}

// Parsed is the structured view of a Record. It is derived on demand
// and never cached.
type Parsed struct {
	Text        string
	Options     []Option
	Correct     string // "" when the answer has no letter prefix
	Explanation string
}

// Parse derives the prompt, options, correct letter and explanation of r.
// Malformed records degrade to empty options or an empty correct letter.
func Parse(r Record) Parsed {
	lines := strings.Split(r.Question, "\n")

	p := Parsed{
		Text:    lines[0],
		Options: []Option{},
	}

	for _, line := range lines[1:] {
		m := optionPattern.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		p.Options = append(p.Options, Option{Letter: m[1], Text: m[2]})
	}

	if m := answerLetterPattern.FindStringSubmatch(r.Answer); m != nil {
		p.Correct = m[1]
	}

	p.Explanation = r.Answer
	rest := answerPrefixPattern.ReplaceAllString(r.Answer, "")
	if parts := strings.Split(rest, explanationSeparator); len(parts) > 1 && parts[1] != "" {
		p.Explanation = parts[1]
	}

	return p
}

// OptionText returns the text of the option with the given letter, or "".
func (p Parsed) OptionText(letter string) string {
	for _, o := range p.Options {
		if o.Letter == letter {
			return o.Text
		}
	}
	return ""
}

// HasOption reports whether letter is one of the parsed options.
func (p Parsed) HasOption(letter string) bool {
	for _, o := range p.Options {
		if o.Letter == letter {
			return true
		}
	}
	return false
}
