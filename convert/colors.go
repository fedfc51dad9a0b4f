package convert

import (
	"strings"

	"prosong/prodoc"
)

// colorRules is the fixed keyword to group color mapping. Rules are checked
// in order against the lowercased section name, first substring match wins.
var colorRules = []struct {
	keywords []string
	color    prodoc.Color
}{
	{[]string{"verse"}, prodoc.Color{Red: 0, Green: 0.466666669, Blue: 0.8, Alpha: 1}},
	{[]string{"chorus"}, prodoc.Color{Red: 0.8, Green: 0, Blue: 0.305882365, Alpha: 1}},
	{[]string{"bridge"}, prodoc.Color{Red: 0.4627451, Green: 0, Blue: 0.8, Alpha: 1}},
	{[]string{"intro"}, prodoc.Color{Red: 0, Green: 0.8, Blue: 0.4, Alpha: 1}},
	{[]string{"outro", "ending", "tag"}, prodoc.Color{Red: 0.8, Green: 0.4, Blue: 0, Alpha: 1}},
}

var defaultGroupColor = prodoc.Color{Red: 0.5, Green: 0.5, Blue: 0.5, Alpha: 1}

// colorFor maps a section display name to its group color.
func colorFor(sectionName string) prodoc.Color {
	name := strings.ToLower(sectionName)
	for _, rule := range colorRules {
		for _, kw := range rule.keywords {
			if strings.Contains(name, kw) {
				return rule.color
			}
		}
	}
	return defaultGroupColor
}
