package display

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const methodTitle = "The 4:6 method by Tetsu Kasuya"

var methodParagraphs = []string{
	"The 4:6 method is a pour-over technique developed by 2016 World Brewers Cup " +
		"champion Tetsu Kasuya. It divides the brewing water into two phases: 40% " +
		"for the first phase and 60% for the second, giving separate control over " +
		"flavour and strength.",

	"The first phase is 40% of the water and sets the balance between sweetness " +
		"and acidity. It is split across two pours. A smaller first pour makes a " +
		"sweeter cup, a larger first pour brings out brightness, and equal pours " +
		"give a balanced cup.",

	"The second phase is the remaining 60% and sets the strength. One pour gives " +
		"a lighter body, two pours a stronger cup, and three pours the most intense " +
		"one. Each pour starts 45 seconds after the previous.",
}

// MethodText returns the method explanation wrapped to width columns.
// A width of zero or less leaves paragraphs unwrapped.
func MethodText(width int) string {
	wrap := lipgloss.NewStyle()
	if width > 0 {
		wrap = wrap.Width(width)
	}

	parts := make([]string, 0, len(methodParagraphs)+1)
	parts = append(parts, methodTitle)
	for _, p := range methodParagraphs {
		parts = append(parts, wrap.Render(p))
	}
	return strings.Join(parts, "\n\n")
}
