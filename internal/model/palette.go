package model

var dayColors = []string{
	"#4F46E5", // indigo
	"#0EA5E9", // sky
	"#10B981", // emerald
	"#F59E0B", // amber
	"#EF4444", // red
	"#8B5CF6", // violet
	"#EC4899", // pink
	"#06B6D4", // cyan
	"#84CC16", // lime
	"#F97316", // orange
}

// DayColor returns the accent color for the day at index i (cycled).
func DayColor(i int) string {
	if i < 0 {
		i = -i
	}
	return dayColors[i%len(dayColors)]
}
