package ui

import "fmt"

// Status is the simulation state shown under the key bindings.
type Status struct {
	Generation int
	Population int
	Running    bool
	Rainbow    bool
}

var bindings = []struct{ key, action string }{
	{"m", "Show/Hide Menu"},
	{"left click", "Draw Cells"},
	{"right click", "Erase Cells"},
	{"space", "Run/Pause"},
	{"n", "Step"},
	{"x", "Reset"},
	{"r", "Randomise"},
	{"f", "Funky Time"},
	{"q", "Quit"},
}

// Lines returns the text of the help menu, one entry per line.
func Lines(s Status) []string {
	lines := make([]string, 0, len(bindings)+4)
	lines = append(lines, "Menu", "")
	for _, b := range bindings {
		lines = append(lines, fmt.Sprintf("%-12s %s", b.key+":", b.action))
	}
	state := "paused"
	if s.Running {
		state = "running"
	}
	if s.Rainbow {
		state += ", funky"
	}
	lines = append(lines, "", fmt.Sprintf("gen %d  pop %d  (%s)", s.Generation, s.Population, state))
	return lines
}
