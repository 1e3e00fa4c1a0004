package circuit

const glyphWidth = 5

// font holds 5x7 bitmaps for the qubit label and the gate symbols.
var font = map[rune][]string{
	'q': {
		".....",
		".....",
		".####",
		"#...#",
		".####",
		"....#",
		"....#",
	},
	'I': {
		"#####",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		"#####",
	},
	'X': {
		"#...#",
		"#...#",
		".#.#.",
		"..#..",
		".#.#.",
		"#...#",
		"#...#",
	},
	'Y': {
		"#...#",
		"#...#",
		".#.#.",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
	},
	'Z': {
		"#####",
		"....#",
		"...#.",
		"..#..",
		".#...",
		"#....",
		"#####",
	},
	'H': {
		"#...#",
		"#...#",
		"#...#",
		"#####",
		"#...#",
		"#...#",
		"#...#",
	},
	'S': {
		".####",
		"#....",
		"#....",
		".###.",
		"....#",
		"....#",
		"####.",
	},
	'T': {
		"#####",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
	},
}
