package packs

// Map characters:
//
//	'.' = air
//	'W' 'R' 'O' 'Y' 'G' 'C' 'B' 'P' 'K' 'N' 'L' = coloured tiles
//	'S' = stone, 's' = cracked stone
//	'M' = metal, '$' = gold

var classicLevels = []levelMap{
	{"FIRST STEPS", []string{
		"................",
		"................",
		"RRRRRRRRRRRRRRRR",
		"OOOOOOOOOOOOOOOO",
		"YYYYYYYYYYYYYYYY",
		"GGGGGGGGGGGGGGGG",
		"BBBBBBBBBBBBBBBB",
		"PPPPPPPPPPPPPPPP",
	}},
	{"PYRAMID", []string{
		"................",
		".......$$.......",
		"......YYYY......",
		".....OOOOOO.....",
		"....RRRRRRRR....",
		"...KKKKKKKKKK...",
		"..PPPPPPPPPPPP..",
		".BBBBBBBBBBBBBB.",
		"CCCCCCCCCCCCCCCC",
	}},
	{"CHECKERBOARD", []string{
		"................",
		"R.R.R.R.R.R.R.R.",
		".O.O.O.O.O.O.O.O",
		"Y.Y.Y.Y.Y.Y.Y.Y.",
		".G.G.G.G.G.G.G.G",
		"C.C.C.C.C.C.C.C.",
		".B.B.B.B.B.B.B.B",
	}},
	{"DIAMOND", []string{
		"................",
		".......WW.......",
		"......WCCW......",
		".....WCBBCW.....",
		"....WCBPPBCW....",
		".....WCBBCW.....",
		"......WCCW......",
		".......WW.......",
	}},
	{"STRIPES", []string{
		"................",
		"WWWWWWWWWWWWWWWW",
		"................",
		"RRRRRRRRRRRRRRRR",
		"................",
		"WWWWWWWWWWWWWWWW",
		"................",
		"BBBBBBBBBBBBBBBB",
	}},
	{"HEART", []string{
		"................",
		"...KKK....KKK...",
		"..KRRRK..KRRRK..",
		".KRRRRRKKRRRRRK.",
		".KRRRRRRRRRRRRK.",
		"..KRRRRRRRRRRK..",
		"...KRRRRRRRRK...",
		"....KRRRRRRK....",
		".....KRRRRK.....",
		"......KRRK......",
		".......KK.......",
	}},
}

var challengeLevels = []levelMap{
	{"FORTRESS", []string{
		"................",
		"M..............M",
		"M.SSSSSSSSSSSS.M",
		"M.SRRRRRRRRRRS.M",
		"M.SRYYYYYYYYRS.M",
		"M.SRRRRRRRRRRS.M",
		"M.SSSSSSSSSSSS.M",
		"M..............M",
	}},
	{"INVADERS", []string{
		"................",
		"...G........G...",
		"....G......G....",
		"...GGGGGGGGGG...",
		"..GGLGGGGGGLGG..",
		".GGGGGGGGGGGGGG.",
		".G.GGGGGGGGGG.G.",
		".G.G........G.G.",
		"....GG....GG....",
	}},
	{"CASTLE", []string{
		"................",
		"N.N.N......N.N.N",
		"NNNNN......NNNNN",
		"NsSsN......NsSsN",
		"NSSSNNNNNNNNSSSN",
		"NSSSS$SSSS$SSSSN",
		"NSSSSSSSSSSSSSSN",
		"NSSSSS....SSSSSN",
		"NSSSSS....SSSSSN",
	}},
	{"FINAL BOSS", []string{
		"M$M$M$M$M$M$M$M$",
		"LLLLLLLLLLLLLLLL",
		"LRRLLLLLLLLLLRRL",
		"LRRLLLLLLLLLLRRL",
		"LLLLLLLLLLLLLLLL",
		"LLLLLWWWWWWLLLLL",
		"LLLLLWLLLLWLLLLL",
		".LLLLLLLLLLLLLL.",
		"..M..........M..",
	}},
}
