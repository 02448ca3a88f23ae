package cure

var builtinTitles = []Title{
	{"Futari wa Pretty Cure", []string{
		"Cure Black",
		"Cure White",
	}},
	{"Futari wa Pretty Cure Max Heart", []string{
		"Cure Black",
		"Cure White",
		"Shiny Luminous",
	}},
	{"Futari wa Pretty Cure Splash Star", []string{
		"Cure Bloom",
		"Cure Bright",
		"Cure Egret",
		"Cure Windy",
		"Kaoru Kiryuu",
		"Michiru Kiryuu",
	}},
	{"Yes! PreCure 5", []string{
		"Cure Dream",
		"Cure Rouge",
		"Cure Lemonade",
		"Cure Mint",
		"Cure Aqua",
		"Dark Dream",
		"Dark Rouge",
		"Dark Lemonade",
		"Dark Mint",
		"Dark Aqua",
	}},
	{"Yes! PreCure 5 GoGo!", []string{
		"Cure Dream",
		"Cure Rouge",
		"Cure Lemonade",
		"Cure Mint",
		"Cure Aqua",
		"Milky Rose",
	}},
	{"Fresh Pretty Cure!", []string{
		"Cure Peach",
		"Cure Berry",
		"Cure Pine",
		"Cure Passion",
	}},
	{"HeartCatch PreCure!", []string{
		"Cure Blossom",
		"Cure Marine",
		"Cure Sunshine",
		"Cure Moonlight",
		"Cure Flower",
		"Dark Precure",
	}},
	{"Suite PreCure", []string{
		"Cure Melody",
		"Cure Rhythm",
		"Cure Beat",
		"Cure Muse",
	}},
	{"Smile PreCure!", []string{
		"Cure Happy",
		"Cure Sunny",
		"Cure Peace",
		"Cure March",
		"Cure Beauty",
	}},
	{"DokiDoki! PreCure", []string{
		"Cure Heart",
		"Cure Diamond",
		"Cure Rosetta",
		"Cure Sword",
		"Cure Ace",
		"Cure Sebastian",
	}},
	{"HappinessCharge PreCure!", []string{
		"Cure Lovely",
		"Cure Princess",
		"Cure Honey",
		"Cure Fortune",
		"Cure Tender",
		"Cure Mirage",
	}},
	{"Go! Princess PreCure", []string{
		"Cure Flora",
		"Cure Mermaid",
		"Cure Twinkle",
		"Cure Scarlet",
	}},
	{"Witchy PreCure!", []string{
		"Cure Miracle",
		"Cure Magical",
		"Cure Felice",
		"Cure Mofurun",
	}},
	{"Kirakira PreCure a la Mode", []string{
		"Cure Whip",
		"Cure Custard",
		"Cure Gelato",
		"Cure Macaron",
		"Cure Chocolat",
		"Cure Parfait",
		"Cure Pekorin",
	}},
	{"Hugtto! PreCure", []string{
		"Cure Yell",
		"Cure Ange",
		"Cure Etoile",
		"Cure Macherie",
		"Cure Amour",
		"Cure Anfini",
		"Cure Tomorrow",
	}},
	{"Star Twinkle PreCure", []string{
		"Cure Star",
		"Cure Milky",
		"Cure Soleil",
		"Cure Selene",
		"Cure Cosmo",
	}},
}
