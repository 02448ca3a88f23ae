package cure

import "cure-colormap/pkg/gradient"

// Character is a set of aliases sharing one gradient.
type Character struct {
	Names    []string
	Gradient *gradient.Gradient
}

// Name returns the romanized alias, which is listed last.
func (c *Character) Name() string {
	if len(c.Names) == 0 {
		return ""
	}
	return c.Names[len(c.Names)-1]
}

func define(names []string, colors ...string) *Character {
	return &Character{Names: names, Gradient: mustBuild(gradient.Continuous, colors)}
}

func defineQualitative(names []string, colors ...string) *Character {
	return &Character{Names: names, Gradient: mustBuild(gradient.Qualitative, colors)}
}

func mustBuild(mode gradient.Mode, colors []string) *gradient.Gradient {
	g, err := gradient.Build(mode, colors)
	if err != nil {
		panic("cure: bad built-in palette: " + err.Error())
	}
	return g
}

var (
	// Futari wa Pretty Cure
	CureBlack = define([]string{"キュアブラック", "Cure Black"}, "#00072A", "#00072A", "#6e4001", "#FF3398", "#FBFBFB")
	CureWhite = define([]string{"キュアホワイト", "Cure White"}, "#F4F4F4", "#F4F4F4", "#78DDE4", "#0365B5", "#120c4f")

	// Futari wa Pretty Cure Max Heart
	ShinyLuminous = define([]string{"シャイニールミナス", "Shiny Luminous"}, "#FECF04", "#FEFB53", "#F5F7F7", "#FEB1D1", "#FE3521")

	// Futari wa Pretty Cure Splash Star
	CureBloom     = define([]string{"キュアブルーム", "Cure Bloom"}, "#FCAC35", "#FFFF8E", "#FF3292", "#942953")
	CureBright    = define([]string{"キュアブライト", "Cure Bright"}, "#FDAD38", "#FBCF84", "#FFFFA6", "#F0E947", "#97F518", "#FFFFDF", "#F93B9A", "#DC0067", "#942953")
	CureEgret     = define([]string{"キュアイーグレット", "Cure Egret"}, "#711391", "#FFFFF3", "#D0D6FF", "#06FCD5")
	CureWindy     = define([]string{"キュアウインディ", "Cure Windy"}, "#741B93", "#711391", "#D16FE7", "#F8F8F8", "#FFF3FD", "#FDB2E1", "#DFFFFF", "#01FEDE")
	KaoruKiryuu   = define([]string{"霧生薫", "Kaoru Kiryuu"}, "#275D8A", "#DDECF1", "#E7F5FD", "#DDB9CB", "#CC87BB")
	MichiruKiryuu = define([]string{"霧生満", "Michiru Kiryuu"}, "#8D2045", "#DC98A9", "#C5E462", "#FFEE2C", "#F9FA9B", "#C11E7A")

	// Yes! PreCure 5
	CureDream    = define([]string{"キュアドリーム", "Cure Dream"}, "#A6366B", "#F14694", "#FFB8F9", "#FFFBCD", "#FFFBCD", "#ECD01B")
	CureRouge    = define([]string{"キュアルージュ", "Cure Rouge"}, "#D34B32", "#EC9689", "#EC9689", "#FCEDFD", "#FCEDFD", "#FF1EA9")
	CureLemonade = define([]string{"キュアレモネード", "Cure Lemonade"}, "#D8A725", "#FFEE9E", "#FAF4C2", "#FDFDF7", "#FAC04D", "#E39B14")
	CureMint     = define([]string{"キュアミント", "Cure Mint"}, "#029476", "#55E5CD", "#FFFFF0", "#21AA03")
	CureAqua     = define([]string{"キュアアクア", "Cure Aqua"}, "#1452A4", "#B3D3FE", "#F2FDFD", "#0974CC", "#3C3DA3")
	DarkDream    = define([]string{"ダークドリーム", "Dark Dream"}, "#D02674", "#F9D1EC", "#313144", "#000000")
	DarkRouge    = define([]string{"ダークルージュ", "Dark Rouge"}, "#A92E3F", "#F8C8D6", "#313144", "#000000")
	DarkLemonade = define([]string{"ダークレモネード", "Dark Lemonade"}, "#AB7221", "#FCD516", "#313144", "#000000")
	DarkMint     = define([]string{"ダークミント", "Dark Mint"}, "#05A67C", "#E1FEEF", "#313144", "#000000")
	DarkAqua     = define([]string{"ダークアクア", "Dark Aqua"}, "#366CCB", "#B9E8F8", "#313144", "#000000")

	// Yes! PreCure 5 GoGo!
	MilkyRose = define([]string{"ミルキィローズ", "Milky Rose"}, "#9136cf", "#CA2DA2", "#E7C8F9", "#B4EBEA", "#0386F3")

	// Fresh Pretty Cure!
	CurePeach   = define([]string{"キュアピーチ", "Cure Peach"}, "#953678", "#DC3E72", "#FF8ABF", "#FFF4AC")
	CureBerry   = define([]string{"キュアベリー", "Cure Berry"}, "#353A57", "#2E7DCA", "#6AB7FE", "#C7B3FA")
	CurePine    = define([]string{"キュアパイン", "Cure Pine"}, "#9B4750", "#FD8E18", "#FFDA5C", "#DB7A45")
	CurePassion = define([]string{"キュアパッション", "Cure Passion"}, "#242B33", "#8E0331", "#DA2A3D", "#FFCBE5")

	// HeartCatch PreCure!
	CureBlossom   = define([]string{"キュアブロッサム", "Cure Blossom"}, "#cf1b71", "#F954BD", "#FD98D7", "#FEF3FE")
	CureMarine    = define([]string{"キュアマリン", "Cure Marine"}, "#4A7AED", "#6EB2F1", "#63DEED", "#EFFAFF")
	CureSunshine  = define([]string{"キュアサンシャイン", "Cure Sunshine"}, "#F98435", "#FFAC05", "#FFE55C", "#DD991D")
	CureMoonlight = define([]string{"キュアムーンライト", "Cure Moonlight"}, "#404A8F", "#6F7FDE", "#CDD5E2", "#D0B0D9")
	CureFlower    = define([]string{"キュアフラワー", "Cure Flower"}, "#CE7AAE", "#F8D1EC", "#F9FCBF", "#FD9CBF", "#CB1C55")
	DarkPrecure   = define([]string{"ダークプリキュア", "Dark Precure"}, "#171717", "#042F36", "#A6D8C6", "#FDA4BE", "#980E13")

	// Suite PreCure
	CureMelody = define([]string{"キュアメロディ", "Cure Melody"}, "#DC3688", "#FF78C4", "#F9A5C9", "#FFFFFF")
	CureRhythm = define([]string{"キュアリズム", "Cure Rhythm"}, "#D0A947", "#FDF48B", "#FAB7E5", "#FFFFFF")
	CureBeat   = define([]string{"キュアビート", "Cure Beat"}, "#303277", "#728CF1", "#C2EBFC", "#D393F8", "#FFFFFF")
	CureMuse   = define([]string{"キュアミューズ", "Cure Muse"}, "#C86424", "#FFAC4E", "#FACC2A", "#FFFB52", "#FFFFFF")

	// Smile PreCure!
	CureHappy  = define([]string{"キュアハッピー", "Cure Happy"}, "#A62169", "#EB4CB0", "#FFFFFF")
	CureSunny  = define([]string{"キュアサニー", "Cure Sunny"}, "#A42C04", "#F95000", "#FEFFD5")
	CurePeace  = define([]string{"キュアピース", "Cure Peace"}, "#D3A502", "#FDE552", "#FFFFEE")
	CureMarch  = define([]string{"キュアマーチ", "Cure March"}, "#208635", "#4DDC50", "#F3FED6")
	CureBeauty = define([]string{"キュアビューティ", "Cure Beauty"}, "#3135A5", "#86A6FF", "#DAE7FA")

	// DokiDoki! PreCure
	CureHeart     = define([]string{"キュアハート", "Cure Heart"}, "#D4A615", "#FFF99E", "#FAFAFA", "#FAB1E2", "#EC3C9C")
	CureDiamond   = define([]string{"キュアダイヤモンド", "Cure Diamond"}, "#4245AF", "#A8ACF9", "#FAFAFA", "#5791F1", "#597AA7")
	CureRosetta   = define([]string{"キュアロゼッタ", "Cure Rosetta"}, "#B3481E", "#FFC05C", "#FAFAFA", "#C9EFB6", "#F7DB3D")
	CureSword     = define([]string{"キュアソード", "Cure Sword"}, "#AE57B5", "#EEB4F8", "#FAFAFA", "#ADBBF5", "#8B87B2")
	CureAce       = define([]string{"キュアエース", "Cure Ace"}, "#A51318", "#FD757D", "#FFE8EC", "#FAFAFA", "#FFFFFF")
	CureSebastian = define([]string{"キュアセバスチャン", "Cure Sebastian"}, "#36424E", "#E0EBF1", "#DB0517", "#DB3FA2", "#F48484")

	// HappinessCharge PreCure!
	CureLovely   = define([]string{"キュアラブリー", "Cure Lovely"}, "#B51573", "#FB8DDE", "#FFE7FD", "#334463")
	CurePrincess = define([]string{"キュアプリンセス", "Cure Princess"}, "#3C558E", "#BEDBFF", "#FAEFAB", "#334463")
	CureHoney    = define([]string{"キュアハニー", "Cure Honey"}, "#F3A11E", "#FFD144", "#FFF0CC", "#334463")
	CureFortune  = define([]string{"キュアフォーチュン", "Cure Fortune"}, "#756BD8", "#A79AF8", "#EAD3FF", "#334463")
	CureTender   = define([]string{"キュアテンダー", "Cure Tender"}, "#67729C", "#7A87B4", "#BFBDFE", "#354463")
	CureMirage   = define([]string{"キュアミラージュ", "Cure Mirage"}, "#E34F4B", "#F06C7A", "#F1C3C6", "#354463")

	// Go! Princess PreCure
	CureFlora   = define([]string{"キュアフローラ", "Cure Flora"}, "#DC3482", "#FE8ADA", "#FFF5FD", "#F8F5A2")
	CureMermaid = define([]string{"キュアマーメイド", "Cure Mermaid"}, "#3C57D8", "#8EE9D8", "#F1FBF2", "#FCC3DD")
	CureTwinkle = define([]string{"キュアトゥインクル", "Cure Twinkle"}, "#F15312", "#FF9A18", "#FDFF94", "#FCE92D", "#BA70F8")
	CureScarlet = define([]string{"キュアスカーレット", "Cure Scarlet"}, "#E73F94", "#FEC8FC", "#F6D437", "#E01646")

	// Witchy PreCure!
	CureMiracle = define([]string{"キュアミラクル", "Cure Miracle"}, "#E53972", "#F05EB1", "#FED6F5", "#FFE36F", "#F08A6A")
	CureMagical = define([]string{"キュアマジカル", "Cure Magical"}, "#575E60", "#6A509D", "#8F79B5", "#AC7BB3", "#DE1A3F")
	CureFelice  = define([]string{"キュアフェリーチェ", "Cure Felice"}, "#FF649F", "#FFC8E7", "#FBFBF8", "#FFF75F", "#FBFBF8", "#D6FBEC", "#54E0A3")
	CureMofurun = define([]string{"キュアモフルン", "Cure Mofurun"}, "#E37EAF", "#F8BA66", "#F29118", "#fff259", "#AD7BB3")

	// Kirakira PreCure a la Mode
	CureWhip     = define([]string{"キュアホイップ", "Cure Whip"}, "#A40945", "#FF488D", "#FEBDCA", "#F7EEB5")
	CureCustard  = define([]string{"キュアカスタード", "Cure Custard"}, "#BB3E26", "#FFF324", "#F9F9CF", "#FD663E")
	CureGelato   = define([]string{"キュアジェラート", "Cure Gelato"}, "#5959C9", "#3F6BEC", "#6CCDFF", "#FDFCDB")
	CureMacaron  = define([]string{"キュアマカロン", "Cure Macaron"}, "#F528AF", "#8B51D9", "#FBD2ED", "#D166D1")
	CureChocolat = define([]string{"キュアショコラ", "Cure Chocolat"}, "#623114", "#986147", "#D80014", "#FFE9C2")
	CureParfait  = defineQualitative([]string{"キュアパルフェ", "Cure Parfait"}, "#FFC4EA", "#D21953", "#FF4766", "#FFA523", "#F5F78A", "#55F897", "#4FDBE8")
	CurePekorin  = define([]string{"キュアペコリン", "Cure Pekorin"}, "#DA064C", "#FF8AB4", "#F5CD5F", "#F3EBC1")

	// Hugtto! PreCure
	CureYell     = define([]string{"キュアエール", "Cure Yell"}, "#B30D39", "#F457A4", "#FEE0FE", "#A4EFCF", "#FEF395")
	CureAnge     = define([]string{"キュアアンジュ", "Cure Ange"}, "#07A4FD", "#0EC9FE", "#A2EEFE", "#B9C9FB", "#FFF29C")
	CureEtoile   = define([]string{"キュアエトワール", "Cure Etoile"}, "#EFAB17", "#F7D95D", "#FFFB86", "#FFAD0C", "#6796EB")
	CureMacherie = define([]string{"キュアマシェリ", "Cure Macherie"}, "#DA003B", "#FF4D6F", "#FF8AAE", "#FF6FBB", "#F56AD5", "#FAFAA0")
	CureAmour    = define([]string{"キュアアムール", "Cure Amour"}, "#B9C0FF", "#BC80E6", "#E35EEA", "#9044B0", "#FF5DC0")
	CureAnfini   = define([]string{"キュアアンフィニ", "Cure Anfini"}, "#C5E8E1", "#F4F5F9", "#FCEDB3", "#CDD7FE", "#A3A8E7")
	CureTomorrow = define([]string{"キュアトゥモロー", "Cure Tomorrow"}, "#FE1D79", "#FF98C2", "#FFD4ED", "#7CBFF3", "#FFF28F")

	// Star Twinkle PreCure
	CureStar   = define([]string{"キュアスター", "Cure Star"}, "#E94471", "#F04878", "#FEE0F1", "#FFF6C0", "#FFE354")
	CureMilky  = define([]string{"キュアミルキー", "Cure Milky"}, "#1E5DF6", "#16C1D0", "#BDF7FF", "#FEFFC0", "#FBE950")
	CureSoleil = define([]string{"キュアソレイユ", "Cure Soleil"}, "#C659AC", "#DB70A6", "#E26B14", "#FFBE2C", "#FFDE3A", "#FFF599")
	CureSelene = define([]string{"キュアセレーネ", "Cure Selene"}, "#8969DA", "#AA96FF", "#CDA5FD", "#E8FDFF", "#FEFA70")
	CureCosmo  = defineQualitative([]string{"キュアコスモ", "Cure Cosmo"}, "#4F78FF", "#8AF0FC", "#B3FF7A", "#FFE63A", "#FF9D27", "#FF72D6", "#CD55ED", "#474969")
)

// Characters returns every built-in character in series order.
func Characters() []*Character {
	return []*Character{
		CureBlack, CureWhite, ShinyLuminous, CureBloom, CureBright, CureEgret, CureWindy,
		KaoruKiryuu, MichiruKiryuu, CureDream, CureRouge, CureLemonade, CureMint, CureAqua,
		DarkDream, DarkRouge, DarkLemonade, DarkMint, DarkAqua, MilkyRose, CurePeach,
		CureBerry, CurePine, CurePassion, CureBlossom, CureMarine, CureSunshine, CureMoonlight,
		CureFlower, DarkPrecure, CureMelody, CureRhythm, CureBeat, CureMuse, CureHappy,
		CureSunny, CurePeace, CureMarch, CureBeauty, CureHeart, CureDiamond, CureRosetta,
		CureSword, CureAce, CureSebastian, CureLovely, CurePrincess, CureHoney, CureFortune,
		CureTender, CureMirage, CureFlora, CureMermaid, CureTwinkle, CureScarlet, CureMiracle,
		CureMagical, CureFelice, CureMofurun, CureWhip, CureCustard, CureGelato, CureMacaron,
		CureChocolat, CureParfait, CurePekorin, CureYell, CureAnge, CureEtoile, CureMacherie,
		CureAmour, CureAnfini, CureTomorrow, CureStar, CureMilky, CureSoleil, CureSelene,
		CureCosmo,
	}
}
