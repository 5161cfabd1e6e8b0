package charinfo

import (
	"sort"
	"unicode/utf8"
)

// Block is a named contiguous range of the Unicode codespace.
type Block struct {
	Start rune
	End   rune
	Abbr  string
	Name  string
}

// FindBlock returns the block containing r.
func FindBlock(r rune) (Block, bool) {
	i := sort.Search(len(blocks), func(i int) bool { return blocks[i].Start > r })
	if i == 0 {
		return Block{}, false
	}
	b := blocks[i-1]
	if r > b.End {
		return Block{}, false
	}
	return b, true
}

// Blocks returns the block table, sorted by start.
func Blocks() []Block {
	return blocks
}

// MaxBlockAbbrLen returns the display length of the longest block abbreviation.
func MaxBlockAbbrLen() int {
	return maxBlockAbbrLen
}

// MaxBlockNameLen returns the length of the longest block name.
func MaxBlockNameLen() int {
	return maxBlockNameLen
}

var maxBlockAbbrLen, maxBlockNameLen = func() (int, int) {
	var a, n int
	for _, b := range blocks {
		a = max(a, utf8.RuneCountInString(b.Abbr))
		n = max(n, len(b.Name))
	}
	return a, n
}()

// Unicode 15.1 blocks.
var blocks = []Block{
	{0x0000, 0x007F, "BaL", "Basic Latin"},
	{0x0080, 0x00FF, "La1ˢ", "Latin-1 Supplement"},
	{0x0100, 0x017F, "Latᵃ", "Latin Extended-A"},
	{0x0180, 0x024F, "Latᵇ", "Latin Extended-B"},
	{0x0250, 0x02AF, "IPA", "IPA Extensions"},
	{0x02B0, 0x02FF, "SML", "Spacing Modifier Letters"},
	{0x0300, 0x036F, "CDM", "Combining Diacritical Marks"},
	{0x0370, 0x03FF, "GrC", "Greek and Coptic"},
	{0x0400, 0x04FF, "Cyr", "Cyrillic"},
	{0x0500, 0x052F, "Cyrˢ", "Cyrillic Supplement"},
	{0x0530, 0x058F, "Arm", "Armenian"},
	{0x0590, 0x05FF, "Heb", "Hebrew"},
	{0x0600, 0x06FF, "Ara", "Arabic"},
	{0x0700, 0x074F, "Syr", "Syriac"},
	{0x0750, 0x077F, "Araˢ", "Arabic Supplement"},
	{0x0780, 0x07BF, "Thn", "Thaana"},
	{0x07C0, 0x07FF, "NKo", "NKo"},
	{0x0800, 0x083F, "Sam", "Samaritan"},
	{0x0840, 0x085F, "Man", "Mandaic"},
	{0x0860, 0x086F, "Syrˢ", "Syriac Supplement"},
	{0x0870, 0x089F, "Araᵇ", "Arabic Extended-B"},
	{0x08A0, 0x08FF, "Araᵃ", "Arabic Extended-A"},
	{0x0900, 0x097F, "Dev", "Devanagari"},
	{0x0980, 0x09FF, "Ben", "Bengali"},
	{0x0A00, 0x0A7F, "Gur", "Gurmukhi"},
	{0x0A80, 0x0AFF, "Guj", "Gujarati"},
	{0x0B00, 0x0B7F, "Ori", "Oriya"},
	{0x0B80, 0x0BFF, "Tam", "Tamil"},
	{0x0C00, 0x0C7F, "Tel", "Telugu"},
	{0x0C80, 0x0CFF, "Knn", "Kannada"},
	{0x0D00, 0x0D7F, "Mal", "Malayalam"},
	{0x0D80, 0x0DFF, "Sin", "Sinhala"},
	{0x0E00, 0x0E7F, "Tha", "Thai"},
	{0x0E80, 0x0EFF, "Lao", "Lao"},
	{0x0F00, 0x0FFF, "Tib", "Tibetan"},
	{0x1000, 0x109F, "Mya", "Myanmar"},
	{0x10A0, 0x10FF, "Geo", "Georgian"},
	{0x1100, 0x11FF, "HaJ", "Hangul Jamo"},
	{0x1200, 0x137F, "Eth", "Ethiopic"},
	{0x1380, 0x139F, "Ethˢ", "Ethiopic Supplement"},
	{0x13A0, 0x13FF, "Che", "Cherokee"},
	{0x1400, 0x167F, "UCA", "Unified Canadian Aboriginal Syllabics"},
	{0x1680, 0x169F, "Ogh", "Ogham"},
	{0x16A0, 0x16FF, "Run", "Runic"},
	{0x1700, 0x171F, "Tgl", "Tagalog"},
	{0x1720, 0x173F, "Han", "Hanunoo"},
	{0x1740, 0x175F, "Buh", "Buhid"},
	{0x1760, 0x177F, "Tgb", "Tagbanwa"},
	{0x1780, 0x17FF, "Khm", "Khmer"},
	{0x1800, 0x18AF, "Mon", "Mongolian"},
	{0x18B0, 0x18FF, "UCAˣ", "Unified Canadian Aboriginal Syllabics Extended"},
	{0x1900, 0x194F, "Lim", "Limbu"},
	{0x1950, 0x197F, "TaL", "Tai Le"},
	{0x1980, 0x19DF, "NTL", "New Tai Lue"},
	{0x19E0, 0x19FF, "Khme", "Khmer Symbols"},
	{0x1A00, 0x1A1F, "Bug", "Buginese"},
	{0x1A20, 0x1AAF, "TaT", "Tai Tham"},
	{0x1AB0, 0x1AFF, "CDMˣ", "Combining Diacritical Marks Extended"},
	{0x1B00, 0x1B7F, "Bal", "Balinese"},
	{0x1B80, 0x1BBF, "Sun", "Sundanese"},
	{0x1BC0, 0x1BFF, "Bat", "Batak"},
	{0x1C00, 0x1C4F, "Lep", "Lepcha"},
	{0x1C50, 0x1C7F, "OlC", "Ol Chiki"},
	{0x1C80, 0x1C8F, "Cyrᶜ", "Cyrillic Extended-C"},
	{0x1C90, 0x1CBF, "Geoˣ", "Georgian Extended"},
	{0x1CC0, 0x1CCF, "Sunˢ", "Sundanese Supplement"},
	{0x1CD0, 0x1CFF, "VeE", "Vedic Extensions"},
	{0x1D00, 0x1D7F, "PhE", "Phonetic Extensions"},
	{0x1D80, 0x1DBF, "PhEˢ", "Phonetic Extensions Supplement"},
	{0x1DC0, 0x1DFF, "CDMˢ", "Combining Diacritical Marks Supplement"},
	{0x1E00, 0x1EFF, "Lat⁺", "Latin Extended Additional"},
	{0x1F00, 0x1FFF, "Greˣ", "Greek Extended"},
	{0x2000, 0x206F, "GeP", "General Punctuation"},
	{0x2070, 0x209F, "SuS", "Superscripts and Subscripts"},
	{0x20A0, 0x20CF, "Cur", "Currency Symbols"},
	{0x20D0, 0x20FF, "CoDM", "Combining Diacritical Marks for Symbols"},
	{0x2100, 0x214F, "Let", "Letterlike Symbols"},
	{0x2150, 0x218F, "NuF", "Number Forms"},
	{0x2190, 0x21FF, "Arr", "Arrows"},
	{0x2200, 0x22FF, "MaO", "Mathematical Operators"},
	{0x2300, 0x23FF, "MiT", "Miscellaneous Technical"},
	{0x2400, 0x243F, "CoP", "Control Pictures"},
	{0x2440, 0x245F, "OCR", "Optical Character Recognition"},
	{0x2460, 0x24FF, "EnA", "Enclosed Alphanumerics"},
	{0x2500, 0x257F, "BoD", "Box Drawing"},
	{0x2580, 0x259F, "BlE", "Block Elements"},
	{0x25A0, 0x25FF, "GeS", "Geometric Shapes"},
	{0x2600, 0x26FF, "Mis", "Miscellaneous Symbols"},
	{0x2700, 0x27BF, "Din", "Dingbats"},
	{0x27C0, 0x27EF, "MiMᵃ", "Miscellaneous Mathematical Symbols-A"},
	{0x27F0, 0x27FF, "Arrᵃ", "Supplemental Arrows-A"},
	{0x2800, 0x28FF, "BrP", "Braille Patterns"},
	{0x2900, 0x297F, "Arrᵇ", "Supplemental Arrows-B"},
	{0x2980, 0x29FF, "MiMᵇ", "Miscellaneous Mathematical Symbols-B"},
	{0x2A00, 0x2AFF, "MaOˢ", "Supplemental Mathematical Operators"},
	{0x2B00, 0x2BFF, "MSA", "Miscellaneous Symbols and Arrows"},
	{0x2C00, 0x2C5F, "Gla", "Glagolitic"},
	{0x2C60, 0x2C7F, "Latᶜ", "Latin Extended-C"},
	{0x2C80, 0x2CFF, "Cop", "Coptic"},
	{0x2D00, 0x2D2F, "Geoˢ", "Georgian Supplement"},
	{0x2D30, 0x2D7F, "Tif", "Tifinagh"},
	{0x2D80, 0x2DDF, "Ethˣ", "Ethiopic Extended"},
	{0x2DE0, 0x2DFF, "Cyrᵃ", "Cyrillic Extended-A"},
	{0x2E00, 0x2E7F, "Punˢ", "Supplemental Punctuation"},
	{0x2E80, 0x2EFF, "CJRˢ", "CJK Radicals Supplement"},
	{0x2F00, 0x2FDF, "KaR", "Kangxi Radicals"},
	{0x2FF0, 0x2FFF, "IDC", "Ideographic Description Characters"},
	{0x3000, 0x303F, "CJSP", "CJK Symbols and Punctuation"},
	{0x3040, 0x309F, "Hir", "Hiragana"},
	{0x30A0, 0x30FF, "Kat", "Katakana"},
	{0x3100, 0x312F, "Bop", "Bopomofo"},
	{0x3130, 0x318F, "HCJ", "Hangul Compatibility Jamo"},
	{0x3190, 0x319F, "Kan", "Kanbun"},
	{0x31A0, 0x31BF, "Bopˣ", "Bopomofo Extended"},
	{0x31C0, 0x31EF, "CJS", "CJK Strokes"},
	{0x31F0, 0x31FF, "KPE", "Katakana Phonetic Extensions"},
	{0x3200, 0x32FF, "ECJ", "Enclosed CJK Letters and Months"},
	{0x3300, 0x33FF, "CJC", "CJK Compatibility"},
	{0x3400, 0x4DBF, "CJUᵃ", "CJK Unified Ideographs Extension A"},
	{0x4DC0, 0x4DFF, "YiH", "Yijing Hexagram Symbols"},
	{0x4E00, 0x9FFF, "CJU", "CJK Unified Ideographs"},
	{0xA000, 0xA48F, "YiS", "Yi Syllables"},
	{0xA490, 0xA4CF, "YiR", "Yi Radicals"},
	{0xA4D0, 0xA4FF, "Lis", "Lisu"},
	{0xA500, 0xA63F, "Vai", "Vai"},
	{0xA640, 0xA69F, "Cyrᵇ", "Cyrillic Extended-B"},
	{0xA6A0, 0xA6FF, "Bam", "Bamum"},
	{0xA700, 0xA71F, "MTL", "Modifier Tone Letters"},
	{0xA720, 0xA7FF, "Latᵈ", "Latin Extended-D"},
	{0xA800, 0xA82F, "SyN", "Syloti Nagri"},
	{0xA830, 0xA83F, "CIN", "Common Indic Number Forms"},
	{0xA840, 0xA87F, "Pha", "Phags-pa"},
	{0xA880, 0xA8DF, "Sau", "Saurashtra"},
	{0xA8E0, 0xA8FF, "Devˣ", "Devanagari Extended"},
	{0xA900, 0xA92F, "KaL", "Kayah Li"},
	{0xA930, 0xA95F, "Rej", "Rejang"},
	{0xA960, 0xA97F, "HaJᵃ", "Hangul Jamo Extended-A"},
	{0xA980, 0xA9DF, "Jav", "Javanese"},
	{0xA9E0, 0xA9FF, "Myaᵇ", "Myanmar Extended-B"},
	{0xAA00, 0xAA5F, "Cha", "Cham"},
	{0xAA60, 0xAA7F, "Myaᵃ", "Myanmar Extended-A"},
	{0xAA80, 0xAADF, "TaV", "Tai Viet"},
	{0xAAE0, 0xAAFF, "MME", "Meetei Mayek Extensions"},
	{0xAB00, 0xAB2F, "Ethᵃ", "Ethiopic Extended-A"},
	{0xAB30, 0xAB6F, "Latᵉ", "Latin Extended-E"},
	{0xAB70, 0xABBF, "Cheˢ", "Cherokee Supplement"},
	{0xABC0, 0xABFF, "MeM", "Meetei Mayek"},
	{0xAC00, 0xD7AF, "HaS", "Hangul Syllables"},
	{0xD7B0, 0xD7FF, "HaJᵇ", "Hangul Jamo Extended-B"},
	{0xD800, 0xDB7F, "Hig$", "High Surrogates"},
	{0xDB80, 0xDBFF, "HPU$", "High Private Use Surrogates"},
	{0xDC00, 0xDFFF, "Low$", "Low Surrogates"},
	{0xE000, 0xF8FF, "PUA", "Private Use Area"},
	{0xF900, 0xFAFF, "CJCI", "CJK Compatibility Ideographs"},
	{0xFB00, 0xFB4F, "APF", "Alphabetic Presentation Forms"},
	{0xFB50, 0xFDFF, "APFᵃ", "Arabic Presentation Forms-A"},
	{0xFE00, 0xFE0F, "VaS", "Variation Selectors"},
	{0xFE10, 0xFE1F, "VeF", "Vertical Forms"},
	{0xFE20, 0xFE2F, "CHM", "Combining Half Marks"},
	{0xFE30, 0xFE4F, "CJCF", "CJK Compatibility Forms"},
	{0xFE50, 0xFE6F, "SFV", "Small Form Variants"},
	{0xFE70, 0xFEFF, "APFᵇ", "Arabic Presentation Forms-B"},
	{0xFF00, 0xFFEF, "HFF", "Halfwidth and Fullwidth Forms"},
	{0xFFF0, 0xFFFF, "Spe", "Specials"},
	{0x10000, 0x1007F, "LBS", "Linear B Syllabary"},
	{0x10080, 0x100FF, "LBI", "Linear B Ideograms"},
	{0x10100, 0x1013F, "AeN", "Aegean Numbers"},
	{0x10140, 0x1018F, "AGN", "Ancient Greek Numbers"},
	{0x10190, 0x101CF, "Anc", "Ancient Symbols"},
	{0x101D0, 0x101FF, "PhD", "Phaistos Disc"},
	{0x10280, 0x1029F, "Lyc", "Lycian"},
	{0x102A0, 0x102DF, "Car", "Carian"},
	{0x102E0, 0x102FF, "CEN", "Coptic Epact Numbers"},
	{0x10300, 0x1032F, "Itaₒ", "Old Italic"},
	{0x10330, 0x1034F, "Got", "Gothic"},
	{0x10350, 0x1037F, "Perₒ", "Old Permic"},
	{0x10380, 0x1039F, "Uga", "Ugaritic"},
	{0x103A0, 0x103DF, "Prsₒ", "Old Persian"},
	{0x10400, 0x1044F, "Des", "Deseret"},
	{0x10450, 0x1047F, "Sha", "Shavian"},
	{0x10480, 0x104AF, "Osm", "Osmanya"},
	{0x104B0, 0x104FF, "Osa", "Osage"},
	{0x10500, 0x1052F, "Elb", "Elbasan"},
	{0x10530, 0x1056F, "CaA", "Caucasian Albanian"},
	{0x10570, 0x105BF, "Vit", "Vithkuqi"},
	{0x10600, 0x1077F, "LiA", "Linear A"},
	{0x10780, 0x107BF, "Latᶠ", "Latin Extended-F"},
	{0x10800, 0x1083F, "CyS", "Cypriot Syllabary"},
	{0x10840, 0x1085F, "ImA", "Imperial Aramaic"},
	{0x10860, 0x1087F, "Pal", "Palmyrene"},
	{0x10880, 0x108AF, "Nab", "Nabataean"},
	{0x108E0, 0x108FF, "Hat", "Hatran"},
	{0x10900, 0x1091F, "Pho", "Phoenician"},
	{0x10920, 0x1093F, "Lyd", "Lydian"},
	{0x10980, 0x1099F, "MeH", "Meroitic Hieroglyphs"},
	{0x109A0, 0x109FF, "MeC", "Meroitic Cursive"},
	{0x10A00, 0x10A5F, "Kha", "Kharoshthi"},
	{0x10A60, 0x10A7F, "SoAₒ", "Old South Arabian"},
	{0x10A80, 0x10A9F, "NoAₒ", "Old North Arabian"},
	{0x10AC0, 0x10AFF, "Mnc", "Manichaean"},
	{0x10B00, 0x10B3F, "Ave", "Avestan"},
	{0x10B40, 0x10B5F, "InsP", "Inscriptional Parthian"},
	{0x10B60, 0x10B7F, "InP", "Inscriptional Pahlavi"},
	{0x10B80, 0x10BAF, "PsP", "Psalter Pahlavi"},
	{0x10C00, 0x10C4F, "Turₒ", "Old Turkic"},
	{0x10C80, 0x10CFF, "Hunₒ", "Old Hungarian"},
	{0x10D00, 0x10D3F, "HaR", "Hanifi Rohingya"},
	{0x10E60, 0x10E7F, "RuN", "Rumi Numeral Symbols"},
	{0x10E80, 0x10EBF, "Yez", "Yezidi"},
	{0x10EC0, 0x10EFF, "Araᶜ", "Arabic Extended-C"},
	{0x10F00, 0x10F2F, "Sogₒ", "Old Sogdian"},
	{0x10F30, 0x10F6F, "Sog", "Sogdian"},
	{0x10F70, 0x10FAF, "Uygₒ", "Old Uyghur"},
	{0x10FB0, 0x10FDF, "Cho", "Chorasmian"},
	{0x10FE0, 0x10FFF, "Ely", "Elymaic"},
	{0x11000, 0x1107F, "Bra", "Brahmi"},
	{0x11080, 0x110CF, "Kai", "Kaithi"},
	{0x110D0, 0x110FF, "SoS", "Sora Sompeng"},
	{0x11100, 0x1114F, "Chk", "Chakma"},
	{0x11150, 0x1117F, "Mah", "Mahajani"},
	{0x11180, 0x111DF, "Shr", "Sharada"},
	{0x111E0, 0x111FF, "SAN", "Sinhala Archaic Numbers"},
	{0x11200, 0x1124F, "Kho", "Khojki"},
	{0x11280, 0x112AF, "Mul", "Multani"},
	{0x112B0, 0x112FF, "Khu", "Khudawadi"},
	{0x11300, 0x1137F, "Gra", "Grantha"},
	{0x11400, 0x1147F, "New", "Newa"},
	{0x11480, 0x114DF, "Tir", "Tirhuta"},
	{0x11580, 0x115FF, "Sid", "Siddham"},
	{0x11600, 0x1165F, "Mod", "Modi"},
	{0x11660, 0x1167F, "Monˢ", "Mongolian Supplement"},
	{0x11680, 0x116CF, "Tak", "Takri"},
	{0x11700, 0x1174F, "Aho", "Ahom"},
	{0x11800, 0x1184F, "Dog", "Dogra"},
	{0x118A0, 0x118FF, "WaC", "Warang Citi"},
	{0x11900, 0x1195F, "DiA", "Dives Akuru"},
	{0x119A0, 0x119FF, "Nan", "Nandinagari"},
	{0x11A00, 0x11A4F, "ZaS", "Zanabazar Square"},
	{0x11A50, 0x11AAF, "Soy", "Soyombo"},
	{0x11AB0, 0x11ABF, "UCAᵃ", "Unified Canadian Aboriginal Syllabics Extended-A"},
	{0x11AC0, 0x11AFF, "PCH", "Pau Cin Hau"},
	{0x11B00, 0x11B5F, "Devᵃ", "Devanagari Extended-A"},
	{0x11C00, 0x11C6F, "Bha", "Bhaiksuki"},
	{0x11C70, 0x11CBF, "Mar", "Marchen"},
	{0x11D00, 0x11D5F, "MaG", "Masaram Gondi"},
	{0x11D60, 0x11DAF, "GuG", "Gunjala Gondi"},
	{0x11EE0, 0x11EFF, "Mak", "Makasar"},
	{0x11F00, 0x11F5F, "Kaw", "Kawi"},
	{0x11FB0, 0x11FBF, "Lisˢ", "Lisu Supplement"},
	{0x11FC0, 0x11FFF, "Tamˢ", "Tamil Supplement"},
	{0x12000, 0x123FF, "Cun", "Cuneiform"},
	{0x12400, 0x1247F, "CNP", "Cuneiform Numbers and Punctuation"},
	{0x12480, 0x1254F, "EDC", "Early Dynastic Cuneiform"},
	{0x12F90, 0x12FFF, "CyM", "Cypro-Minoan"},
	{0x13000, 0x1342F, "EgH", "Egyptian Hieroglyphs"},
	{0x13430, 0x1345F, "EHF", "Egyptian Hieroglyph Format Controls"},
	{0x14400, 0x1467F, "AnH", "Anatolian Hieroglyphs"},
	{0x16800, 0x16A3F, "Bamˢ", "Bamum Supplement"},
	{0x16A40, 0x16A6F, "Mro", "Mro"},
	{0x16A70, 0x16ACF, "Tan", "Tangsa"},
	{0x16AD0, 0x16AFF, "BaV", "Bassa Vah"},
	{0x16B00, 0x16B8F, "PaH", "Pahawh Hmong"},
	{0x16E40, 0x16E9F, "Med", "Medefaidrin"},
	{0x16F00, 0x16F9F, "Mia", "Miao"},
	{0x16FE0, 0x16FFF, "ISP", "Ideographic Symbols and Punctuation"},
	{0x17000, 0x187FF, "Tng", "Tangut"},
	{0x18800, 0x18AFF, "TaC", "Tangut Components"},
	{0x18B00, 0x18CFF, "KSS", "Khitan Small Script"},
	{0x18D00, 0x18D7F, "Tanˢ", "Tangut Supplement"},
	{0x1AFF0, 0x1AFFF, "Kanᵇ", "Kana Extended-B"},
	{0x1B000, 0x1B0FF, "Kanˢ", "Kana Supplement"},
	{0x1B100, 0x1B12F, "Kanᵃ", "Kana Extended-A"},
	{0x1B130, 0x1B16F, "SKE", "Small Kana Extension"},
	{0x1B170, 0x1B2FF, "Nus", "Nushu"},
	{0x1BC00, 0x1BC9F, "Dup", "Duployan"},
	{0x1BCA0, 0x1BCAF, "SFC", "Shorthand Format Controls"},
	{0x1CF00, 0x1CFCF, "ZMN", "Znamenny Musical Notation"},
	{0x1D000, 0x1D0FF, "ByM", "Byzantine Musical Symbols"},
	{0x1D100, 0x1D1FF, "Mus", "Musical Symbols"},
	{0x1D200, 0x1D24F, "AGM", "Ancient Greek Musical Notation"},
	{0x1D2C0, 0x1D2DF, "KaN", "Kaktovik Numerals"},
	{0x1D2E0, 0x1D2FF, "MaN", "Mayan Numerals"},
	{0x1D300, 0x1D35F, "TXJ", "Tai Xuan Jing Symbols"},
	{0x1D360, 0x1D37F, "CRN", "Counting Rod Numerals"},
	{0x1D400, 0x1D7FF, "MaA", "Mathematical Alphanumeric Symbols"},
	{0x1D800, 0x1DAAF, "SSW", "Sutton SignWriting"},
	{0x1DF00, 0x1DFFF, "Latᵍ", "Latin Extended-G"},
	{0x1E000, 0x1E02F, "Glaˢ", "Glagolitic Supplement"},
	{0x1E030, 0x1E08F, "Cyrᵈ", "Cyrillic Extended-D"},
	{0x1E100, 0x1E14F, "NPH", "Nyiakeng Puachue Hmong"},
	{0x1E290, 0x1E2BF, "Tot", "Toto"},
	{0x1E2C0, 0x1E2FF, "Wan", "Wancho"},
	{0x1E4D0, 0x1E4FF, "NaM", "Nag Mundari"},
	{0x1E7E0, 0x1E7FF, "Ethᵇ", "Ethiopic Extended-B"},
	{0x1E800, 0x1E8DF, "MeK", "Mende Kikakui"},
	{0x1E900, 0x1E95F, "Adl", "Adlam"},
	{0x1EC70, 0x1ECBF, "ISN", "Indic Siyaq Numbers"},
	{0x1ED00, 0x1ED4F, "OSN", "Ottoman Siyaq Numbers"},
	{0x1EE00, 0x1EEFF, "AMA", "Arabic Mathematical Alphabetic Symbols"},
	{0x1F000, 0x1F02F, "MaT", "Mahjong Tiles"},
	{0x1F030, 0x1F09F, "DoT", "Domino Tiles"},
	{0x1F0A0, 0x1F0FF, "PlC", "Playing Cards"},
	{0x1F100, 0x1F1FF, "EnAˢ", "Enclosed Alphanumeric Supplement"},
	{0x1F200, 0x1F2FF, "EnIˢ", "Enclosed Ideographic Supplement"},
	{0x1F300, 0x1F5FF, "MSP", "Miscellaneous Symbols and Pictographs"},
	{0x1F600, 0x1F64F, "Emo", "Emoticons"},
	{0x1F650, 0x1F67F, "OrD", "Ornamental Dingbats"},
	{0x1F680, 0x1F6FF, "TrM", "Transport and Map Symbols"},
	{0x1F700, 0x1F77F, "Alc", "Alchemical Symbols"},
	{0x1F780, 0x1F7FF, "GeSˣ", "Geometric Shapes Extended"},
	{0x1F800, 0x1F8FF, "Arrᶜ", "Supplemental Arrows-C"},
	{0x1F900, 0x1F9FF, "SyPˢ", "Supplemental Symbols and Pictographs"},
	{0x1FA00, 0x1FA6F, "Chs", "Chess Symbols"},
	{0x1FA70, 0x1FAFF, "SyPᵃ", "Symbols and Pictographs Extended-A"},
	{0x1FB00, 0x1FBFF, "SLC", "Symbols for Legacy Computing"},
	{0x20000, 0x2A6DF, "CJUᵇ", "CJK Unified Ideographs Extension B"},
	{0x2A700, 0x2B73F, "CJUᶜ", "CJK Unified Ideographs Extension C"},
	{0x2B740, 0x2B81F, "CJUᵈ", "CJK Unified Ideographs Extension D"},
	{0x2B820, 0x2CEAF, "CJUᵉ", "CJK Unified Ideographs Extension E"},
	{0x2CEB0, 0x2EBEF, "CJUᶠ", "CJK Unified Ideographs Extension F"},
	{0x2EBF0, 0x2EE5F, "CJUⁱ", "CJK Unified Ideographs Extension I"},
	{0x2F800, 0x2FA1F, "CJCˢ", "CJK Compatibility Ideographs Supplement"},
	{0x30000, 0x3134F, "CJUᵍ", "CJK Unified Ideographs Extension G"},
	{0x31350, 0x323AF, "CJUʰ", "CJK Unified Ideographs Extension H"},
	{0xE0000, 0xE007F, "Tag", "Tags"},
	{0xE0100, 0xE01EF, "VaSˢ", "Variation Selectors Supplement"},
	{0xF0000, 0xFFFFF, "PUAᵃ", "Supplementary Private Use Area-A"},
	{0x100000, 0x10FFFF, "PUAᵇ", "Supplementary Private Use Area-B"},
}
