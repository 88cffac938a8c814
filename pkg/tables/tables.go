// Package tables holds the static data consumed by the transformations:
// substitution alphabets, confusable pools, combining-mark pools, payload
// fragments, and corpora. Pure data, no logic.
package tables

// LeetVariants maps lowercase letters to their leetspeak substitutes.
// Letters with more than one entry are picked at random per occurrence.
var LeetVariants = map[rune][]rune{
	'a': {'4', '@'},
	'e': {'3'},
	'i': {'1', '!'},
	'o': {'0'},
	's': {'5', '$'},
	't': {'7'},
	'l': {'1'},
	'g': {'9'},
	'b': {'8'},
}

// Homoglyphs maps Latin letters and digits to visually confusable
// codepoints drawn from Cyrillic and Latin lookalikes. Substitutes are
// single scalar values that survive NFC unchanged; callers doing
// fixed-width byte processing should still expect multi-byte UTF-8.
var Homoglyphs = map[rune][]rune{
	'a': {'а'}, 'A': {'а'}, // Cyrillic а
	'e': {'е'}, 'E': {'е'}, // Cyrillic е
	'o': {'о'}, 'O': {'о'}, // Cyrillic о
	'p': {'р'}, 'P': {'р'}, // Cyrillic р
	'c': {'с'}, 'C': {'с'}, // Cyrillic с
	'x': {'х'}, 'X': {'х'}, // Cyrillic х
	'i': {'і'}, 'I': {'і'}, // Cyrillic і
	'0': {'О'}, // letter O
	'1': {'l'}, // letter l
}

// AccentVariants maps lowercase vowels and a few consonants to accented
// Latin forms used by unicode_variations. Index 0 is always the plain
// letter so the identity outcome stays in the pool.
var AccentVariants = map[rune][]rune{
	'a': {'a', 'à', 'á', 'â', 'ã', 'ä', 'å', 'ā', 'ă'},
	'e': {'e', 'è', 'é', 'ê', 'ë', 'ē', 'ĕ', 'ė'},
	'i': {'i', 'ì', 'í', 'î', 'ï', 'ī', 'ĭ', 'į'},
	'o': {'o', 'ò', 'ó', 'ô', 'õ', 'ö', 'ō', 'ŏ'},
	'u': {'u', 'ù', 'ú', 'û', 'ü', 'ū', 'ŭ', 'ů'},
	'c': {'c', 'ç', 'ć', 'ĉ', 'ċ', 'č'},
	'n': {'n', 'ñ', 'ń', 'ņ', 'ň'},
	's': {'s', 'ś', 'ŝ', 'ş', 'š'},
}

// NormalizeVariants maps letters to semantically-equivalent Unicode
// representations: plain Latin, Cyrillic confusable, fullwidth form, and a
// decomposed letter+combining-acute pair.
var NormalizeVariants = map[rune][]string{
	'a': {"a", "а", "ａ", "á"},
	'A': {"a", "а", "ａ", "á"},
	'e': {"e", "е", "ｅ", "é"},
	'E': {"e", "е", "ｅ", "é"},
	'o': {"o", "о", "ｏ", "ó"},
	'O': {"o", "о", "ｏ", "ó"},
}

// Combining-mark pools for zalgo text, split by where the mark renders
// relative to the base character.
var (
	ZalgoAbove = []rune{
		'̀', '́', '̂', '̃', '̄', '̅',
		'̆', '̇', '̈', '̉', '̊', '̋',
		'̌', '̍', '̎', '̏', '̐', '̑',
	}
	ZalgoMid = []rune{'̒', '̓', '̔', '̕'}
	ZalgoBelow = []rune{
		'̖', '̗', '̘', '̙', '̜', '̝',
		'̞', '̟', '̠', '̤', '̥', '̦',
	}
)

// UnicodeSpaces is the pool used by space_variants. All render as blank
// horizontal space but carry distinct codepoints.
var UnicodeSpaces = []rune{
	' ', ' ', ' ', ' ', ' ', ' ',
}

// NamedEntities covers the characters with well-known HTML entity names.
var NamedEntities = map[rune]string{
	'<':  "&lt;",
	'>':  "&gt;",
	'&':  "&amp;",
	'"':  "&quot;",
	'\'': "&apos;",
	' ':  "&nbsp;",
}

// Vowels in substitution order for vowel_swap.
var Vowels = []rune{'a', 'e', 'i', 'o', 'u'}

// KeyboardAdjacent maps letters to their QWERTY neighbours, used for
// plausible typo substitution in domain_typosquat.
var KeyboardAdjacent = map[rune][]rune{
	'a': {'q', 's', 'w', 'z'},
	'e': {'w', 'r', 'd', 's'},
	'i': {'u', 'o', 'k', 'j'},
	'o': {'i', 'p', 'l', 'k'},
	'u': {'y', 'i', 'j', 'h'},
	'm': {'n', 'k', 'j'},
	'n': {'b', 'm', 'h', 'j'},
	's': {'a', 'd', 'w', 'x'},
	't': {'r', 'y', 'f', 'g'},
	'r': {'e', 't', 'd', 'f'},
	'l': {'k', 'o', 'p'},
}

// TypoSubstitutes maps letters to visually plausible typo replacements
// (digits and confusables) for the substitution edit of domain_typosquat.
var TypoSubstitutes = map[rune][]rune{
	'o': {'0', 'ο'}, // digit zero, Greek omicron
	'i': {'1', 'l', 'ı'},
	'l': {'1', 'i', 'I'},
	'a': {'@', 'а'}, // Cyrillic а
	'e': {'3', 'е'}, // Cyrillic е
}

// TLDVariants maps common TLDs to their dropped-letter typo forms.
var TLDVariants = map[string][]string{
	"com": {"co", "cm", "om"},
	"net": {"ne", "et"},
	"org": {"or", "og"},
}

// URLShorteners is the host pool for url_shortening_pattern.
var URLShorteners = []string{"bit.ly", "tinyurl.com", "goo.gl", "t.co", "ow.ly"}

// AlphaNum is the alphabet used for random suffix and short-code generation.
const AlphaNum = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
