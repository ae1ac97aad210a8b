// Package emoji rewrites shortcodes like ":fire:" (and a few classic
// smileys) into their unicode glyphs. The table is compiled into a single
// alternation matcher once at init; lookups allocate nothing beyond the
// rewritten string.
package emoji

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var shortcodes = map[string]string{
	":)": "😊", ":(": "😢", ":D": "😃", "<3": "❤️", ":o": "😮", ":p": "😛",
	":fire:": "🔥", ":star:": "⭐", ":thumbsup:": "👍", ":clap:": "👏",
	":100:": "💯", ":rocket:": "🚀", ":party:": "🥳", ":wink:": "😉",
	":sob:": "😭", ":heart:": "❤️", ":laugh:": "😂", ":cool:": "😎",
	":angry:": "😡", ":sleep:": "😴", ":poop:": "💩", ":ok:": "👌",
	":wave:": "👋", ":pray:": "🙏", ":eyes:": "👀", ":star2:": "🌟",
	":gift:": "🎁", ":tada:": "🎉", ":zzz:": "💤", ":sun:": "☀️",
	":moon:": "🌙", ":rainbow:": "🌈", ":cat:": "🐱", ":dog:": "🐶",
	":unicorn:": "🦄", ":cactus:": "🌵", ":pizza:": "🍕", ":cake:": "🍰",
	":coffee:": "☕", ":beer:": "🍺", ":soccer:": "⚽", ":music:": "🎵",
	":camera:": "📷", ":phone:": "📱", ":computer:": "💻", ":tv:": "📺",
	":car:": "🚗", ":bus:": "🚌", ":train:": "🚆", ":airplane:": "✈️",
	":money:": "💸", ":gem:": "💎", ":crown:": "👑", ":ghost:": "👻",
	":alien:": "👽", ":robot:": "🤖", ":apple:": "🍎", ":banana:": "🍌",
	":watermelon:": "🍉", ":cherry:": "🍒", ":grape:": "🍇", ":lemon:": "🍋",
	":peach:": "🍑", ":avocado:": "🥑", ":broccoli:": "🥦", ":carrot:": "🥕",
	":corn:": "🌽", ":hotdog:": "🌭", ":fries:": "🍟", ":popcorn:": "🍿",
	":icecream:": "🍦", ":doughnut:": "🍩", ":cookie:": "🍪",
	":chocolate:": "🍫", ":milk:": "🥛", ":tea:": "🍵", ":sushi:": "🍣",
	":ramen:": "🍜", ":bento:": "🍱", ":taco:": "🌮", ":burrito:": "🌯",
	":sandwich:": "🥪", ":egg:": "🥚", ":bacon:": "🥓", ":shrimp:": "🍤",
	":lobster:": "🦞", ":crab:": "🦀", ":octopus:": "🐙", ":fish:": "🐟",
	":whale:": "🐳", ":dolphin:": "🐬", ":turtle:": "🐢", ":frog:": "🐸",
	":monkey:": "🐒", ":bear:": "🐻", ":panda:": "🐼", ":koala:": "🐨",
	":rabbit:": "🐰", ":mouse:": "🐭", ":hamster:": "🐹", ":fox:": "🦊",
	":lion:": "🦁", ":tiger:": "🐯", ":horse:": "🐴", ":cow:": "🐮",
	":pig:": "🐷", ":sheep:": "🐑", ":goat:": "🐐", ":chicken:": "🐔",
	":duck:": "🦆", ":eagle:": "🦅", ":owl:": "🦉", ":penguin:": "🐧",
	":elephant:": "🐘", ":giraffe:": "🦒", ":zebra:": "🦓",
	":kangaroo:": "🦘", ":camel:": "🐫", ":hippo:": "🦛",
	":rhinoceros:": "🦏", ":crocodile:": "🐊", ":snake:": "🐍",
	":spider:": "🕷️", ":scorpion:": "🦂", ":ladybug:": "🐞", ":ant:": "🐜",
	":bee:": "🐝", ":butterfly:": "🦋", ":snail:": "🐌", ":worm:": "🪱",
	":cricket:": "🦗", ":mosquito:": "🦟", ":fly:": "🪰",
	":dragonfly:": "🪶", ":spiderweb:": "🕸️", ":rose:": "🌹",
	":tulip:": "🌷", ":sunflower:": "🌻", ":blossom:": "🌼",
	":bouquet:": "💐", ":cherryblossom:": "🌸", ":hibiscus:": "🌺",
	":mapleleaf:": "🍁", ":fallenleaf:": "🍂", ":herb:": "🌿",
	":mushroom:": "🍄", ":evergreen:": "🌲", ":palm:": "🌴",
	":seedling:": "🌱", ":coconut:": "🥥", ":pineapple:": "🍍",
	":kiwi:": "🥝", ":mango:": "🥭", ":strawberry:": "🍓",
	":blueberry:": "🫐", ":blackberry:": "🫒", ":water:": "💧",
	":droplet:": "💦", ":wave2:": "🌊", ":volcano:": "🌋",
	":mountain:": "⛰️", ":snow:": "❄️", ":cloud:": "☁️", ":rain:": "🌧️",
	":thunder:": "⚡", ":wind:": "🌬️", ":fog:": "🌫️", ":rainbow2:": "🌈",
	":umbrella:": "☂️", ":snowman:": "⛄", ":fire2:": "🔥", ":star3:": "⭐",
	":moon2:": "🌙", ":sun2:": "☀️", ":earth:": "🌍", ":globe:": "🌎",
	":map:": "🗺️", ":compass:": "🧭", ":watch:": "⌚", ":alarm:": "⏰",
	":hourglass:": "⌛", ":calendar:": "📅", ":clock:": "🕰️",
	":timer:": "⏲️", ":stopwatch:": "⏱️", ":thermometer:": "🌡️",
	":lightbulb:": "💡", ":flashlight:": "🔦", ":candle:": "🕯️",
	":battery:": "🔋", ":plug:": "🔌", ":tools:": "🛠️", ":hammer:": "🔨",
	":wrench:": "🔧", ":nutandbolt:": "🔩", ":gear:": "⚙️", ":bomb:": "💣",
	":gun:": "🔫", ":knife:": "🔪", ":pill:": "💊", ":syringe:": "💉",
	":tooth:": "🦷", ":bone:": "🦴", ":eyes2:": "👀", ":ear:": "👂",
	":nose:": "👃", ":mouth:": "👄", ":tongue:": "👅", ":foot:": "🦶",
	":hand:": "🖐️", ":fist:": "✊", ":muscle:": "💪", ":leg:": "🦵",
	":brain:": "🧠", ":lungs:": "🫁", ":stomach:": "🫃", ":eye:": "👁️",
}

// numbered aliases (":heart2:" … ":heart10:" and friends) kept for
// compatibility with clients of the original protocol.
var numbered = map[string]string{
	"heart": "❤️", "lungs": "🫁", "stomach": "🫃", "tooth": "🦷",
	"bone": "🦴", "eye": "👁️", "ear": "👂", "nose": "👃", "mouth": "👄",
	"tongue": "👅", "foot": "🦶", "hand": "🖐️", "fist": "✊",
	"muscle": "💪", "leg": "🦵", "brain": "🧠",
}

var pattern *regexp.Regexp

func init() {
	for name, glyph := range numbered {
		for i := 2; i <= 10; i++ {
			code := ":" + name + strconv.Itoa(i) + ":"
			if _, taken := shortcodes[code]; !taken {
				shortcodes[code] = glyph
			}
		}
	}

	keys := make([]string, 0, len(shortcodes))
	for k := range shortcodes {
		keys = append(keys, k)
	}
	// Longer codes first so an alternation never stops at a prefix.
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = regexp.QuoteMeta(k)
	}
	pattern = regexp.MustCompile(strings.Join(quoted, "|"))
}

// Replace substitutes every recognized shortcode in s with its glyph.
// Unrecognized text passes through untouched.
func Replace(s string) string {
	return pattern.ReplaceAllStringFunc(s, func(code string) string {
		return shortcodes[code]
	})
}
