// Package i18n holds the display strings of the scoreboard. Engines never
// look strings up themselves; callers translate and pass them in.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var supported = []language.Tag{
	language.BrazilianPortuguese,
	language.AmericanEnglish,
}

var matcher = language.NewMatcher(supported)

var catalog = map[language.Tag]map[string]string{
	language.BrazilianPortuguese: {
		"truco.us":               "NÓS",
		"truco.them":             "ELES",
		"player.placeholder":     "JOGADOR",
		"common.winner_text":     "%s venceu a partida!",
		"error.winner_required":  "É preciso marcar um vencedor na rodada.",
		"error.bids_equal_cards": "A soma das apostas não pode ser igual ao número de cartas.",
		"error.won_mismatch":     "O total de vazas deve ser igual ao número de cartas.",
	},
	language.AmericanEnglish: {
		"truco.us":               "US",
		"truco.them":             "THEM",
		"player.placeholder":     "PLAYER",
		"common.winner_text":     "%s won the match!",
		"error.winner_required":  "A round needs a winner.",
		"error.bids_equal_cards": "Bids cannot add up to the number of cards.",
		"error.won_mismatch":     "Tricks taken must add up to the number of cards.",
	},
}

func init() {
	for tag, msgs := range catalog {
		for key, msg := range msgs {
			if err := message.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
}

// Match returns the supported locale closest to s, defaulting to pt-BR.
func Match(s string) language.Tag {
	tag, err := language.Parse(s)
	if err != nil {
		return supported[0]
	}
	_, idx, _ := matcher.Match(tag)
	return supported[idx]
}

type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

func New(locale string) *Translator {
	tag := Match(locale)
	return &Translator{tag: tag, printer: message.NewPrinter(tag)}
}

func (t *Translator) Locale() string { return t.tag.String() }

// T renders key with args. Unknown keys come back verbatim.
func (t *Translator) T(key string, args ...any) string {
	return t.printer.Sprintf(key, args...)
}
