package chroma2tcell

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/rivo/tview"
)

const DefaultStyle = "dracula"

var getStyle = styles.Get

var getFallbackStyle = func() *chroma.Style {
	return styles.Fallback
}

var matchLexer = lexers.Match

// Colorize tokenises text and wraps every styled token in a tview color tag.
// Token text is escaped so brackets in the source are not taken for tags.
// Consecutive unstyled tokens are escaped together.
func Colorize(text, styleName string, lexer chroma.Lexer) (string, error) {
	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return "", err
	}

	style := getStyle(styleName)
	if style == nil {
		style = getFallbackStyle()
	}

	var sb, plain strings.Builder
	flushPlain := func() {
		sb.WriteString(tview.Escape(plain.String()))
		plain.Reset()
	}
	for _, token := range iterator.Tokens() {
		entry := style.Get(token.Type)
		if !entry.Colour.IsSet() {
			plain.WriteString(token.Value)
			continue
		}
		flushPlain()
		sb.WriteString("[" + entry.Colour.String() + "]")
		sb.WriteString(tview.Escape(token.Value))
		sb.WriteString("[-]")
	}
	flushPlain()

	return sb.String(), nil
}

// ColorizeFile highlights text by the lexer registered for the file name.
// It reports false when no lexer matches; the escaped text is returned as is then.
func ColorizeFile(name, text string) (colorized string, matched bool, err error) {
	lexer := matchLexer(name)
	if lexer == nil {
		return tview.Escape(text), false, nil
	}
	colorized, err = Colorize(text, DefaultStyle, lexer)
	return colorized, err == nil, err
}
