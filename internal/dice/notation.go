package dice

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	apperrors "github.com/KirkDiggler/chronicler/internal/errors"
)

var notationLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Dice", Pattern: `\d*[dD]\d+(?:[kK][hHlL]\d+)?`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Op", Pattern: `[-+]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var notationParser = participle.MustBuild[notationAST](
	participle.Lexer(notationLexer),
	participle.Elide("Whitespace"),
)

// notationAST is `[sign] term (op term)*`
type notationAST struct {
	Sign  string        `parser:"@Op?"`
	First *termAST      `parser:"@@"`
	Rest  []*signedTerm `parser:"@@*"`
}

type signedTerm struct {
	Op   string   `parser:"@Op"`
	Term *termAST `parser:"@@"`
}

type termAST struct {
	Dice string `parser:"  @Dice"`
	Flat string `parser:"| @Int"`
}

var diceToken = regexp.MustCompile(`^(\d*)[dD](\d+)(?:([kK][hHlL])(\d+))?$`)

// Parse turns notation such as "2d6+1d4-1" or "4d6kh3" into an Expression
func Parse(notation string) (Expression, error) {
	trimmed := strings.TrimSpace(notation)
	if trimmed == "" {
		return Expression{}, apperrors.Parsef("empty dice notation")
	}

	ast, err := notationParser.ParseString("", trimmed)
	if err != nil {
		return Expression{}, apperrors.Parsef("invalid dice notation %q: %v", notation, err)
	}

	expr := Expression{Original: trimmed}
	if err := expr.addTerm(ast.Sign == "-", ast.First); err != nil {
		return Expression{}, apperrors.Wrapf(err, "invalid dice notation %q", notation)
	}
	for _, rest := range ast.Rest {
		if err := expr.addTerm(rest.Op == "-", rest.Term); err != nil {
			return Expression{}, apperrors.Wrapf(err, "invalid dice notation %q", notation)
		}
	}

	return expr, nil
}

// MustParse is Parse for notation known at compile time
func MustParse(notation string) Expression {
	expr, err := Parse(notation)
	if err != nil {
		panic(err)
	}
	return expr
}

func (e *Expression) addTerm(negative bool, t *termAST) error {
	if t.Flat != "" {
		n, err := strconv.Atoi(t.Flat)
		if err != nil {
			return apperrors.Parsef("bad modifier %q", t.Flat)
		}
		if negative {
			n = -n
		}
		e.Modifier += n
		return nil
	}

	group, err := parseGroup(t.Dice)
	if err != nil {
		return err
	}
	group.Negative = negative
	e.Groups = append(e.Groups, group)
	return nil
}

func parseGroup(token string) (Group, error) {
	m := diceToken.FindStringSubmatch(token)
	if m == nil {
		return Group{}, apperrors.Parsef("bad dice group %q", token)
	}

	count := 1
	if m[1] != "" {
		count, _ = strconv.Atoi(m[1])
	}
	sides, _ := strconv.Atoi(m[2])
	if err := validateDice(count, sides); err != nil {
		return Group{}, err
	}

	group := Group{Count: count, Sides: sides}
	if m[3] != "" {
		keepCount, _ := strconv.Atoi(m[4])
		if keepCount < 1 || keepCount > count {
			return Group{}, apperrors.Parsef("cannot keep %d of %d dice", keepCount, count)
		}
		group.KeepCount = keepCount
		group.Keep = KeepHighest
		if strings.EqualFold(m[3], "kl") {
			group.Keep = KeepLowest
		}
	}
	return group, nil
}
