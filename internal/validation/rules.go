package validation

import (
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Rule is a single check on a field value. Message is reported when Check
// returns false.
type Rule struct {
	Check   func(value string) bool
	Message string
}

var (
	validate     = validator.New()
	alphanumeric = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	digits       = regexp.MustCompile(`^[0-9]+$`)
)

func NotEmpty(message string) Rule {
	return Rule{
		Check:   func(v string) bool { return v != "" },
		Message: message,
	}
}

// MaxLength counts characters, not bytes.
func MaxLength(n int, message string) Rule {
	return Rule{
		Check:   func(v string) bool { return utf8.RuneCountInString(v) <= n },
		Message: message,
	}
}

func LengthBetween(min, max int, message string) Rule {
	return Rule{
		Check: func(v string) bool {
			n := utf8.RuneCountInString(v)
			return n >= min && n <= max
		},
		Message: message,
	}
}

func Matches(re *regexp.Regexp, message string) Rule {
	return Rule{
		Check:   re.MatchString,
		Message: message,
	}
}

func Email(message string) Rule {
	return Rule{
		Check:   func(v string) bool { return validate.Var(v, "required,email") == nil },
		Message: message,
	}
}

func PositiveInt(message string) Rule {
	return Rule{
		Check: func(v string) bool {
			if !digits.MatchString(v) {
				return false
			}
			n, err := strconv.ParseInt(v, 10, 64)
			return err == nil && n > 0
		},
		Message: message,
	}
}
