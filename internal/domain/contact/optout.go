package contact

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const MinMessageLength = 2

var optOutPhrases = []string{
	"pare",
	"parar",
	"cancelar",
	"cancela",
	"sair",
	"stop",
	"descadastrar",
	"remover",
	"unsubscribe",
	"não quero",
	"nao quero",
}

var optOutPattern = buildOptOutPattern(optOutPhrases)

// \b is ASCII-only in RE2, so boundaries are spelled out to keep "não" intact.
func buildOptOutPattern(phrases []string) *regexp.Regexp {
	quoted := make([]string, 0, len(phrases))
	for _, p := range phrases {
		quoted = append(quoted, regexp.QuoteMeta(p))
	}
	return regexp.MustCompile(`(?i)(^|[^\p{L}\p{N}])(` + strings.Join(quoted, "|") + `)($|[^\p{L}\p{N}])`)
}

func IsOptOut(message string) bool {
	return optOutPattern.MatchString(message)
}

// Eligible reports why a message may not produce a contact record, or nil.
func Eligible(message string) error {
	trimmed := strings.TrimSpace(message)
	if utf8.RuneCountInString(trimmed) < MinMessageLength {
		return ErrMessageTooShort
	}
	if IsOptOut(trimmed) {
		return ErrOptOut
	}
	return nil
}
