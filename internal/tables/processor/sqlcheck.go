package processor

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	tableNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]{0,62}$`)
	leadingKeyword   = regexp.MustCompile(`^(?i)(select|with)\b`)
	forbiddenKeyword = regexp.MustCompile(`(?i)\b(insert|update|delete|merge|drop|alter|create|truncate|grant|revoke|copy|into|call|do|vacuum|analyze|lock|set|reset|listen|notify|prepare|execute|refresh)\b`)
)

// ValidateTableName enforces lowercase identifiers that need no quoting.
func ValidateTableName(name string) error {
	if !tableNamePattern.MatchString(name) {
		return fmt.Errorf("%w: must match %s", ErrInvalidTableName, tableNamePattern.String())
	}
	return nil
}

// stripSQL returns query twice: once with comments removed and quoted text
// blanked so keyword checks only see SQL, and once with only comments
// removed. Unterminated comments or literals are reported as unsafe.
func stripSQL(query string) (string, string, error) {
	var b, clean strings.Builder
	b.Grow(len(query))
	clean.Grow(len(query))

	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '-' && i+1 < len(query) && query[i+1] == '-':
			for i < len(query) && query[i] != '\n' {
				i++
			}
			b.WriteByte(' ')
			clean.WriteByte(' ')
		case c == '/' && i+1 < len(query) && query[i+1] == '*':
			end := strings.Index(query[i+2:], "*/")
			if end < 0 {
				return "", "", fmt.Errorf("%w: unterminated comment", ErrUnsafeQuery)
			}
			i += end + 3
			b.WriteByte(' ')
			clean.WriteByte(' ')
		case c == '\'' || c == '"':
			j := i + 1
			for ; j < len(query); j++ {
				if query[j] == c {
					if j+1 < len(query) && query[j+1] == c {
						j++
						continue
					}
					break
				}
			}
			if j >= len(query) {
				return "", "", fmt.Errorf("%w: unterminated quoted text", ErrUnsafeQuery)
			}
			clean.WriteString(query[i : j+1])
			if c == '"' {
				b.WriteString("ident")
			} else {
				b.WriteString("''")
			}
			i = j
		case c == '$':
			// covers both $n parameters and dollar-quoted bodies
			return "", "", fmt.Errorf("%w: dollar quoting is not allowed", ErrUnsafeQuery)
		default:
			b.WriteByte(c)
			clean.WriteByte(c)
		}
	}
	return b.String(), clean.String(), nil
}

// VetSelect accepts exactly one read-only SELECT or WITH statement and
// returns it without a trailing semicolon.
func VetSelect(query string) (string, error) {
	stripped, clean, err := stripSQL(query)
	if err != nil {
		return "", err
	}
	stripped = strings.TrimSpace(stripped)
	stripped = strings.TrimSpace(strings.TrimSuffix(stripped, ";"))

	if stripped == "" {
		return "", fmt.Errorf("%w: query is empty", ErrUnsafeQuery)
	}
	if strings.Contains(stripped, ";") {
		return "", fmt.Errorf("%w: only a single statement is allowed", ErrUnsafeQuery)
	}
	if !leadingKeyword.MatchString(stripped) {
		return "", fmt.Errorf("%w: query must start with SELECT or WITH", ErrUnsafeQuery)
	}
	if kw := forbiddenKeyword.FindString(stripped); kw != "" {
		return "", fmt.Errorf("%w: %s is not allowed", ErrUnsafeQuery, strings.ToUpper(kw))
	}

	clean = strings.TrimSpace(clean)
	return strings.TrimSpace(strings.TrimSuffix(clean, ";")), nil
}
