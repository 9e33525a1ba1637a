package validation

// Source names where a field value is read from.
type Source int

const (
	Body Source = iota
	Path
	Query
)

type Field struct {
	Name   string
	Source Source
	Rules  []Rule
}

// Chain is an ordered list of fields. Every rule of every field is
// evaluated; nothing short-circuits.
type Chain []Field

// Values holds the raw string value of each validated field.
type Values map[string]string

func (v Values) Get(name string) string {
	return v[name]
}

// Check returns the messages of all failing rules in declaration order.
func (c Chain) Check(values Values) []string {
	var messages []string
	for _, field := range c {
		value := values.Get(field.Name)
		for _, rule := range field.Rules {
			if !rule.Check(value) {
				messages = append(messages, rule.Message)
			}
		}
	}
	return messages
}

func (c Chain) hasSource(src Source) bool {
	for _, field := range c {
		if field.Source == src {
			return true
		}
	}
	return false
}

// Then returns a new chain running c's fields followed by other's.
func (c Chain) Then(other Chain) Chain {
	joined := make(Chain, 0, len(c)+len(other))
	joined = append(joined, c...)
	return append(joined, other...)
}
