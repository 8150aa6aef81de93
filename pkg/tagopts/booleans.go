package tagopts

// Attributes that follow the HTML boolean idiom: present with their own name
// as the value, or absent entirely.
var booleanAttributes = map[string]struct{}{
	"disabled": {},
	"readonly": {},
	"multiple": {},
}

// NormalizeBooleans rewrites boolean-style attributes in place. Falsy values
// drop the attribute; truthy values replace it with the attribute name
// itself (e.g. disabled="disabled").
func NormalizeBooleans(opts Options) {
	for name := range booleanAttributes {
		value, ok := opts[name]
		if !ok {
			continue
		}
		if !Truthy(value) {
			delete(opts, name)
			continue
		}
		opts[name] = name
	}
}
