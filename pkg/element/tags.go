package element

// supportedBy lists, for attributes only some tags accept, the tags that
// accept them. Attributes missing from this table are accepted everywhere.
var supportedBy = map[string]map[string]bool{
	"value": {
		"button":   true,
		"data":     true,
		"input":    true,
		"li":       true,
		"meter":    true,
		"option":   true,
		"output":   true,
		"param":    true,
		"progress": true,
	},
	"required": {
		"input":    true,
		"select":   true,
		"textarea": true,
	},
	"disabled": {
		"button":   true,
		"fieldset": true,
		"input":    true,
		"keygen":   true,
		"optgroup": true,
		"option":   true,
		"select":   true,
		"textarea": true,
	},
	"name": {
		"button":   true,
		"fieldset": true,
		"form":     true,
		"iframe":   true,
		"img":      true,
		"input":    true,
		"keygen":   true,
		"map":      true,
		"meta":     true,
		"object":   true,
		"output":   true,
		"param":    true,
		"select":   true,
		"textarea": true,
	},
}

// Supports reports whether tag accepts attribute.
func Supports(tag, attribute string) bool {
	tags, restricted := supportedBy[attribute]
	return !restricted || tags[tag]
}
