package signature

// builtins maps lowercased PHP builtin function names to their signature
// variants. Optional parameters count toward the parameter count since
// passing them is valid; only arguments beyond the longest variant are
// excess. The table covers the builtins commonly hit by generated or
// copy-pasted code; unresolved names simply skip the rule.
var builtins = map[string][]Variant{
	"strlen":       {{ParamCount: 1}},
	"strtolower":   {{ParamCount: 1}},
	"strtoupper":   {{ParamCount: 1}},
	"ucfirst":      {{ParamCount: 1}},
	"lcfirst":      {{ParamCount: 1}},
	"strrev":       {{ParamCount: 1}},
	"ord":          {{ParamCount: 1}},
	"chr":          {{ParamCount: 1}},
	"abs":          {{ParamCount: 1}},
	"floor":        {{ParamCount: 1}},
	"ceil":         {{ParamCount: 1}},
	"sqrt":         {{ParamCount: 1}},
	"boolval":      {{ParamCount: 1}},
	"floatval":     {{ParamCount: 1}},
	"gettype":      {{ParamCount: 1}},
	"is_array":     {{ParamCount: 1}},
	"is_string":    {{ParamCount: 1}},
	"is_int":       {{ParamCount: 1}},
	"is_null":      {{ParamCount: 1}},
	"array_pop":    {{ParamCount: 1}},
	"array_shift":  {{ParamCount: 1}},
	"array_keys":   {{ParamCount: 1}, {ParamCount: 3}},
	"array_values": {{ParamCount: 1}},
	"array_flip":   {{ParamCount: 1}},
	"array_sum":    {{ParamCount: 1}},
	"count":        {{ParamCount: 2}},
	"trim":         {{ParamCount: 2}},
	"ltrim":        {{ParamCount: 2}},
	"rtrim":        {{ParamCount: 2}},
	"intval":       {{ParamCount: 2}},
	"round":        {{ParamCount: 2}},
	"ucwords":      {{ParamCount: 2}},
	"implode":      {{ParamCount: 1}, {ParamCount: 2}},
	"join":         {{ParamCount: 1}, {ParamCount: 2}},
	"strpos":       {{ParamCount: 3}},
	"stripos":      {{ParamCount: 3}},
	"strrpos":      {{ParamCount: 3}},
	"substr":       {{ParamCount: 3}},
	"substr_count": {{ParamCount: 4}},
	"explode":      {{ParamCount: 3}},
	"in_array":     {{ParamCount: 3}},
	"array_search": {{ParamCount: 3}},
	"str_repeat":   {{ParamCount: 2}},
	"str_pad":      {{ParamCount: 4}},
	"str_replace":  {{ParamCount: 4}},
	"str_ireplace": {{ParamCount: 4}},
	"array_slice":  {{ParamCount: 4}},
	"array_splice": {{ParamCount: 4}},
	"json_encode":  {{ParamCount: 3}},
	"json_decode":  {{ParamCount: 4}},
	"preg_match":   {{ParamCount: 5}},
	"preg_replace": {{ParamCount: 5}},
	"preg_split":   {{ParamCount: 4}},
	"number_format": {
		{ParamCount: 1},
		{ParamCount: 2},
		{ParamCount: 4},
	},
	"file_get_contents": {{ParamCount: 5}},
	"file_put_contents": {{ParamCount: 4}},
	"usort":             {{ParamCount: 2}},
	"uasort":            {{ParamCount: 2}},
	"uksort":            {{ParamCount: 2}},
	"range":             {{ParamCount: 3}},

	// variadic builtins, never trimmed
	"sprintf":       {{ParamCount: 1, Variadic: true}},
	"printf":        {{ParamCount: 1, Variadic: true}},
	"fprintf":       {{ParamCount: 2, Variadic: true}},
	"array_merge":   {{ParamCount: 0, Variadic: true}},
	"array_map":     {{ParamCount: 2, Variadic: true}},
	"array_push":    {{ParamCount: 1, Variadic: true}},
	"array_unshift": {{ParamCount: 1, Variadic: true}},
	"compact":       {{ParamCount: 1, Variadic: true}},
	"max":           {{ParamCount: 1, Variadic: true}},
	"min":           {{ParamCount: 1, Variadic: true}},
	"call_user_func": {
		{ParamCount: 1, Variadic: true},
	},
}
