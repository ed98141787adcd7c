package policyopa

import "github.com/open-policy-agent/opa/ast"

// Access policies decide on the request document alone. Anything that
// could make an evaluation non-deterministic or reach outside the
// process (time, rand, http.send, net.*) stays off this list.
var allowedBuiltins = map[string]struct{}{
	"abs":             {},
	"ceil":            {},
	"concat":          {},
	"contains":        {},
	"count":           {},
	"endswith":        {},
	"eq":              {},
	"equal":           {},
	"floor":           {},
	"format_int":      {},
	"glob.match":      {},
	"json.marshal":    {},
	"json.unmarshal":  {},
	"lower":           {},
	"max":             {},
	"min":             {},
	"neq":             {},
	"object.get":      {},
	"object.remove":   {},
	"object.union":    {},
	"replace":         {},
	"round":           {},
	"sort":            {},
	"split":           {},
	"sprintf":         {},
	"startswith":      {},
	"substring":       {},
	"sum":             {},
	"trim":            {},
	"trim_left":       {},
	"trim_prefix":     {},
	"trim_right":      {},
	"trim_suffix":     {},
	"upper":           {},
}

func filterBuiltins(builtins []*ast.Builtin) []*ast.Builtin {
	allowed := make([]*ast.Builtin, 0, len(builtins))
	for _, builtin := range builtins {
		if _, ok := allowedBuiltins[builtin.Name]; !ok {
			continue
		}
		allowed = append(allowed, builtin)
	}
	return allowed
}
