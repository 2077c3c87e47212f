// Package enhancer appends "suggested next tool" hints to tool results.
// Suggestions come from static lookup tables keyed by parameter name,
// operation name, and BCP domain; the enhancer itself is a pure function
// over an immutable Tables value.
package enhancer

import "sort"

// MaxSuggestions caps the suggestion list on every enhanced response.
const MaxSuggestions = 5

// Tables holds the three suggestion lookup tables. A Tables value is built
// once at startup and never mutated afterwards; the enhancer only reads it.
type Tables struct {
	// ByParam maps an input parameter name to follow-up tool hints.
	// These surface first: a parameter like ownerId usually means the
	// caller is one lookup away from the ID it actually needs.
	ByParam map[string][]string `yaml:"by_param"`

	// ByOperation maps an operation name (get, create, update, search,
	// recent, ...) to workflow hints.
	ByOperation map[string][]string `yaml:"by_operation"`

	// ByDomain maps a BCP domain to broader context hints.
	ByDomain map[string][]string `yaml:"by_domain"`
}

// Enhancer injects suggestions into tool results.
type Enhancer struct {
	tables Tables
}

// New creates an Enhancer over the given tables.
func New(tables Tables) *Enhancer {
	return &Enhancer{tables: tables}
}

// Enhance returns result plus a deduplicated, capped "suggestions" entry.
// Collection order is fixed: parameter-derived hints first, then operation,
// then domain. If no table contributes anything, the original result map is
// returned untouched -- callers never see an empty suggestions list.
// The input map is never mutated.
func (e *Enhancer) Enhance(result map[string]any, operation string, params map[string]any, domain string) map[string]any {
	suggestions := e.collect(operation, params, domain)
	if len(suggestions) == 0 {
		return result
	}

	enhanced := make(map[string]any, len(result)+1)
	for k, v := range result {
		enhanced[k] = v
	}
	enhanced["suggestions"] = suggestions
	return enhanced
}

// Suggest returns the raw suggestion list for an invocation, already
// deduplicated and capped. Useful where the result is not a map.
func (e *Enhancer) Suggest(operation string, params map[string]any, domain string) []string {
	return e.collect(operation, params, domain)
}

func (e *Enhancer) collect(operation string, params map[string]any, domain string) []string {
	var collected []string

	// Parameter names are sorted so output is stable across runs; Go map
	// iteration order would otherwise leak into the agent-visible result.
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		collected = append(collected, e.tables.ByParam[name]...)
	}

	collected = append(collected, e.tables.ByOperation[operation]...)
	if domain != "" {
		collected = append(collected, e.tables.ByDomain[domain]...)
	}

	seen := make(map[string]struct{}, len(collected))
	deduped := collected[:0]
	for _, s := range collected {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		deduped = append(deduped, s)
		if len(deduped) == MaxSuggestions {
			break
		}
	}
	if len(deduped) == 0 {
		return nil
	}
	return deduped
}
