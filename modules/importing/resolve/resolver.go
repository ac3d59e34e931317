// Package resolve matches the free-text references of assembled entities
// (identification numbers, policy numbers, insurer/product/advisor names)
// against existing records and against entities earlier in the same batch.
package resolve

import (
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/aseguralo/backoffice/modules/importing/assemble"
	"github.com/aseguralo/backoffice/pkg/textfold"
)

// ExistingClient is the read-only shape the resolver needs from persisted
// clients.
type ExistingClient struct {
	ID                   string
	IdentificationNumber string
}

// ExistingPolicy is the read-only shape of a persisted policy.
type ExistingPolicy struct {
	ID     string
	Number string
}

// NamedRef is a reference-list entry matched by name (insurers, advisors,
// banks).
type NamedRef struct {
	ID   string
	Name string
}

// ProductRef additionally carries the owning insurer.
type ProductRef struct {
	ID        string
	Name      string
	InsurerID string
}

// References bundles the pre-loaded reference lists for one batch.
type References struct {
	Clients  []ExistingClient
	Policies []ExistingPolicy
	Insurers []NamedRef
	Products []ProductRef
	Advisors []NamedRef
}

// Reference is the outcome of one name match. An empty ResolvedID means no
// match; the raw label is preserved for operator review and is never fatal.
type Reference struct {
	RawLabel   string
	ResolvedID string
}

func (r Reference) Resolved() bool { return r.ResolvedID != "" }

// Resolution is the per-entity result, aligned by index with the input batch.
type Resolution struct {
	// ClientID is the existing client id, or a batch-local placeholder
	// ("new-<index>") when the client will be created by this import.
	ClientID    string
	IsNewClient bool

	// IsUpdate flags a natural-key match against an existing policy;
	// ExistingPolicyID is that policy's id.
	IsUpdate         bool
	ExistingPolicyID string

	Insurer   Reference
	Product   Reference
	Advisor   Reference
	CoAdvisor Reference
}

// NewPlaceholder builds the batch-local identifier for a client created by
// the entity at the given index.
func NewPlaceholder(index int) string {
	return fmt.Sprintf("new-%d", index)
}

// Resolve matches every entity in batch order. Entities sharing an unknown
// identification number share the placeholder of the first such entity.
func Resolve(entities []assemble.Policy, refs References) []Resolution {
	clientsByID := make(map[string]string, len(refs.Clients))
	for _, c := range refs.Clients {
		key := textfold.Identification(c.IdentificationNumber)
		if key == "" {
			continue
		}
		if _, ok := clientsByID[key]; !ok {
			clientsByID[key] = c.ID
		}
	}
	policiesByNumber := make(map[string]string, len(refs.Policies))
	for _, p := range refs.Policies {
		key := textfold.Key(p.Number)
		if key == "" {
			continue
		}
		if _, ok := policiesByNumber[key]; !ok {
			policiesByNumber[key] = p.ID
		}
	}

	placeholders := map[string]string{} // normalized id number -> placeholder
	out := make([]Resolution, len(entities))
	for i, e := range entities {
		res := Resolution{}

		idKey := textfold.Identification(e.Client.IDNumber)
		if id, ok := clientsByID[idKey]; ok && idKey != "" {
			res.ClientID = id
		} else {
			res.IsNewClient = true
			if idKey != "" {
				if ph, ok := placeholders[idKey]; ok {
					res.ClientID = ph
				} else {
					ph := NewPlaceholder(i)
					placeholders[idKey] = ph
					res.ClientID = ph
				}
			} else {
				res.ClientID = NewPlaceholder(i)
			}
		}

		if id, ok := policiesByNumber[e.NaturalKey]; ok {
			res.IsUpdate = true
			res.ExistingPolicyID = id
		}

		res.Insurer = MatchName(e.Policy.Insurer, refs.Insurers)
		res.Product = matchProduct(e.Policy.Product, res.Insurer.ResolvedID, refs.Products)
		res.Advisor = MatchName(e.Policy.Advisor, refs.Advisors)
		res.CoAdvisor = MatchName(e.Policy.CoAdvisor, refs.Advisors)

		out[i] = res
	}
	return out
}

// MatchName resolves a free-text label against a reference list. Exact
// folded match wins; otherwise bidirectional substring containment candidates
// are ranked by fuzzy distance, falling back to stable input order. Shared
// with the income flow's bank-name resolution.
func MatchName(label string, candidates []NamedRef) Reference {
	ref := Reference{RawLabel: label}
	query := textfold.Fold(label)
	if query == "" {
		return ref
	}

	bestRank := -1
	for _, c := range candidates {
		name := textfold.Fold(c.Name)
		if name == "" {
			continue
		}
		if name == query {
			ref.ResolvedID = c.ID
			return ref
		}
		if !contains(name, query) && !contains(query, name) {
			continue
		}
		rank := fuzzy.RankMatchNormalizedFold(query, name)
		if rank < 0 {
			rank = len(name) + len(query) // containment without subsequence match ranks last
		}
		if bestRank == -1 || rank < bestRank {
			bestRank = rank
			ref.ResolvedID = c.ID
		}
	}
	return ref
}

// matchProduct behaves like MatchName but only considers products owned by
// the already-resolved insurer, when one was resolved.
func matchProduct(label, insurerID string, products []ProductRef) Reference {
	candidates := make([]NamedRef, 0, len(products))
	for _, p := range products {
		if insurerID != "" && p.InsurerID != insurerID {
			continue
		}
		candidates = append(candidates, NamedRef{ID: p.ID, Name: p.Name})
	}
	return MatchName(label, candidates)
}

func contains(haystack, needle string) bool {
	return needle != "" && strings.Contains(haystack, needle)
}
