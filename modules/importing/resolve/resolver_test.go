package resolve_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aseguralo/backoffice/modules/importing/assemble"
	"github.com/aseguralo/backoffice/modules/importing/resolve"
)

func policyEntity(key, idNumber, insurer, product, advisor string) assemble.Policy {
	e := assemble.Policy{NaturalKey: key}
	e.Client.IDNumber = idNumber
	e.Policy.Insurer = insurer
	e.Policy.Product = product
	e.Policy.Advisor = advisor
	return e
}

func TestResolve_ExistingClientByNormalizedID(t *testing.T) {
	refs := resolve.References{
		Clients: []resolve.ExistingClient{{ID: "c1", IdentificationNumber: "V-12345678"}},
	}
	out := resolve.Resolve([]assemble.Policy{
		policyEntity("pol-001", "v12345678", "", "", ""),
	}, refs)

	require.Len(t, out, 1)
	require.False(t, out[0].IsNewClient)
	require.Equal(t, "c1", out[0].ClientID)
}

func TestResolve_NewClientGetsPlaceholder(t *testing.T) {
	out := resolve.Resolve([]assemble.Policy{
		policyEntity("pol-001", "V-999", "", "", ""),
	}, resolve.References{})

	require.True(t, out[0].IsNewClient)
	require.Equal(t, resolve.NewPlaceholder(0), out[0].ClientID)
}

func TestResolve_BatchEntitiesSharePlaceholder(t *testing.T) {
	out := resolve.Resolve([]assemble.Policy{
		policyEntity("pol-001", "V-999", "", "", ""),
		policyEntity("pol-002", "v 999", "", "", ""), // same client, different spelling
		policyEntity("pol-003", "E-111", "", "", ""),
	}, resolve.References{})

	require.Equal(t, out[0].ClientID, out[1].ClientID)
	require.NotEqual(t, out[0].ClientID, out[2].ClientID)
	require.Equal(t, resolve.NewPlaceholder(2), out[2].ClientID)
}

func TestResolve_ExistingPolicyFlagsUpdate(t *testing.T) {
	refs := resolve.References{
		Policies: []resolve.ExistingPolicy{{ID: "p9", Number: "POL-001"}},
	}
	out := resolve.Resolve([]assemble.Policy{
		policyEntity("pol-001", "V-1", "", "", ""),
		policyEntity("pol-002", "V-2", "", "", ""),
	}, refs)

	require.True(t, out[0].IsUpdate)
	require.Equal(t, "p9", out[0].ExistingPolicyID)
	require.False(t, out[1].IsUpdate)
}

func TestResolve_InsurerBidirectionalContainment(t *testing.T) {
	refs := resolve.References{
		Insurers: []resolve.NamedRef{
			{ID: "i1", Name: "Seguros Caracas de Liberty Mutual"},
			{ID: "i2", Name: "Mercantil Seguros"},
		},
	}

	// query contained in candidate
	out := resolve.Resolve([]assemble.Policy{
		policyEntity("pol-001", "V-1", "Seguros Caracas", "", ""),
	}, refs)
	require.Equal(t, "i1", out[0].Insurer.ResolvedID)

	// candidate contained in query
	out = resolve.Resolve([]assemble.Policy{
		policyEntity("pol-001", "V-1", "Mercantil Seguros C.A. (Venezuela)", "", ""),
	}, refs)
	require.Equal(t, "i2", out[0].Insurer.ResolvedID)
}

func TestResolve_ExactMatchBeatsContainment(t *testing.T) {
	refs := resolve.References{
		Insurers: []resolve.NamedRef{
			{ID: "i1", Name: "Mercantil Seguros Internacional"},
			{ID: "i2", Name: "Mercantil Seguros"},
		},
	}
	out := resolve.Resolve([]assemble.Policy{
		policyEntity("pol-001", "V-1", "mercantil seguros", "", ""),
	}, refs)
	require.Equal(t, "i2", out[0].Insurer.ResolvedID)
}

func TestResolve_UnresolvedKeepsRawLabel(t *testing.T) {
	out := resolve.Resolve([]assemble.Policy{
		policyEntity("pol-001", "V-1", "Aseguradora Fantasma", "", ""),
	}, resolve.References{})

	require.False(t, out[0].Insurer.Resolved())
	require.Equal(t, "Aseguradora Fantasma", out[0].Insurer.RawLabel)
}

func TestResolve_ProductScopedToResolvedInsurer(t *testing.T) {
	refs := resolve.References{
		Insurers: []resolve.NamedRef{{ID: "i1", Name: "Mercantil Seguros"}},
		Products: []resolve.ProductRef{
			{ID: "prodA", Name: "Salud Global", InsurerID: "i9"},
			{ID: "prodB", Name: "Salud Global", InsurerID: "i1"},
		},
	}
	out := resolve.Resolve([]assemble.Policy{
		policyEntity("pol-001", "V-1", "Mercantil Seguros", "Salud Global", ""),
	}, refs)

	require.Equal(t, "prodB", out[0].Product.ResolvedID)
}

func TestResolve_AdvisorAndCoAdvisor(t *testing.T) {
	refs := resolve.References{
		Advisors: []resolve.NamedRef{
			{ID: "a1", Name: "Carlos Rodríguez"},
			{ID: "a2", Name: "Ana Martínez"},
		},
	}
	e := policyEntity("pol-001", "V-1", "", "", "carlos rodriguez")
	e.Policy.CoAdvisor = "Martínez"

	out := resolve.Resolve([]assemble.Policy{e}, refs)
	require.Equal(t, "a1", out[0].Advisor.ResolvedID)
	require.Equal(t, "a2", out[0].CoAdvisor.ResolvedID)
}
