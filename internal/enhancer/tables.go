package enhancer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultTables returns the built-in suggestion tables for the HubSpot tool
// surface. Deployments can override them with a YAML file (see LoadTables).
func DefaultTables() Tables {
	return Tables{
		ByParam: map[string][]string{
			"ownerId":       {"hubspotSearchOwners"},
			"contactId":     {"hubspotGetContact"},
			"companyId":     {"hubspotGetCompany"},
			"dealId":        {"hubspotGetDeal"},
			"quoteId":       {"hubspotGetQuote"},
			"pipelineId":    {"hubspotListProperties"},
			"associationId": {"hubspotListAssociations"},
			"noteId":        {"hubspotGetNote"},
			"emailId":       {"hubspotGetEmail"},
		},
		ByOperation: map[string][]string{
			"create": {"hubspotListProperties", "hubspotCreateAssociation"},
			"update": {"hubspotListProperties"},
			"get":    {"hubspotListAssociations"},
			"search": {"hubspotListProperties"},
			"recent": {"hubspotSearchContacts"},
			"delete": {"hubspotListAssociations"},
		},
		ByDomain: map[string][]string{
			"hubspotContacts":     {"hubspotSearchCompanies", "hubspotCreateNote"},
			"hubspotCompanies":    {"hubspotSearchContacts", "hubspotSearchDeals"},
			"hubspotDeals":        {"hubspotGetQuote", "hubspotCreateAssociation"},
			"hubspotQuotes":       {"hubspotGetDeal"},
			"hubspotProperties":   {"hubspotCreateProperty"},
			"hubspotAssociations": {"hubspotGetContact", "hubspotGetCompany"},
			"hubspotNotes":        {"hubspotRecentNotes"},
			"hubspotEmails":       {"hubspotRecentEmails"},
			"hubspotSocial":       {"hubspotListSocialChannels"},
		},
	}
}

// LoadTables reads suggestion-table overrides from a YAML file layered on
// top of the defaults. Any table present in the file replaces the default
// table wholesale; absent tables keep their defaults.
func LoadTables(path string) (Tables, error) {
	tables := DefaultTables()
	if path == "" {
		return tables, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Tables{}, fmt.Errorf("failed to read suggestion tables file %q: %w", path, err)
	}
	var overrides Tables
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return Tables{}, fmt.Errorf("failed to unmarshal suggestion tables file %q: %w", path, err)
	}

	if overrides.ByParam != nil {
		tables.ByParam = overrides.ByParam
	}
	if overrides.ByOperation != nil {
		tables.ByOperation = overrides.ByOperation
	}
	if overrides.ByDomain != nil {
		tables.ByDomain = overrides.ByDomain
	}
	return tables, nil
}
