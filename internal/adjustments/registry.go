package adjustments

import "sort"

var registry = map[string]Handler{
	"set_salary":              &SetSalaryHandler{},
	"apply_raise":             &ApplyRaiseHandler{},
	"set_filing_status":       &SetFilingStatusHandler{},
	"set_age":                 &SetAgeHandler{},
	"set_state_rate":          &SetStateRateHandler{},
	"set_retirement_election": &SetRetirementElectionHandler{},
	"set_distribution":        &SetDistributionHandler{},
	"set_expenses":            &SetExpensesHandler{},
}

func Get(name string) (Handler, bool) {
	h, ok := registry[name]
	return h, ok
}

// Names lists the registered adjustments in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
