package model

type FilingStatus string

const (
	Single          FilingStatus = "single"
	MarriedJoint    FilingStatus = "married_joint"
	MarriedSeparate FilingStatus = "married_separate"
	HeadOfHousehold FilingStatus = "head_of_household"
)

// FilingStatuses lists every supported status in display order.
var FilingStatuses = []FilingStatus{Single, MarriedJoint, MarriedSeparate, HeadOfHousehold}

func (s FilingStatus) Valid() bool {
	switch s {
	case Single, MarriedJoint, MarriedSeparate, HeadOfHousehold:
		return true
	}
	return false
}

func ParseFilingStatus(s string) (FilingStatus, error) {
	fs := FilingStatus(s)
	if !fs.Valid() {
		return "", Invalid("filing_status", "unsupported filing status %q", s)
	}
	return fs, nil
}

type PayFrequency string

const (
	Weekly      PayFrequency = "weekly"
	Biweekly    PayFrequency = "biweekly"
	Semimonthly PayFrequency = "semimonthly"
	Monthly     PayFrequency = "monthly"
)

// PeriodsPerYear returns the number of pay periods in a year for f.
func (f PayFrequency) PeriodsPerYear() (int, error) {
	switch f {
	case Weekly:
		return 52, nil
	case Biweekly:
		return 26, nil
	case Semimonthly:
		return 24, nil
	case Monthly:
		return 12, nil
	}
	return 0, Invalid("pay_frequency", "unsupported pay frequency %q", string(f))
}
