package model

type CalculationMessage struct {
	ID      int    `json:"id"`
	Level   string `json:"level"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Period  int    `json:"period,omitempty"`
}

const (
	LevelCritical = "CRITICAL"
	LevelWarning  = "WARNING"
)

const (
	CodeInvalidConfiguration   = "INVALID_CONFIGURATION"
	CodeRetirementLimitReached = "RETIREMENT_LIMIT_REACHED"
	CodeDependentCareFSALimit  = "DEPENDENT_CARE_FSA_LIMIT_REACHED"
	CodeMedicalFSALimit        = "MEDICAL_FSA_LIMIT_REACHED"
	CodeNegativeCashFlow       = "NEGATIVE_CASH_FLOW"
	CodeUnknownAdjustment      = "UNKNOWN_ADJUSTMENT"
	CodeInvalidAdjustment      = "INVALID_ADJUSTMENT"
	CodeTaxTableFallback       = "TAX_TABLE_FALLBACK"
	CodeRetirementExceedsPay   = "RETIREMENT_ELECTION_EXCEEDS_PAY"
)
