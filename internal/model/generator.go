package model

// GenerateRequest represents a password generation request.
// Length 0 means "not provided" and takes the service default; the core
// generator itself never defaults.
type GenerateRequest struct {
	Strategy string `json:"strategy"`
	Length   int    `json:"length"`
	// Analyze asks for an inline strength report alongside the password.
	Analyze bool `json:"analyze"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password    string          `json:"password"`
	Strategy    string          `json:"strategy"`
	Length      int             `json:"length"`
	EntropyBits float64         `json:"entropy_bits"`
	Warning     string          `json:"warning,omitempty"`
	Strength    *StrengthReport `json:"strength,omitempty"`
}

// AnalyzeRequest asks for a strength report on an arbitrary password.
type AnalyzeRequest struct {
	Password string `json:"password"`
}

// StrengthReport carries a zxcvbn-style analysis: a coarse 0-4 score plus
// human-readable crack-time estimates keyed by attack scenario.
type StrengthReport struct {
	Score             int               `json:"score"`
	EntropyBits       float64           `json:"entropy_bits"`
	CrackTimesDisplay map[string]string `json:"crack_times_display"`
}
