package types

// Filter represents query parameters for filtering and sorting list endpoints.
type Filter struct {
	Sort   map[string]string      `json:"sort,omitempty"`
	Filter map[string]interface{} `json:"filter,omitempty"`
	Limit  int                    `json:"limit"`
	Offset int                    `json:"offset"`
}

// http://localhost:8080/api/equipment?sort[condition]=desc&filter[model]=Arduino Uno&limit=50
