package domain

// EntrySubmission é o lançamento bruto enviado pela camada de apresentação,
// chaveado por nomes e com os campos numéricos ainda em texto. A normalização
// (resolução de nomes e coerção numérica) acontece no usecase de importação.
type EntrySubmission struct {
	EntryDate      string `json:"entry_date"`
	AgentName      string `json:"agent_name"`
	CategoryName   string `json:"category_name"`
	Quotes         string `json:"quotes"`
	Sales          string `json:"sales"`
	Premium        string `json:"premium"`
	LeadSourceName string `json:"lead_source_name"`
}

// Entry é o fato persistido, já normalizado para chaves estrangeiras
type Entry struct {
	ID           int64   `json:"id"`
	EntryDate    string  `json:"entry_date"`
	AgentID      int64   `json:"agent_id"`
	CategoryID   int64   `json:"category_id"`
	Quotes       int     `json:"quotes"`
	Sales        int     `json:"sales"`
	Premium      float64 `json:"premium"`
	LeadSourceID *int64  `json:"lead_source_id,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

// EntryView é a linha desnormalizada da listagem de lançamentos, com os nomes
// resolvidos. LeadSource é nil quando o lançamento não tem origem de lead.
type EntryView struct {
	ID         int64   `json:"id"`
	EntryDate  string  `json:"entry_date"`
	Agent      string  `json:"agent"`
	Category   string  `json:"category"`
	Quotes     int     `json:"quotes"`
	Sales      int     `json:"sales"`
	Premium    float64 `json:"premium"`
	LeadSource *string `json:"lead_source"`
	CreatedAt  string  `json:"created_at"`
}
