package domain

// DashboardSummary é a projeção de meta exibida no topo do dashboard.
// PctToGoal é 0 quando a meta é menor ou igual a zero; a projeção de fim de
// mês é 0 quando nenhum dia do mês decorreu.
type DashboardSummary struct {
	TotalPremium             float64 `json:"total_premium"`
	Goal                     float64 `json:"goal"`
	PctToGoal                float64 `json:"pct_to_goal"`
	MonthStart               string  `json:"month_start"`
	DaysInMonth              int     `json:"days_in_month"`
	DaysElapsed              int     `json:"days_elapsed"`
	ProjectedMonthEndPremium float64 `json:"projected_month_end_premium"`
}

// AgentSummary agrega os lançamentos de um agente; agentes sem lançamentos
// aparecem com somas zeradas
type AgentSummary struct {
	Agent        string  `json:"agent"`
	Quotes       int     `json:"quotes"`
	Sales        int     `json:"sales"`
	TotalPremium float64 `json:"total_premium"`
	PctOfGoal    float64 `json:"pct_of_goal"`
}

type CategorySummary struct {
	Category     string  `json:"category"`
	Quotes       int     `json:"quotes"`
	Sales        int     `json:"sales"`
	TotalPremium float64 `json:"total_premium"`
}

type LeadSourceSummary struct {
	LeadSource   string  `json:"lead_source"`
	Quotes       int     `json:"quotes"`
	Sales        int     `json:"sales"`
	TotalPremium float64 `json:"total_premium"`
}

// ChartSeries é o payload dos endpoints de gráfico, no formato esperado pelo
// front (labels e valores paralelos)
type ChartSeries struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}
