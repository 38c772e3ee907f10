package utils

import "time"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// MonthWindow retorna o início do mês calendário de now, o total de dias do
// mês e quantos dias já decorreram (inclusive de hoje)
func MonthWindow(now time.Time) (monthStart time.Time, daysInMonth int, daysElapsed int) {
	year, month, day := now.Date()

	monthStart = time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	daysInMonth = monthStart.AddDate(0, 1, -1).Day()
	daysElapsed = day

	return monthStart, daysInMonth, daysElapsed
}
