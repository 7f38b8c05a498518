package models

// Earner - модель держателя баллов (леджер баллов)
type Earner struct {
	EarnerID       string
	TotalPoints    int64
	RedeemedPoints int64
}

// Available - баллы, доступные для вывода
func (e Earner) Available() int64 {
	return e.TotalPoints - e.RedeemedPoints
}

// BalanceResponse - модель баланса баллов для выдачи
type BalanceResponse struct {
	Total     int64 `json:"total"`
	Redeemed  int64 `json:"redeemed"`
	Available int64 `json:"available"`
}
