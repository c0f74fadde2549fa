package utils

import "time"

// LayoutData é o formato de data usado em toda a API (somente data, sem hora).
const LayoutData = "2006-01-02"

// ParseData converte uma string "AAAA-MM-DD" em time.Time.
func ParseData(s string) (time.Time, error) {
	return time.Parse(LayoutData, s)
}

// ParseDataOpcional converte a string se não estiver vazia; vazio vira nil.
func ParseDataOpcional(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(LayoutData, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Hoje retorna a data atual truncada para meia-noite (UTC).
func Hoje() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
