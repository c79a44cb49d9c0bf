package handlers

import "time"

const dateLayout = "2006-01-02"

// Datas e horas chegam sem fuso; o servidor interpreta no fuso local,
// como no restante do sistema.
func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.Local)
}
