package analytics

// BalanceSummary splits the team's aggregate hours balance. Per
// collaborator at most one side is nonzero; summed across the team both
// can be.
type BalanceSummary struct {
	HorasAFavor float64 `json:"horas_a_favor"`
	HorasDeuda  float64 `json:"horas_deuda"`
}

// TeamWeeklyStats aggregates worked vs expected hours across the team for
// one week.
type TeamWeeklyStats struct {
	HorasTrabajadas float64 `json:"horas_trabajadas"`
	HorasEsperadas  float64 `json:"horas_esperadas"`
	HorasExtra      float64 `json:"horas_extra"`
	HorasFaltantes  float64 `json:"horas_faltantes"`
}

// PunctualityTrendEntry carries a collaborator's average check-in
// hour-of-day.
type PunctualityTrendEntry struct {
	Colaborador         string  `json:"colaborador"`
	HoraPromedioEntrada float64 `json:"hora_promedio_entrada"`
}

// PunctualityRankEntry carries the share of a collaborator's entries whose
// check-in did not exceed the nominal start-of-day baseline.
type PunctualityRankEntry struct {
	Colaborador           string  `json:"colaborador"`
	PorcentajePuntualidad float64 `json:"porcentaje_puntualidad"`
}
